package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	port         string
	databasePath string

	location  *time.Location
	weekStart time.Weekday

	pixelsPerHour  float64
	minEventHeight float64
	persistEvents  bool
	theme          Theme

	metricCollectionInterval time.Duration
	staticWebClientDir       string
	seedFile                 string

	discordWebhookID    string
	discordWebhookToken string
	notifyBefore        time.Duration
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),
		databasePath: func() string {
			databasePath := os.Getenv("DATABASE_PATH")
			if databasePath == "" {
				databasePath = "./sqlite.db"
			}
			slog.Debug("env", "DATABASE_PATH", databasePath)
			return databasePath
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				slog.Warn("TIMEZONE is not set, using local timezone", "timezone", time.Local)
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),
		weekStart: func() time.Weekday {
			weekStart := strings.ToLower(strings.TrimSpace(os.Getenv("WEEK_START")))
			switch weekStart {
			case "", "sunday":
				slog.Debug("env", "WEEK_START", "sunday")
				return time.Sunday
			case "monday":
				slog.Debug("env", "WEEK_START", "monday")
				return time.Monday
			}
			slog.Error("invalid WEEK_START, must be sunday or monday", "value", weekStart)
			os.Exit(1)
			return time.Sunday
		}(),

		pixelsPerHour:  positiveFloatEnv("PIXELS_PER_HOUR", 60),
		minEventHeight: positiveFloatEnv("MIN_EVENT_HEIGHT", 30),
		persistEvents: func() bool {
			persistEvents := os.Getenv("PERSIST_EVENTS")
			if persistEvents == "" {
				return false
			}
			b, err := strconv.ParseBool(persistEvents)
			if err != nil {
				slog.Error("invalid PERSIST_EVENTS", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "PERSIST_EVENTS", b)
			return b
		}(),
		theme: func() Theme {
			theme := Theme(strings.ToLower(os.Getenv("THEME")))
			switch theme {
			case "":
				return ThemeLight
			case ThemeLight, ThemeDark:
				slog.Debug("env", "THEME", theme)
				return theme
			}
			slog.Warn("unknown THEME, using light", "value", theme)
			return ThemeLight
		}(),

		metricCollectionInterval: durationEnv("METRIC_COLLECTION_INTERVAL", 15*time.Second),
		staticWebClientDir: func() string {
			staticWebClientDir := os.Getenv("STATIC_WEB_CLIENT_DIR")
			if staticWebClientDir == "" {
				slog.Debug("STATIC_WEB_CLIENT_DIR is not set, not serving the web client")
				return ""
			}
			info, err := os.Stat(staticWebClientDir)
			if err != nil {
				slog.Error("can't get info of STATIC_WEB_CLIENT_DIR", "error", err)
				os.Exit(1)
			}
			if !info.IsDir() {
				slog.Error("STATIC_WEB_CLIENT_DIR is not a directory", "path", staticWebClientDir)
				os.Exit(1)
			}
			slog.Debug("env", "STATIC_WEB_CLIENT_DIR", staticWebClientDir)
			return filepath.Clean(staticWebClientDir)
		}(),

		seedFile: func() string {
			seedFile := os.Getenv("SEED_FILE")
			if seedFile == "" {
				return ""
			}
			if _, err := os.Stat(seedFile); err != nil {
				slog.Error("can't get info of SEED_FILE", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "SEED_FILE", seedFile)
			return seedFile
		}(),

		discordWebhookID: os.Getenv("DISCORD_WEBHOOK_ID"),
		discordWebhookToken: func() string {
			token := os.Getenv("DISCORD_WEBHOOK_TOKEN")
			if token == "" {
				slog.Debug("DISCORD_WEBHOOK_TOKEN is not set, event notifications are off")
				return ""
			}
			slog.Debug("env", "DISCORD_WEBHOOK_TOKEN", token[0:min(3, len(token))]+"...")
			return token
		}(),
		notifyBefore: durationEnv("NOTIFY_BEFORE", 15*time.Minute),
	}
}

func positiveFloatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		slog.Error("invalid "+key+", must be a positive number", "value", raw)
		os.Exit(1)
	}
	slog.Debug("env", key, value)
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	duration, err := time.ParseDuration(raw)
	if err != nil || duration <= 0 {
		slog.Error("invalid "+key, "value", raw, "error", err)
		os.Exit(1)
	}
	slog.Debug("env", key, raw, "duration", duration)
	return duration
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get DATABASE_PATH env, default to ./sqlite.db
func (c *Config) GetDatabasePath() string {
	return c.databasePath
}

// Get TIMEZONE env
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get WEEK_START env, default to Sunday
func (c *Config) GetWeekStart() time.Weekday {
	return c.weekStart
}

// Get PIXELS_PER_HOUR env, default to 60
func (c *Config) GetPixelsPerHour() float64 {
	return c.pixelsPerHour
}

// Get MIN_EVENT_HEIGHT env, default to 30
func (c *Config) GetMinEventHeight() float64 {
	return c.minEventHeight
}

// Get PERSIST_EVENTS env
func (c *Config) GetPersistEvents() bool {
	return c.persistEvents
}

// Get THEME env, default to light
func (c *Config) GetTheme() Theme {
	return c.theme
}

// Get METRIC_COLLECTION_INTERVAL env, default to 15s
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}

// Get STATIC_WEB_CLIENT_DIR env, empty when not serving the web client
func (c *Config) GetStaticWebClientDir() string {
	return c.staticWebClientDir
}

// Get SEED_FILE env, empty to start with the built-in demo notes and todos
func (c *Config) GetSeedFile() string {
	return c.seedFile
}

// Get DISCORD_WEBHOOK_ID env
func (c *Config) GetDiscordWebhookID() string {
	return c.discordWebhookID
}

// Get DISCORD_WEBHOOK_TOKEN env
func (c *Config) GetDiscordWebhookToken() string {
	return c.discordWebhookToken
}

// Get NOTIFY_BEFORE env, default to 15m
func (c *Config) GetNotifyBefore() time.Duration {
	return c.notifyBefore
}
