package utils_test

import (
	"testing"
	"time"

	"planboard/src-server/utils"
)

func TestNewConfig(t *testing.T) {
	func() {
		for _, key := range []string{"PORT", "DATABASE_PATH", "WEEK_START", "PIXELS_PER_HOUR", "MIN_EVENT_HEIGHT", "PERSIST_EVENTS", "THEME", "METRIC_COLLECTION_INTERVAL", "STATIC_WEB_CLIENT_DIR", "SEED_FILE", "NOTIFY_BEFORE", "DISCORD_WEBHOOK_TOKEN"} {
			t.Setenv(key, "")
		}
		t.Setenv("TIMEZONE", "UTC")

		c := utils.NewConfig()
		switch {
		case c.GetPort() != "8080":
			t.Errorf("expected port 8080, got %s", c.GetPort())
		case c.GetDatabasePath() != "./sqlite.db":
			t.Errorf("expected ./sqlite.db, got %s", c.GetDatabasePath())
		case c.GetLocation() != time.UTC:
			t.Errorf("expected UTC, got %s", c.GetLocation())
		case c.GetWeekStart() != time.Sunday:
			t.Errorf("expected sunday, got %s", c.GetWeekStart())
		case c.GetPixelsPerHour() != 60 || c.GetMinEventHeight() != 30:
			t.Errorf("expected 60/30, got %v/%v", c.GetPixelsPerHour(), c.GetMinEventHeight())
		case c.GetPersistEvents():
			t.Error("events should not be persisted by default")
		case c.GetTheme() != utils.ThemeLight:
			t.Errorf("expected light theme, got %s", c.GetTheme())
		case c.GetMetricCollectionInterval() != 15*time.Second:
			t.Errorf("expected 15s, got %s", c.GetMetricCollectionInterval())
		case c.GetStaticWebClientDir() != "":
			t.Errorf("expected no web client dir, got %s", c.GetStaticWebClientDir())
		case c.GetSeedFile() != "":
			t.Errorf("expected no seed file, got %s", c.GetSeedFile())
		case c.GetNotifyBefore() != 15*time.Minute:
			t.Errorf("expected 15m, got %s", c.GetNotifyBefore())
		}
	}()

	func() {
		dir := t.TempDir()
		t.Setenv("PORT", "9000")
		t.Setenv("TIMEZONE", "Asia/Ho_Chi_Minh")
		t.Setenv("WEEK_START", "Monday")
		t.Setenv("PIXELS_PER_HOUR", "80")
		t.Setenv("MIN_EVENT_HEIGHT", "20")
		t.Setenv("PERSIST_EVENTS", "true")
		t.Setenv("THEME", "dark")
		t.Setenv("METRIC_COLLECTION_INTERVAL", "1m")
		t.Setenv("STATIC_WEB_CLIENT_DIR", dir)
		t.Setenv("NOTIFY_BEFORE", "5m")
		t.Setenv("DISCORD_WEBHOOK_ID", "123")
		t.Setenv("DISCORD_WEBHOOK_TOKEN", "secret-token")

		c := utils.NewConfig()
		switch {
		case c.GetPort() != "9000":
			t.Errorf("expected port 9000, got %s", c.GetPort())
		case c.GetLocation().String() != "Asia/Ho_Chi_Minh":
			t.Errorf("unexpected location %s", c.GetLocation())
		case c.GetWeekStart() != time.Monday:
			t.Errorf("expected monday, got %s", c.GetWeekStart())
		case c.GetPixelsPerHour() != 80 || c.GetMinEventHeight() != 20:
			t.Errorf("expected 80/20, got %v/%v", c.GetPixelsPerHour(), c.GetMinEventHeight())
		case !c.GetPersistEvents():
			t.Error("expected events to be persisted")
		case c.GetTheme() != utils.ThemeDark:
			t.Errorf("expected dark theme, got %s", c.GetTheme())
		case c.GetMetricCollectionInterval() != time.Minute:
			t.Errorf("expected 1m, got %s", c.GetMetricCollectionInterval())
		case c.GetStaticWebClientDir() != dir:
			t.Errorf("expected %s, got %s", dir, c.GetStaticWebClientDir())
		case c.GetNotifyBefore() != 5*time.Minute:
			t.Errorf("expected 5m, got %s", c.GetNotifyBefore())
		case c.GetDiscordWebhookID() != "123" || c.GetDiscordWebhookToken() != "secret-token":
			t.Error("unexpected webhook settings")
		}
	}()
}
