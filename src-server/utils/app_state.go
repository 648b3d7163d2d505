package utils

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"time"

	"planboard/src-server/calendar"
	"planboard/src-server/model"
	"planboard/src-server/storage"
	"planboard/src-server/store"

	"github.com/olebedev/when"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

type AppState struct {
	Config *Config
	RawDB  *sql.DB
	BunDB  *bun.DB
	When   *when.Parser
	Now    func() time.Time

	Storage  storage.Storage
	Events   *store.EventStore
	Notes    *store.NoteStore
	Todos    *store.TodoStore
	Calendar *calendar.View
	UI       *UIPrefs

	MetricChans *Metric
	StartedAt   time.Time

	AppCloseSignalChan chan os.Signal

	shutdownMu    sync.Mutex
	shutdownChans []chan struct{}
}

// NewAppState opens the database from config, creates the schema and loads
// the stores. Any failure here is fatal.
func NewAppState() *AppState {
	config := NewConfig()

	rawDB, err := sql.Open(sqliteshim.ShimName, config.GetDatabasePath()+"?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	rawDB.SetMaxIdleConns(8)

	bunDB := bun.NewDB(rawDB, sqlitedialect.New())
	bunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(true),
		bundebug.FromEnv("BUNDEBUG"),
	))

	if err := model.CreateSchema(context.Background(), bunDB); err != nil {
		slog.Error("can't create database schema", "error", err)
		os.Exit(1)
	}

	as := newAppState(config, time.Now)
	as.RawDB = rawDB
	as.BunDB = bunDB

	bunStorage := storage.NewBun(bunDB)
	bunStorage.OnRead = func(d time.Duration) { Send(as.MetricChans.StorageRead, Latency(d)) }
	bunStorage.OnWrite = func(d time.Duration) { Send(as.MetricChans.StorageWrite, Latency(d)) }
	as.wire(bunStorage)

	as.LoadStores(context.Background())
	return as
}

// NewAppStateWithStorage wires the stores, the calendar view and the UI
// preferences over st without touching a database. A nil st keeps
// everything in memory.
func NewAppStateWithStorage(config *Config, st storage.Storage, now func() time.Time) *AppState {
	as := newAppState(config, now)
	as.wire(st)
	return as
}

// newAppState fills everything but the storage-backed parts, see wire.
func newAppState(config *Config, now func() time.Time) *AppState {
	if now == nil {
		now = time.Now
	}
	return &AppState{
		Config:             config,
		When:               NewWhenParser(),
		Now:                now,
		UI:                 NewUIPrefs(config.GetTheme()),
		MetricChans:        NewMetric(),
		StartedAt:          now(),
		AppCloseSignalChan: make(chan os.Signal, 1),
	}
}

func (as *AppState) wire(st storage.Storage) {
	as.Storage = st

	eventStorage := st
	if !as.Config.GetPersistEvents() {
		eventStorage = nil
	}
	as.Events = store.NewEventStore(eventStorage)
	as.Notes = store.NewNoteStore(st, as.Now)
	as.Todos = store.NewTodoStore(st, as.Now)

	if seedFile := as.Config.GetSeedFile(); seedFile != "" {
		if seed, err := store.LoadSeedFile(seedFile); err != nil {
			slog.Warn("can't load seed file, using demo data", "error", err)
		} else {
			as.Notes.UseSeed(seed.Notes)
			as.Todos.UseSeed(seed.Todos)
		}
	}

	as.Events.OnChange = func(n int) { Send(as.MetricChans.EventCount, float64(n)) }
	as.Notes.OnChange = func(n int) { Send(as.MetricChans.NoteCount, float64(n)) }
	as.Todos.OnChange = func(n int) { Send(as.MetricChans.TodoCount, float64(n)) }

	as.Calendar = calendar.NewView(calendar.ViewOptions{
		Events:    as.Events,
		Engine:    calendar.NewLayoutEngine(as.Config.GetPixelsPerHour(), as.Config.GetMinEventHeight()),
		WeekStart: as.Config.GetWeekStart(),
		Location:  as.Config.GetLocation(),
		Now:       as.Now,
	})
}

// LoadStores reads every collection once. Load problems are logged; the
// stores fall back on their own.
func (as *AppState) LoadStores(ctx context.Context) {
	if source, err := as.Events.Load(ctx); err != nil {
		slog.Warn("can't load events", "source", source, "error", err)
	} else {
		slog.Debug("events loaded", "source", source, "count", as.Events.Len())
	}
	if source, err := as.Notes.Load(ctx); err != nil {
		slog.Warn("can't load notes", "source", source, "error", err)
	} else {
		slog.Debug("notes loaded", "source", source)
	}
	if source, err := as.Todos.Load(ctx); err != nil {
		slog.Warn("can't load todos", "source", source, "error", err)
	} else {
		slog.Debug("todos loaded", "source", source)
	}
}

// CreateGracefulShutdownChan returns a channel closed by GracefulShutdown.
// Background goroutines select on it to stop.
func (as *AppState) CreateGracefulShutdownChan() <-chan struct{} {
	as.shutdownMu.Lock()
	defer as.shutdownMu.Unlock()
	ch := make(chan struct{})
	as.shutdownChans = append(as.shutdownChans, ch)
	return ch
}

// GracefulShutdown stops the background goroutines and closes the
// database. Calling it twice is a no-op.
func (as *AppState) GracefulShutdown() {
	as.shutdownMu.Lock()
	for _, ch := range as.shutdownChans {
		close(ch)
	}
	as.shutdownChans = nil
	as.shutdownMu.Unlock()

	if as.BunDB != nil {
		if err := as.BunDB.Close(); err != nil {
			slog.Warn("can't close database", "error", err)
		}
		as.BunDB = nil
	}
}
