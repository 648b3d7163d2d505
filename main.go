package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planboard/src-server/metric"
	"planboard/src-server/route"
	"planboard/src-server/scheduler"
	"planboard/src-server/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	// opens the database, creates the schema and loads events, notes, todos
	as := utils.NewAppState()

	go metric.Init(as)

	if webhook := scheduler.NewDiscordWebhook(as); webhook != nil {
		go scheduler.EventNotify(as, webhook)
	} else {
		slog.Info("discord webhook not configured, event reminders disabled")
	}

	// http server
	go func() {
		if err := http.ListenAndServe(":"+as.Config.GetPort(), route.NewHandler(as)); err != nil {
			slog.Error("cannot start HTTP server", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
		}
	}()

	slog.Info("app is now running, press Ctrl+C to exit", "port", as.Config.GetPort())

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-as.AppCloseSignalChan
	as.GracefulShutdown()

	slog.Info("Gracefully shutting down...")
}
