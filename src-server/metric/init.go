// Package metric exposes Prometheus collectors fed by the channels in
// utils.Metric. Every collector stops and unregisters itself on graceful
// shutdown.
package metric

import (
	"errors"
	"log/slog"

	"planboard/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
)

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	storageEmptyRead(as, tickerInterval)
	latencyGauge(as, "planboard_storage_read_microsec", "The latency of a storage read in microseconds", as.MetricChans.StorageRead, clearTickerInterval)
	latencyGauge(as, "planboard_storage_write_microsec", "The latency of a storage write in microseconds", as.MetricChans.StorageWrite, clearTickerInterval)
	latencyGauge(as, "planboard_discord_send_message_microsec", "The latency of a discord webhook message in microseconds", as.MetricChans.DiscordSendMessage, clearTickerInterval)
	countGauge(as, "planboard_events", "Number of calendar events", as.MetricChans.EventCount, float64(as.Events.Len()))
	countGauge(as, "planboard_notes", "Number of notes", as.MetricChans.NoteCount, float64(len(as.Notes.All())))
	countGauge(as, "planboard_todos", "Number of todos", as.MetricChans.TodoCount, float64(as.Todos.Stats().Total))
	httpRequests(as)
	uptime(as, tickerInterval)
}

// register adds c to the default registry. When an equal collector is
// already there (Init ran before), that one is returned instead.
func register[T prometheus.Collector](c T) (T, bool) {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, true
			}
		}
		slog.Error("can't register metric", "error", err)
		return c, false
	}
	return c, true
}

func unregister(name string, c prometheus.Collector) {
	switch prometheus.Unregister(c) {
	case true:
		slog.Debug("metric unregistered", "name", name)
	case false:
		slog.Warn("metric not registered", "name", name)
	}
}
