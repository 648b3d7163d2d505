package metric

import (
	"context"
	"log/slog"
	"time"

	"planboard/src-server/storage"
	"planboard/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
)

func storageLatency(as *utils.AppState) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	startTimer := time.Now()
	if _, _, err := as.Storage.GetItem(ctx, storage.EmptyReadKey); err != nil {
		return 0, err
	}
	return time.Since(startTimer), nil
}

func storageEmptyRead(as *utils.AppState, tickerInterval time.Duration) {
	if as.Storage == nil {
		return
	}
	const name = "planboard_storage_empty_read_microsec"
	gauge, ok := register(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: "The latency of an empty storage read in microseconds",
	}))
	if !ok {
		return
	}
	slog.Debug("metric registered", "name", name)
	gauge.Set(0)

	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(name, gauge)
				return
			case <-ticker.C:
				latency, err := storageLatency(as)
				if err != nil {
					slog.Error("can't get storage latency", "error", err)
					continue
				}
				gauge.Set(utils.Latency(latency))
			}
		}
	}()
}

// latencyGauge shows the last sample from ch and drops back to 0 when no
// sample arrived for clearTickerInterval.
func latencyGauge(as *utils.AppState, name, help string, ch chan float64, clearTickerInterval time.Duration) {
	gauge, ok := register(prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help}))
	if !ok {
		return
	}
	slog.Debug("metric registered", "name", name)
	gauge.Set(0)

	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(name, gauge)
				return
			case latency := <-ch:
				gauge.Set(latency)
				clearTicker.Reset(clearTickerInterval)
			case <-clearTicker.C:
				gauge.Set(0)
			}
		}
	}()
}

// countGauge tracks a collection size pushed by the store observers.
func countGauge(as *utils.AppState, name, help string, ch chan float64, initial float64) {
	gauge, ok := register(prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help}))
	if !ok {
		return
	}
	slog.Debug("metric registered", "name", name)
	gauge.Set(initial)

	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(name, gauge)
				return
			case count := <-ch:
				gauge.Set(count)
			}
		}
	}()
}
