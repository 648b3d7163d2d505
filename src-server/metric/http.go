package metric

import (
	"log/slog"
	"strconv"
	"time"

	"planboard/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
)

func httpRequests(as *utils.AppState) {
	const (
		totalName    = "planboard_http_requests_total"
		durationName = "planboard_http_request_duration_seconds"
	)
	total, ok := register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: totalName,
		Help: "Number of HTTP requests by route and status",
	}, []string{"route", "status"}))
	if !ok {
		return
	}
	duration, ok := register(prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    durationName,
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"}))
	if !ok {
		unregister(totalName, total)
		return
	}
	slog.Debug("metric registered", "name", totalName)
	slog.Debug("metric registered", "name", durationName)

	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(totalName, total)
				unregister(durationName, duration)
				return
			case req := <-as.MetricChans.HTTPRequest:
				total.WithLabelValues(req.Route, strconv.Itoa(req.Status)).Inc()
				duration.WithLabelValues(req.Route).Observe(req.Latency.Seconds())
			}
		}
	}()
}

func uptime(as *utils.AppState, tickerInterval time.Duration) {
	const name = "planboard_uptime_seconds"
	gauge, ok := register(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: "Seconds since the server started",
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
				gauge.Set(as.Now().Sub(as.StartedAt).Seconds())
			}
		}
	}()
}
