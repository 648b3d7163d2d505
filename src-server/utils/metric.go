package utils

import "time"

// HTTPRequestMetric is one served request, fed to the request collectors.
type HTTPRequestMetric struct {
	Route   string
	Status  int
	Latency time.Duration
}

// Metric carries samples from the request path to the collector goroutines
// in the metric package. Sends never block: a sample is dropped when the
// collector is busy or not running.
type Metric struct {
	StorageRead        chan float64
	StorageWrite       chan float64
	DiscordSendMessage chan float64

	EventCount chan float64
	NoteCount  chan float64
	TodoCount  chan float64

	HTTPRequest chan HTTPRequestMetric
}

const metricBuffer = 64

func NewMetric() *Metric {
	return &Metric{
		StorageRead:        make(chan float64, metricBuffer),
		StorageWrite:       make(chan float64, metricBuffer),
		DiscordSendMessage: make(chan float64, metricBuffer),
		EventCount:         make(chan float64, metricBuffer),
		NoteCount:          make(chan float64, metricBuffer),
		TodoCount:          make(chan float64, metricBuffer),
		HTTPRequest:        make(chan HTTPRequestMetric, metricBuffer),
	}
}

// Send is a non-blocking send.
func Send[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
	}
}

// Latency converts d to the microseconds the latency gauges report.
func Latency(d time.Duration) float64 {
	return float64(d.Microseconds())
}
