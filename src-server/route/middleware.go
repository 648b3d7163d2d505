package route

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"planboard/src-server/calendar"
	"planboard/src-server/model"
	"planboard/src-server/store"
	"planboard/src-server/utils"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogMiddleware logs every request and feeds the request metrics, labelled
// by the muxer pattern that matched.
func LogMiddleware(as *utils.AppState, muxer *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, pattern := muxer.Handler(r)
		if pattern == "" {
			pattern = "unmatched"
		}

		startTimer := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		muxer.ServeHTTP(rec, r)

		latency := time.Since(startTimer)
		utils.Send(as.MetricChans.HTTPRequest, utils.HTTPRequestMetric{
			Route:   pattern,
			Status:  rec.status,
			Latency: latency,
		})
		slog.Debug("http", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", latency)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	bodyJson, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Can't marshal response body"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bodyJson)
}

// writeError maps domain errors onto status codes; bodies are plain text.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalid),
		errors.Is(err, calendar.ErrUnknownView),
		errors.Is(err, calendar.ErrUnknownLayout),
		errors.Is(err, calendar.ErrUnknownDensity),
		errors.Is(err, utils.ErrUnparsableDate):
		status = http.StatusBadRequest
	case errors.Is(err, calendar.ErrModalClosed):
		status = http.StatusConflict
	case errors.Is(err, store.ErrSaveFailed):
		slog.Error("can't save to storage", "error", err)
	default:
		slog.Error("request failed", "error", err)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(err.Error()))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid request body"))
		return false
	}
	return true
}
