// Package route registers the JSON HTTP API on a ServeMux. Errors are
// answered in plain text: 404 for unknown ids, 400 for rejected input and
// 500 when storage fails.
package route

import (
	"net/http"

	"planboard/src-server/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler builds the full API, wrapped in LogMiddleware.
func NewHandler(as *utils.AppState) http.Handler {
	muxer := http.NewServeMux()
	muxer.Handle("GET /metrics", promhttp.Handler())
	Calendar(muxer, as)
	Notes(muxer, as)
	Todo(muxer, as)
	Dashboard(muxer, as)
	UI(muxer, as)
	Ical(muxer, as)
	Storage(muxer, as)
	SPA(muxer, as)
	return LogMiddleware(as, muxer)
}
