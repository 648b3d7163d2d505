package route

import (
	"log/slog"
	"net/http"

	"planboard/src-server/utils"
)

// Storage clears every saved collection. Events end up empty while notes and
// todos go back to their seed.
func Storage(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("POST /storage/reset", func(w http.ResponseWriter, r *http.Request) {
		as.Calendar.Close()
		for _, reset := range []func() error{
			func() error { return as.Events.Reset(r.Context()) },
			func() error { return as.Notes.Reset(r.Context()) },
			func() error { return as.Todos.Reset(r.Context()) },
		} {
			if err := reset(); err != nil {
				writeError(w, err)
				return
			}
		}
		slog.Info("storage reset")
		w.WriteHeader(http.StatusNoContent)
	})
}
