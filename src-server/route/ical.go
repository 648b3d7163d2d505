package route

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"planboard/src-server/ical"
	"planboard/src-server/utils"
)

func Ical(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /ical", func(w http.ResponseWriter, r *http.Request) {
		events := as.Events.List()

		// DTSTAMP changes on every render, so the ETag hashes the events
		if eventsJson, err := json.Marshal(events); err == nil {
			if hash, err := utils.ContentHash(bytes.NewReader(eventsJson)); err == nil {
				etag := `"` + hash + `"`
				w.Header().Set("ETag", etag)
				if r.Header.Get("If-None-Match") == etag {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}

		cal := ical.NewCalendar("Planboard")
		cal.SetClock(as.Now)
		cal.AddEvents(events...)
		var buf bytes.Buffer
		if err := cal.Serialize(&buf); err != nil {
			slog.Error("can't render calendar", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't render calendar"))
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="planboard.ics"`)
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	})
}
