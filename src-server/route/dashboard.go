package route

import (
	"net/http"
	"time"

	"planboard/src-server/calendar"
	"planboard/src-server/model"
	"planboard/src-server/store"
	"planboard/src-server/utils"
)

func Dashboard(muxer *http.ServeMux, as *utils.AppState) {
	type DashboardRespBody struct {
		Today       time.Time            `json:"today"`
		Events      []calendar.Placement `json:"events"`
		PinnedNotes []model.Note         `json:"pinnedNotes"`
		Todos       store.TodoStats      `json:"todos"`
		UI          utils.UIState        `json:"ui"`
	}

	muxer.HandleFunc("GET /dashboard", func(w http.ResponseWriter, r *http.Request) {
		today := as.Calendar.Today()
		writeJSON(w, http.StatusOK, DashboardRespBody{
			Today:       today,
			Events:      as.Calendar.DayPlacements(today),
			PinnedNotes: as.Notes.Pinned(),
			Todos:       as.Todos.Stats(),
			UI:          as.UI.State(),
		})
	})
}
