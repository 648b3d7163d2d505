package route

import (
	"net/http"

	"planboard/src-server/utils"
)

func UI(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /ui", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, as.UI.State())
	})

	muxer.HandleFunc("POST /ui/theme/toggle", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, as.UI.ToggleTheme())
	})

	muxer.HandleFunc("POST /ui/sidebar/toggle", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, as.UI.ToggleSidebar())
	})
}
