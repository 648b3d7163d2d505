package route

import (
	"net/http"

	"planboard/src-server/calendar"
	"planboard/src-server/model"
	"planboard/src-server/utils"
)

func Calendar(muxer *http.ServeMux, as *utils.AppState) {
	writeGrid := func(w http.ResponseWriter) {
		grid, err := as.Calendar.Grid()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, grid)
	}

	// #region - navigation
	muxer.HandleFunc("GET /calendar/grid", func(w http.ResponseWriter, r *http.Request) {
		writeGrid(w)
	})

	muxer.HandleFunc("POST /calendar/next", func(w http.ResponseWriter, r *http.Request) {
		if err := as.Calendar.GoNext(); err != nil {
			writeError(w, err)
			return
		}
		writeGrid(w)
	})

	muxer.HandleFunc("POST /calendar/previous", func(w http.ResponseWriter, r *http.Request) {
		if err := as.Calendar.GoPrevious(); err != nil {
			writeError(w, err)
			return
		}
		writeGrid(w)
	})

	muxer.HandleFunc("POST /calendar/today", func(w http.ResponseWriter, r *http.Request) {
		as.Calendar.GoToday()
		writeGrid(w)
	})

	type SetViewReqBody struct {
		View string `json:"view"`
	}
	muxer.HandleFunc("POST /calendar/view", func(w http.ResponseWriter, r *http.Request) {
		var reqBody SetViewReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		if err := as.Calendar.SetView(calendar.ViewMode(reqBody.View)); err != nil {
			writeError(w, err)
			return
		}
		writeGrid(w)
	})

	type SetLayoutReqBody struct {
		Layout string `json:"layout"`
	}
	muxer.HandleFunc("POST /calendar/layout", func(w http.ResponseWriter, r *http.Request) {
		var reqBody SetLayoutReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		if err := as.Calendar.SetLayout(calendar.LayoutMode(reqBody.Layout)); err != nil {
			writeError(w, err)
			return
		}
		writeGrid(w)
	})

	type SetDensityReqBody struct {
		Density string `json:"density"`
	}
	muxer.HandleFunc("POST /calendar/density", func(w http.ResponseWriter, r *http.Request) {
		var reqBody SetDensityReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		if err := as.Calendar.SetDensity(calendar.DensityMode(reqBody.Density)); err != nil {
			writeError(w, err)
			return
		}
		writeGrid(w)
	})

	// date is 2006-01-02, RFC 3339 or natural language ("next friday")
	type GotoReqBody struct {
		Date string `json:"date"`
	}
	muxer.HandleFunc("POST /calendar/goto", func(w http.ResponseWriter, r *http.Request) {
		var reqBody GotoReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		date, err := utils.ParseDate(as.When, reqBody.Date, as.Now().In(as.Config.GetLocation()))
		if err != nil {
			writeError(w, err)
			return
		}
		as.Calendar.SetDate(date)
		writeGrid(w)
	})
	// #endregion

	// #region - events
	muxer.HandleFunc("GET /calendar/events", func(w http.ResponseWriter, r *http.Request) {
		fromStr, toStr := r.URL.Query().Get("from"), r.URL.Query().Get("to")
		if fromStr == "" && toStr == "" {
			writeJSON(w, http.StatusOK, as.Events.List())
			return
		}
		if fromStr == "" || toStr == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Please provide both from and to"))
			return
		}
		now := as.Now().In(as.Config.GetLocation())
		from, err := utils.ParseDate(as.When, fromStr, now)
		if err != nil {
			writeError(w, err)
			return
		}
		to, err := utils.ParseDate(as.When, toStr, now)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, as.Events.Between(from, to))
	})

	muxer.HandleFunc("POST /calendar/events", func(w http.ResponseWriter, r *http.Request) {
		var reqBody model.EventInput
		if !decodeBody(w, r, &reqBody) {
			return
		}
		event, err := as.Events.Create(r.Context(), reqBody)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, event)
	})

	muxer.HandleFunc("PUT /calendar/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		var reqBody model.EventInput
		if !decodeBody(w, r, &reqBody) {
			return
		}
		event := model.Event{ID: r.PathValue("id"), EventInput: reqBody}
		if err := as.Events.Update(r.Context(), event); err != nil {
			writeError(w, err)
			return
		}
		updated, err := as.Events.Get(event.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	})

	muxer.HandleFunc("DELETE /calendar/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := as.Calendar.Delete(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	// #endregion

	// #region - create/edit modal
	muxer.HandleFunc("GET /calendar/modal", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, as.Calendar.Modal())
	})

	muxer.HandleFunc("POST /calendar/modal/create", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, as.Calendar.OpenCreate())
	})

	muxer.HandleFunc("POST /calendar/modal/edit/{id}", func(w http.ResponseWriter, r *http.Request) {
		modal, err := as.Calendar.OpenEdit(r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, modal)
	})

	muxer.HandleFunc("POST /calendar/modal/save", func(w http.ResponseWriter, r *http.Request) {
		var reqBody model.EventInput
		if !decodeBody(w, r, &reqBody) {
			return
		}
		event, err := as.Calendar.Save(r.Context(), reqBody)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, event)
	})

	muxer.HandleFunc("DELETE /calendar/modal", func(w http.ResponseWriter, r *http.Request) {
		as.Calendar.Close()
		w.WriteHeader(http.StatusNoContent)
	})
	// #endregion
}
