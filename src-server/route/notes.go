package route

import (
	"net/http"

	"planboard/src-server/model"
	"planboard/src-server/store"
	"planboard/src-server/utils"
)

func Notes(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /notes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, as.Notes.List(store.NoteFilter{
			Search: r.URL.Query().Get("search"),
			Label:  r.URL.Query().Get("label"),
		}))
	})

	muxer.HandleFunc("GET /notes/labels", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, as.Notes.Labels())
	})

	type NoteReqBody struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Color    string   `json:"color"`
		IsPinned bool     `json:"isPinned"`
		Labels   []string `json:"labels"`
	}
	toNote := func(id string, reqBody NoteReqBody) model.Note {
		return model.Note{
			ID:       id,
			Title:    reqBody.Title,
			Content:  reqBody.Content,
			Color:    reqBody.Color,
			IsPinned: reqBody.IsPinned,
			Labels:   reqBody.Labels,
		}
	}

	muxer.HandleFunc("POST /notes", func(w http.ResponseWriter, r *http.Request) {
		var reqBody NoteReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		note, err := as.Notes.Create(r.Context(), toNote("", reqBody))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, note)
	})

	muxer.HandleFunc("PUT /notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		var reqBody NoteReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		note, err := as.Notes.Update(r.Context(), toNote(r.PathValue("id"), reqBody))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)
	})

	muxer.HandleFunc("DELETE /notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := as.Notes.Delete(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	muxer.HandleFunc("POST /notes/{id}/pin", func(w http.ResponseWriter, r *http.Request) {
		note, err := as.Notes.TogglePin(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)
	})

	type AddLabelReqBody struct {
		Label string `json:"label"`
	}
	muxer.HandleFunc("POST /notes/{id}/labels", func(w http.ResponseWriter, r *http.Request) {
		var reqBody AddLabelReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		note, err := as.Notes.AddLabel(r.Context(), r.PathValue("id"), reqBody.Label)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)
	})

	muxer.HandleFunc("DELETE /notes/{id}/labels/{label}", func(w http.ResponseWriter, r *http.Request) {
		note, err := as.Notes.RemoveLabel(r.Context(), r.PathValue("id"), r.PathValue("label"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)
	})
}
