package route

import (
	"net/http"

	"planboard/src-server/model"
	"planboard/src-server/utils"
)

func Todo(muxer *http.ServeMux, as *utils.AppState) {
	type TodoRespBody struct {
		model.Todo
		CategoryName string `json:"categoryName"`
		PriorityName string `json:"priorityName"`
	}
	toResp := func(todo model.Todo) TodoRespBody {
		return TodoRespBody{
			Todo:         todo,
			CategoryName: todo.Category.DisplayName(),
			PriorityName: todo.Priority.DisplayName(),
		}
	}

	muxer.HandleFunc("GET /todos", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		todos := as.Todos.List(model.TodoFilter{
			Status:   model.TodoStatus(query.Get("status")),
			Category: model.TodoCategory(query.Get("category")),
			Priority: model.TodoPriority(query.Get("priority")),
		})
		respBody := make([]TodoRespBody, 0, len(todos))
		for _, todo := range todos {
			respBody = append(respBody, toResp(todo))
		}
		writeJSON(w, http.StatusOK, respBody)
	})

	type TodoReqBody struct {
		Text      string             `json:"text"`
		Completed bool               `json:"completed"`
		Category  model.TodoCategory `json:"category"`
		Priority  model.TodoPriority `json:"priority"`
	}

	muxer.HandleFunc("POST /todos", func(w http.ResponseWriter, r *http.Request) {
		var reqBody TodoReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		todo, err := as.Todos.Create(r.Context(), model.Todo{
			Text:     reqBody.Text,
			Category: reqBody.Category,
			Priority: reqBody.Priority,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResp(todo))
	})

	muxer.HandleFunc("PUT /todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		var reqBody TodoReqBody
		if !decodeBody(w, r, &reqBody) {
			return
		}
		todo, err := as.Todos.Update(r.Context(), model.Todo{
			ID:        r.PathValue("id"),
			Text:      reqBody.Text,
			Completed: reqBody.Completed,
			Category:  reqBody.Category,
			Priority:  reqBody.Priority,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResp(todo))
	})

	muxer.HandleFunc("POST /todos/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
		todo, err := as.Todos.Toggle(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResp(todo))
	})

	muxer.HandleFunc("DELETE /todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := as.Todos.Delete(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
