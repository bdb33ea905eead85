package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jaekwang-park/todo-cloud/internal/middleware"
	"github.com/jaekwang-park/todo-cloud/internal/model"
	"github.com/jaekwang-park/todo-cloud/internal/service"
	"github.com/jaekwang-park/todo-cloud/internal/validate"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ServeHTTP routes /todos, /todos/{id} and /todos/batch-delete
func (h *TodoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/todos")
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimRight(path, "/")

	if path == "batch-delete" {
		h.handleBatchDelete(w, r)
		return
	}

	// /todos/{id}
	if path != "" {
		todoID := path
		switch r.Method {
		case http.MethodPut:
			h.handleUpdate(w, r, todoID)
		case http.MethodDelete:
			h.handleDelete(w, r, todoID)
		default:
			WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		}
		return
	}

	// /todos
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	}
}

type listResponse struct {
	Items []model.Todo `json:"items"`
	Count int          `json:"count"`
}

func (h *TodoHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	todos, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, listResponse{
		Items: todos,
		Count: len(todos),
	})
}

func (h *TodoHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	var req validate.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	todo, err := h.svc.Create(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) handleUpdate(w http.ResponseWriter, r *http.Request, todoID string) {
	userID := getUserID(r)

	var req validate.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	todo, err := h.svc.Update(r.Context(), userID, todoID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) handleDelete(w http.ResponseWriter, r *http.Request, todoID string) {
	userID := getUserID(r)

	if err := h.svc.Delete(r.Context(), userID, todoID); err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
}

type batchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type batchDeleteResponse struct {
	Message string       `json:"message"`
	Summary batchSummary `json:"summary"`
	Deleted []string     `json:"deleted"`
	Failed  []string     `json:"failed"`
}

// handleBatchDelete reports the per-id outcome split as a 200; a batch
// where every group failed is still a normal zero-success response.
func (h *TodoHandler) handleBatchDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}

	userID := getUserID(r)

	var req validate.BatchDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	result, err := h.svc.BatchDelete(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, batchDeleteResponse{
		Message: "Batch delete completed",
		Summary: batchSummary{
			Total:      len(result.Deleted) + len(result.Failed),
			Successful: len(result.Deleted),
			Failed:     len(result.Failed),
		},
		Deleted: result.Deleted,
		Failed:  result.Failed,
	})
}

func getUserID(r *http.Request) string {
	return middleware.GetUserID(r)
}

func handleServiceError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error())
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "todo not found")
	default:
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
