package rest

import (
	"net/http"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/httpx"
	"github.com/aashu-app/aashu/internal/platform/requestctx"
	"github.com/aashu-app/aashu/internal/storage"
	taskdomain "github.com/aashu-app/aashu/internal/tasks/domain"
)

func (h *Handler) handleTasksCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTasks(w, r)
	case http.MethodPost:
		h.createTask(w, r)
	default:
		httpx.MethodNotAllowed("GET, POST")(w, r)
	}
}

func (h *Handler) handleTasksPath(w http.ResponseWriter, r *http.Request) {
	parts := splitPathParts(r.URL.Path[len("/api/tasks/"):])
	switch {
	case len(parts) == 2 && parts[0] == "date":
		if r.Method != http.MethodGet {
			httpx.MethodNotAllowed(http.MethodGet)(w, r)
			return
		}
		h.listTasksByDate(w, r, parts[1])
	case len(parts) == 2 && parts[0] == "status":
		if r.Method != http.MethodGet {
			httpx.MethodNotAllowed(http.MethodGet)(w, r)
			return
		}
		h.listTasksByStatus(w, r, parts[1])
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.getTask(w, r, parts[0])
		case http.MethodPut:
			h.updateTask(w, r, parts[0])
		case http.MethodDelete:
			h.deleteTask(w, r, parts[0])
		default:
			httpx.MethodNotAllowed("GET, PUT, DELETE")(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var request createTaskRequest
	if err := httpx.DecodeJSON(r, &request); err != nil {
		httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode task body", err))
		return
	}
	userID := requestctx.UserIDFromContext(r.Context())
	task, err := h.tasks.Create(r.Context(), userID, request.toInput())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toTaskPayload(task))
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID := requestctx.UserIDFromContext(r.Context())
	query := r.URL.Query()
	filter := storage.TaskFilter{
		Status:   taskdomain.Status(query.Get("status")),
		Priority: taskdomain.Priority(query.Get("priority")),
		Category: query.Get("category"),
	}
	tasks, err := h.tasks.List(r.Context(), userID, filter)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(tasks), toTaskPayloads(tasks))
}

func (h *Handler) listTasksByDate(w http.ResponseWriter, r *http.Request, segment string) {
	userID := requestctx.UserIDFromContext(r.Context())
	dayStart, err := parseTimeSegment(segment)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	tasks, err := h.tasks.ListByDay(r.Context(), userID, dayStart)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(tasks), toTaskPayloads(tasks))
}

func (h *Handler) listTasksByStatus(w http.ResponseWriter, r *http.Request, status string) {
	userID := requestctx.UserIDFromContext(r.Context())
	tasks, err := h.tasks.List(r.Context(), userID, storage.TaskFilter{Status: taskdomain.Status(status)})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(tasks), toTaskPayloads(tasks))
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request, taskID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	task, err := h.tasks.Get(r.Context(), userID, taskID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toTaskPayload(task))
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request, taskID string) {
	var request updateTaskRequest
	if err := httpx.DecodeJSON(r, &request); err != nil {
		httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode task body", err))
		return
	}
	userID := requestctx.UserIDFromContext(r.Context())
	task, err := h.tasks.Update(r.Context(), userID, taskID, request.toPatch())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toTaskPayload(task))
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request, taskID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	if err := h.tasks.Delete(r.Context(), userID, taskID); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeDeleted(w)
}
