package rest

import (
	"net/http"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/httpx"
	"github.com/aashu-app/aashu/internal/platform/requestctx"
	"github.com/aashu-app/aashu/internal/storage"
)

func (h *Handler) handleTimersCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTimers(w, r)
	case http.MethodPost:
		h.createTimer(w, r)
	default:
		httpx.MethodNotAllowed("GET, POST")(w, r)
	}
}

func (h *Handler) handleTimersPath(w http.ResponseWriter, r *http.Request) {
	parts := splitPathParts(r.URL.Path[len("/api/timers/"):])
	switch {
	case len(parts) == 1 && parts[0] == "sessions":
		if r.Method != http.MethodGet {
			httpx.MethodNotAllowed(http.MethodGet)(w, r)
			return
		}
		h.listSessions(w, r)
	case len(parts) == 4 && parts[0] == "sessions" && parts[1] == "range":
		if r.Method != http.MethodGet {
			httpx.MethodNotAllowed(http.MethodGet)(w, r)
			return
		}
		h.listSessionsRange(w, r, parts[2], parts[3])
	case len(parts) == 3 && parts[0] == "sessions" && parts[2] == "complete":
		if r.Method != http.MethodPut {
			httpx.MethodNotAllowed(http.MethodPut)(w, r)
			return
		}
		h.completeSession(w, r, parts[1])
	case len(parts) == 2 && parts[0] == "sessions":
		switch r.Method {
		case http.MethodGet:
			h.getSession(w, r, parts[1])
		case http.MethodDelete:
			h.deleteSession(w, r, parts[1])
		default:
			httpx.MethodNotAllowed("GET, DELETE")(w, r)
		}
	case len(parts) == 2 && parts[1] == "start":
		if r.Method != http.MethodPost {
			httpx.MethodNotAllowed(http.MethodPost)(w, r)
			return
		}
		h.startSession(w, r, parts[0])
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.getTimer(w, r, parts[0])
		case http.MethodPut:
			h.updateTimer(w, r, parts[0])
		case http.MethodDelete:
			h.deleteTimer(w, r, parts[0])
		default:
			httpx.MethodNotAllowed("GET, PUT, DELETE")(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) createTimer(w http.ResponseWriter, r *http.Request) {
	var request createTimerRequest
	if err := httpx.DecodeJSON(r, &request); err != nil {
		httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode timer body", err))
		return
	}
	userID := requestctx.UserIDFromContext(r.Context())
	timer, err := h.timers.Create(r.Context(), userID, request.toInput())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toTimerPayload(timer))
}

func (h *Handler) listTimers(w http.ResponseWriter, r *http.Request) {
	userID := requestctx.UserIDFromContext(r.Context())
	timers, err := h.timers.List(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(timers), toTimerPayloads(timers))
}

func (h *Handler) getTimer(w http.ResponseWriter, r *http.Request, timerID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	timer, err := h.timers.Get(r.Context(), userID, timerID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toTimerPayload(timer))
}

func (h *Handler) updateTimer(w http.ResponseWriter, r *http.Request, timerID string) {
	var request updateTimerRequest
	if err := httpx.DecodeJSON(r, &request); err != nil {
		httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode timer body", err))
		return
	}
	userID := requestctx.UserIDFromContext(r.Context())
	timer, err := h.timers.Update(r.Context(), userID, timerID, request.toPatch())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toTimerPayload(timer))
}

func (h *Handler) deleteTimer(w http.ResponseWriter, r *http.Request, timerID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	if err := h.timers.Delete(r.Context(), userID, timerID); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeDeleted(w)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, timerID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	record, err := h.timers.StartSession(r.Context(), userID, timerID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toSessionPayload(record))
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	userID := requestctx.UserIDFromContext(r.Context())
	sessions, err := h.timers.ListSessions(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(sessions), toSessionPayloads(sessions))
}

func (h *Handler) listSessionsRange(w http.ResponseWriter, r *http.Request, startSegment, endSegment string) {
	userID := requestctx.UserIDFromContext(r.Context())
	windowStart, err := parseTimeSegment(startSegment)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	windowEnd, err := parseTimeSegment(endSegment)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	sessions, err := h.timers.ListSessionsRange(r.Context(), userID, windowStart, windowEnd)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(sessions), toSessionPayloads(sessions))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	record, err := h.timers.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toSessionPayload(record))
}

func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	var request completeSessionRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &request); err != nil {
			httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode session body", err))
			return
		}
	}
	userID := requestctx.UserIDFromContext(r.Context())
	session, err := h.timers.CompleteSession(r.Context(), userID, sessionID, request.Notes)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toSessionPayload(storage.SessionWithTimer{Session: session}))
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	if err := h.timers.DeleteSession(r.Context(), userID, sessionID); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeDeleted(w)
}
