package rest

import (
	"net/http"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/httpx"
	"github.com/aashu-app/aashu/internal/platform/requestctx"
)

func (h *Handler) handleEventsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listEvents(w, r)
	case http.MethodPost:
		h.createEvent(w, r)
	default:
		httpx.MethodNotAllowed("GET, POST")(w, r)
	}
}

func (h *Handler) handleEventsPath(w http.ResponseWriter, r *http.Request) {
	parts := splitPathParts(r.URL.Path[len("/api/events/"):])
	switch {
	case len(parts) == 3 && parts[0] == "range":
		if r.Method != http.MethodGet {
			httpx.MethodNotAllowed(http.MethodGet)(w, r)
			return
		}
		h.listEventsRange(w, r, parts[1], parts[2])
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.getEvent(w, r, parts[0])
		case http.MethodPut:
			h.updateEvent(w, r, parts[0])
		case http.MethodDelete:
			h.deleteEvent(w, r, parts[0])
		default:
			httpx.MethodNotAllowed("GET, PUT, DELETE")(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var request createEventRequest
	if err := httpx.DecodeJSON(r, &request); err != nil {
		httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode event body", err))
		return
	}
	userID := requestctx.UserIDFromContext(r.Context())
	event, err := h.events.Create(r.Context(), userID, request.toInput())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toEventPayload(event))
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	userID := requestctx.UserIDFromContext(r.Context())
	events, err := h.events.List(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(events), toEventPayloads(events))
}

func (h *Handler) listEventsRange(w http.ResponseWriter, r *http.Request, startSegment, endSegment string) {
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
	events, err := h.events.ListRange(r.Context(), userID, windowStart, windowEnd)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(events), toEventPayloads(events))
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request, eventID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	event, err := h.events.Get(r.Context(), userID, eventID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toEventPayload(event))
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request, eventID string) {
	var request updateEventRequest
	if err := httpx.DecodeJSON(r, &request); err != nil {
		httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode event body", err))
		return
	}
	userID := requestctx.UserIDFromContext(r.Context())
	event, err := h.events.Update(r.Context(), userID, eventID, request.toPatch())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toEventPayload(event))
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request, eventID string) {
	userID := requestctx.UserIDFromContext(r.Context())
	if err := h.events.Delete(r.Context(), userID, eventID); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeDeleted(w)
}
