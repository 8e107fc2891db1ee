package rest

import (
	"net/http"

	musicdomain "github.com/aashu-app/aashu/internal/music/domain"
	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/httpx"
	"github.com/aashu-app/aashu/internal/platform/requestctx"
)

func (h *Handler) handleMusicCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTracks(w, r, "")
	case http.MethodPost:
		h.createTrack(w, r)
	default:
		httpx.MethodNotAllowed("GET, POST")(w, r)
	}
}

func (h *Handler) handleMusicPath(w http.ResponseWriter, r *http.Request) {
	parts := splitPathParts(r.URL.Path[len("/api/music/"):])
	switch {
	case len(parts) == 2 && parts[0] == "category":
		if r.Method != http.MethodGet {
			httpx.MethodNotAllowed(http.MethodGet)(w, r)
			return
		}
		h.listTracks(w, r, musicdomain.Category(parts[1]))
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.getTrack(w, r, parts[0])
		case http.MethodPut:
			h.updateTrack(w, r, parts[0])
		case http.MethodDelete:
			h.deleteTrack(w, r, parts[0])
		default:
			httpx.MethodNotAllowed("GET, PUT, DELETE")(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) createTrack(w http.ResponseWriter, r *http.Request) {
	var request createTrackRequest
	if err := httpx.DecodeJSON(r, &request); err != nil {
		httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode track body", err))
		return
	}
	track, err := h.music.Create(r.Context(), requestctx.IsAdmin(r.Context()), request.toInput())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toTrackPayload(track))
}

func (h *Handler) listTracks(w http.ResponseWriter, r *http.Request, category musicdomain.Category) {
	tracks, err := h.music.List(r.Context(), category)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeList(w, len(tracks), toTrackPayloads(tracks))
}

func (h *Handler) getTrack(w http.ResponseWriter, r *http.Request, trackID string) {
	track, err := h.music.Get(r.Context(), trackID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toTrackPayload(track))
}

func (h *Handler) updateTrack(w http.ResponseWriter, r *http.Request, trackID string) {
	var request updateTrackRequest
	if err := httpx.DecodeJSON(r, &request); err != nil {
		httpx.WriteError(w, r, apperrors.Wrap(apperrors.CodeInvalidPayload, "decode track body", err))
		return
	}
	track, err := h.music.Update(r.Context(), requestctx.IsAdmin(r.Context()), trackID, request.toPatch())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toTrackPayload(track))
}

func (h *Handler) deleteTrack(w http.ResponseWriter, r *http.Request, trackID string) {
	if err := h.music.Delete(r.Context(), requestctx.IsAdmin(r.Context()), trackID); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	writeDeleted(w)
}
