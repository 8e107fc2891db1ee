// Package rest exposes the planning API over HTTP. Routes follow the
// /api/{collection} layout with path-segment dispatch for item routes.
package rest

import (
	"net/http"

	eventservice "github.com/aashu-app/aashu/internal/events/service"
	musicservice "github.com/aashu-app/aashu/internal/music/service"
	"github.com/aashu-app/aashu/internal/platform/httpx"
	taskservice "github.com/aashu-app/aashu/internal/tasks/service"
	timerservice "github.com/aashu-app/aashu/internal/timers/service"
)

// Handler carries the services behind the REST routes.
type Handler struct {
	tasks     *taskservice.Service
	events    *eventservice.Service
	timers    *timerservice.Service
	music     *musicservice.Service
	jwtSecret []byte
}

// New creates a REST handler over the planning services.
func New(tasks *taskservice.Service, events *eventservice.Service, timers *timerservice.Service, music *musicservice.Service, jwtSecret []byte) *Handler {
	return &Handler{
		tasks:     tasks,
		events:    events,
		timers:    timers,
		music:     music,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes wires the API routes into the provided mux. Collection
// routes sit behind the bearer-token middleware; the root and liveness
// routes stay open.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	if mux == nil || h == nil {
		return
	}
	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/up", h.handleUp)
	mux.Handle("/api/tasks", h.authenticate(http.HandlerFunc(h.handleTasksCollection)))
	mux.Handle("/api/tasks/", h.authenticate(http.HandlerFunc(h.handleTasksPath)))
	mux.Handle("/api/events", h.authenticate(http.HandlerFunc(h.handleEventsCollection)))
	mux.Handle("/api/events/", h.authenticate(http.HandlerFunc(h.handleEventsPath)))
	mux.Handle("/api/timers", h.authenticate(http.HandlerFunc(h.handleTimersCollection)))
	mux.Handle("/api/timers/", h.authenticate(http.HandlerFunc(h.handleTimersPath)))
	mux.Handle("/api/music", h.authenticate(http.HandlerFunc(h.handleMusicCollection)))
	mux.Handle("/api/music/", h.authenticate(http.HandlerFunc(h.handleMusicPath)))
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		httpx.MethodNotAllowed(http.MethodGet)(w, r)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]string{
			"name":   "aashu api",
			"status": "ok",
		},
	})
}

func (h *Handler) handleUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpx.MethodNotAllowed(http.MethodGet)(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
}
