// Package storage defines the persistence interfaces for the planning
// collections. Implementations scope every query to the owning user so
// handlers never see another user's records.
package storage

import (
	"context"
	"errors"
	"time"

	eventdomain "github.com/aashu-app/aashu/internal/events/domain"
	musicdomain "github.com/aashu-app/aashu/internal/music/domain"
	taskdomain "github.com/aashu-app/aashu/internal/tasks/domain"
	timerdomain "github.com/aashu-app/aashu/internal/timers/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrNotOwned indicates the record exists but belongs to another user.
var ErrNotOwned = errors.New("record owned by another user")

// ErrAlreadyCompleted indicates a timer session was already marked complete.
var ErrAlreadyCompleted = errors.New("session already completed")

// TaskFilter narrows task listings. Zero values mean "no constraint".
type TaskFilter struct {
	Status   taskdomain.Status
	Priority taskdomain.Priority
	Category string
}

// TaskStore persists per-user tasks.
type TaskStore interface {
	CreateTask(ctx context.Context, task taskdomain.Task) error
	GetTask(ctx context.Context, userID, id string) (taskdomain.Task, error)
	ListTasks(ctx context.Context, userID string, filter TaskFilter) ([]taskdomain.Task, error)
	ListTasksByDay(ctx context.Context, userID string, dayStart time.Time) ([]taskdomain.Task, error)
	UpdateTask(ctx context.Context, task taskdomain.Task) error
	DeleteTask(ctx context.Context, userID, id string) error
}

// EventStore persists per-user calendar events.
type EventStore interface {
	CreateEvent(ctx context.Context, event eventdomain.Event) error
	GetEvent(ctx context.Context, userID, id string) (eventdomain.Event, error)
	ListEvents(ctx context.Context, userID string) ([]eventdomain.Event, error)
	ListEventsInRange(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]eventdomain.Event, error)
	UpdateEvent(ctx context.Context, event eventdomain.Event) error
	DeleteEvent(ctx context.Context, userID, id string) error
}

// TimerStore persists per-user timer presets.
type TimerStore interface {
	CreateTimer(ctx context.Context, timer timerdomain.Timer) error
	GetTimer(ctx context.Context, userID, id string) (timerdomain.Timer, error)
	ListTimers(ctx context.Context, userID string) ([]timerdomain.Timer, error)
	UpdateTimer(ctx context.Context, timer timerdomain.Timer) error
	DeleteTimer(ctx context.Context, userID, id string) error
}

// SessionWithTimer pairs a session with its parent timer when the timer
// still exists. Timer is nil when the preset was deleted after the
// session started.
type SessionWithTimer struct {
	Session timerdomain.Session
	Timer   *timerdomain.Timer
}

// TimerSessionStore persists timer session records.
type TimerSessionStore interface {
	CreateSession(ctx context.Context, session timerdomain.Session) error
	GetSession(ctx context.Context, userID, id string) (SessionWithTimer, error)
	ListSessions(ctx context.Context, userID string) ([]SessionWithTimer, error)
	ListSessionsInRange(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]SessionWithTimer, error)
	// CompleteSession marks the session finished at endTime. It returns
	// ErrAlreadyCompleted when the session was completed before, and
	// ErrNotFound / ErrNotOwned when the record is missing or foreign.
	CompleteSession(ctx context.Context, userID, id string, endTime time.Time, notes *string) (timerdomain.Session, error)
	DeleteSession(ctx context.Context, userID, id string) error
}

// MusicStore persists the shared music catalog.
type MusicStore interface {
	CreateTrack(ctx context.Context, track musicdomain.Track) error
	GetTrack(ctx context.Context, id string) (musicdomain.Track, error)
	ListTracks(ctx context.Context, category musicdomain.Category) ([]musicdomain.Track, error)
	UpdateTrack(ctx context.Context, track musicdomain.Track) error
	DeleteTrack(ctx context.Context, id string) error
	CountTracks(ctx context.Context) (int, error)
}

// Store aggregates every collection behind one handle.
type Store interface {
	TaskStore
	EventStore
	TimerStore
	TimerSessionStore
	MusicStore
	Close() error
}
