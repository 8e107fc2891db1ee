package domain

import (
	"strings"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/id"
)

// Session is one timed run of a timer preset. A session is created active
// and transitions to completed exactly once; it is never deleted by normal
// flow, and it outlives its parent timer.
type Session struct {
	ID        string
	UserID    string
	TimerID   string
	StartTime time.Time
	EndTime   *time.Time // nil while the session is active
	Completed bool
	Notes     string
	CreatedAt time.Time
}

// StartSessionInput describes the metadata needed to start a session.
type StartSessionInput struct {
	UserID  string
	TimerID string
}

// StartSession creates an active session with a generated ID. The caller is
// responsible for verifying the parent timer exists and is owned by the
// requester before starting.
func StartSession(input StartSessionInput, now func() time.Time, idGenerator func() (string, error)) (Session, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.TimerID = strings.TrimSpace(input.TimerID)
	if input.TimerID == "" {
		return Session{}, apperrors.New(apperrors.CodeSessionEmptyTimerID, "timer id is required")
	}

	sessionID, err := idGenerator()
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeUnknown, "generate session id", err)
	}

	startedAt := now().UTC()
	return Session{
		ID:        sessionID,
		UserID:    input.UserID,
		TimerID:   input.TimerID,
		StartTime: startedAt,
		EndTime:   nil,
		Completed: false,
		Notes:     "",
		CreatedAt: startedAt,
	}, nil
}

// StartedWithin reports whether the session's start time falls inside
// [windowStart, windowEnd]. Both bounds are inclusive; only the start time is
// considered, never the end time.
func (s Session) StartedWithin(windowStart, windowEnd time.Time) bool {
	return !s.StartTime.Before(windowStart) && !s.StartTime.After(windowEnd)
}
