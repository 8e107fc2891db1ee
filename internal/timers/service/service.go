// Package service implements timer preset and timer session operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aashu-app/aashu/internal/guard"
	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/id"
	"github.com/aashu-app/aashu/internal/storage"
	domain "github.com/aashu-app/aashu/internal/timers/domain"
)

// Store bundles the timer and session persistence the service needs.
type Store interface {
	storage.TimerStore
	storage.TimerSessionStore
}

// Service exposes the timer preset and session operations.
type Service struct {
	store Store
	clock func() time.Time
	newID func() (string, error)
}

// NewService creates a timer service backed by timer and session storage.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		clock: time.Now,
		newID: id.NewID,
	}
}

// Create validates and persists a new timer preset owned by userID.
func (s *Service) Create(ctx context.Context, userID string, input domain.CreateTimerInput) (domain.Timer, error) {
	if s == nil || s.store == nil {
		return domain.Timer{}, fmt.Errorf("timer store is not configured")
	}
	input.UserID = userID
	timer, err := domain.CreateTimer(input, s.clock, s.newID)
	if err != nil {
		return domain.Timer{}, err
	}
	if err := s.store.CreateTimer(ctx, timer); err != nil {
		return domain.Timer{}, mapTimerStoreError("create timer", err)
	}
	return timer, nil
}

// Get returns one timer preset owned by userID.
func (s *Service) Get(ctx context.Context, userID, timerID string) (domain.Timer, error) {
	if s == nil || s.store == nil {
		return domain.Timer{}, fmt.Errorf("timer store is not configured")
	}
	timer, err := s.store.GetTimer(ctx, userID, timerID)
	if err != nil {
		return domain.Timer{}, mapTimerStoreError("get timer", err)
	}
	return timer, nil
}

// List returns the user's timer presets.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Timer, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("timer store is not configured")
	}
	timers, err := s.store.ListTimers(ctx, userID)
	if err != nil {
		return nil, mapTimerStoreError("list timers", err)
	}
	return timers, nil
}

// Update applies a partial update to a timer preset owned by userID.
func (s *Service) Update(ctx context.Context, userID, timerID string, patch domain.Patch) (domain.Timer, error) {
	if s == nil || s.store == nil {
		return domain.Timer{}, fmt.Errorf("timer store is not configured")
	}
	timer, err := s.store.GetTimer(ctx, userID, timerID)
	if err != nil {
		return domain.Timer{}, mapTimerStoreError("get timer", err)
	}
	if err := guard.Authorize(timer.UserID, userID, "timers.update"); err != nil {
		return domain.Timer{}, err
	}
	updated, err := timer.ApplyPatch(patch, s.clock)
	if err != nil {
		return domain.Timer{}, err
	}
	if err := s.store.UpdateTimer(ctx, updated); err != nil {
		return domain.Timer{}, mapTimerStoreError("update timer", err)
	}
	return updated, nil
}

// Delete removes a timer preset. Sessions already started from the
// preset survive it.
func (s *Service) Delete(ctx context.Context, userID, timerID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("timer store is not configured")
	}
	if err := s.store.DeleteTimer(ctx, userID, timerID); err != nil {
		return mapTimerStoreError("delete timer", err)
	}
	return nil
}

// StartSession begins a session against a timer preset the user owns.
func (s *Service) StartSession(ctx context.Context, userID, timerID string) (storage.SessionWithTimer, error) {
	if s == nil || s.store == nil {
		return storage.SessionWithTimer{}, fmt.Errorf("timer store is not configured")
	}
	timer, err := s.store.GetTimer(ctx, userID, timerID)
	if err != nil {
		return storage.SessionWithTimer{}, mapTimerStoreError("start session", err)
	}
	session, err := domain.StartSession(domain.StartSessionInput{UserID: userID, TimerID: timer.ID}, s.clock, s.newID)
	if err != nil {
		return storage.SessionWithTimer{}, err
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return storage.SessionWithTimer{}, mapSessionStoreError("start session", err)
	}
	return storage.SessionWithTimer{Session: session, Timer: &timer}, nil
}

// GetSession returns one session with its parent timer expanded.
func (s *Service) GetSession(ctx context.Context, userID, sessionID string) (storage.SessionWithTimer, error) {
	if s == nil || s.store == nil {
		return storage.SessionWithTimer{}, fmt.Errorf("timer store is not configured")
	}
	record, err := s.store.GetSession(ctx, userID, sessionID)
	if err != nil {
		return storage.SessionWithTimer{}, mapSessionStoreError("get session", err)
	}
	return record, nil
}

// ListSessions returns the user's sessions, most recently started first.
func (s *Service) ListSessions(ctx context.Context, userID string) ([]storage.SessionWithTimer, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("timer store is not configured")
	}
	sessions, err := s.store.ListSessions(ctx, userID)
	if err != nil {
		return nil, mapSessionStoreError("list sessions", err)
	}
	return sessions, nil
}

// ListSessionsRange returns sessions started inside the inclusive window.
func (s *Service) ListSessionsRange(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]storage.SessionWithTimer, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("timer store is not configured")
	}
	if windowEnd.Before(windowStart) {
		return nil, apperrors.New(apperrors.CodeRangeInvalid, "range end must not precede range start")
	}
	sessions, err := s.store.ListSessionsInRange(ctx, userID, windowStart.UTC(), windowEnd.UTC())
	if err != nil {
		return nil, mapSessionStoreError("list sessions in range", err)
	}
	return sessions, nil
}

// CompleteSession marks a session finished at the current time. A session
// can be completed once; repeating the call reports a conflict.
func (s *Service) CompleteSession(ctx context.Context, userID, sessionID string, notes *string) (domain.Session, error) {
	if s == nil || s.store == nil {
		return domain.Session{}, fmt.Errorf("timer store is not configured")
	}
	session, err := s.store.CompleteSession(ctx, userID, sessionID, s.clock().UTC(), notes)
	if err != nil {
		return domain.Session{}, mapSessionStoreError("complete session", err)
	}
	return session, nil
}

// DeleteSession removes a session owned by userID.
func (s *Service) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("timer store is not configured")
	}
	if err := s.store.DeleteSession(ctx, userID, sessionID); err != nil {
		return mapSessionStoreError("delete session", err)
	}
	return nil
}

func mapTimerStoreError(operation string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.New(apperrors.CodeNotFound, "timer not found")
	case errors.Is(err, storage.ErrNotOwned):
		return apperrors.WithMetadata(apperrors.CodeOwnershipDenied, "resource belongs to another user", map[string]string{"operation": operation})
	default:
		return apperrors.Wrap(apperrors.CodeUnknown, operation, err)
	}
}

func mapSessionStoreError(operation string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.New(apperrors.CodeNotFound, "session not found")
	case errors.Is(err, storage.ErrNotOwned):
		return apperrors.WithMetadata(apperrors.CodeOwnershipDenied, "resource belongs to another user", map[string]string{"operation": operation})
	case errors.Is(err, storage.ErrAlreadyCompleted):
		return apperrors.New(apperrors.CodeSessionAlreadyCompleted, "session is already completed")
	default:
		return apperrors.Wrap(apperrors.CodeUnknown, operation, err)
	}
}
