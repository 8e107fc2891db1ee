// Package service implements calendar event operations on top of event
// storage.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/aashu-app/aashu/internal/events/domain"
	"github.com/aashu-app/aashu/internal/guard"
	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/id"
	"github.com/aashu-app/aashu/internal/storage"
)

// Service exposes the calendar event operations.
type Service struct {
	store storage.EventStore
	clock func() time.Time
	newID func() (string, error)
}

// NewService creates an event service backed by event storage.
func NewService(store storage.EventStore) *Service {
	return &Service{
		store: store,
		clock: time.Now,
		newID: id.NewID,
	}
}

// Create validates and persists a new event owned by userID.
func (s *Service) Create(ctx context.Context, userID string, input domain.CreateEventInput) (domain.Event, error) {
	if s == nil || s.store == nil {
		return domain.Event{}, fmt.Errorf("event store is not configured")
	}
	input.UserID = userID
	event, err := domain.CreateEvent(input, s.clock, s.newID)
	if err != nil {
		return domain.Event{}, err
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return domain.Event{}, mapStoreError("create event", err)
	}
	return event, nil
}

// Get returns one event owned by userID.
func (s *Service) Get(ctx context.Context, userID, eventID string) (domain.Event, error) {
	if s == nil || s.store == nil {
		return domain.Event{}, fmt.Errorf("event store is not configured")
	}
	event, err := s.store.GetEvent(ctx, userID, eventID)
	if err != nil {
		return domain.Event{}, mapStoreError("get event", err)
	}
	return event, nil
}

// List returns the user's events ordered by start time.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Event, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("event store is not configured")
	}
	events, err := s.store.ListEvents(ctx, userID)
	if err != nil {
		return nil, mapStoreError("list events", err)
	}
	return events, nil
}

// ListRange returns events overlapping the inclusive window.
func (s *Service) ListRange(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]domain.Event, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("event store is not configured")
	}
	if windowEnd.Before(windowStart) {
		return nil, apperrors.New(apperrors.CodeRangeInvalid, "range end must not precede range start")
	}
	events, err := s.store.ListEventsInRange(ctx, userID, windowStart.UTC(), windowEnd.UTC())
	if err != nil {
		return nil, mapStoreError("list events in range", err)
	}
	return events, nil
}

// Update applies a partial update to an event owned by userID.
func (s *Service) Update(ctx context.Context, userID, eventID string, patch domain.Patch) (domain.Event, error) {
	if s == nil || s.store == nil {
		return domain.Event{}, fmt.Errorf("event store is not configured")
	}
	event, err := s.store.GetEvent(ctx, userID, eventID)
	if err != nil {
		return domain.Event{}, mapStoreError("get event", err)
	}
	if err := guard.Authorize(event.UserID, userID, "events.update"); err != nil {
		return domain.Event{}, err
	}
	updated, err := event.ApplyPatch(patch, s.clock)
	if err != nil {
		return domain.Event{}, err
	}
	if err := s.store.UpdateEvent(ctx, updated); err != nil {
		return domain.Event{}, mapStoreError("update event", err)
	}
	return updated, nil
}

// Delete removes an event owned by userID.
func (s *Service) Delete(ctx context.Context, userID, eventID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("event store is not configured")
	}
	if err := s.store.DeleteEvent(ctx, userID, eventID); err != nil {
		return mapStoreError("delete event", err)
	}
	return nil
}

func mapStoreError(operation string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.New(apperrors.CodeNotFound, "event not found")
	case errors.Is(err, storage.ErrNotOwned):
		return apperrors.WithMetadata(apperrors.CodeOwnershipDenied, "resource belongs to another user", map[string]string{"operation": operation})
	default:
		return apperrors.Wrap(apperrors.CodeUnknown, operation, err)
	}
}
