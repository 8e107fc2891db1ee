// Package service implements task operations on top of task storage.
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
	domain "github.com/aashu-app/aashu/internal/tasks/domain"
)

// Service exposes the task operations.
type Service struct {
	store storage.TaskStore
	clock func() time.Time
	newID func() (string, error)
}

// NewService creates a task service backed by task storage.
func NewService(store storage.TaskStore) *Service {
	return &Service{
		store: store,
		clock: time.Now,
		newID: id.NewID,
	}
}

// Create validates and persists a new task owned by userID.
func (s *Service) Create(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	if s == nil || s.store == nil {
		return domain.Task{}, fmt.Errorf("task store is not configured")
	}
	input.UserID = userID
	task, err := domain.CreateTask(input, s.clock, s.newID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		return domain.Task{}, mapStoreError("create task", err)
	}
	return task, nil
}

// Get returns one task owned by userID.
func (s *Service) Get(ctx context.Context, userID, taskID string) (domain.Task, error) {
	if s == nil || s.store == nil {
		return domain.Task{}, fmt.Errorf("task store is not configured")
	}
	task, err := s.store.GetTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, mapStoreError("get task", err)
	}
	return task, nil
}

// List returns the user's tasks narrowed by the filter.
func (s *Service) List(ctx context.Context, userID string, filter storage.TaskFilter) ([]domain.Task, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("task store is not configured")
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.New(apperrors.CodeTaskInvalidStatus, "invalid task status filter")
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, apperrors.New(apperrors.CodeTaskInvalidPriority, "invalid task priority filter")
	}
	tasks, err := s.store.ListTasks(ctx, userID, filter)
	if err != nil {
		return nil, mapStoreError("list tasks", err)
	}
	return tasks, nil
}

// ListByDay returns tasks whose due date or start time falls on the day
// beginning at dayStart.
func (s *Service) ListByDay(ctx context.Context, userID string, dayStart time.Time) ([]domain.Task, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("task store is not configured")
	}
	tasks, err := s.store.ListTasksByDay(ctx, userID, dayStart.UTC())
	if err != nil {
		return nil, mapStoreError("list tasks by day", err)
	}
	return tasks, nil
}

// Update applies a partial update to a task owned by userID.
func (s *Service) Update(ctx context.Context, userID, taskID string, patch domain.Patch) (domain.Task, error) {
	if s == nil || s.store == nil {
		return domain.Task{}, fmt.Errorf("task store is not configured")
	}
	task, err := s.store.GetTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, mapStoreError("get task", err)
	}
	if err := guard.Authorize(task.UserID, userID, "tasks.update"); err != nil {
		return domain.Task{}, err
	}
	updated, err := task.ApplyPatch(patch, s.clock)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.store.UpdateTask(ctx, updated); err != nil {
		return domain.Task{}, mapStoreError("update task", err)
	}
	return updated, nil
}

// Delete removes a task owned by userID.
func (s *Service) Delete(ctx context.Context, userID, taskID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("task store is not configured")
	}
	if err := s.store.DeleteTask(ctx, userID, taskID); err != nil {
		return mapStoreError("delete task", err)
	}
	return nil
}

func mapStoreError(operation string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.New(apperrors.CodeNotFound, "task not found")
	case errors.Is(err, storage.ErrNotOwned):
		return apperrors.WithMetadata(apperrors.CodeOwnershipDenied, "resource belongs to another user", map[string]string{"operation": operation})
	default:
		return apperrors.Wrap(apperrors.CodeUnknown, operation, err)
	}
}
