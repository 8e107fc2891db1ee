// Package domain defines the task entity and its validation rules.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/id"
)

// Status describes the lifecycle state of a task.
type Status string

const (
	// StatusPending indicates a task that still needs doing.
	StatusPending Status = "pending"
	// StatusCompleted indicates a finished task.
	StatusCompleted Status = "completed"
	// StatusCancelled indicates an abandoned task.
	StatusCancelled Status = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Priority describes the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Defaults applied when a create request leaves the field empty.
const (
	DefaultCategory = "personal"
	DefaultColor    = "#6750A4"
)

// Task is one planned item of work owned by a single user.
type Task struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	Status          Status
	Priority        Priority
	DueDate         *time.Time
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes int
	IsAllDay        bool
	Category        string
	Color           string
	Icon            string
	ReminderTime    *time.Time
	RepeatPattern   string
	Tags            []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateTaskInput describes the fields accepted when creating a task.
type CreateTaskInput struct {
	UserID          string
	Title           string
	Description     string
	Status          Status
	Priority        Priority
	DueDate         *time.Time
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes int
	IsAllDay        bool
	Category        string
	Color           string
	Icon            string
	ReminderTime    *time.Time
	RepeatPattern   string
	Tags            []string
}

// CreateTask creates a task with a generated ID, server-side timestamps, and
// defaults for omitted fields.
func CreateTask(input CreateTaskInput, now func() time.Time, idGenerator func() (string, error)) (Task, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Task{}, apperrors.New(apperrors.CodeTaskTitleEmpty, "task title is required")
	}
	if input.Status == "" {
		input.Status = StatusPending
	}
	if !input.Status.Valid() {
		return Task{}, apperrors.WithMetadata(apperrors.CodeTaskInvalidStatus, "invalid task status", map[string]string{"status": string(input.Status)})
	}
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if !input.Priority.Valid() {
		return Task{}, apperrors.WithMetadata(apperrors.CodeTaskInvalidPriority, "invalid task priority", map[string]string{"priority": string(input.Priority)})
	}
	if strings.TrimSpace(input.Category) == "" {
		input.Category = DefaultCategory
	}
	if strings.TrimSpace(input.Color) == "" {
		input.Color = DefaultColor
	}

	taskID, err := idGenerator()
	if err != nil {
		return Task{}, apperrors.Wrap(apperrors.CodeUnknown, "generate task id", err)
	}

	createdAt := now().UTC()
	return Task{
		ID:              taskID,
		UserID:          input.UserID,
		Title:           input.Title,
		Description:     strings.TrimSpace(input.Description),
		Status:          input.Status,
		Priority:        input.Priority,
		DueDate:         normalizeTime(input.DueDate),
		StartTime:       normalizeTime(input.StartTime),
		EndTime:         normalizeTime(input.EndTime),
		DurationMinutes: input.DurationMinutes,
		IsAllDay:        input.IsAllDay,
		Category:        strings.TrimSpace(input.Category),
		Color:           strings.TrimSpace(input.Color),
		Icon:            strings.TrimSpace(input.Icon),
		ReminderTime:    normalizeTime(input.ReminderTime),
		RepeatPattern:   strings.TrimSpace(input.RepeatPattern),
		Tags:            input.Tags,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}, nil
}

// Patch describes a partial update. Nil fields are left untouched. Owner and
// creation metadata are never patchable.
type Patch struct {
	Title           *string
	Description     *string
	Status          *Status
	Priority        *Priority
	DueDate         *time.Time
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes *int
	IsAllDay        *bool
	Category        *string
	Color           *string
	Icon            *string
	ReminderTime    *time.Time
	RepeatPattern   *string
	Tags            []string
}

// ApplyPatch returns a copy of the task with the patch applied and the
// updated-at timestamp refreshed.
func (t Task) ApplyPatch(patch Patch, now func() time.Time) (Task, error) {
	if now == nil {
		now = time.Now
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Task{}, apperrors.New(apperrors.CodeTaskTitleEmpty, "task title is required")
		}
		t.Title = title
	}
	if patch.Description != nil {
		t.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return Task{}, apperrors.WithMetadata(apperrors.CodeTaskInvalidStatus, "invalid task status", map[string]string{"status": string(*patch.Status)})
		}
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return Task{}, apperrors.WithMetadata(apperrors.CodeTaskInvalidPriority, "invalid task priority", map[string]string{"priority": string(*patch.Priority)})
		}
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = normalizeTime(patch.DueDate)
	}
	if patch.StartTime != nil {
		t.StartTime = normalizeTime(patch.StartTime)
	}
	if patch.EndTime != nil {
		t.EndTime = normalizeTime(patch.EndTime)
	}
	if patch.DurationMinutes != nil {
		t.DurationMinutes = *patch.DurationMinutes
	}
	if patch.IsAllDay != nil {
		t.IsAllDay = *patch.IsAllDay
	}
	if patch.Category != nil {
		t.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Color != nil {
		t.Color = strings.TrimSpace(*patch.Color)
	}
	if patch.Icon != nil {
		t.Icon = strings.TrimSpace(*patch.Icon)
	}
	if patch.ReminderTime != nil {
		t.ReminderTime = normalizeTime(patch.ReminderTime)
	}
	if patch.RepeatPattern != nil {
		t.RepeatPattern = strings.TrimSpace(*patch.RepeatPattern)
	}
	if patch.Tags != nil {
		t.Tags = patch.Tags
	}
	t.UpdatedAt = now().UTC()
	return t, nil
}

// MatchesDay reports whether the task belongs to the day starting at
// dayStart. The window is half-open: [dayStart, dayStart+24h). A task matches
// when either its due date or its start time falls inside the window.
func (t Task) MatchesDay(dayStart time.Time) bool {
	dayEnd := dayStart.Add(24 * time.Hour)
	inWindow := func(value *time.Time) bool {
		if value == nil {
			return false
		}
		return !value.Before(dayStart) && value.Before(dayEnd)
	}
	return inWindow(t.DueDate) || inWindow(t.StartTime)
}

func normalizeTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}
