// Package domain defines the calendar event entity and its validation rules.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/id"
)

// Frequency describes how often a recurring event repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether the frequency is one of the known values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// DefaultColor applies when a create request leaves the color empty.
const DefaultColor = "#6750A4"

// Recurrence describes the repetition pattern of a recurring event.
type Recurrence struct {
	Frequency  Frequency
	Interval   int
	DaysOfWeek []int
	EndDate    *time.Time
	Count      int
}

// Event is one calendar entry owned by a single user.
type Event struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Location     string
	Color        string
	Icon         string
	IsRecurring  bool
	Recurrence   *Recurrence
	ReminderTime *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateEventInput describes the fields accepted when creating an event.
type CreateEventInput struct {
	UserID       string
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Location     string
	Color        string
	Icon         string
	IsRecurring  bool
	Recurrence   *Recurrence
	ReminderTime *time.Time
}

// CreateEvent creates an event with a generated ID and server-side
// timestamps. Start and end are both required and end must not precede start.
func CreateEvent(input CreateEventInput, now func() time.Time, idGenerator func() (string, error)) (Event, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Event{}, apperrors.New(apperrors.CodeEventTitleEmpty, "event title is required")
	}
	if input.StartTime.IsZero() {
		return Event{}, apperrors.New(apperrors.CodeEventStartRequired, "event start time is required")
	}
	if input.EndTime.IsZero() {
		return Event{}, apperrors.New(apperrors.CodeEventEndRequired, "event end time is required")
	}
	if input.EndTime.Before(input.StartTime) {
		return Event{}, apperrors.New(apperrors.CodeEventEndBeforeStart, "event end time precedes start time")
	}
	recurrence, err := normalizeRecurrence(input.Recurrence)
	if err != nil {
		return Event{}, err
	}
	if strings.TrimSpace(input.Color) == "" {
		input.Color = DefaultColor
	}

	eventID, err := idGenerator()
	if err != nil {
		return Event{}, apperrors.Wrap(apperrors.CodeUnknown, "generate event id", err)
	}

	createdAt := now().UTC()
	return Event{
		ID:           eventID,
		UserID:       input.UserID,
		Title:        input.Title,
		Description:  strings.TrimSpace(input.Description),
		StartTime:    input.StartTime.UTC(),
		EndTime:      input.EndTime.UTC(),
		Location:     strings.TrimSpace(input.Location),
		Color:        strings.TrimSpace(input.Color),
		Icon:         strings.TrimSpace(input.Icon),
		IsRecurring:  input.IsRecurring,
		Recurrence:   recurrence,
		ReminderTime: normalizeTime(input.ReminderTime),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}, nil
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Title        *string
	Description  *string
	StartTime    *time.Time
	EndTime      *time.Time
	Location     *string
	Color        *string
	Icon         *string
	IsRecurring  *bool
	Recurrence   *Recurrence
	ReminderTime *time.Time
}

// ApplyPatch returns a copy of the event with the patch applied and the
// updated-at timestamp refreshed. The end-after-start invariant is rechecked
// against the patched interval.
func (e Event) ApplyPatch(patch Patch, now func() time.Time) (Event, error) {
	if now == nil {
		now = time.Now
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Event{}, apperrors.New(apperrors.CodeEventTitleEmpty, "event title is required")
		}
		e.Title = title
	}
	if patch.Description != nil {
		e.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.StartTime != nil {
		if patch.StartTime.IsZero() {
			return Event{}, apperrors.New(apperrors.CodeEventStartRequired, "event start time is required")
		}
		e.StartTime = patch.StartTime.UTC()
	}
	if patch.EndTime != nil {
		if patch.EndTime.IsZero() {
			return Event{}, apperrors.New(apperrors.CodeEventEndRequired, "event end time is required")
		}
		e.EndTime = patch.EndTime.UTC()
	}
	if e.EndTime.Before(e.StartTime) {
		return Event{}, apperrors.New(apperrors.CodeEventEndBeforeStart, "event end time precedes start time")
	}
	if patch.Location != nil {
		e.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Color != nil {
		e.Color = strings.TrimSpace(*patch.Color)
	}
	if patch.Icon != nil {
		e.Icon = strings.TrimSpace(*patch.Icon)
	}
	if patch.IsRecurring != nil {
		e.IsRecurring = *patch.IsRecurring
	}
	if patch.Recurrence != nil {
		recurrence, err := normalizeRecurrence(patch.Recurrence)
		if err != nil {
			return Event{}, err
		}
		e.Recurrence = recurrence
	}
	if patch.ReminderTime != nil {
		e.ReminderTime = normalizeTime(patch.ReminderTime)
	}
	e.UpdatedAt = now().UTC()
	return e, nil
}

// OverlapsRange reports whether the event intersects [windowStart, windowEnd].
// Both bounds are inclusive. An event matches when its start falls in the
// window, its end falls in the window, or it spans the entire window.
func (e Event) OverlapsRange(windowStart, windowEnd time.Time) bool {
	within := func(value time.Time) bool {
		return !value.Before(windowStart) && !value.After(windowEnd)
	}
	if within(e.StartTime) || within(e.EndTime) {
		return true
	}
	return !e.StartTime.After(windowStart) && !e.EndTime.Before(windowEnd)
}

func normalizeRecurrence(recurrence *Recurrence) (*Recurrence, error) {
	if recurrence == nil {
		return nil, nil
	}
	normalized := *recurrence
	if !normalized.Frequency.Valid() {
		return nil, apperrors.WithMetadata(apperrors.CodeEventInvalidRecurrence, "invalid recurrence frequency", map[string]string{"frequency": string(normalized.Frequency)})
	}
	if normalized.Interval <= 0 {
		normalized.Interval = 1
	}
	if normalized.EndDate != nil {
		normalized.EndDate = normalizeTime(normalized.EndDate)
	}
	return &normalized, nil
}

func normalizeTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}
