// Package domain defines timer presets and timer sessions.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/id"
)

// Kind describes what a timer preset is used for.
type Kind string

const (
	KindFocus  Kind = "focus"
	KindBreak  Kind = "break"
	KindCustom Kind = "custom"
)

// Valid reports whether the kind is one of the known values.
func (k Kind) Valid() bool {
	switch k {
	case KindFocus, KindBreak, KindCustom:
		return true
	}
	return false
}

// Defaults applied when a create request leaves the field empty.
const (
	DefaultColor = "#6750A4"
	DefaultIcon  = "🧠"
)

// Timer is a reusable countdown preset owned by a single user.
type Timer struct {
	ID              string
	UserID          string
	Name            string
	DurationMinutes int
	Kind            Kind
	Color           string
	Icon            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateTimerInput describes the fields accepted when creating a timer.
type CreateTimerInput struct {
	UserID          string
	Name            string
	DurationMinutes int
	Kind            Kind
	Color           string
	Icon            string
}

// CreateTimer creates a timer preset with a generated ID and server-side
// timestamps. Duration must be at least one minute.
func CreateTimer(input CreateTimerInput, now func() time.Time, idGenerator func() (string, error)) (Timer, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return Timer{}, apperrors.New(apperrors.CodeTimerNameEmpty, "timer name is required")
	}
	if input.DurationMinutes < 1 {
		return Timer{}, apperrors.New(apperrors.CodeTimerInvalidDuration, "timer duration must be at least one minute")
	}
	if input.Kind == "" {
		input.Kind = KindFocus
	}
	if !input.Kind.Valid() {
		return Timer{}, apperrors.WithMetadata(apperrors.CodeTimerInvalidKind, "invalid timer kind", map[string]string{"kind": string(input.Kind)})
	}
	if strings.TrimSpace(input.Color) == "" {
		input.Color = DefaultColor
	}
	if strings.TrimSpace(input.Icon) == "" {
		input.Icon = DefaultIcon
	}

	timerID, err := idGenerator()
	if err != nil {
		return Timer{}, apperrors.Wrap(apperrors.CodeUnknown, "generate timer id", err)
	}

	createdAt := now().UTC()
	return Timer{
		ID:              timerID,
		UserID:          input.UserID,
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Kind:            input.Kind,
		Color:           strings.TrimSpace(input.Color),
		Icon:            strings.TrimSpace(input.Icon),
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}, nil
}

// Patch describes a partial update to a timer preset.
type Patch struct {
	Name            *string
	DurationMinutes *int
	Kind            *Kind
	Color           *string
	Icon            *string
}

// ApplyPatch returns a copy of the timer with the patch applied and the
// updated-at timestamp refreshed.
func (t Timer) ApplyPatch(patch Patch, now func() time.Time) (Timer, error) {
	if now == nil {
		now = time.Now
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return Timer{}, apperrors.New(apperrors.CodeTimerNameEmpty, "timer name is required")
		}
		t.Name = name
	}
	if patch.DurationMinutes != nil {
		if *patch.DurationMinutes < 1 {
			return Timer{}, apperrors.New(apperrors.CodeTimerInvalidDuration, "timer duration must be at least one minute")
		}
		t.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Kind != nil {
		if !patch.Kind.Valid() {
			return Timer{}, apperrors.WithMetadata(apperrors.CodeTimerInvalidKind, "invalid timer kind", map[string]string{"kind": string(*patch.Kind)})
		}
		t.Kind = *patch.Kind
	}
	if patch.Color != nil {
		t.Color = strings.TrimSpace(*patch.Color)
	}
	if patch.Icon != nil {
		t.Icon = strings.TrimSpace(*patch.Icon)
	}
	t.UpdatedAt = now().UTC()
	return t, nil
}
