package domain

import (
	"testing"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func staticID() (string, error) {
	return "event-1", nil
}

func validInput() CreateEventInput {
	return CreateEventInput{
		UserID:    "user-1",
		Title:     "Dentist",
		StartTime: time.Date(2025, time.March, 28, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.March, 28, 11, 0, 0, 0, time.UTC),
	}
}

func TestCreateEventRequiresInterval(t *testing.T) {
	t.Parallel()

	input := validInput()
	input.StartTime = time.Time{}
	if _, err := CreateEvent(input, fixedNow, staticID); !apperrors.IsCode(err, apperrors.CodeEventStartRequired) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeEventStartRequired)
	}

	input = validInput()
	input.EndTime = time.Time{}
	if _, err := CreateEvent(input, fixedNow, staticID); !apperrors.IsCode(err, apperrors.CodeEventEndRequired) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeEventEndRequired)
	}
}

func TestCreateEventRejectsEndBeforeStart(t *testing.T) {
	t.Parallel()

	input := validInput()
	input.EndTime = input.StartTime.Add(-time.Minute)
	if _, err := CreateEvent(input, fixedNow, staticID); !apperrors.IsCode(err, apperrors.CodeEventEndBeforeStart) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeEventEndBeforeStart)
	}
}

func TestCreateEventAcceptsZeroLengthInterval(t *testing.T) {
	t.Parallel()

	input := validInput()
	input.EndTime = input.StartTime
	if _, err := CreateEvent(input, fixedNow, staticID); err != nil {
		t.Fatalf("create event: %v", err)
	}
}

func TestCreateEventNormalizesRecurrence(t *testing.T) {
	t.Parallel()

	input := validInput()
	input.IsRecurring = true
	input.Recurrence = &Recurrence{Frequency: FrequencyWeekly, DaysOfWeek: []int{1, 3}}
	event, err := CreateEvent(input, fixedNow, staticID)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if event.Recurrence.Interval != 1 {
		t.Fatalf("interval = %d, want default 1", event.Recurrence.Interval)
	}

	input.Recurrence = &Recurrence{Frequency: Frequency("fortnightly")}
	if _, err := CreateEvent(input, fixedNow, staticID); !apperrors.IsCode(err, apperrors.CodeEventInvalidRecurrence) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeEventInvalidRecurrence)
	}
}

func TestApplyPatchRechecksInterval(t *testing.T) {
	t.Parallel()

	event, err := CreateEvent(validInput(), fixedNow, staticID)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	badEnd := event.StartTime.Add(-time.Hour)
	if _, err := event.ApplyPatch(Patch{EndTime: &badEnd}, fixedNow); !apperrors.IsCode(err, apperrors.CodeEventEndBeforeStart) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeEventEndBeforeStart)
	}
}

func TestOverlapsRangeThreeClauses(t *testing.T) {
	t.Parallel()

	event, err := CreateEvent(validInput(), fixedNow, staticID)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	at := func(hour, minute int) time.Time {
		return time.Date(2025, time.March, 28, hour, minute, 0, 0, time.UTC)
	}

	// Window fully inside the event: matched by the spanning clause.
	if !event.OverlapsRange(at(10, 30), at(10, 45)) {
		t.Fatal("window inside event should match")
	}
	// Window fully before the event.
	if event.OverlapsRange(at(9, 0), at(9, 30)) {
		t.Fatal("window before event must not match")
	}
	// Window spanning the event: matched by start-in-window.
	if !event.OverlapsRange(at(9, 0), at(12, 0)) {
		t.Fatal("window spanning event should match")
	}
	// Inclusive boundary: window ending exactly at the event start.
	if !event.OverlapsRange(at(9, 0), at(10, 0)) {
		t.Fatal("window touching event start should match (inclusive bounds)")
	}
	// Inclusive boundary: window starting exactly at the event end.
	if !event.OverlapsRange(at(11, 0), at(12, 0)) {
		t.Fatal("window touching event end should match (inclusive bounds)")
	}
	// Just past the inclusive boundary.
	if event.OverlapsRange(at(11, 0).Add(time.Second), at(12, 0)) {
		t.Fatal("window past event end must not match")
	}
}
