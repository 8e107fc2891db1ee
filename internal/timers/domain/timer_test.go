package domain

import (
	"testing"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
)

func fixedNow() time.Time {
	return time.Date(2025, time.April, 2, 8, 30, 0, 0, time.UTC)
}

func staticID() (string, error) {
	return "timer-1", nil
}

func TestCreateTimerAppliesDefaults(t *testing.T) {
	t.Parallel()

	timer, err := CreateTimer(CreateTimerInput{UserID: "user-1", Name: "Deep work", DurationMinutes: 25}, fixedNow, staticID)
	if err != nil {
		t.Fatalf("create timer: %v", err)
	}
	if timer.Kind != KindFocus {
		t.Fatalf("kind = %q, want %q", timer.Kind, KindFocus)
	}
	if timer.Color != DefaultColor {
		t.Fatalf("color = %q, want %q", timer.Color, DefaultColor)
	}
	if timer.Icon != DefaultIcon {
		t.Fatalf("icon = %q, want %q", timer.Icon, DefaultIcon)
	}
}

func TestCreateTimerRejectsZeroDuration(t *testing.T) {
	t.Parallel()

	_, err := CreateTimer(CreateTimerInput{UserID: "user-1", Name: "x", DurationMinutes: 0}, fixedNow, staticID)
	if !apperrors.IsCode(err, apperrors.CodeTimerInvalidDuration) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeTimerInvalidDuration)
	}
}

func TestCreateTimerRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := CreateTimer(CreateTimerInput{UserID: "user-1", Name: "x", DurationMinutes: 5, Kind: Kind("nap")}, fixedNow, staticID)
	if !apperrors.IsCode(err, apperrors.CodeTimerInvalidKind) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeTimerInvalidKind)
	}
}

func TestApplyPatchValidatesDuration(t *testing.T) {
	t.Parallel()

	timer, err := CreateTimer(CreateTimerInput{UserID: "user-1", Name: "x", DurationMinutes: 5}, fixedNow, staticID)
	if err != nil {
		t.Fatalf("create timer: %v", err)
	}
	zero := 0
	if _, err := timer.ApplyPatch(Patch{DurationMinutes: &zero}, fixedNow); !apperrors.IsCode(err, apperrors.CodeTimerInvalidDuration) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeTimerInvalidDuration)
	}

	later := func() time.Time { return fixedNow().Add(time.Minute) }
	fifty := 50
	patched, err := timer.ApplyPatch(Patch{DurationMinutes: &fifty}, later)
	if err != nil {
		t.Fatalf("apply patch: %v", err)
	}
	if patched.DurationMinutes != 50 {
		t.Fatalf("duration = %d", patched.DurationMinutes)
	}
	if !patched.UpdatedAt.After(timer.UpdatedAt) {
		t.Fatal("updated_at must advance")
	}
}

func TestStartSessionInitialState(t *testing.T) {
	t.Parallel()

	session, err := StartSession(StartSessionInput{UserID: "user-1", TimerID: "timer-1"}, fixedNow, func() (string, error) {
		return "session-1", nil
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if session.Completed {
		t.Fatal("new session must be active")
	}
	if session.EndTime != nil {
		t.Fatal("new session must not carry an end time")
	}
	if !session.StartTime.Equal(fixedNow()) {
		t.Fatalf("start time = %v, want %v", session.StartTime, fixedNow())
	}
}

func TestStartSessionRequiresTimerID(t *testing.T) {
	t.Parallel()

	_, err := StartSession(StartSessionInput{UserID: "user-1", TimerID: "  "}, fixedNow, staticID)
	if !apperrors.IsCode(err, apperrors.CodeSessionEmptyTimerID) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeSessionEmptyTimerID)
	}
}

func TestStartedWithinInclusiveBounds(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)
	session := Session{StartTime: start}

	if !session.StartedWithin(start, start) {
		t.Fatal("boundary equal to both ends should match")
	}
	if !session.StartedWithin(start.Add(-time.Hour), start) {
		t.Fatal("start at window end should match (inclusive)")
	}
	if session.StartedWithin(start.Add(time.Second), start.Add(time.Hour)) {
		t.Fatal("start before window must not match")
	}
}
