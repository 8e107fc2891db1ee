package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aashu-app/aashu/internal/storage"
)

func TestGetSessionExpandsParentTimer(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	timer := seedTimer(t, store, "timer-1", "user-1")
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	seedSession(t, store, "session-1", "user-1", timer.ID, start)

	got, err := store.GetSession(context.Background(), "user-1", "session-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Timer == nil {
		t.Fatal("expected parent timer expansion")
	}
	if got.Timer.Name != timer.Name {
		t.Fatalf("timer name = %q, want %q", got.Timer.Name, timer.Name)
	}
	if got.Session.Completed {
		t.Fatal("new session must start active")
	}
}

func TestGetSessionToleratesDeletedTimer(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	timer := seedTimer(t, store, "timer-1", "user-1")
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	seedSession(t, store, "session-1", "user-1", timer.ID, start)

	if err := store.DeleteTimer(context.Background(), "user-1", timer.ID); err != nil {
		t.Fatalf("delete timer: %v", err)
	}

	got, err := store.GetSession(context.Background(), "user-1", "session-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Timer != nil {
		t.Fatal("timer expansion should be nil after the preset is deleted")
	}
	if got.Session.TimerID != timer.ID {
		t.Fatalf("timer id = %q, want %q", got.Session.TimerID, timer.ID)
	}
}

func TestListSessionsInRangeMatchesStartTimeOnly(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	timer := seedTimer(t, store, "timer-1", "user-1")
	windowStart := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.Add(24 * time.Hour)

	seedSession(t, store, "session-at-start", "user-1", timer.ID, windowStart)
	seedSession(t, store, "session-at-end", "user-1", timer.ID, windowEnd)
	seedSession(t, store, "session-before", "user-1", timer.ID, windowStart.Add(-time.Minute))
	seedSession(t, store, "session-after", "user-1", timer.ID, windowEnd.Add(time.Minute))
	seedSession(t, store, "session-foreign", "user-2", timer.ID, windowStart.Add(time.Hour))

	got, err := store.ListSessionsInRange(context.Background(), "user-1", windowStart, windowEnd)
	if err != nil {
		t.Fatalf("list sessions in range: %v", err)
	}
	want := map[string]bool{"session-at-start": true, "session-at-end": true}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for _, record := range got {
		if !want[record.Session.ID] {
			t.Fatalf("unexpected session %s in range", record.Session.ID)
		}
	}
}

func TestCompleteSessionSetsEndAndNotes(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	timer := seedTimer(t, store, "timer-1", "user-1")
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	seedSession(t, store, "session-1", "user-1", timer.ID, start)

	end := start.Add(25 * time.Minute)
	notes := "good focus block"
	session, err := store.CompleteSession(context.Background(), "user-1", "session-1", end, &notes)
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if !session.Completed {
		t.Fatal("session not marked completed")
	}
	if session.EndTime == nil || !session.EndTime.Equal(end) {
		t.Fatalf("end time = %v, want %v", session.EndTime, end)
	}
	if session.Notes != notes {
		t.Fatalf("notes = %q, want %q", session.Notes, notes)
	}
}

func TestCompleteSessionKeepsNotesWhenOmitted(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	timer := seedTimer(t, store, "timer-1", "user-1")
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	session := seedSession(t, store, "session-1", "user-1", timer.ID, start)
	session.Notes = "planned notes"
	_, err := store.sqlDB.Exec(`UPDATE timer_sessions SET notes = ? WHERE id = ?`, session.Notes, session.ID)
	if err != nil {
		t.Fatalf("prime notes: %v", err)
	}

	got, err := store.CompleteSession(context.Background(), "user-1", "session-1", start.Add(time.Minute), nil)
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if got.Notes != "planned notes" {
		t.Fatalf("notes = %q, want preserved", got.Notes)
	}
}

func TestCompleteSessionRejectsSecondCompletion(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	timer := seedTimer(t, store, "timer-1", "user-1")
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	seedSession(t, store, "session-1", "user-1", timer.ID, start)

	if _, err := store.CompleteSession(context.Background(), "user-1", "session-1", start.Add(time.Minute), nil); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	_, err := store.CompleteSession(context.Background(), "user-1", "session-1", start.Add(2*time.Minute), nil)
	if !errors.Is(err, storage.ErrAlreadyCompleted) {
		t.Fatalf("second completion err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestCompleteSessionClassifiesMissingAndForeign(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	timer := seedTimer(t, store, "timer-1", "user-1")
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	seedSession(t, store, "session-1", "user-1", timer.ID, start)

	if _, err := store.CompleteSession(context.Background(), "user-2", "session-missing", start, nil); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("missing session err = %v, want ErrNotFound", err)
	}
	if _, err := store.CompleteSession(context.Background(), "user-2", "session-1", start, nil); !errors.Is(err, storage.ErrNotOwned) {
		t.Fatalf("foreign session err = %v, want ErrNotOwned", err)
	}
}

func TestDeleteSessionClassifiesZeroRows(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	timer := seedTimer(t, store, "timer-1", "user-1")
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	seedSession(t, store, "session-1", "user-1", timer.ID, start)

	if err := store.DeleteSession(context.Background(), "user-2", "session-1"); !errors.Is(err, storage.ErrNotOwned) {
		t.Fatalf("foreign delete err = %v, want ErrNotOwned", err)
	}
	if err := store.DeleteSession(context.Background(), "user-1", "session-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if err := store.DeleteSession(context.Background(), "user-1", "session-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
