package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/storage/sqlite"
	domain "github.com/aashu-app/aashu/internal/timers/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "timers.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return NewService(store)
}

func createTimer(t *testing.T, svc *Service, userID string) domain.Timer {
	t.Helper()

	timer, err := svc.Create(context.Background(), userID, domain.CreateTimerInput{Name: "Deep work", DurationMinutes: 25})
	if err != nil {
		t.Fatalf("create timer: %v", err)
	}
	return timer
}

func TestStartSessionCapturesOwnerAndTimer(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	timer := createTimer(t, svc, "user-1")

	record, err := svc.StartSession(context.Background(), "user-1", timer.ID)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if record.Session.UserID != "user-1" || record.Session.TimerID != timer.ID {
		t.Fatalf("session = %+v", record.Session)
	}
	if record.Session.Completed || record.Session.EndTime != nil {
		t.Fatal("new session must be active with no end time")
	}
	if record.Timer == nil || record.Timer.Name != "Deep work" {
		t.Fatalf("timer expansion = %+v", record.Timer)
	}
}

func TestStartSessionRequiresOwnedTimer(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	timer := createTimer(t, svc, "user-1")

	if _, err := svc.StartSession(context.Background(), "user-2", "missing"); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("missing timer err = %v, want %s", err, apperrors.CodeNotFound)
	}
	if _, err := svc.StartSession(context.Background(), "user-2", timer.ID); !apperrors.IsCode(err, apperrors.CodeOwnershipDenied) {
		t.Fatalf("foreign timer err = %v, want %s", err, apperrors.CodeOwnershipDenied)
	}
}

func TestCompleteSessionOnce(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	timer := createTimer(t, svc, "user-1")
	record, err := svc.StartSession(context.Background(), "user-1", timer.ID)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	notes := "solid block"
	completed, err := svc.CompleteSession(context.Background(), "user-1", record.Session.ID, &notes)
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if !completed.Completed || completed.EndTime == nil {
		t.Fatalf("session = %+v", completed)
	}
	if completed.Notes != notes {
		t.Fatalf("notes = %q", completed.Notes)
	}

	if _, err := svc.CompleteSession(context.Background(), "user-1", record.Session.ID, nil); !apperrors.IsCode(err, apperrors.CodeSessionAlreadyCompleted) {
		t.Fatalf("second completion err = %v, want %s", err, apperrors.CodeSessionAlreadyCompleted)
	}
}

func TestSessionSurvivesTimerDeletion(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	timer := createTimer(t, svc, "user-1")
	record, err := svc.StartSession(context.Background(), "user-1", timer.ID)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if err := svc.Delete(context.Background(), "user-1", timer.ID); err != nil {
		t.Fatalf("delete timer: %v", err)
	}

	got, err := svc.GetSession(context.Background(), "user-1", record.Session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Timer != nil {
		t.Fatal("timer expansion should be empty after preset deletion")
	}
}

func TestListSessionsRangeValidatesWindow(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	start := time.Date(2026, time.April, 6, 9, 0, 0, 0, time.UTC)
	if _, err := svc.ListSessionsRange(context.Background(), "user-1", start, start.Add(-time.Second)); !apperrors.IsCode(err, apperrors.CodeRangeInvalid) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeRangeInvalid)
	}
}
