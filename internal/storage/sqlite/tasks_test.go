package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aashu-app/aashu/internal/storage"
	taskdomain "github.com/aashu-app/aashu/internal/tasks/domain"
)

func TestCreateGetTaskRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	due := time.Date(2026, time.March, 6, 17, 0, 0, 0, time.UTC)
	seedTask(t, store, "task-1", "user-1", func(task *taskdomain.Task) {
		task.Description = "write the report"
		task.DueDate = &due
		task.Tags = []string{"work", "deep"}
		task.IsAllDay = true
	})

	got, err := store.GetTask(context.Background(), "user-1", "task-1")
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Description != "write the report" {
		t.Fatalf("description = %q", got.Description)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("due date = %v, want %v", got.DueDate, due)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "work" {
		t.Fatalf("tags = %v", got.Tags)
	}
	if !got.IsAllDay {
		t.Fatal("is_all_day lost in round trip")
	}
}

func TestGetTaskReportsMissingBeforeForeign(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedTask(t, store, "task-1", "user-1", nil)

	if _, err := store.GetTask(context.Background(), "user-2", "task-missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("missing task err = %v, want ErrNotFound", err)
	}
	if _, err := store.GetTask(context.Background(), "user-2", "task-1"); !errors.Is(err, storage.ErrNotOwned) {
		t.Fatalf("foreign task err = %v, want ErrNotOwned", err)
	}
}

func TestGetTaskAbortsOnExpiredContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedTask(t, store, "task-1", "user-1", nil)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	if _, err := store.GetTask(ctx, "user-1", "task-1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expired context err = %v, want DeadlineExceeded", err)
	}
}

func TestListTasksAppliesFilters(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedTask(t, store, "task-1", "user-1", func(task *taskdomain.Task) {
		task.Status = taskdomain.StatusCompleted
		task.Priority = taskdomain.PriorityHigh
	})
	seedTask(t, store, "task-2", "user-1", func(task *taskdomain.Task) {
		task.Category = "errands"
	})
	seedTask(t, store, "task-3", "user-2", nil)

	all, err := store.ListTasks(context.Background(), "user-1", storage.TaskFilter{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	for _, task := range all {
		if task.UserID != "user-1" {
			t.Fatalf("leaked task %s owned by %s", task.ID, task.UserID)
		}
	}

	completed, err := store.ListTasks(context.Background(), "user-1", storage.TaskFilter{Status: taskdomain.StatusCompleted})
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != "task-1" {
		t.Fatalf("completed = %v", completed)
	}

	errands, err := store.ListTasks(context.Background(), "user-1", storage.TaskFilter{Category: "errands"})
	if err != nil {
		t.Fatalf("list errands: %v", err)
	}
	if len(errands) != 1 || errands[0].ID != "task-2" {
		t.Fatalf("errands = %v", errands)
	}
}

func TestListTasksByDayWindowIsHalfOpen(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	dayStart := time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)
	lateEvening := dayStart.Add(23 * time.Hour)
	nextMidnight := dayStart.Add(24 * time.Hour)

	seedTask(t, store, "task-due", "user-1", func(task *taskdomain.Task) {
		task.DueDate = &lateEvening
	})
	seedTask(t, store, "task-start", "user-1", func(task *taskdomain.Task) {
		task.StartTime = &dayStart
	})
	seedTask(t, store, "task-next-day", "user-1", func(task *taskdomain.Task) {
		task.DueDate = &nextMidnight
	})
	seedTask(t, store, "task-undated", "user-1", nil)

	got, err := store.ListTasksByDay(context.Background(), "user-1", dayStart)
	if err != nil {
		t.Fatalf("list tasks by day: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	for _, task := range got {
		if task.ID == "task-next-day" {
			t.Fatal("next midnight must be excluded from the day window")
		}
		if task.ID == "task-undated" {
			t.Fatal("undated task must not match a day window")
		}
	}
}

func TestUpdateTaskConditionalOnOwner(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	task := seedTask(t, store, "task-1", "user-1", nil)

	task.Title = "Renamed"
	task.UpdatedAt = task.UpdatedAt.Add(time.Minute)
	if err := store.UpdateTask(context.Background(), task); err != nil {
		t.Fatalf("update task: %v", err)
	}
	got, err := store.GetTask(context.Background(), "user-1", "task-1")
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Title != "Renamed" {
		t.Fatalf("title = %q", got.Title)
	}

	foreign := task
	foreign.UserID = "user-2"
	if err := store.UpdateTask(context.Background(), foreign); !errors.Is(err, storage.ErrNotOwned) {
		t.Fatalf("foreign update err = %v, want ErrNotOwned", err)
	}
	missing := task
	missing.ID = "task-missing"
	if err := store.UpdateTask(context.Background(), missing); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("missing update err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTaskClassifiesZeroRows(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedTask(t, store, "task-1", "user-1", nil)

	if err := store.DeleteTask(context.Background(), "user-2", "task-1"); !errors.Is(err, storage.ErrNotOwned) {
		t.Fatalf("foreign delete err = %v, want ErrNotOwned", err)
	}
	if err := store.DeleteTask(context.Background(), "user-1", "task-1"); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if err := store.DeleteTask(context.Background(), "user-1", "task-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
