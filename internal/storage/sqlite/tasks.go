package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aashu-app/aashu/internal/storage"
	domain "github.com/aashu-app/aashu/internal/tasks/domain"
)

const taskColumns = `id, user_id, title, description, status, priority,
	due_date, start_time, end_time, duration_minutes, is_all_day,
	category, color, icon, reminder_time, repeat_pattern, tags,
	created_at, updated_at`

// CreateTask inserts one task record.
func (s *Store) CreateTask(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(task.ID) == "" {
		return fmt.Errorf("task id is required")
	}
	if strings.TrimSpace(task.UserID) == "" {
		return fmt.Errorf("task user id is required")
	}

	tags, err := marshalTags(task.Tags)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO tasks (`+taskColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		toNullMillis(task.DueDate),
		toNullMillis(task.StartTime),
		toNullMillis(task.EndTime),
		task.DurationMinutes,
		boolToInt(task.IsAllDay),
		task.Category,
		task.Color,
		task.Icon,
		toNullMillis(task.ReminderTime),
		task.RepeatPattern,
		tags,
		toMillis(task.CreatedAt),
		toMillis(task.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// GetTask returns one task. Missing records map to ErrNotFound before
// ownership is considered, so callers can keep absence and denial apart.
func (s *Store) GetTask(ctx context.Context, userID, id string) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Task{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	if task.UserID != userID {
		return domain.Task{}, storage.ErrNotOwned
	}
	return task, nil
}

// ListTasks returns the user's tasks matching the filter, newest first.
func (s *Store) ListTasks(ctx context.Context, userID string, filter storage.TaskFilter) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.Priority != "" {
		query += ` AND priority = ?`
		args = append(args, string(filter.Priority))
	}
	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListTasksByDay returns tasks whose due date or start time falls inside
// the 24-hour window beginning at dayStart. The window is closed at the
// start and open at the end, so midnight of the next day is excluded.
func (s *Store) ListTasksByDay(ctx context.Context, userID string, dayStart time.Time) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	windowStart := toMillis(dayStart)
	windowEnd := toMillis(dayStart.Add(24 * time.Hour))
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE user_id = ?
		   AND ((due_date >= ? AND due_date < ?) OR (start_time >= ? AND start_time < ?))
		 ORDER BY created_at DESC, id`,
		userID, windowStart, windowEnd, windowStart, windowEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks by day: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// UpdateTask rewrites an existing task. The write is conditioned on the
// owner so a foreign record is never touched.
func (s *Store) UpdateTask(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tags, err := marshalTags(task.Tags)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE tasks SET
		   title = ?, description = ?, status = ?, priority = ?,
		   due_date = ?, start_time = ?, end_time = ?, duration_minutes = ?,
		   is_all_day = ?, category = ?, color = ?, icon = ?,
		   reminder_time = ?, repeat_pattern = ?, tags = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		toNullMillis(task.DueDate),
		toNullMillis(task.StartTime),
		toNullMillis(task.EndTime),
		task.DurationMinutes,
		boolToInt(task.IsAllDay),
		task.Category,
		task.Color,
		task.Icon,
		toNullMillis(task.ReminderTime),
		task.RepeatPattern,
		tags,
		toMillis(task.UpdatedAt),
		task.ID,
		task.UserID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return s.classifyWrite(ctx, result, "tasks", task.ID)
}

// DeleteTask removes a task owned by the user.
func (s *Store) DeleteTask(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return s.classifyWrite(ctx, result, "tasks", id)
}

// classifyWrite distinguishes a missing record from a foreign one after a
// zero-row conditional write.
func (s *Store) classifyWrite(ctx context.Context, result sql.Result, table, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}
	var existing string
	err = s.sqlDB.QueryRowContext(ctx, `SELECT user_id FROM `+table+` WHERE id = ?`, id).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("classify write: %w", err)
	}
	return storage.ErrNotOwned
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		task         domain.Task
		status       string
		priority     string
		dueDate      sql.NullInt64
		startTime    sql.NullInt64
		endTime      sql.NullInt64
		isAllDay     int
		reminderTime sql.NullInt64
		tags         string
		createdAt    int64
		updatedAt    int64
	)
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&status,
		&priority,
		&dueDate,
		&startTime,
		&endTime,
		&task.DurationMinutes,
		&isAllDay,
		&task.Category,
		&task.Color,
		&task.Icon,
		&reminderTime,
		&task.RepeatPattern,
		&tags,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	task.Status = domain.Status(status)
	task.Priority = domain.Priority(priority)
	task.DueDate = fromNullMillis(dueDate)
	task.StartTime = fromNullMillis(startTime)
	task.EndTime = fromNullMillis(endTime)
	task.IsAllDay = isAllDay != 0
	task.ReminderTime = fromNullMillis(reminderTime)
	task.CreatedAt = fromMillis(createdAt)
	task.UpdatedAt = fromMillis(updatedAt)
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &task.Tags); err != nil {
			return domain.Task{}, fmt.Errorf("unmarshal task tags: %w", err)
		}
	}
	return task, nil
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	payload, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("marshal task tags: %w", err)
	}
	return string(payload), nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
