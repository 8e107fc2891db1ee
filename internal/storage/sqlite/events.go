package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/aashu-app/aashu/internal/events/domain"
	"github.com/aashu-app/aashu/internal/storage"
)

const eventColumns = `id, user_id, title, description, start_time, end_time,
	location, color, icon, is_recurring, recurrence, reminder_time,
	created_at, updated_at`

// CreateEvent inserts one event record.
func (s *Store) CreateEvent(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(event.ID) == "" {
		return fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(event.UserID) == "" {
		return fmt.Errorf("event user id is required")
	}

	recurrence, err := marshalRecurrence(event.Recurrence)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO events (`+eventColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.UserID,
		event.Title,
		event.Description,
		toMillis(event.StartTime),
		toMillis(event.EndTime),
		event.Location,
		event.Color,
		event.Icon,
		boolToInt(event.IsRecurring),
		recurrence,
		toNullMillis(event.ReminderTime),
		toMillis(event.CreatedAt),
		toMillis(event.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// GetEvent returns one event, reporting absence before ownership.
func (s *Store) GetEvent(ctx context.Context, userID, id string) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Event{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	event, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	if event.UserID != userID {
		return domain.Event{}, storage.ErrNotOwned
	}
	return event, nil
}

// ListEvents returns the user's events ordered by start time.
func (s *Store) ListEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+eventColumns+` FROM events WHERE user_id = ? ORDER BY start_time, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

// ListEventsInRange returns events overlapping the inclusive window. An
// event matches when it starts inside the window, ends inside it, or
// spans the whole window.
func (s *Store) ListEventsInRange(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	startMillis := toMillis(windowStart)
	endMillis := toMillis(windowEnd)
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE user_id = ?
		   AND ((start_time >= ? AND start_time <= ?)
		     OR (end_time >= ? AND end_time <= ?)
		     OR (start_time <= ? AND end_time >= ?))
		 ORDER BY start_time, id`,
		userID,
		startMillis, endMillis,
		startMillis, endMillis,
		startMillis, endMillis,
	)
	if err != nil {
		return nil, fmt.Errorf("list events in range: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

// UpdateEvent rewrites an existing event owned by the user.
func (s *Store) UpdateEvent(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	recurrence, err := marshalRecurrence(event.Recurrence)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE events SET
		   title = ?, description = ?, start_time = ?, end_time = ?,
		   location = ?, color = ?, icon = ?, is_recurring = ?,
		   recurrence = ?, reminder_time = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		event.Title,
		event.Description,
		toMillis(event.StartTime),
		toMillis(event.EndTime),
		event.Location,
		event.Color,
		event.Icon,
		boolToInt(event.IsRecurring),
		recurrence,
		toNullMillis(event.ReminderTime),
		toMillis(event.UpdatedAt),
		event.ID,
		event.UserID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return s.classifyWrite(ctx, result, "events", event.ID)
}

// DeleteEvent removes an event owned by the user.
func (s *Store) DeleteEvent(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM events WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return s.classifyWrite(ctx, result, "events", id)
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var (
		event        domain.Event
		startTime    int64
		endTime      int64
		isRecurring  int
		recurrence   sql.NullString
		reminderTime sql.NullInt64
		createdAt    int64
		updatedAt    int64
	)
	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.Title,
		&event.Description,
		&startTime,
		&endTime,
		&event.Location,
		&event.Color,
		&event.Icon,
		&isRecurring,
		&recurrence,
		&reminderTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}
	event.StartTime = fromMillis(startTime)
	event.EndTime = fromMillis(endTime)
	event.IsRecurring = isRecurring != 0
	event.ReminderTime = fromNullMillis(reminderTime)
	event.CreatedAt = fromMillis(createdAt)
	event.UpdatedAt = fromMillis(updatedAt)
	if recurrence.Valid && recurrence.String != "" {
		var rule domain.Recurrence
		if err := json.Unmarshal([]byte(recurrence.String), &rule); err != nil {
			return domain.Event{}, fmt.Errorf("unmarshal event recurrence: %w", err)
		}
		event.Recurrence = &rule
	}
	return event, nil
}

func collectEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func marshalRecurrence(rule *domain.Recurrence) (sql.NullString, error) {
	if rule == nil {
		return sql.NullString{}, nil
	}
	payload, err := json.Marshal(rule)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal event recurrence: %w", err)
	}
	return sql.NullString{String: string(payload), Valid: true}, nil
}
