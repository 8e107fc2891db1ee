package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aashu-app/aashu/internal/storage"
	domain "github.com/aashu-app/aashu/internal/timers/domain"
)

const timerColumns = `id, user_id, name, duration_minutes, kind, color, icon,
	created_at, updated_at`

// CreateTimer inserts one timer preset.
func (s *Store) CreateTimer(ctx context.Context, timer domain.Timer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(timer.ID) == "" {
		return fmt.Errorf("timer id is required")
	}
	if strings.TrimSpace(timer.UserID) == "" {
		return fmt.Errorf("timer user id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO timers (`+timerColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		timer.ID,
		timer.UserID,
		timer.Name,
		timer.DurationMinutes,
		string(timer.Kind),
		timer.Color,
		timer.Icon,
		toMillis(timer.CreatedAt),
		toMillis(timer.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create timer: %w", err)
	}
	return nil
}

// GetTimer returns one timer preset, reporting absence before ownership.
func (s *Store) GetTimer(ctx context.Context, userID, id string) (domain.Timer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Timer{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Timer{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+timerColumns+` FROM timers WHERE id = ?`, id)
	timer, err := scanTimer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Timer{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Timer{}, fmt.Errorf("get timer: %w", err)
	}
	if timer.UserID != userID {
		return domain.Timer{}, storage.ErrNotOwned
	}
	return timer, nil
}

// ListTimers returns the user's timer presets, newest first.
func (s *Store) ListTimers(ctx context.Context, userID string) ([]domain.Timer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+timerColumns+` FROM timers WHERE user_id = ? ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list timers: %w", err)
	}
	defer rows.Close()

	var timers []domain.Timer
	for rows.Next() {
		timer, err := scanTimer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan timer: %w", err)
		}
		timers = append(timers, timer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timers: %w", err)
	}
	return timers, nil
}

// UpdateTimer rewrites an existing timer preset owned by the user.
func (s *Store) UpdateTimer(ctx context.Context, timer domain.Timer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE timers SET
		   name = ?, duration_minutes = ?, kind = ?, color = ?, icon = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		timer.Name,
		timer.DurationMinutes,
		string(timer.Kind),
		timer.Color,
		timer.Icon,
		toMillis(timer.UpdatedAt),
		timer.ID,
		timer.UserID,
	)
	if err != nil {
		return fmt.Errorf("update timer: %w", err)
	}
	return s.classifyWrite(ctx, result, "timers", timer.ID)
}

// DeleteTimer removes a timer preset. Sessions started from the preset
// are kept; their timer expansion goes empty instead.
func (s *Store) DeleteTimer(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM timers WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete timer: %w", err)
	}
	return s.classifyWrite(ctx, result, "timers", id)
}

func scanTimer(row rowScanner) (domain.Timer, error) {
	var (
		timer     domain.Timer
		kind      string
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&timer.ID,
		&timer.UserID,
		&timer.Name,
		&timer.DurationMinutes,
		&kind,
		&timer.Color,
		&timer.Icon,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Timer{}, err
	}
	timer.Kind = domain.Kind(kind)
	timer.CreatedAt = fromMillis(createdAt)
	timer.UpdatedAt = fromMillis(updatedAt)
	return timer, nil
}
