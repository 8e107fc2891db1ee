package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aashu-app/aashu/internal/storage"
	domain "github.com/aashu-app/aashu/internal/timers/domain"
)

const sessionColumns = `s.id, s.user_id, s.timer_id, s.start_time, s.end_time,
	s.completed, s.notes, s.created_at,
	t.id, t.user_id, t.name, t.duration_minutes, t.kind, t.color, t.icon,
	t.created_at, t.updated_at`

const sessionFrom = ` FROM timer_sessions s LEFT JOIN timers t ON t.id = s.timer_id`

// CreateSession inserts one timer session record.
func (s *Store) CreateSession(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(session.UserID) == "" {
		return fmt.Errorf("session user id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO timer_sessions (id, user_id, timer_id, start_time, end_time, completed, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.UserID,
		session.TimerID,
		toMillis(session.StartTime),
		toNullMillis(session.EndTime),
		boolToInt(session.Completed),
		session.Notes,
		toMillis(session.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession returns one session with its parent timer expanded. The
// timer slot is nil when the preset was deleted after the session began.
func (s *Store) GetSession(ctx context.Context, userID, id string) (storage.SessionWithTimer, error) {
	if err := ctx.Err(); err != nil {
		return storage.SessionWithTimer{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SessionWithTimer{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+sessionColumns+sessionFrom+` WHERE s.id = ?`, id)
	record, err := scanSessionWithTimer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.SessionWithTimer{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.SessionWithTimer{}, fmt.Errorf("get session: %w", err)
	}
	if record.Session.UserID != userID {
		return storage.SessionWithTimer{}, storage.ErrNotOwned
	}
	return record, nil
}

// ListSessions returns the user's sessions, most recently started first.
func (s *Store) ListSessions(ctx context.Context, userID string) ([]storage.SessionWithTimer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+sessionColumns+sessionFrom+` WHERE s.user_id = ? ORDER BY s.start_time DESC, s.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

// ListSessionsInRange returns sessions whose start time falls inside the
// inclusive window. End times do not participate in the match.
func (s *Store) ListSessionsInRange(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]storage.SessionWithTimer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+sessionColumns+sessionFrom+`
		 WHERE s.user_id = ? AND s.start_time >= ? AND s.start_time <= ?
		 ORDER BY s.start_time DESC, s.id`,
		userID,
		toMillis(windowStart),
		toMillis(windowEnd),
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions in range: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

// CompleteSession marks the session finished. The write is conditioned
// on the session still being active so two racing completions cannot
// both succeed.
func (s *Store) CompleteSession(ctx context.Context, userID, id string, endTime time.Time, notes *string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Session{}, fmt.Errorf("storage is not configured")
	}

	var (
		result sql.Result
		err    error
	)
	if notes != nil {
		result, err = s.sqlDB.ExecContext(
			ctx,
			`UPDATE timer_sessions SET end_time = ?, completed = 1, notes = ?
			 WHERE id = ? AND user_id = ? AND completed = 0`,
			toMillis(endTime), *notes, id, userID,
		)
	} else {
		result, err = s.sqlDB.ExecContext(
			ctx,
			`UPDATE timer_sessions SET end_time = ?, completed = 1
			 WHERE id = ? AND user_id = ? AND completed = 0`,
			toMillis(endTime), id, userID,
		)
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("complete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Session{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		if err := s.classifySessionComplete(ctx, userID, id); err != nil {
			return domain.Session{}, err
		}
	}

	record, err := s.GetSession(ctx, userID, id)
	if err != nil {
		return domain.Session{}, err
	}
	return record.Session, nil
}

// classifySessionComplete explains a zero-row completion: missing record,
// foreign record, or a session that already finished.
func (s *Store) classifySessionComplete(ctx context.Context, userID, id string) error {
	var (
		owner     string
		completed int
	)
	err := s.sqlDB.QueryRowContext(ctx, `SELECT user_id, completed FROM timer_sessions WHERE id = ?`, id).Scan(&owner, &completed)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("classify session completion: %w", err)
	}
	if owner != userID {
		return storage.ErrNotOwned
	}
	if completed != 0 {
		return storage.ErrAlreadyCompleted
	}
	return fmt.Errorf("complete session: no rows updated")
}

// DeleteSession removes a session owned by the user.
func (s *Store) DeleteSession(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM timer_sessions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return s.classifyWrite(ctx, result, "timer_sessions", id)
}

func scanSessionWithTimer(row rowScanner) (storage.SessionWithTimer, error) {
	var (
		record         storage.SessionWithTimer
		startTime      int64
		endTime        sql.NullInt64
		completed      int
		createdAt      int64
		timerID        sql.NullString
		timerUserID    sql.NullString
		timerName      sql.NullString
		timerDuration  sql.NullInt64
		timerKind      sql.NullString
		timerColor     sql.NullString
		timerIcon      sql.NullString
		timerCreatedAt sql.NullInt64
		timerUpdatedAt sql.NullInt64
	)
	err := row.Scan(
		&record.Session.ID,
		&record.Session.UserID,
		&record.Session.TimerID,
		&startTime,
		&endTime,
		&completed,
		&record.Session.Notes,
		&createdAt,
		&timerID,
		&timerUserID,
		&timerName,
		&timerDuration,
		&timerKind,
		&timerColor,
		&timerIcon,
		&timerCreatedAt,
		&timerUpdatedAt,
	)
	if err != nil {
		return storage.SessionWithTimer{}, err
	}
	record.Session.StartTime = fromMillis(startTime)
	record.Session.EndTime = fromNullMillis(endTime)
	record.Session.Completed = completed != 0
	record.Session.CreatedAt = fromMillis(createdAt)
	if timerID.Valid {
		record.Timer = &domain.Timer{
			ID:              timerID.String,
			UserID:          timerUserID.String,
			Name:            timerName.String,
			DurationMinutes: int(timerDuration.Int64),
			Kind:            domain.Kind(timerKind.String),
			Color:           timerColor.String,
			Icon:            timerIcon.String,
			CreatedAt:       fromMillis(timerCreatedAt.Int64),
			UpdatedAt:       fromMillis(timerUpdatedAt.Int64),
		}
	}
	return record, nil
}

func collectSessions(rows *sql.Rows) ([]storage.SessionWithTimer, error) {
	var sessions []storage.SessionWithTimer
	for rows.Next() {
		record, err := scanSessionWithTimer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}
