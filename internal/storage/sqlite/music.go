package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	domain "github.com/aashu-app/aashu/internal/music/domain"
	"github.com/aashu-app/aashu/internal/storage"
)

const trackColumns = `id, title, category, url, duration_seconds, artist,
	cover_image, created_at, updated_at`

// CreateTrack inserts one catalog track.
func (s *Store) CreateTrack(ctx context.Context, track domain.Track) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(track.ID) == "" {
		return fmt.Errorf("track id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO music_tracks (`+trackColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		track.ID,
		track.Title,
		string(track.Category),
		track.URL,
		track.DurationSeconds,
		track.Artist,
		track.CoverImage,
		toMillis(track.CreatedAt),
		toMillis(track.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create track: %w", err)
	}
	return nil
}

// GetTrack returns one catalog track by ID.
func (s *Store) GetTrack(ctx context.Context, id string) (domain.Track, error) {
	if err := ctx.Err(); err != nil {
		return domain.Track{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Track{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+trackColumns+` FROM music_tracks WHERE id = ?`, id)
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Track{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Track{}, fmt.Errorf("get track: %w", err)
	}
	return track, nil
}

// ListTracks returns the catalog, optionally narrowed to one category.
func (s *Store) ListTracks(ctx context.Context, category domain.Category) ([]domain.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := `SELECT ` + trackColumns + ` FROM music_tracks`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY title, id`

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	var tracks []domain.Track
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}

// UpdateTrack rewrites an existing catalog track.
func (s *Store) UpdateTrack(ctx context.Context, track domain.Track) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE music_tracks SET
		   title = ?, category = ?, url = ?, duration_seconds = ?,
		   artist = ?, cover_image = ?, updated_at = ?
		 WHERE id = ?`,
		track.Title,
		string(track.Category),
		track.URL,
		track.DurationSeconds,
		track.Artist,
		track.CoverImage,
		toMillis(track.UpdatedAt),
		track.ID,
	)
	if err != nil {
		return fmt.Errorf("update track: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteTrack removes one catalog track.
func (s *Store) DeleteTrack(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM music_tracks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete track: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CountTracks returns the catalog size.
func (s *Store) CountTracks(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM music_tracks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

func scanTrack(row rowScanner) (domain.Track, error) {
	var (
		track     domain.Track
		category  string
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&track.ID,
		&track.Title,
		&category,
		&track.URL,
		&track.DurationSeconds,
		&track.Artist,
		&track.CoverImage,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Track{}, err
	}
	track.Category = domain.Category(category)
	track.CreatedAt = fromMillis(createdAt)
	track.UpdatedAt = fromMillis(updatedAt)
	return track, nil
}
