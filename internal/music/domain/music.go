// Package domain defines the shared music catalog entity.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/id"
)

// Category groups catalog tracks by mood. The set is fixed.
type Category string

const (
	CategoryLowFiBeats  Category = "low-fi beats"
	CategoryCelestial   Category = "celestial"
	CategoryGroovyTunes Category = "groovy tunes"
	CategoryTiimoTown   Category = "tiimo town"
	CategoryAcoustics   Category = "acoustics"
	CategoryOther       Category = "other"
)

// Categories lists every valid category.
func Categories() []Category {
	return []Category{
		CategoryLowFiBeats,
		CategoryCelestial,
		CategoryGroovyTunes,
		CategoryTiimoTown,
		CategoryAcoustics,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Track is one entry of the global music catalog. Tracks have no owner;
// they are shared across all users and mutated only by privileged identities.
type Track struct {
	ID              string
	Title           string
	Category        Category
	URL             string
	DurationSeconds int
	Artist          string
	CoverImage      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateTrackInput describes the fields accepted when adding a track.
type CreateTrackInput struct {
	Title           string
	Category        Category
	URL             string
	DurationSeconds int
	Artist          string
	CoverImage      string
}

// CreateTrack creates a catalog track with a generated ID and server-side
// timestamps.
func CreateTrack(input CreateTrackInput, now func() time.Time, idGenerator func() (string, error)) (Track, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Track{}, apperrors.New(apperrors.CodeMusicTitleEmpty, "track title is required")
	}
	input.URL = strings.TrimSpace(input.URL)
	if input.URL == "" {
		return Track{}, apperrors.New(apperrors.CodeMusicURLEmpty, "track url is required")
	}
	if input.DurationSeconds <= 0 {
		return Track{}, apperrors.New(apperrors.CodeMusicInvalidDuration, "track duration must be positive")
	}
	if input.Category == "" {
		input.Category = CategoryLowFiBeats
	}
	if !input.Category.Valid() {
		return Track{}, apperrors.WithMetadata(apperrors.CodeMusicInvalidCategory, "invalid music category", map[string]string{"category": string(input.Category)})
	}

	trackID, err := idGenerator()
	if err != nil {
		return Track{}, apperrors.Wrap(apperrors.CodeUnknown, "generate track id", err)
	}

	createdAt := now().UTC()
	return Track{
		ID:              trackID,
		Title:           input.Title,
		Category:        input.Category,
		URL:             input.URL,
		DurationSeconds: input.DurationSeconds,
		Artist:          strings.TrimSpace(input.Artist),
		CoverImage:      strings.TrimSpace(input.CoverImage),
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}, nil
}

// Patch describes a partial update to a track.
type Patch struct {
	Title           *string
	Category        *Category
	URL             *string
	DurationSeconds *int
	Artist          *string
	CoverImage      *string
}

// ApplyPatch returns a copy of the track with the patch applied and the
// updated-at timestamp refreshed.
func (t Track) ApplyPatch(patch Patch, now func() time.Time) (Track, error) {
	if now == nil {
		now = time.Now
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Track{}, apperrors.New(apperrors.CodeMusicTitleEmpty, "track title is required")
		}
		t.Title = title
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return Track{}, apperrors.WithMetadata(apperrors.CodeMusicInvalidCategory, "invalid music category", map[string]string{"category": string(*patch.Category)})
		}
		t.Category = *patch.Category
	}
	if patch.URL != nil {
		url := strings.TrimSpace(*patch.URL)
		if url == "" {
			return Track{}, apperrors.New(apperrors.CodeMusicURLEmpty, "track url is required")
		}
		t.URL = url
	}
	if patch.DurationSeconds != nil {
		if *patch.DurationSeconds <= 0 {
			return Track{}, apperrors.New(apperrors.CodeMusicInvalidDuration, "track duration must be positive")
		}
		t.DurationSeconds = *patch.DurationSeconds
	}
	if patch.Artist != nil {
		t.Artist = strings.TrimSpace(*patch.Artist)
	}
	if patch.CoverImage != nil {
		t.CoverImage = strings.TrimSpace(*patch.CoverImage)
	}
	t.UpdatedAt = now().UTC()
	return t, nil
}
