// Package seed loads the default music catalog into an empty store.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/aashu-app/aashu/internal/music/domain"
	"github.com/aashu-app/aashu/internal/platform/id"
	"github.com/aashu-app/aashu/internal/storage"
)

// DefaultCatalog returns the tracks shipped with a fresh install.
func DefaultCatalog() []domain.CreateTrackInput {
	return []domain.CreateTrackInput{
		{Title: "Rainy Window", Category: domain.CategoryLowFiBeats, URL: "https://cdn.aashu.app/music/rainy-window.mp3", DurationSeconds: 207, Artist: "Aashu Studio"},
		{Title: "Midnight Desk", Category: domain.CategoryLowFiBeats, URL: "https://cdn.aashu.app/music/midnight-desk.mp3", DurationSeconds: 184, Artist: "Aashu Studio"},
		{Title: "Slow Orbit", Category: domain.CategoryCelestial, URL: "https://cdn.aashu.app/music/slow-orbit.mp3", DurationSeconds: 312, Artist: "Aashu Studio"},
		{Title: "Aurora Drift", Category: domain.CategoryCelestial, URL: "https://cdn.aashu.app/music/aurora-drift.mp3", DurationSeconds: 268, Artist: "Aashu Studio"},
		{Title: "Corner Cafe", Category: domain.CategoryGroovyTunes, URL: "https://cdn.aashu.app/music/corner-cafe.mp3", DurationSeconds: 196, Artist: "Aashu Studio"},
		{Title: "Main Street", Category: domain.CategoryTiimoTown, URL: "https://cdn.aashu.app/music/main-street.mp3", DurationSeconds: 221, Artist: "Aashu Studio"},
		{Title: "Porch Light", Category: domain.CategoryAcoustics, URL: "https://cdn.aashu.app/music/porch-light.mp3", DurationSeconds: 243, Artist: "Aashu Studio"},
		{Title: "Quiet Hours", Category: domain.CategoryOther, URL: "https://cdn.aashu.app/music/quiet-hours.mp3", DurationSeconds: 255, Artist: "Aashu Studio"},
	}
}

// Apply inserts the default catalog when the store holds no tracks. It is
// safe to run on every boot; a non-empty catalog is left untouched.
func Apply(ctx context.Context, store storage.MusicStore) (int, error) {
	if store == nil {
		return 0, fmt.Errorf("music store is required")
	}

	count, err := store.CountTracks(ctx)
	if err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	if count > 0 {
		log.Printf("music catalog already has %d tracks, skipping seed", count)
		return 0, nil
	}

	inserted := 0
	for _, input := range DefaultCatalog() {
		track, err := domain.CreateTrack(input, time.Now, id.NewID)
		if err != nil {
			return inserted, fmt.Errorf("build track %q: %w", input.Title, err)
		}
		if err := store.CreateTrack(ctx, track); err != nil {
			return inserted, fmt.Errorf("insert track %q: %w", input.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
