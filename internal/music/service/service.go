// Package service implements the shared music catalog operations. Reads
// are open to any authenticated user; writes require the admin role.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aashu-app/aashu/internal/guard"
	domain "github.com/aashu-app/aashu/internal/music/domain"
	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/id"
	"github.com/aashu-app/aashu/internal/storage"
)

// Service exposes the music catalog operations.
type Service struct {
	store storage.MusicStore
	clock func() time.Time
	newID func() (string, error)
}

// NewService creates a music service backed by catalog storage.
func NewService(store storage.MusicStore) *Service {
	return &Service{
		store: store,
		clock: time.Now,
		newID: id.NewID,
	}
}

// Create adds a catalog track. Admin only.
func (s *Service) Create(ctx context.Context, isAdmin bool, input domain.CreateTrackInput) (domain.Track, error) {
	if s == nil || s.store == nil {
		return domain.Track{}, fmt.Errorf("music store is not configured")
	}
	if err := guard.RequireAdmin(isAdmin, "music.create"); err != nil {
		return domain.Track{}, err
	}
	track, err := domain.CreateTrack(input, s.clock, s.newID)
	if err != nil {
		return domain.Track{}, err
	}
	if err := s.store.CreateTrack(ctx, track); err != nil {
		return domain.Track{}, mapStoreError("create track", err)
	}
	return track, nil
}

// Get returns one catalog track.
func (s *Service) Get(ctx context.Context, trackID string) (domain.Track, error) {
	if s == nil || s.store == nil {
		return domain.Track{}, fmt.Errorf("music store is not configured")
	}
	track, err := s.store.GetTrack(ctx, trackID)
	if err != nil {
		return domain.Track{}, mapStoreError("get track", err)
	}
	return track, nil
}

// List returns the catalog, optionally narrowed to one category.
func (s *Service) List(ctx context.Context, category domain.Category) ([]domain.Track, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("music store is not configured")
	}
	if category != "" && !category.Valid() {
		return nil, apperrors.WithMetadata(apperrors.CodeMusicInvalidCategory, "invalid music category", map[string]string{"category": string(category)})
	}
	tracks, err := s.store.ListTracks(ctx, category)
	if err != nil {
		return nil, mapStoreError("list tracks", err)
	}
	return tracks, nil
}

// Update applies a partial update to a catalog track. Admin only.
func (s *Service) Update(ctx context.Context, isAdmin bool, trackID string, patch domain.Patch) (domain.Track, error) {
	if s == nil || s.store == nil {
		return domain.Track{}, fmt.Errorf("music store is not configured")
	}
	if err := guard.RequireAdmin(isAdmin, "music.update"); err != nil {
		return domain.Track{}, err
	}
	track, err := s.store.GetTrack(ctx, trackID)
	if err != nil {
		return domain.Track{}, mapStoreError("get track", err)
	}
	updated, err := track.ApplyPatch(patch, s.clock)
	if err != nil {
		return domain.Track{}, err
	}
	if err := s.store.UpdateTrack(ctx, updated); err != nil {
		return domain.Track{}, mapStoreError("update track", err)
	}
	return updated, nil
}

// Delete removes a catalog track. Admin only.
func (s *Service) Delete(ctx context.Context, isAdmin bool, trackID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("music store is not configured")
	}
	if err := guard.RequireAdmin(isAdmin, "music.delete"); err != nil {
		return err
	}
	if err := s.store.DeleteTrack(ctx, trackID); err != nil {
		return mapStoreError("delete track", err)
	}
	return nil
}

func mapStoreError(operation string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.New(apperrors.CodeNotFound, "track not found")
	}
	return apperrors.Wrap(apperrors.CodeUnknown, operation, err)
}
