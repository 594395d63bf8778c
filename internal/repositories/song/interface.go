package song

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mokutan/stagepass/internal/repositories/song Repository

import (
	"context"

	"github.com/mokutan/stagepass/internal/models"
)

// Repository defines the interface for song-catalog data persistence
type Repository interface {
	// SaveSong persists a song
	SaveSong(ctx context.Context, input *SaveSongInput) error

	// GetSong retrieves a song by ID
	GetSong(ctx context.Context, input *GetSongInput) (*models.Song, error)

	// ListSongs retrieves songs, optionally filtered by phase, group and
	// active flag
	ListSongs(ctx context.Context, input *ListSongsInput) ([]*models.Song, error)

	// DeleteSong removes a song from the catalog
	DeleteSong(ctx context.Context, input *DeleteSongInput) error
}
