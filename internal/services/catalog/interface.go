package catalog

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mokutan/stagepass/internal/services/catalog Service

import (
	"context"
)

// Service defines song-catalog management operations
type Service interface {
	// AddSong registers a song into a phase/group's draw pool
	AddSong(ctx context.Context, input *AddSongInput) (*AddSongOutput, error)

	// ListSongs returns the catalog, optionally filtered
	ListSongs(ctx context.Context, input *ListSongsInput) (*ListSongsOutput, error)

	// SetSongActive pulls a song from (or returns it to) the draw pool
	SetSongActive(ctx context.Context, input *SetSongActiveInput) (*SetSongActiveOutput, error)

	// DeleteSong removes a song from the catalog
	DeleteSong(ctx context.Context, input *DeleteSongInput) error
}
