package song

import "github.com/mokutan/stagepass/internal/models"

type SaveSongInput struct {
	Song *models.Song
}

type GetSongInput struct {
	SongID string
}

type ListSongsInput struct {
	// Phase filters by phase bucket when set
	Phase models.Phase

	// Group filters by group when set
	Group models.Group

	// ActiveOnly drops songs pulled from the pool
	ActiveOnly bool
}

type DeleteSongInput struct {
	SongID string
}
