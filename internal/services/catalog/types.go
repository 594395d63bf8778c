package catalog

import "github.com/mokutan/stagepass/internal/models"

type AddSongInput struct {
	Name  string
	Phase models.Phase
	Group models.Group
}

type AddSongOutput struct {
	Song *models.Song
}

type ListSongsInput struct {
	Phase      models.Phase
	Group      models.Group
	ActiveOnly bool
}

type ListSongsOutput struct {
	Songs []*models.Song
}

type SetSongActiveInput struct {
	SongID string
	Active bool
}

type SetSongActiveOutput struct {
	Song *models.Song
}

type DeleteSongInput struct {
	SongID string
}
