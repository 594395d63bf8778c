package state

import "github.com/mokutan/stagepass/internal/models"

type SaveSystemStateInput struct {
	State *models.SystemState
}

type SaveSongDrawStateInput struct {
	State *models.SongDrawState
}
