package draw

import (
	"github.com/mokutan/stagepass/internal/models"
)

// Config holds configuration for the draw service
type Config struct {
	// MaxSongs is how many songs a stop draws when the pool allows it
	MaxSongs int
}

// DefaultConfig returns the stock two-song draw
func DefaultConfig() *Config {
	return &Config{
		MaxSongs: 2,
	}
}

// Notifier receives every draw state change, for pushing to display clients
type Notifier interface {
	DrawStateChanged(state *GetStateOutput)
}

type StartInput struct {
	Phase models.Phase
	Group models.Group
}

type StartOutput struct {
	State *models.SongDrawState
}

type StopOutput struct {
	State *models.SongDrawState

	// Songs resolves the drawn IDs, in draw order
	Songs []*models.Song
}

type GetStateOutput struct {
	State *models.SongDrawState

	// Songs resolves the drawn IDs, in draw order; empty unless finished
	Songs []*models.Song
}
