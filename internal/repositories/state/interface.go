package state

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mokutan/stagepass/internal/repositories/state Repository

import (
	"context"

	"github.com/mokutan/stagepass/internal/models"
)

// Repository defines the interface for singleton state persistence
type Repository interface {
	// GetSystemState retrieves the global tournament flags; a missing record
	// yields a zero-value state, never an error
	GetSystemState(ctx context.Context) (*models.SystemState, error)

	// SaveSystemState persists the global tournament flags
	SaveSystemState(ctx context.Context, input *SaveSystemStateInput) error

	// GetSongDrawState retrieves the song lottery state; a missing record
	// yields an idle state
	GetSongDrawState(ctx context.Context) (*models.SongDrawState, error)

	// SaveSongDrawState persists the song lottery state
	SaveSongDrawState(ctx context.Context, input *SaveSongDrawStateInput) error
}
