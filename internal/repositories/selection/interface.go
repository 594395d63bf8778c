package selection

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mokutan/stagepass/internal/repositories/selection Repository

import (
	"context"

	"github.com/mokutan/stagepass/internal/models"
)

// Repository defines the interface for song-selection data persistence
type Repository interface {
	// CreateSelection persists a new selection, atomically claiming the
	// player's active-selection slot for the match; fails with
	// ErrSelectionExists if the player already has an unbanned selection there
	CreateSelection(ctx context.Context, input *CreateSelectionInput) error

	// GetSelection retrieves a selection by ID
	GetSelection(ctx context.Context, input *GetSelectionInput) (*models.SongSelection, error)

	// GetActiveSelection retrieves a player's unbanned selection for a match
	GetActiveSelection(ctx context.Context, input *GetActiveSelectionInput) (*models.SongSelection, error)

	// ListByMatch retrieves every selection recorded for a match, banned
	// selections included
	ListByMatch(ctx context.Context, input *ListByMatchInput) ([]*models.SongSelection, error)

	// BanSelection marks a selection banned and frees the owning player's
	// active-selection slot so they can submit a replacement
	BanSelection(ctx context.Context, input *BanSelectionInput) error
}
