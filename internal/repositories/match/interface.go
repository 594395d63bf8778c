package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mokutan/stagepass/internal/repositories/match Repository

import (
	"context"

	"github.com/mokutan/stagepass/internal/models"
)

// Repository defines the interface for match data persistence
type Repository interface {
	// CreateMatch persists a new match, atomically claiming both players'
	// active-match slots; fails with ErrPlayerHasActiveMatch if either
	// player already has a pending or ongoing match
	CreateMatch(ctx context.Context, input *CreateMatchInput) error

	// SaveMatch persists an existing match; finishing a match releases both
	// players' active-match slots
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetActiveMatchByPlayer retrieves the player's pending/ongoing match
	GetActiveMatchByPlayer(ctx context.Context, input *GetActiveMatchByPlayerInput) (*models.Match, error)

	// ListMatches retrieves all matches for a phase and group
	ListMatches(ctx context.Context, input *ListMatchesInput) ([]*models.Match, error)
}
