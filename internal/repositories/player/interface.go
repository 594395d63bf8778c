package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mokutan/stagepass/internal/repositories/player Repository

import (
	"context"

	"github.com/mokutan/stagepass/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayerByName retrieves a player by registered name
	GetPlayerByName(ctx context.Context, input *GetPlayerByNameInput) (*models.Player, error)

	// ListPlayers retrieves players, optionally filtered by group
	ListPlayers(ctx context.Context, input *ListPlayersInput) ([]*models.Player, error)

	// DeletePlayer removes a player and its indexes
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error

	// NextMatchNumber atomically allocates the next sequence number for a group
	NextMatchNumber(ctx context.Context, input *NextMatchNumberInput) (int, error)

	// SetMatchNumberCounter pins a group's sequence counter, used after the
	// admin randomizes and locks numbers
	SetMatchNumberCounter(ctx context.Context, input *SetMatchNumberCounterInput) error

	// AcquireMachine atomically claims a group's cabinet for a player
	AcquireMachine(ctx context.Context, input *AcquireMachineInput) (*AcquireMachineOutput, error)

	// ReleaseMachine frees a group's cabinet if the player holds it
	ReleaseMachine(ctx context.Context, input *ReleaseMachineInput) error
}
