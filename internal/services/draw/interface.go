package draw

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mokutan/stagepass/internal/services/draw Service

import (
	"context"
)

// Service defines the song-draw lottery operations
type Service interface {
	// Start begins a roll over a phase/group's active song pool
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Stop freezes the roll into one or two drawn songs
	Stop(ctx context.Context) (*StopOutput, error)

	// Reset returns the lottery to idle
	Reset(ctx context.Context) error

	// GetState returns the lottery state with drawn songs resolved
	GetState(ctx context.Context) (*GetStateOutput, error)
}
