package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mokutan/stagepass/internal/services/tournament Service

import (
	"context"
)

// Service defines the tournament engine operations
type Service interface {
	// CheckIn marks a player arrived and allocates their sequence number;
	// repeating the call is a success, not an error
	CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error)

	// ToggleOnMachine claims or releases the group's cabinet for a player
	ToggleOnMachine(ctx context.Context, input *ToggleOnMachineInput) (*ToggleOnMachineOutput, error)

	// SubmitScore records a score into the player's open round and steps
	// them off the machine
	SubmitScore(ctx context.Context, input *SubmitScoreInput) (*SubmitScoreOutput, error)

	// RunPromotion applies a group's qualifier cutoff bands, or promotes the
	// revival round's winners
	RunPromotion(ctx context.Context, input *RunPromotionInput) (*RunPromotionOutput, error)

	// GeneratePairings builds a phase's min-max bracket pairings; safe to
	// re-run, players already in a match are skipped
	GeneratePairings(ctx context.Context, input *GeneratePairingsInput) (*GeneratePairingsOutput, error)

	// Forfeit withdraws a player; a decided active match cascades the
	// opponent forward
	Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error)

	// GetSystemState returns the global flags and countdown remainder
	GetSystemState(ctx context.Context) (*GetSystemStateOutput, error)

	// RunCheckInTimeoutSweep eliminates everyone still unchecked once the
	// countdown has run out; applies at most once
	RunCheckInTimeoutSweep(ctx context.Context) (*RunCheckInTimeoutSweepOutput, error)

	// EnableCheckIn opens check-in
	EnableCheckIn(ctx context.Context) error

	// StartMatch starts the tournament and the check-in countdown
	StartMatch(ctx context.Context) (*StartMatchOutput, error)

	// RandomizeNumbers shuffles every group's checked-in sequence numbers and
	// locks them
	RandomizeNumbers(ctx context.Context) (*RandomizeNumbersOutput, error)

	// UnlockNumbers releases the sequence-number lock
	UnlockNumbers(ctx context.Context) error

	// ImportPlayers registers a batch of players by name, rating and group
	ImportPlayers(ctx context.Context, input *ImportPlayersInput) (*ImportPlayersOutput, error)

	// UpdatePlayer applies an admin patch; promotion status moves bypass the
	// forward-only rule here
	UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error)

	// DeletePlayer removes a player from the roster
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error

	// ListPlayers returns the roster, optionally one group
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// Rankings returns a group ordered by placement, then qualifier score
	Rankings(ctx context.Context, input *RankingsInput) (*RankingsOutput, error)

	// Dashboard returns the admin overview of every group
	Dashboard(ctx context.Context) (*DashboardOutput, error)
}
