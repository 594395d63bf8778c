package selection

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mokutan/stagepass/internal/services/selection Service

import (
	"context"
)

// Service defines the song-selection protocol operations
type Service interface {
	// SubmitSong records a player's pick for their active match; one live
	// pick per player per match
	SubmitSong(ctx context.Context, input *SubmitSongInput) (*SubmitSongOutput, error)

	// BanOpponentSong spends the player's once-per-tournament ban on the
	// opponent's live pick, forcing a re-pick
	BanOpponentSong(ctx context.Context, input *BanOpponentSongInput) (*BanOpponentSongOutput, error)

	// GetActiveMatch returns the player's match view; opponent picks stay
	// hidden until the whole cohort has submitted
	GetActiveMatch(ctx context.Context, input *GetActiveMatchInput) (*GetActiveMatchOutput, error)

	// MatchesOverview returns the admin view of a cohort's picks and the
	// reveal gate
	MatchesOverview(ctx context.Context, input *MatchesOverviewInput) (*MatchesOverviewOutput, error)
}
