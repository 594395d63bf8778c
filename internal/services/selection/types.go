package selection

import (
	"github.com/mokutan/stagepass/internal/models"
)

// HiddenSongPlaceholder is shown in place of an opponent's pick until the
// whole cohort has submitted
const HiddenSongPlaceholder = "Hidden (Waiting for all)"

// Config holds configuration for the selection service
type Config struct {
	// SelfPickPhases maps each group to the bracket phases where players
	// choose their own songs
	SelfPickPhases map[models.Group][]models.Phase
}

// DefaultConfig returns the stock self-pick shape
func DefaultConfig() *Config {
	return &Config{
		SelfPickPhases: map[models.Group][]models.Phase{
			models.GroupBeginner: {
				models.PhaseTop16, models.PhaseTop8, models.PhaseTop4, models.PhaseFinal,
			},
			models.GroupAdvanced: {
				models.PhaseTop16, models.PhaseTop8, models.PhaseTop4, models.PhaseFinal,
			},
			models.GroupPeak: {
				models.PhaseTop4, models.PhaseTop4Peak, models.PhaseFinalPeak,
			},
		},
	}
}

type SubmitSongInput struct {
	PlayerID   string
	SongName   string
	Difficulty int
}

type SubmitSongOutput struct {
	Selection *models.SongSelection
}

type BanOpponentSongInput struct {
	PlayerID string
}

type BanOpponentSongOutput struct {
	// BannedSelection is the opponent's pick that was struck
	BannedSelection *models.SongSelection
}

type GetActiveMatchInput struct {
	PlayerID string
}

type GetActiveMatchOutput struct {
	Match    *models.Match
	Opponent *models.Player

	// OwnSelection is the caller's live pick, nil before submitting
	OwnSelection *models.SongSelection

	// Revealed is true once every player in the cohort has a live pick
	Revealed bool

	// OpponentSongName is the opponent's pick, or the hidden placeholder
	// while the reveal gate is closed
	OpponentSongName string

	// OpponentSelection carries the full pick once revealed
	OpponentSelection *models.SongSelection
}

// MatchOverview is one cohort match in the admin view
type MatchOverview struct {
	Match *models.Match

	// Players maps each side's ID to their live selection, nil if none yet
	Selections map[string]*models.SongSelection

	// BannedSelections lists struck picks for the match
	BannedSelections []*models.SongSelection

	// Ready is true when both sides hold a live selection
	Ready bool
}

type MatchesOverviewInput struct {
	Phase models.Phase
	Group models.Group
}

type MatchesOverviewOutput struct {
	Matches []*MatchOverview

	// Revealed mirrors the cohort-wide reveal gate
	Revealed bool
}
