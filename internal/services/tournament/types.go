package tournament

import (
	"time"

	"github.com/mokutan/stagepass/internal/models"
)

// ScoreRound identifies which scoring round a submitted score landed in
type ScoreRound string

const (
	// RoundQualifier is the initial scoring round
	RoundQualifier ScoreRound = "qualifier"

	// RoundRevival is the second-chance round
	RoundRevival ScoreRound = "revival"
)

// PromotionBand is one slice of the qualifier cutoff: the next Count players
// by score land on Status
type PromotionBand struct {
	Count  int
	Status models.PromotionStatus
}

// GroupRules holds the per-group promotion shape
type GroupRules struct {
	// Bands is the qualifier cutoff, best scores first; players below the
	// last band are eliminated
	Bands []PromotionBand

	// RevivalSlots is how many revival-round players advance to the bracket
	RevivalSlots int
}

// Config holds configuration for the tournament service
type Config struct {
	// Groups maps each group to its promotion rules
	Groups map[models.Group]*GroupRules

	// CheckInCountdown is how long players have to check in once the
	// tournament starts
	CheckInCountdown time.Duration

	// TimeoutGrace lets the sweep run slightly before the countdown hits
	// zero, so the admin pressing the button at 00:00 isn't refused
	TimeoutGrace time.Duration
}

// DefaultConfig returns the stock three-group tournament shape
func DefaultConfig() *Config {
	return &Config{
		Groups: map[models.Group]*GroupRules{
			models.GroupBeginner: {
				Bands: []PromotionBand{
					{Count: 15, Status: models.StatusTop16},
					{Count: 4, Status: models.StatusRevival},
				},
				RevivalSlots: 1,
			},
			models.GroupAdvanced: {
				Bands: []PromotionBand{
					{Count: 15, Status: models.StatusTop16},
					{Count: 4, Status: models.StatusRevival},
				},
				RevivalSlots: 1,
			},
			models.GroupPeak: {
				Bands: []PromotionBand{
					{Count: 4, Status: models.StatusTop4Peak},
				},
			},
		},
		CheckInCountdown: time.Hour,
		TimeoutGrace:     time.Minute,
	}
}

type CheckInInput struct {
	PlayerID string
}

type CheckInOutput struct {
	Player *models.Player

	// AlreadyCheckedIn is true when the call was a no-op repeat
	AlreadyCheckedIn bool
}

type ToggleOnMachineInput struct {
	PlayerID string
}

type ToggleOnMachineOutput struct {
	Player *models.Player
}

type SubmitScoreInput struct {
	PlayerID string
	Score    float64
}

type SubmitScoreOutput struct {
	Player *models.Player

	// Round is which scoring round the score was recorded in
	Round ScoreRound
}

type RunPromotionInput struct {
	Group models.Group

	// Round selects the qualifier cutoff or the revival promotion
	Round ScoreRound
}

type RunPromotionOutput struct {
	// Updated counts players whose status actually changed
	Updated int

	// ByStatus counts the statuses assigned in this run
	ByStatus map[models.PromotionStatus]int
}

type GeneratePairingsInput struct {
	Phase models.Phase
	Group models.Group
}

type GeneratePairingsOutput struct {
	Matches []*models.Match

	// UnpairedSeed is the middle seed left waiting when the field is odd
	UnpairedSeed string

	// Skipped counts players left out because they already had an active match
	Skipped int
}

type ForfeitInput struct {
	PlayerID string
}

type ForfeitOutput struct {
	Player *models.Player

	// Match is the active match the forfeit decided, if any
	Match *models.Match

	// NeedsManualRanking is true when a semifinal forfeit leaves third and
	// fourth place to the admin
	NeedsManualRanking bool
}

type GetSystemStateOutput struct {
	State *models.SystemState

	// RemainingSeconds is the check-in countdown remainder; -1 when no
	// countdown is running
	RemainingSeconds int
}

type StartMatchOutput struct {
	StartTime time.Time
}

type RunCheckInTimeoutSweepOutput struct {
	// EliminatedIDs lists the players swept out for missing check-in
	EliminatedIDs []string
}

type RandomizeNumbersOutput struct {
	// Assigned maps player ID to the freshly shuffled sequence number
	Assigned map[string]int
}

type ImportPlayerEntry struct {
	Name   string
	Rating int
	Group  models.Group
}

type ImportPlayersInput struct {
	Entries []ImportPlayerEntry
}

type ImportPlayersOutput struct {
	Imported int

	// SkippedNames lists entries refused because the name was taken
	SkippedNames []string
}

// PlayerPatch names the fields an admin may change; nil fields are untouched
type PlayerPatch struct {
	Name            *string
	Group           *models.Group
	Rating          *int
	PromotionStatus *models.PromotionStatus
	QualifierScore  *float64
	RevivalScore    *float64
	CheckedIn       *bool
	MatchNumber     *int
}

type UpdatePlayerInput struct {
	PlayerID string
	Patch    *PlayerPatch
}

type UpdatePlayerOutput struct {
	Player *models.Player
}

type DeletePlayerInput struct {
	PlayerID string
}

type ListPlayersInput struct {
	// Group filters by group when set
	Group models.Group
}

type ListPlayersOutput struct {
	Players []*models.Player
}

type RankingEntry struct {
	Rank   int
	Player *models.Player
}

type RankingsInput struct {
	Group models.Group
}

type RankingsOutput struct {
	Entries []*RankingEntry
}

// GroupSummary is one group's dashboard row
type GroupSummary struct {
	Total     int
	CheckedIn int

	// OnMachineName is the player currently on the cabinet, if any
	OnMachineName string

	ByStatus map[models.PromotionStatus]int
}

type DashboardOutput struct {
	State            *models.SystemState
	RemainingSeconds int
	Groups           map[models.Group]*GroupSummary
}
