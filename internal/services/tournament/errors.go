package tournament

// TournamentError is a custom error type for tournament-related errors
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPlayerNotFound          TournamentError = "player not found"
	ErrCheckInClosed           TournamentError = "check-in is not open"
	ErrNotCheckedIn            TournamentError = "player has not checked in"
	ErrEliminated              TournamentError = "player is eliminated"
	ErrTimeoutEliminated       TournamentError = "player was eliminated by the check-in deadline"
	ErrMachineOccupied         TournamentError = "another player in the group is on the machine"
	ErrNoRoundApplicable       TournamentError = "player has no score round open"
	ErrAlreadyForfeited        TournamentError = "player already forfeited"
	ErrInvalidTransition       TournamentError = "promotion status cannot move backwards"
	ErrInsufficientPlayers     TournamentError = "not enough players to pair"
	ErrMatchNotStarted         TournamentError = "tournament has not been started"
	ErrTimeoutAlreadyProcessed TournamentError = "check-in timeout sweep already applied"
	ErrNumbersLocked           TournamentError = "sequence numbers are locked"
	ErrCountdownNotElapsed     TournamentError = "check-in countdown has not elapsed"
	ErrUnknownGroup            TournamentError = "unknown group"
	ErrUnknownStatus           TournamentError = "unknown promotion status"
	ErrUnknownPhase            TournamentError = "unknown bracket phase"
	ErrUnknownRound            TournamentError = "unknown score round"
	ErrDuplicateName           TournamentError = "player name already registered"
	ErrNilConfig               TournamentError = "config cannot be nil"
	ErrNilPlayerRepo           TournamentError = "player repository cannot be nil"
	ErrNilMatchRepo            TournamentError = "match repository cannot be nil"
	ErrNilStateRepo            TournamentError = "state repository cannot be nil"
	ErrNilClock                TournamentError = "clock cannot be nil"
	ErrNilUUIDGenerator        TournamentError = "UUID generator cannot be nil"
	ErrNilSampler              TournamentError = "sampler cannot be nil"
)
