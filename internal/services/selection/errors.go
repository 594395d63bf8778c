package selection

// SelectionError is a custom error type for song-selection errors
type SelectionError string

// Error implements the error interface
func (e SelectionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPlayerNotFound     SelectionError = "player not found"
	ErrNoActiveMatch      SelectionError = "player has no active match"
	ErrNotSelectionPhase  SelectionError = "match phase is not a self-pick phase"
	ErrAlreadySubmitted   SelectionError = "player already has a live selection for this match"
	ErrBanAlreadyUsed     SelectionError = "player already spent their ban"
	ErrNoTargetSelection  SelectionError = "opponent has no live selection to ban"
	ErrNilConfig          SelectionError = "config cannot be nil"
	ErrNilPlayerRepo      SelectionError = "player repository cannot be nil"
	ErrNilMatchRepo       SelectionError = "match repository cannot be nil"
	ErrNilSelectionRepo   SelectionError = "selection repository cannot be nil"
	ErrNilClock           SelectionError = "clock cannot be nil"
	ErrNilUUIDGenerator   SelectionError = "UUID generator cannot be nil"
)
