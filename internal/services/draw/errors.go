package draw

// DrawError is a custom error type for song-draw errors
type DrawError string

// Error implements the error interface
func (e DrawError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoSongsConfigured DrawError = "no active songs configured for this phase and group"
	ErrDrawNotRolling    DrawError = "no draw is rolling"
	ErrNilConfig         DrawError = "config cannot be nil"
	ErrNilSongRepo       DrawError = "song repository cannot be nil"
	ErrNilStateRepo      DrawError = "state repository cannot be nil"
	ErrNilClock          DrawError = "clock cannot be nil"
	ErrNilSampler        DrawError = "sampler cannot be nil"
)
