package catalog

// CatalogError is a custom error type for song-catalog errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSongNotFound     CatalogError = "song not found"
	ErrEmptyName        CatalogError = "song name cannot be empty"
	ErrNilSongRepo      CatalogError = "song repository cannot be nil"
	ErrNilClock         CatalogError = "clock cannot be nil"
	ErrNilUUIDGenerator CatalogError = "UUID generator cannot be nil"
)
