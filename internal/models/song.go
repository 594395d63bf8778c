package models

import (
	"time"
)

// Song is a catalog entry available to the lottery draw for one phase/group
type Song struct {
	// ID is the unique identifier for the song
	ID string

	// Name is the display title
	Name string

	// Phase is the round this song is configured for
	Phase Phase

	// Group is the group this song is configured for
	Group Group

	// Active indicates the song may still be drawn
	Active bool

	// CreatedAt is when the song was added to the catalog
	CreatedAt time.Time
}

// SongSelection is one player's self-picked song for a match
type SongSelection struct {
	// ID is the unique identifier for the selection
	ID string

	// MatchID is the match this pick belongs to
	MatchID string

	// PlayerID is the player who submitted the pick
	PlayerID string

	// SongName is the self-picked song title
	SongName string

	// Difficulty is the chart difficulty level
	Difficulty int

	// Banned indicates the pick was struck by the opponent's ban skill
	Banned bool

	// BannedByID references the player who issued the ban, kept for audit
	BannedByID string

	// CreatedAt is when the pick was submitted
	CreatedAt time.Time
}
