package models

import (
	"time"
)

// SystemState is the singleton record of global tournament flags
type SystemState struct {
	// NumbersLocked indicates sequence numbers have been randomized and locked
	NumbersLocked bool

	// MatchStarted indicates the tournament (and check-in countdown) has begun
	MatchStarted bool

	// CheckinEnabled indicates players may check in
	CheckinEnabled bool

	// StartTime is when the tournament started; zero means no countdown runs
	StartTime time.Time

	// TimeoutProcessed indicates the check-in timeout sweep has been applied
	TimeoutProcessed bool
}

// DrawStatus represents the lottery's broadcast state
type DrawStatus string

const (
	// DrawStatusIdle indicates no draw is in progress
	DrawStatusIdle DrawStatus = "idle"

	// DrawStatusRolling indicates the on-screen roll animation is running
	DrawStatusRolling DrawStatus = "rolling"

	// DrawStatusFinished indicates a result has been drawn and frozen
	DrawStatusFinished DrawStatus = "finished"
)

// SongDrawState is the singleton record of the song lottery
type SongDrawState struct {
	// Status is the current lottery state
	Status DrawStatus

	// Phase and Group identify the catalog bucket being drawn from
	Phase Phase
	Group Group

	// SelectedSongIDs holds the drawn songs (0-2), in draw order; immutable
	// once Status is finished until the next reset/start
	SelectedSongIDs []string

	// UpdatedAt is when the state last changed
	UpdatedAt time.Time
}
