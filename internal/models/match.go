package models

import (
	"time"
)

// Phase identifies a bracket round (or a song-catalog bucket) within a group
type Phase string

const (
	// PhaseQualifier is the initial scoring round
	PhaseQualifier Phase = "qualifier"

	// PhaseRevival is the second-chance round for qualifier near-misses
	PhaseRevival Phase = "revival"

	// PhaseTop16 is the round of 16
	PhaseTop16 Phase = "top16"

	// PhaseTop8 is the quarterfinal round
	PhaseTop8 Phase = "top8"

	// PhaseTop4 is the semifinal round
	PhaseTop4 Phase = "top4"

	// PhaseTop4Peak is the peak group's semifinal round
	PhaseTop4Peak Phase = "top4_peak"

	// PhaseSemifinal is a song-catalog bucket for the curated semifinal pool
	PhaseSemifinal Phase = "semifinal"

	// PhaseFinal is the final round
	PhaseFinal Phase = "final"

	// PhaseFinalPeak is the peak group's final round
	PhaseFinalPeak Phase = "final_peak"
)

// MatchStatus represents the lifecycle of a head-to-head match
type MatchStatus string

const (
	// MatchStatusPending indicates a match created but not yet started
	MatchStatusPending MatchStatus = "pending"

	// MatchStatusOngoing indicates a match currently being played
	MatchStatusOngoing MatchStatus = "ongoing"

	// MatchStatusFinished indicates a match with a decided winner
	MatchStatusFinished MatchStatus = "finished"
)

// Match represents one head-to-head pairing
type Match struct {
	// ID is the unique identifier for the match
	ID string

	// Phase is the bracket round this match belongs to
	Phase Phase

	// Group is the bracket group this match belongs to
	Group Group

	// Player1ID and Player2ID reference the two sides
	Player1ID string
	Player2ID string

	// WinnerID references the advancing player once decided
	WinnerID string

	// Status is the current lifecycle state
	Status MatchStatus

	// CreatedAt is when the pairing was generated
	CreatedAt time.Time
}

// Active reports whether the match still counts against the one-active-match
// invariant for its players.
func (m *Match) Active() bool {
	return m.Status == MatchStatusPending || m.Status == MatchStatusOngoing
}

// OpponentOf returns the other side of the match, or "" if playerID is not in it.
func (m *Match) OpponentOf(playerID string) string {
	switch playerID {
	case m.Player1ID:
		return m.Player2ID
	case m.Player2ID:
		return m.Player1ID
	}
	return ""
}
