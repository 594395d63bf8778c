package models

import (
	"time"
)

// Group identifies which bracket group a player competes in
type Group string

const (
	// GroupBeginner is the entry-level group
	GroupBeginner Group = "beginner"

	// GroupAdvanced is the intermediate group
	GroupAdvanced Group = "advanced"

	// GroupPeak is the invitational top group
	GroupPeak Group = "peak"
)

// PromotionStatus tracks how far a player has progressed through the tournament
type PromotionStatus string

const (
	// StatusNone indicates a player still in (or before) the qualifier round
	StatusNone PromotionStatus = "none"

	// StatusRevival indicates a qualifier near-miss playing the second-chance round
	StatusRevival PromotionStatus = "revival"

	// StatusEliminated indicates a player knocked out before bracket play
	StatusEliminated PromotionStatus = "eliminated"

	// StatusTimeoutEliminated indicates a player disqualified by the check-in deadline
	StatusTimeoutEliminated PromotionStatus = "timeout_eliminated"

	// StatusTop16 indicates a player seeded into the round of 16
	StatusTop16 PromotionStatus = "top16"

	// StatusTop16Out indicates a player who lost in the round of 16
	StatusTop16Out PromotionStatus = "top16_out"

	// StatusTop8 indicates a player advanced to the quarterfinals
	StatusTop8 PromotionStatus = "top8"

	// StatusTop8Out indicates a player who lost in the quarterfinals
	StatusTop8Out PromotionStatus = "top8_out"

	// StatusTop4 indicates a player advanced to the semifinals
	StatusTop4 PromotionStatus = "top4"

	// StatusTop4Peak indicates a peak-group player seeded straight into their semifinal
	StatusTop4Peak PromotionStatus = "top4_peak"

	// StatusFinal indicates a player placed into the final by an admin
	StatusFinal PromotionStatus = "final"

	// StatusFinalQualified indicates a semifinal winner waiting for the final
	StatusFinalQualified PromotionStatus = "final_qualified"

	// StatusChampion is the tournament winner
	StatusChampion PromotionStatus = "champion"

	// StatusRunnerUp is the losing finalist
	StatusRunnerUp PromotionStatus = "runner_up"

	// StatusThird is third place, set manually after the semifinals
	StatusThird PromotionStatus = "third"

	// StatusFourth is fourth place, set manually (or by semifinal forfeit)
	StatusFourth PromotionStatus = "fourth"
)

// KnownGroups lists every valid group value.
var KnownGroups = []Group{GroupBeginner, GroupAdvanced, GroupPeak}

// KnownStatuses lists every valid promotion status value.
var KnownStatuses = []PromotionStatus{
	StatusNone, StatusRevival, StatusEliminated, StatusTimeoutEliminated,
	StatusTop16, StatusTop16Out, StatusTop8, StatusTop8Out,
	StatusTop4, StatusTop4Peak, StatusFinal, StatusFinalQualified,
	StatusChampion, StatusRunnerUp, StatusThird, StatusFourth,
}

// ValidGroup reports whether g is a known group value.
func ValidGroup(g Group) bool {
	for _, k := range KnownGroups {
		if k == g {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known promotion status value.
func ValidStatus(s PromotionStatus) bool {
	for _, k := range KnownStatuses {
		if k == s {
			return true
		}
	}
	return false
}

// Player represents a registered competitor
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the player's registered name, unique across the roster
	Name string

	// Group is the bracket group the player competes in
	Group Group

	// CheckedIn indicates the player has arrived on site
	CheckedIn bool

	// MatchNumber is the player's sequence number, unique per group among
	// checked-in players
	MatchNumber int

	// OnMachine indicates the player currently occupies their group's cabinet
	OnMachine bool

	// PromotionStatus is how far the player has progressed
	PromotionStatus PromotionStatus

	// Rating is the imported seed rating
	Rating int

	// QualifierScore is the qualifier round score, nil until submitted
	QualifierScore *float64

	// RevivalScore is the second-chance round score, nil until submitted
	RevivalScore *float64

	// Forfeited indicates the player has withdrawn
	Forfeited bool

	// BanUsed indicates the player has spent their once-per-tournament ban
	BanUsed bool

	// CreatedAt is when the player was imported; it is the deterministic
	// tie-break for equal qualifier scores
	CreatedAt time.Time
}
