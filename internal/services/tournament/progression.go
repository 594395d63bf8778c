package tournament

import (
	"github.com/mokutan/stagepass/internal/models"
)

// autoTransitions lists the promotion moves the engine may make on its own.
// Anything outside this table is forward-rank violation territory and only an
// admin override can force it.
var autoTransitions = map[models.PromotionStatus][]models.PromotionStatus{
	models.StatusNone: {
		models.StatusTop16,
		models.StatusRevival,
		models.StatusTop4Peak,
		models.StatusEliminated,
		models.StatusTimeoutEliminated,
	},
	models.StatusRevival: {
		models.StatusTop16,
		models.StatusEliminated,
	},
	models.StatusTop16: {
		models.StatusTop8,
		models.StatusTop16Out,
		models.StatusEliminated,
	},
	models.StatusTop8: {
		models.StatusTop4,
		models.StatusTop8Out,
	},
	models.StatusTop4: {
		models.StatusFinal,
		models.StatusFinalQualified,
		models.StatusThird,
		models.StatusFourth,
	},
	models.StatusTop4Peak: {
		models.StatusFinalQualified,
		models.StatusThird,
		models.StatusFourth,
	},
	models.StatusFinal: {
		models.StatusChampion,
		models.StatusRunnerUp,
	},
	models.StatusFinalQualified: {
		models.StatusChampion,
		models.StatusRunnerUp,
	},
}

// validTransition reports whether the engine may move a player from one
// status to the other without an admin override.
func validTransition(from, to models.PromotionStatus) bool {
	for _, allowed := range autoTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// phaseOutcome is what a decided match does to each side's status
type phaseOutcome struct {
	Winner models.PromotionStatus
	Loser  models.PromotionStatus
}

// bracketOutcomes maps a match's phase to the status each side lands on
var bracketOutcomes = map[models.Phase]phaseOutcome{
	models.PhaseTop16:     {Winner: models.StatusTop8, Loser: models.StatusTop16Out},
	models.PhaseTop8:      {Winner: models.StatusTop4, Loser: models.StatusTop8Out},
	models.PhaseTop4:      {Winner: models.StatusFinalQualified, Loser: models.StatusFourth},
	models.PhaseTop4Peak:  {Winner: models.StatusFinalQualified, Loser: models.StatusFourth},
	models.PhaseFinal:     {Winner: models.StatusChampion, Loser: models.StatusRunnerUp},
	models.PhaseFinalPeak: {Winner: models.StatusChampion, Loser: models.StatusRunnerUp},
}

// pairingCandidates maps a bracket phase to the statuses eligible to be paired
// into it
var pairingCandidates = map[models.Phase][]models.PromotionStatus{
	models.PhaseTop16:     {models.StatusTop16},
	models.PhaseTop8:      {models.StatusTop8},
	models.PhaseTop4:      {models.StatusTop4},
	models.PhaseTop4Peak:  {models.StatusTop4Peak},
	models.PhaseFinal:     {models.StatusFinalQualified, models.StatusFinal},
	models.PhaseFinalPeak: {models.StatusFinalQualified, models.StatusFinal},
}

// semifinalPhases need a manual third/fourth ranking pass when decided by forfeit
var semifinalPhases = map[models.Phase]bool{
	models.PhaseTop4:     true,
	models.PhaseTop4Peak: true,
}

// statusRank orders statuses for the rankings view, best first
var statusRank = map[models.PromotionStatus]int{
	models.StatusChampion:          1,
	models.StatusRunnerUp:          2,
	models.StatusThird:             3,
	models.StatusFourth:            4,
	models.StatusFinalQualified:    5,
	models.StatusFinal:             6,
	models.StatusTop4:              7,
	models.StatusTop4Peak:          7,
	models.StatusTop8:              8,
	models.StatusTop8Out:           9,
	models.StatusTop16:             10,
	models.StatusTop16Out:          11,
	models.StatusRevival:           12,
	models.StatusNone:              13,
	models.StatusEliminated:        14,
	models.StatusTimeoutEliminated: 15,
}
