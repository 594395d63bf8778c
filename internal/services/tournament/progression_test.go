package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mokutan/stagepass/internal/models"
)

func TestValidTransitionForwardOnly(t *testing.T) {
	// The happy path through the whole bracket
	assert.True(t, validTransition(models.StatusNone, models.StatusTop16))
	assert.True(t, validTransition(models.StatusNone, models.StatusRevival))
	assert.True(t, validTransition(models.StatusRevival, models.StatusTop16))
	assert.True(t, validTransition(models.StatusTop16, models.StatusTop8))
	assert.True(t, validTransition(models.StatusTop8, models.StatusTop4))
	assert.True(t, validTransition(models.StatusTop4, models.StatusFinalQualified))
	assert.True(t, validTransition(models.StatusFinalQualified, models.StatusChampion))

	// Peak players enter at their own semifinal
	assert.True(t, validTransition(models.StatusNone, models.StatusTop4Peak))
	assert.True(t, validTransition(models.StatusTop4Peak, models.StatusFinalQualified))

	// Admin-placed finalists can still be decided
	assert.True(t, validTransition(models.StatusFinal, models.StatusRunnerUp))

	// Backwards movement is never automatic
	assert.False(t, validTransition(models.StatusTop8, models.StatusTop16))
	assert.False(t, validTransition(models.StatusChampion, models.StatusFinal))
	assert.False(t, validTransition(models.StatusEliminated, models.StatusTop16))
	assert.False(t, validTransition(models.StatusTop16Out, models.StatusTop8))

	// Skipping rounds is not automatic either
	assert.False(t, validTransition(models.StatusTop16, models.StatusTop4))
	assert.False(t, validTransition(models.StatusNone, models.StatusChampion))
}

func TestBracketOutcomesCoverEveryBracketPhase(t *testing.T) {
	for _, phase := range []models.Phase{
		models.PhaseTop16, models.PhaseTop8, models.PhaseTop4,
		models.PhaseTop4Peak, models.PhaseFinal, models.PhaseFinalPeak,
	} {
		outcome, ok := bracketOutcomes[phase]
		assert.True(t, ok, "phase %s has no outcome", phase)
		assert.NotEmpty(t, outcome.Winner)
		assert.NotEmpty(t, outcome.Loser)
	}

	// Scoring rounds never decide matches
	_, ok := bracketOutcomes[models.PhaseQualifier]
	assert.False(t, ok)
	_, ok = bracketOutcomes[models.PhaseRevival]
	assert.False(t, ok)
}

func TestOutcomesAreValidTransitionsFromCandidates(t *testing.T) {
	// Every pairing candidate must be able to reach both outcomes of its
	// phase, otherwise a decided match would wedge the state machine
	for phase, candidates := range pairingCandidates {
		outcome := bracketOutcomes[phase]
		for _, status := range candidates {
			assert.True(t, validTransition(status, outcome.Winner),
				"%s cannot win %s", status, phase)
			assert.True(t, validTransition(status, outcome.Loser),
				"%s cannot lose %s", status, phase)
		}
	}
}

func TestStatusRankOrdersPlacementsFirst(t *testing.T) {
	assert.Less(t, statusRank[models.StatusChampion], statusRank[models.StatusRunnerUp])
	assert.Less(t, statusRank[models.StatusRunnerUp], statusRank[models.StatusThird])
	assert.Less(t, statusRank[models.StatusThird], statusRank[models.StatusFourth])
	assert.Less(t, statusRank[models.StatusFourth], statusRank[models.StatusTop8Out])
	assert.Less(t, statusRank[models.StatusTop8Out], statusRank[models.StatusTop16Out])
	assert.Less(t, statusRank[models.StatusTop16Out], statusRank[models.StatusEliminated])

	// Every known status has a rank
	for _, status := range models.KnownStatuses {
		_, ok := statusRank[status]
		assert.True(t, ok, "status %s has no rank", status)
	}
}
