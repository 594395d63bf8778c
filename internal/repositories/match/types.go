package match

import "github.com/mokutan/stagepass/internal/models"

type CreateMatchInput struct {
	Match *models.Match
}

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetActiveMatchByPlayerInput struct {
	PlayerID string
}

type ListMatchesInput struct {
	Phase models.Phase
	Group models.Group
}
