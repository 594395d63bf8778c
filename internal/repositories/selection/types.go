package selection

import "github.com/mokutan/stagepass/internal/models"

type CreateSelectionInput struct {
	Selection *models.SongSelection
}

type GetSelectionInput struct {
	SelectionID string
}

type GetActiveSelectionInput struct {
	MatchID  string
	PlayerID string
}

type ListByMatchInput struct {
	MatchID string
}

type BanSelectionInput struct {
	SelectionID string

	// BannedByID is the opponent spending their ban
	BannedByID string
}
