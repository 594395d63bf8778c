package player

import "github.com/mokutan/stagepass/internal/models"

type SavePlayerInput struct {
	Player *models.Player

	// PreviousName, when set and different from the player's current name,
	// has its index entry removed in the same write
	PreviousName string
}

type GetPlayerInput struct {
	PlayerID string
}

type GetPlayerByNameInput struct {
	Name string
}

type ListPlayersInput struct {
	// Group filters by group when set; empty returns every player
	Group models.Group
}

type DeletePlayerInput struct {
	PlayerID string
}

type NextMatchNumberInput struct {
	Group models.Group
}

type SetMatchNumberCounterInput struct {
	Group models.Group
	Value int
}

type AcquireMachineInput struct {
	Group    models.Group
	PlayerID string
}

type AcquireMachineOutput struct {
	// Acquired is true when the player now holds (or already held) the cabinet
	Acquired bool

	// HolderID is the occupying player when the claim was refused
	HolderID string
}

type ReleaseMachineInput struct {
	Group    models.Group
	PlayerID string
}
