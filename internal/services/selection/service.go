package selection

import (
	"context"
	"errors"

	"github.com/mokutan/stagepass/internal/common/clock"
	"github.com/mokutan/stagepass/internal/common/uuid"
	"github.com/mokutan/stagepass/internal/models"
	matchRepo "github.com/mokutan/stagepass/internal/repositories/match"
	playerRepo "github.com/mokutan/stagepass/internal/repositories/player"
	selectionRepo "github.com/mokutan/stagepass/internal/repositories/selection"
)

// service implements the Service interface
type service struct {
	config        *Config
	playerRepo    playerRepo.Repository
	matchRepo     matchRepo.Repository
	selectionRepo selectionRepo.Repository
	clock         clock.Clock
	uuid          uuid.UUID
}

// NewService creates a new selection service
func NewService(cfg *Config, players playerRepo.Repository, matches matchRepo.Repository, selections selectionRepo.Repository, clk clock.Clock, uuidGen uuid.UUID) (*service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if players == nil {
		return nil, ErrNilPlayerRepo
	}
	if matches == nil {
		return nil, ErrNilMatchRepo
	}
	if selections == nil {
		return nil, ErrNilSelectionRepo
	}
	if clk == nil {
		return nil, ErrNilClock
	}
	if uuidGen == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		config:        cfg,
		playerRepo:    players,
		matchRepo:     matches,
		selectionRepo: selections,
		clock:         clk,
		uuid:          uuidGen,
	}, nil
}

// selfPickPhase reports whether a group picks its own songs in a phase
func (s *service) selfPickPhase(group models.Group, phase models.Phase) bool {
	for _, p := range s.config.SelfPickPhases[group] {
		if p == phase {
			return true
		}
	}
	return false
}

// getPlayer fetches a player, mapping the repository's not-found error
func (s *service) getPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	p, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

// activeMatch fetches the player's live match, mapping not-found
func (s *service) activeMatch(ctx context.Context, playerID string) (*models.Match, error) {
	m, err := s.matchRepo.GetActiveMatchByPlayer(ctx, &matchRepo.GetActiveMatchByPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrNoActiveMatch
		}
		return nil, err
	}
	return m, nil
}

// SubmitSong records a player's pick for their active match
func (s *service) SubmitSong(ctx context.Context, input *SubmitSongInput) (*SubmitSongOutput, error) {
	p, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	m, err := s.activeMatch(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	if !s.selfPickPhase(p.Group, m.Phase) {
		return nil, ErrNotSelectionPhase
	}

	sel := &models.SongSelection{
		ID:         s.uuid.NewUUID(),
		MatchID:    m.ID,
		PlayerID:   p.ID,
		SongName:   input.SongName,
		Difficulty: input.Difficulty,
		CreatedAt:  s.clock.Now(),
	}

	err = s.selectionRepo.CreateSelection(ctx, &selectionRepo.CreateSelectionInput{
		Selection: sel,
	})
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionExists) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	return &SubmitSongOutput{
		Selection: sel,
	}, nil
}

// BanOpponentSong spends the player's ban on the opponent's live pick
func (s *service) BanOpponentSong(ctx context.Context, input *BanOpponentSongInput) (*BanOpponentSongOutput, error) {
	p, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if p.BanUsed {
		return nil, ErrBanAlreadyUsed
	}

	m, err := s.activeMatch(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	if !s.selfPickPhase(p.Group, m.Phase) {
		return nil, ErrNotSelectionPhase
	}

	target, err := s.selectionRepo.GetActiveSelection(ctx, &selectionRepo.GetActiveSelectionInput{
		MatchID:  m.ID,
		PlayerID: m.OpponentOf(p.ID),
	})
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			return nil, ErrNoTargetSelection
		}
		return nil, err
	}

	if err := s.selectionRepo.BanSelection(ctx, &selectionRepo.BanSelectionInput{
		SelectionID: target.ID,
		BannedByID:  p.ID,
	}); err != nil {
		return nil, err
	}

	// The ban is spent even if the opponent picks the same song again
	p.BanUsed = true
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: p,
	}); err != nil {
		return nil, err
	}

	target.Banned = true
	target.BannedByID = p.ID

	return &BanOpponentSongOutput{
		BannedSelection: target,
	}, nil
}

// cohortRevealed reports whether every live cohort match has a live pick on
// both sides; finished matches no longer hold the gate closed
func (s *service) cohortRevealed(ctx context.Context, phase models.Phase, group models.Group) (bool, error) {
	matches, err := s.matchRepo.ListMatches(ctx, &matchRepo.ListMatchesInput{
		Phase: phase,
		Group: group,
	})
	if err != nil {
		return false, err
	}

	for _, m := range matches {
		if !m.Active() {
			continue
		}
		for _, playerID := range []string{m.Player1ID, m.Player2ID} {
			_, err := s.selectionRepo.GetActiveSelection(ctx, &selectionRepo.GetActiveSelectionInput{
				MatchID:  m.ID,
				PlayerID: playerID,
			})
			if err != nil {
				if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
					return false, nil
				}
				return false, err
			}
		}
	}

	return true, nil
}

// GetActiveMatch returns the player's match view with the reveal gate applied
func (s *service) GetActiveMatch(ctx context.Context, input *GetActiveMatchInput) (*GetActiveMatchOutput, error) {
	p, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	m, err := s.activeMatch(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	opponent, err := s.getPlayer(ctx, m.OpponentOf(p.ID))
	if err != nil {
		return nil, err
	}

	out := &GetActiveMatchOutput{
		Match:    m,
		Opponent: opponent,
	}

	own, err := s.selectionRepo.GetActiveSelection(ctx, &selectionRepo.GetActiveSelectionInput{
		MatchID:  m.ID,
		PlayerID: p.ID,
	})
	if err != nil && !errors.Is(err, selectionRepo.ErrSelectionNotFound) {
		return nil, err
	}
	out.OwnSelection = own

	revealed, err := s.cohortRevealed(ctx, m.Phase, m.Group)
	if err != nil {
		return nil, err
	}
	out.Revealed = revealed

	theirs, err := s.selectionRepo.GetActiveSelection(ctx, &selectionRepo.GetActiveSelectionInput{
		MatchID:  m.ID,
		PlayerID: opponent.ID,
	})
	if err != nil && !errors.Is(err, selectionRepo.ErrSelectionNotFound) {
		return nil, err
	}

	if revealed && theirs != nil {
		out.OpponentSelection = theirs
		out.OpponentSongName = theirs.SongName
	} else {
		out.OpponentSongName = HiddenSongPlaceholder
	}

	return out, nil
}

// MatchesOverview returns the admin view of a cohort's picks
func (s *service) MatchesOverview(ctx context.Context, input *MatchesOverviewInput) (*MatchesOverviewOutput, error) {
	matches, err := s.matchRepo.ListMatches(ctx, &matchRepo.ListMatchesInput{
		Phase: input.Phase,
		Group: input.Group,
	})
	if err != nil {
		return nil, err
	}

	out := &MatchesOverviewOutput{
		Revealed: true,
	}

	for _, m := range matches {
		overview := &MatchOverview{
			Match:      m,
			Selections: make(map[string]*models.SongSelection),
			Ready:      true,
		}

		all, err := s.selectionRepo.ListByMatch(ctx, &selectionRepo.ListByMatchInput{
			MatchID: m.ID,
		})
		if err != nil {
			return nil, err
		}
		for _, sel := range all {
			if sel.Banned {
				overview.BannedSelections = append(overview.BannedSelections, sel)
			} else {
				overview.Selections[sel.PlayerID] = sel
			}
		}

		for _, playerID := range []string{m.Player1ID, m.Player2ID} {
			if overview.Selections[playerID] == nil {
				overview.Ready = false
			}
		}

		if m.Active() && !overview.Ready {
			out.Revealed = false
		}

		out.Matches = append(out.Matches, overview)
	}

	return out, nil
}
