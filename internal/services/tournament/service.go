package tournament

import (
	"context"
	"errors"
	"sort"

	"github.com/mokutan/stagepass/internal/common/clock"
	"github.com/mokutan/stagepass/internal/common/uuid"
	"github.com/mokutan/stagepass/internal/models"
	matchRepo "github.com/mokutan/stagepass/internal/repositories/match"
	playerRepo "github.com/mokutan/stagepass/internal/repositories/player"
	stateRepo "github.com/mokutan/stagepass/internal/repositories/state"
	"github.com/mokutan/stagepass/internal/rng"
)

// service implements the Service interface
type service struct {
	config     *Config
	playerRepo playerRepo.Repository
	matchRepo  matchRepo.Repository
	stateRepo  stateRepo.Repository
	clock      clock.Clock
	uuid       uuid.UUID
	sampler    rng.Sampler
}

// NewService creates a new tournament service
func NewService(cfg *Config, players playerRepo.Repository, matches matchRepo.Repository, states stateRepo.Repository, clk clock.Clock, uuidGen uuid.UUID, sampler rng.Sampler) (*service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if players == nil {
		return nil, ErrNilPlayerRepo
	}
	if matches == nil {
		return nil, ErrNilMatchRepo
	}
	if states == nil {
		return nil, ErrNilStateRepo
	}
	if clk == nil {
		return nil, ErrNilClock
	}
	if uuidGen == nil {
		return nil, ErrNilUUIDGenerator
	}
	if sampler == nil {
		return nil, ErrNilSampler
	}

	return &service{
		config:     cfg,
		playerRepo: players,
		matchRepo:  matches,
		stateRepo:  states,
		clock:      clk,
		uuid:       uuidGen,
		sampler:    sampler,
	}, nil
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

// CheckIn marks a player arrived and allocates their sequence number
func (s *service) CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error) {
	state, err := s.stateRepo.GetSystemState(ctx)
	if err != nil {
		return nil, err
	}
	if !state.CheckinEnabled {
		return nil, ErrCheckInClosed
	}

	p, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if p.PromotionStatus == models.StatusTimeoutEliminated {
		return nil, ErrTimeoutEliminated
	}

	// Repeating the tap is fine; the number stays put
	if p.CheckedIn {
		return &CheckInOutput{
			Player:           p,
			AlreadyCheckedIn: true,
		}, nil
	}

	n, err := s.playerRepo.NextMatchNumber(ctx, &playerRepo.NextMatchNumberInput{
		Group: p.Group,
	})
	if err != nil {
		return nil, err
	}

	p.CheckedIn = true
	p.MatchNumber = n

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: p,
	}); err != nil {
		return nil, err
	}

	return &CheckInOutput{
		Player: p,
	}, nil
}

// eliminated reports whether a player has been knocked out entirely and may
// no longer touch the cabinet or submit scores
func eliminated(p *models.Player) bool {
	return p.PromotionStatus == models.StatusEliminated ||
		p.PromotionStatus == models.StatusTimeoutEliminated
}

// ToggleOnMachine claims or releases the group's cabinet for a player
func (s *service) ToggleOnMachine(ctx context.Context, input *ToggleOnMachineInput) (*ToggleOnMachineOutput, error) {
	p, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !p.CheckedIn {
		return nil, ErrNotCheckedIn
	}
	if eliminated(p) {
		return nil, ErrEliminated
	}

	if p.OnMachine {
		if err := s.playerRepo.ReleaseMachine(ctx, &playerRepo.ReleaseMachineInput{
			Group:    p.Group,
			PlayerID: p.ID,
		}); err != nil {
			return nil, err
		}
		p.OnMachine = false
	} else {
		out, err := s.playerRepo.AcquireMachine(ctx, &playerRepo.AcquireMachineInput{
			Group:    p.Group,
			PlayerID: p.ID,
		})
		if err != nil {
			return nil, err
		}
		if !out.Acquired {
			return nil, ErrMachineOccupied
		}
		p.OnMachine = true
	}

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: p,
	}); err != nil {
		return nil, err
	}

	return &ToggleOnMachineOutput{
		Player: p,
	}, nil
}

// SubmitScore records a score into the player's open round
func (s *service) SubmitScore(ctx context.Context, input *SubmitScoreInput) (*SubmitScoreOutput, error) {
	p, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !p.CheckedIn {
		return nil, ErrNotCheckedIn
	}
	if p.Forfeited {
		return nil, ErrNoRoundApplicable
	}

	var round ScoreRound
	switch {
	case p.QualifierScore == nil:
		score := input.Score
		p.QualifierScore = &score
		round = RoundQualifier
	case p.PromotionStatus == models.StatusRevival && p.RevivalScore == nil:
		score := input.Score
		p.RevivalScore = &score
		round = RoundRevival
	default:
		return nil, ErrNoRoundApplicable
	}

	// A submitted score implies the player stepped off the cabinet
	p.OnMachine = false

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: p,
	}); err != nil {
		return nil, err
	}

	if err := s.playerRepo.ReleaseMachine(ctx, &playerRepo.ReleaseMachineInput{
		Group:    p.Group,
		PlayerID: p.ID,
	}); err != nil {
		return nil, err
	}

	return &SubmitScoreOutput{
		Player: p,
		Round:  round,
	}, nil
}

// sortByScore orders players best-first with deterministic tie-breaks:
// score desc, then import time asc, then name asc
func sortByScore(players []*models.Player, score func(*models.Player) *float64) {
	sort.SliceStable(players, func(i, j int) bool {
		si, sj := score(players[i]), score(players[j])
		if *si != *sj {
			return *si > *sj
		}
		if !players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].CreatedAt.Before(players[j].CreatedAt)
		}
		return players[i].Name < players[j].Name
	})
}

// RunPromotion applies the qualifier cutoff bands or the revival promotion
func (s *service) RunPromotion(ctx context.Context, input *RunPromotionInput) (*RunPromotionOutput, error) {
	rules, ok := s.config.Groups[input.Group]
	if !ok {
		return nil, ErrUnknownGroup
	}

	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{
		Group: input.Group,
	})
	if err != nil {
		return nil, err
	}

	round := input.Round
	if round == "" {
		round = RoundQualifier
	}

	var eligible []*models.Player
	var assigned []models.PromotionStatus

	switch round {
	case RoundQualifier:
		for _, p := range players {
			if !p.Forfeited && p.QualifierScore != nil {
				eligible = append(eligible, p)
			}
		}
		sortByScore(eligible, func(p *models.Player) *float64 { return p.QualifierScore })

		assigned = make([]models.PromotionStatus, len(eligible))
		idx := 0
		for _, band := range rules.Bands {
			for n := 0; n < band.Count && idx < len(eligible); n++ {
				assigned[idx] = band.Status
				idx++
			}
		}
		for ; idx < len(eligible); idx++ {
			assigned[idx] = models.StatusEliminated
		}

	case RoundRevival:
		for _, p := range players {
			if !p.Forfeited && p.PromotionStatus == models.StatusRevival && p.RevivalScore != nil {
				eligible = append(eligible, p)
			}
		}
		sortByScore(eligible, func(p *models.Player) *float64 { return p.RevivalScore })

		assigned = make([]models.PromotionStatus, len(eligible))
		for i := range eligible {
			if i < rules.RevivalSlots {
				assigned[i] = models.StatusTop16
			} else {
				assigned[i] = models.StatusEliminated
			}
		}

	default:
		return nil, ErrUnknownRound
	}

	out := &RunPromotionOutput{
		ByStatus: make(map[models.PromotionStatus]int),
	}

	for i, p := range eligible {
		out.ByStatus[assigned[i]]++
		if p.PromotionStatus == assigned[i] {
			continue
		}

		// The cutoff is authoritative over prior runs, so assignment is
		// direct, not transition-checked
		p.PromotionStatus = assigned[i]
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: p,
		}); err != nil {
			return nil, err
		}
		out.Updated++
	}

	return out, nil
}

// GeneratePairings builds min-max pairings for a phase: best remaining seed
// against worst remaining seed, working inwards
func (s *service) GeneratePairings(ctx context.Context, input *GeneratePairingsInput) (*GeneratePairingsOutput, error) {
	candidates, ok := pairingCandidates[input.Phase]
	if !ok {
		return nil, ErrUnknownPhase
	}
	if _, ok := s.config.Groups[input.Group]; !ok {
		return nil, ErrUnknownGroup
	}

	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{
		Group: input.Group,
	})
	if err != nil {
		return nil, err
	}

	var field []*models.Player
	for _, p := range players {
		if p.Forfeited {
			continue
		}
		for _, status := range candidates {
			if p.PromotionStatus == status {
				field = append(field, p)
				break
			}
		}
	}

	if len(field) < 2 {
		return nil, ErrInsufficientPlayers
	}

	// Seed order: qualifier score desc (peak players carry none, so rating
	// decides), then rating desc, then name asc
	sort.SliceStable(field, func(i, j int) bool {
		si, sj := -1.0, -1.0
		if field[i].QualifierScore != nil {
			si = *field[i].QualifierScore
		}
		if field[j].QualifierScore != nil {
			sj = *field[j].QualifierScore
		}
		if si != sj {
			return si > sj
		}
		if field[i].Rating != field[j].Rating {
			return field[i].Rating > field[j].Rating
		}
		return field[i].Name < field[j].Name
	})

	out := &GeneratePairingsOutput{}
	n := len(field)
	if n%2 == 1 {
		out.UnpairedSeed = field[n/2].ID
	}

	now := s.clock.Now()
	for i := 0; i < n/2; i++ {
		m := &models.Match{
			ID:        s.uuid.NewUUID(),
			Phase:     input.Phase,
			Group:     input.Group,
			Player1ID: field[i].ID,
			Player2ID: field[n-1-i].ID,
			Status:    models.MatchStatusPending,
			CreatedAt: now,
		}

		err := s.matchRepo.CreateMatch(ctx, &matchRepo.CreateMatchInput{
			Match: m,
		})
		if err != nil {
			// Re-running the generator must not duplicate standing matches
			if errors.Is(err, matchRepo.ErrPlayerHasActiveMatch) {
				out.Skipped++
				continue
			}
			return nil, err
		}

		out.Matches = append(out.Matches, m)
	}

	return out, nil
}

// preBracketStatuses are players a forfeit simply eliminates, no cascade
var preBracketStatuses = map[models.PromotionStatus]bool{
	models.StatusNone:    true,
	models.StatusRevival: true,
}

// Forfeit withdraws a player and cascades their active match if one stands
func (s *service) Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error) {
	p, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if p.Forfeited {
		return nil, ErrAlreadyForfeited
	}

	p.Forfeited = true
	if p.OnMachine {
		if err := s.playerRepo.ReleaseMachine(ctx, &playerRepo.ReleaseMachineInput{
			Group:    p.Group,
			PlayerID: p.ID,
		}); err != nil {
			return nil, err
		}
		p.OnMachine = false
	}

	// Record the withdrawal before touching any match so a partial failure
	// never leaves a forfeited player looking active
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: p,
	}); err != nil {
		return nil, err
	}

	if preBracketStatuses[p.PromotionStatus] {
		p.PromotionStatus = models.StatusEliminated
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: p,
		}); err != nil {
			return nil, err
		}
		return &ForfeitOutput{Player: p}, nil
	}

	m, err := s.matchRepo.GetActiveMatchByPlayer(ctx, &matchRepo.GetActiveMatchByPlayerInput{
		PlayerID: p.ID,
	})
	if err != nil {
		if !errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, err
		}

		// Between rounds: drop to eliminated where the state machine allows,
		// otherwise the flag alone records the withdrawal
		if validTransition(p.PromotionStatus, models.StatusEliminated) {
			p.PromotionStatus = models.StatusEliminated
			if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
				Player: p,
			}); err != nil {
				return nil, err
			}
		}
		return &ForfeitOutput{Player: p}, nil
	}

	outcome, ok := bracketOutcomes[m.Phase]
	if !ok {
		return nil, ErrUnknownPhase
	}

	opponentID := m.OpponentOf(p.ID)
	m.WinnerID = opponentID
	m.Status = models.MatchStatusFinished

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: m,
	}); err != nil {
		return nil, err
	}

	if !validTransition(p.PromotionStatus, outcome.Loser) {
		return nil, ErrInvalidTransition
	}
	p.PromotionStatus = outcome.Loser
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: p,
	}); err != nil {
		return nil, err
	}

	opponent, err := s.getPlayer(ctx, opponentID)
	if err != nil {
		return nil, err
	}
	if !validTransition(opponent.PromotionStatus, outcome.Winner) {
		return nil, ErrInvalidTransition
	}
	opponent.PromotionStatus = outcome.Winner
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: opponent,
	}); err != nil {
		return nil, err
	}

	return &ForfeitOutput{
		Player:             p,
		Match:              m,
		NeedsManualRanking: semifinalPhases[m.Phase],
	}, nil
}

// remainingSeconds computes the check-in countdown remainder; -1 means no
// countdown is running
func (s *service) remainingSeconds(state *models.SystemState) int {
	if !state.MatchStarted || state.StartTime.IsZero() {
		return -1
	}

	remaining := s.config.CheckInCountdown - s.clock.Now().Sub(state.StartTime)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds())
}

// GetSystemState returns the global flags and countdown remainder
func (s *service) GetSystemState(ctx context.Context) (*GetSystemStateOutput, error) {
	state, err := s.stateRepo.GetSystemState(ctx)
	if err != nil {
		return nil, err
	}

	return &GetSystemStateOutput{
		State:            state,
		RemainingSeconds: s.remainingSeconds(state),
	}, nil
}

// RunCheckInTimeoutSweep eliminates everyone still unchecked
func (s *service) RunCheckInTimeoutSweep(ctx context.Context) (*RunCheckInTimeoutSweepOutput, error) {
	state, err := s.stateRepo.GetSystemState(ctx)
	if err != nil {
		return nil, err
	}

	if !state.MatchStarted {
		return nil, ErrMatchNotStarted
	}
	if state.TimeoutProcessed {
		return nil, ErrTimeoutAlreadyProcessed
	}
	if state.StartTime.IsZero() {
		return nil, ErrCountdownNotElapsed
	}
	if s.clock.Now().Sub(state.StartTime) < s.config.CheckInCountdown-s.config.TimeoutGrace {
		return nil, ErrCountdownNotElapsed
	}

	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	out := &RunCheckInTimeoutSweepOutput{}
	for _, p := range players {
		if p.CheckedIn || p.Forfeited {
			continue
		}

		p.Forfeited = true
		p.PromotionStatus = models.StatusTimeoutEliminated
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: p,
		}); err != nil {
			return nil, err
		}
		out.EliminatedIDs = append(out.EliminatedIDs, p.ID)
	}

	state.TimeoutProcessed = true
	if err := s.stateRepo.SaveSystemState(ctx, &stateRepo.SaveSystemStateInput{
		State: state,
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// EnableCheckIn opens check-in
func (s *service) EnableCheckIn(ctx context.Context) error {
	state, err := s.stateRepo.GetSystemState(ctx)
	if err != nil {
		return err
	}

	state.CheckinEnabled = true
	return s.stateRepo.SaveSystemState(ctx, &stateRepo.SaveSystemStateInput{
		State: state,
	})
}

// StartMatch starts the tournament and the check-in countdown
func (s *service) StartMatch(ctx context.Context) (*StartMatchOutput, error) {
	state, err := s.stateRepo.GetSystemState(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	state.MatchStarted = true
	state.StartTime = now
	state.TimeoutProcessed = false

	if err := s.stateRepo.SaveSystemState(ctx, &stateRepo.SaveSystemStateInput{
		State: state,
	}); err != nil {
		return nil, err
	}

	return &StartMatchOutput{
		StartTime: now,
	}, nil
}

// RandomizeNumbers shuffles every group's checked-in sequence numbers and
// locks them against further reshuffling
func (s *service) RandomizeNumbers(ctx context.Context) (*RandomizeNumbersOutput, error) {
	state, err := s.stateRepo.GetSystemState(ctx)
	if err != nil {
		return nil, err
	}
	if state.NumbersLocked {
		return nil, ErrNumbersLocked
	}

	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	byGroup := make(map[models.Group][]*models.Player)
	for _, p := range players {
		if p.CheckedIn {
			byGroup[p.Group] = append(byGroup[p.Group], p)
		}
	}

	out := &RandomizeNumbersOutput{
		Assigned: make(map[string]int),
	}

	for group, field := range byGroup {
		// Start from a stable order so the shuffle alone decides the result
		sort.Slice(field, func(i, j int) bool {
			return field[i].Name < field[j].Name
		})
		s.sampler.Shuffle(len(field), func(i, j int) {
			field[i], field[j] = field[j], field[i]
		})

		for i, p := range field {
			p.MatchNumber = i + 1
			if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
				Player: p,
			}); err != nil {
				return nil, err
			}
			out.Assigned[p.ID] = p.MatchNumber
		}

		// Late check-ins continue counting after the shuffled block
		if err := s.playerRepo.SetMatchNumberCounter(ctx, &playerRepo.SetMatchNumberCounterInput{
			Group: group,
			Value: len(field),
		}); err != nil {
			return nil, err
		}
	}

	state.NumbersLocked = true
	if err := s.stateRepo.SaveSystemState(ctx, &stateRepo.SaveSystemStateInput{
		State: state,
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// UnlockNumbers releases the sequence-number lock
func (s *service) UnlockNumbers(ctx context.Context) error {
	state, err := s.stateRepo.GetSystemState(ctx)
	if err != nil {
		return err
	}

	state.NumbersLocked = false
	return s.stateRepo.SaveSystemState(ctx, &stateRepo.SaveSystemStateInput{
		State: state,
	})
}

// ImportPlayers registers a batch of players
func (s *service) ImportPlayers(ctx context.Context, input *ImportPlayersInput) (*ImportPlayersOutput, error) {
	out := &ImportPlayersOutput{}
	now := s.clock.Now()

	for _, entry := range input.Entries {
		if entry.Name == "" {
			continue
		}
		if _, ok := s.config.Groups[entry.Group]; !ok {
			return nil, ErrUnknownGroup
		}

		_, err := s.playerRepo.GetPlayerByName(ctx, &playerRepo.GetPlayerByNameInput{
			Name: entry.Name,
		})
		if err == nil {
			out.SkippedNames = append(out.SkippedNames, entry.Name)
			continue
		}
		if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, err
		}

		p := &models.Player{
			ID:              s.uuid.NewUUID(),
			Name:            entry.Name,
			Group:           entry.Group,
			Rating:          entry.Rating,
			PromotionStatus: models.StatusNone,
			CreatedAt:       now,
		}
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: p,
		}); err != nil {
			return nil, err
		}
		out.Imported++
	}

	return out, nil
}

// UpdatePlayer applies an admin patch to a player
func (s *service) UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error) {
	p, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	patch := input.Patch
	if patch == nil {
		return &UpdatePlayerOutput{Player: p}, nil
	}

	previousName := ""
	if patch.Name != nil && *patch.Name != p.Name {
		existing, err := s.playerRepo.GetPlayerByName(ctx, &playerRepo.GetPlayerByNameInput{
			Name: *patch.Name,
		})
		if err == nil && existing.ID != p.ID {
			return nil, ErrDuplicateName
		}
		if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, err
		}
		previousName = p.Name
		p.Name = *patch.Name
	}

	if patch.Group != nil {
		if _, ok := s.config.Groups[*patch.Group]; !ok {
			return nil, ErrUnknownGroup
		}
		p.Group = *patch.Group
	}

	// Admin status moves are the escape hatch: value-checked, not
	// transition-checked
	if patch.PromotionStatus != nil {
		if !models.ValidStatus(*patch.PromotionStatus) {
			return nil, ErrUnknownStatus
		}
		p.PromotionStatus = *patch.PromotionStatus
	}

	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.QualifierScore != nil {
		p.QualifierScore = patch.QualifierScore
	}
	if patch.RevivalScore != nil {
		p.RevivalScore = patch.RevivalScore
	}
	if patch.CheckedIn != nil {
		p.CheckedIn = *patch.CheckedIn
	}
	if patch.MatchNumber != nil {
		p.MatchNumber = *patch.MatchNumber
	}

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player:       p,
		PreviousName: previousName,
	}); err != nil {
		return nil, err
	}

	return &UpdatePlayerOutput{Player: p}, nil
}

// DeletePlayer removes a player from the roster
func (s *service) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	err := s.playerRepo.DeletePlayer(ctx, &playerRepo.DeletePlayerInput{
		PlayerID: input.PlayerID,
	})
	if errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return ErrPlayerNotFound
	}
	return err
}

// ListPlayers returns the roster ordered for display
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{
		Group: input.Group,
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].Group != players[j].Group {
			return players[i].Group < players[j].Group
		}
		// Checked-in players first, by sequence number
		ni, nj := players[i].MatchNumber, players[j].MatchNumber
		if (ni == 0) != (nj == 0) {
			return nj == 0
		}
		if ni != nj {
			return ni < nj
		}
		return players[i].Name < players[j].Name
	})

	return &ListPlayersOutput{Players: players}, nil
}

// Rankings returns a group ordered by placement, then qualifier score
func (s *service) Rankings(ctx context.Context, input *RankingsInput) (*RankingsOutput, error) {
	if _, ok := s.config.Groups[input.Group]; !ok {
		return nil, ErrUnknownGroup
	}

	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{
		Group: input.Group,
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(players, func(i, j int) bool {
		ri, rj := statusRank[players[i].PromotionStatus], statusRank[players[j].PromotionStatus]
		if ri != rj {
			return ri < rj
		}
		si, sj := -1.0, -1.0
		if players[i].QualifierScore != nil {
			si = *players[i].QualifierScore
		}
		if players[j].QualifierScore != nil {
			sj = *players[j].QualifierScore
		}
		if si != sj {
			return si > sj
		}
		return players[i].Name < players[j].Name
	})

	out := &RankingsOutput{}
	for i, p := range players {
		out.Entries = append(out.Entries, &RankingEntry{
			Rank:   i + 1,
			Player: p,
		})
	}

	return out, nil
}

// Dashboard returns the admin overview of every group
func (s *service) Dashboard(ctx context.Context) (*DashboardOutput, error) {
	state, err := s.stateRepo.GetSystemState(ctx)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	out := &DashboardOutput{
		State:            state,
		RemainingSeconds: s.remainingSeconds(state),
		Groups:           make(map[models.Group]*GroupSummary),
	}

	for group := range s.config.Groups {
		out.Groups[group] = &GroupSummary{
			ByStatus: make(map[models.PromotionStatus]int),
		}
	}

	for _, p := range players {
		summary, ok := out.Groups[p.Group]
		if !ok {
			summary = &GroupSummary{
				ByStatus: make(map[models.PromotionStatus]int),
			}
			out.Groups[p.Group] = summary
		}

		summary.Total++
		if p.CheckedIn {
			summary.CheckedIn++
		}
		if p.OnMachine {
			summary.OnMachineName = p.Name
		}
		summary.ByStatus[p.PromotionStatus]++
	}

	return out, nil
}
