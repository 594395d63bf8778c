package tournament

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/mokutan/stagepass/internal/common/clock/mocks"
	uuidMocks "github.com/mokutan/stagepass/internal/common/uuid/mocks"
	"github.com/mokutan/stagepass/internal/models"
	matchRepo "github.com/mokutan/stagepass/internal/repositories/match"
	matchMocks "github.com/mokutan/stagepass/internal/repositories/match/mocks"
	playerRepo "github.com/mokutan/stagepass/internal/repositories/player"
	playerMocks "github.com/mokutan/stagepass/internal/repositories/player/mocks"
	stateRepo "github.com/mokutan/stagepass/internal/repositories/state"
	stateMocks "github.com/mokutan/stagepass/internal/repositories/state/mocks"
	"github.com/mokutan/stagepass/internal/rng"
)

type TournamentServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockPlayerRepo *playerMocks.MockRepository
	mockMatchRepo  *matchMocks.MockRepository
	mockStateRepo  *stateMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	svc            Service
	ctx            context.Context

	testTime time.Time
}

func (s *TournamentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockMatchRepo = matchMocks.NewMockRepository(s.mockCtrl)
	s.mockStateRepo = stateMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	svc, err := NewService(nil, s.mockPlayerRepo, s.mockMatchRepo, s.mockStateRepo, s.mockClock, s.mockUUID, rng.New(&rng.Config{Seed: 1}))
	s.Require().NoError(err)
	s.svc = svc
}

func (s *TournamentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTournamentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TournamentServiceTestSuite))
}

func floatPtr(f float64) *float64 {
	return &f
}

func (s *TournamentServiceTestSuite) expectGetPlayer(p *models.Player) {
	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: p.ID}).
		Return(p, nil)
}

func (s *TournamentServiceTestSuite) captureSavedPlayers(saved *[]*models.Player) {
	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *playerRepo.SavePlayerInput) error {
			copied := *in.Player
			*saved = append(*saved, &copied)
			return nil
		}).
		AnyTimes()
}

func (s *TournamentServiceTestSuite) TestCheckInSuccess() {
	p := &models.Player{
		ID:              "p1",
		Name:            "MIKU",
		Group:           models.GroupAdvanced,
		PromotionStatus: models.StatusNone,
	}

	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{CheckinEnabled: true}, nil)
	s.expectGetPlayer(p)
	s.mockPlayerRepo.EXPECT().
		NextMatchNumber(s.ctx, &playerRepo.NextMatchNumberInput{Group: models.GroupAdvanced}).
		Return(5, nil)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.svc.CheckIn(s.ctx, &CheckInInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.False(out.AlreadyCheckedIn)
	s.True(out.Player.CheckedIn)
	s.Equal(5, out.Player.MatchNumber)
}

func (s *TournamentServiceTestSuite) TestCheckInClosed() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{}, nil)

	_, err := s.svc.CheckIn(s.ctx, &CheckInInput{PlayerID: "p1"})
	s.Require().ErrorIs(err, ErrCheckInClosed)
}

func (s *TournamentServiceTestSuite) TestCheckInRepeatIsSuccess() {
	p := &models.Player{
		ID:          "p1",
		Group:       models.GroupAdvanced,
		CheckedIn:   true,
		MatchNumber: 3,
	}

	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{CheckinEnabled: true}, nil)
	s.expectGetPlayer(p)

	out, err := s.svc.CheckIn(s.ctx, &CheckInInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.True(out.AlreadyCheckedIn)

	// The number must not move
	s.Equal(3, out.Player.MatchNumber)
}

func (s *TournamentServiceTestSuite) TestCheckInTimeoutEliminated() {
	p := &models.Player{
		ID:              "p1",
		Group:           models.GroupAdvanced,
		PromotionStatus: models.StatusTimeoutEliminated,
	}

	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{CheckinEnabled: true}, nil)
	s.expectGetPlayer(p)

	_, err := s.svc.CheckIn(s.ctx, &CheckInInput{PlayerID: "p1"})
	s.Require().ErrorIs(err, ErrTimeoutEliminated)
}

func (s *TournamentServiceTestSuite) TestCheckInPlayerNotFound() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{CheckinEnabled: true}, nil)
	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, gomock.Any()).
		Return(nil, playerRepo.ErrPlayerNotFound)

	_, err := s.svc.CheckIn(s.ctx, &CheckInInput{PlayerID: "missing"})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *TournamentServiceTestSuite) TestToggleOnMachineAcquires() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, CheckedIn: true}

	s.expectGetPlayer(p)
	s.mockPlayerRepo.EXPECT().
		AcquireMachine(s.ctx, &playerRepo.AcquireMachineInput{Group: models.GroupAdvanced, PlayerID: "p1"}).
		Return(&playerRepo.AcquireMachineOutput{Acquired: true}, nil)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.svc.ToggleOnMachine(s.ctx, &ToggleOnMachineInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.True(out.Player.OnMachine)
}

func (s *TournamentServiceTestSuite) TestToggleOnMachineOccupied() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, CheckedIn: true}

	s.expectGetPlayer(p)
	s.mockPlayerRepo.EXPECT().
		AcquireMachine(s.ctx, gomock.Any()).
		Return(&playerRepo.AcquireMachineOutput{Acquired: false, HolderID: "p2"}, nil)

	_, err := s.svc.ToggleOnMachine(s.ctx, &ToggleOnMachineInput{PlayerID: "p1"})
	s.Require().ErrorIs(err, ErrMachineOccupied)
}

func (s *TournamentServiceTestSuite) TestToggleOnMachineReleases() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, CheckedIn: true, OnMachine: true}

	s.expectGetPlayer(p)
	s.mockPlayerRepo.EXPECT().
		ReleaseMachine(s.ctx, &playerRepo.ReleaseMachineInput{Group: models.GroupAdvanced, PlayerID: "p1"}).
		Return(nil)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.svc.ToggleOnMachine(s.ctx, &ToggleOnMachineInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.False(out.Player.OnMachine)
}

func (s *TournamentServiceTestSuite) TestToggleOnMachineRequiresCheckIn() {
	// Never checked in, and already eliminated on top of it: the cabinet
	// stays out of reach either way
	p := &models.Player{
		ID:              "p1",
		Group:           models.GroupAdvanced,
		PromotionStatus: models.StatusEliminated,
	}

	s.expectGetPlayer(p)

	_, err := s.svc.ToggleOnMachine(s.ctx, &ToggleOnMachineInput{PlayerID: "p1"})
	s.Require().ErrorIs(err, ErrNotCheckedIn)
}

func (s *TournamentServiceTestSuite) TestToggleOnMachineRejectsEliminated() {
	for _, status := range []models.PromotionStatus{
		models.StatusEliminated,
		models.StatusTimeoutEliminated,
	} {
		p := &models.Player{
			ID:              "p1",
			Group:           models.GroupAdvanced,
			CheckedIn:       true,
			PromotionStatus: status,
		}

		s.expectGetPlayer(p)

		_, err := s.svc.ToggleOnMachine(s.ctx, &ToggleOnMachineInput{PlayerID: "p1"})
		s.Require().ErrorIs(err, ErrEliminated)
	}
}

func (s *TournamentServiceTestSuite) TestSubmitScoreQualifier() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, CheckedIn: true, OnMachine: true}

	s.expectGetPlayer(p)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		Return(nil)
	s.mockPlayerRepo.EXPECT().
		ReleaseMachine(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.svc.SubmitScore(s.ctx, &SubmitScoreInput{PlayerID: "p1", Score: 9912.5})
	s.Require().NoError(err)
	s.Equal(RoundQualifier, out.Round)
	s.Require().NotNil(out.Player.QualifierScore)
	s.Equal(9912.5, *out.Player.QualifierScore)
	s.False(out.Player.OnMachine)
}

func (s *TournamentServiceTestSuite) TestSubmitScoreRevival() {
	p := &models.Player{
		ID:              "p1",
		Group:           models.GroupAdvanced,
		CheckedIn:       true,
		PromotionStatus: models.StatusRevival,
		QualifierScore:  floatPtr(8000),
	}

	s.expectGetPlayer(p)
	s.mockPlayerRepo.EXPECT().SavePlayer(s.ctx, gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().ReleaseMachine(s.ctx, gomock.Any()).Return(nil)

	out, err := s.svc.SubmitScore(s.ctx, &SubmitScoreInput{PlayerID: "p1", Score: 8500})
	s.Require().NoError(err)
	s.Equal(RoundRevival, out.Round)
	s.Require().NotNil(out.Player.RevivalScore)
	s.Equal(8500.0, *out.Player.RevivalScore)
}

func (s *TournamentServiceTestSuite) TestSubmitScoreNoRoundOpen() {
	// Qualifier recorded and not in revival: nothing left to score
	p := &models.Player{
		ID:              "p1",
		Group:           models.GroupAdvanced,
		CheckedIn:       true,
		PromotionStatus: models.StatusTop16,
		QualifierScore:  floatPtr(9000),
	}

	s.expectGetPlayer(p)

	_, err := s.svc.SubmitScore(s.ctx, &SubmitScoreInput{PlayerID: "p1", Score: 1})
	s.Require().ErrorIs(err, ErrNoRoundApplicable)
}

func (s *TournamentServiceTestSuite) TestSubmitScoreRequiresCheckIn() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced}

	s.expectGetPlayer(p)

	_, err := s.svc.SubmitScore(s.ctx, &SubmitScoreInput{PlayerID: "p1", Score: 9000})
	s.Require().ErrorIs(err, ErrNotCheckedIn)
}

// promotionTestService builds a service with a small two-band group so the
// cutoff fixtures stay readable
func (s *TournamentServiceTestSuite) promotionTestService() Service {
	cfg := &Config{
		Groups: map[models.Group]*GroupRules{
			models.GroupAdvanced: {
				Bands: []PromotionBand{
					{Count: 2, Status: models.StatusTop16},
					{Count: 1, Status: models.StatusRevival},
				},
				RevivalSlots: 1,
			},
		},
		CheckInCountdown: time.Hour,
		TimeoutGrace:     time.Minute,
	}

	svc, err := NewService(cfg, s.mockPlayerRepo, s.mockMatchRepo, s.mockStateRepo, s.mockClock, s.mockUUID, rng.New(&rng.Config{Seed: 1}))
	s.Require().NoError(err)
	return svc
}

func (s *TournamentServiceTestSuite) TestRunPromotionQualifierBands() {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	players := []*models.Player{
		{ID: "p1", Name: "A", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone, QualifierScore: floatPtr(9100), CreatedAt: base},
		{ID: "p2", Name: "B", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone, QualifierScore: floatPtr(9500), CreatedAt: base},
		{ID: "p3", Name: "C", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone, QualifierScore: floatPtr(8800), CreatedAt: base},
		{ID: "p4", Name: "D", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone, QualifierScore: floatPtr(8700), CreatedAt: base},
		// No score yet: untouched by the cutoff
		{ID: "p5", Name: "E", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone},
		// Forfeited: excluded even with a score
		{ID: "p6", Name: "F", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone, QualifierScore: floatPtr(9999), Forfeited: true},
	}

	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{Group: models.GroupAdvanced}).
		Return(players, nil)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	out, err := s.promotionTestService().RunPromotion(s.ctx, &RunPromotionInput{
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)

	s.Equal(4, out.Updated)
	s.Equal(2, out.ByStatus[models.StatusTop16])
	s.Equal(1, out.ByStatus[models.StatusRevival])
	s.Equal(1, out.ByStatus[models.StatusEliminated])

	statuses := make(map[string]models.PromotionStatus)
	for _, p := range saved {
		statuses[p.ID] = p.PromotionStatus
	}
	s.Equal(models.StatusTop16, statuses["p2"])
	s.Equal(models.StatusTop16, statuses["p1"])
	s.Equal(models.StatusRevival, statuses["p3"])
	s.Equal(models.StatusEliminated, statuses["p4"])
	s.NotContains(statuses, "p5")
	s.NotContains(statuses, "p6")
}

func (s *TournamentServiceTestSuite) TestRunPromotionQualifierTieBreaksByImportTime() {
	early := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	late := early.Add(time.Minute)
	players := []*models.Player{
		{ID: "late", Name: "LATE", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone, QualifierScore: floatPtr(9000), CreatedAt: late},
		{ID: "early", Name: "EARLY", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone, QualifierScore: floatPtr(9000), CreatedAt: early},
		{ID: "top", Name: "TOP", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone, QualifierScore: floatPtr(9999), CreatedAt: late},
	}

	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, gomock.Any()).
		Return(players, nil)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	_, err := s.promotionTestService().RunPromotion(s.ctx, &RunPromotionInput{
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)

	statuses := make(map[string]models.PromotionStatus)
	for _, p := range saved {
		statuses[p.ID] = p.PromotionStatus
	}

	// Equal scores: the earlier import takes the last top16 slot
	s.Equal(models.StatusTop16, statuses["top"])
	s.Equal(models.StatusTop16, statuses["early"])
	s.Equal(models.StatusRevival, statuses["late"])
}

func (s *TournamentServiceTestSuite) TestRunPromotionRevival() {
	players := []*models.Player{
		{ID: "p1", Name: "A", Group: models.GroupAdvanced, PromotionStatus: models.StatusRevival, RevivalScore: floatPtr(8800)},
		{ID: "p2", Name: "B", Group: models.GroupAdvanced, PromotionStatus: models.StatusRevival, RevivalScore: floatPtr(9200)},
		{ID: "p3", Name: "C", Group: models.GroupAdvanced, PromotionStatus: models.StatusRevival, RevivalScore: floatPtr(8100)},
		// Already seeded players are not part of the revival pool
		{ID: "p4", Name: "D", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop16, QualifierScore: floatPtr(9500)},
	}

	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, gomock.Any()).
		Return(players, nil)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	out, err := s.promotionTestService().RunPromotion(s.ctx, &RunPromotionInput{
		Group: models.GroupAdvanced,
		Round: RoundRevival,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Updated)

	statuses := make(map[string]models.PromotionStatus)
	for _, p := range saved {
		statuses[p.ID] = p.PromotionStatus
	}
	s.Equal(models.StatusTop16, statuses["p2"])
	s.Equal(models.StatusEliminated, statuses["p1"])
	s.Equal(models.StatusEliminated, statuses["p3"])
	s.NotContains(statuses, "p4")
}

func (s *TournamentServiceTestSuite) TestRunPromotionUnknownGroup() {
	_, err := s.svc.RunPromotion(s.ctx, &RunPromotionInput{Group: "pro"})
	s.Require().ErrorIs(err, ErrUnknownGroup)
}

func (s *TournamentServiceTestSuite) seededField(n int) []*models.Player {
	players := make([]*models.Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, &models.Player{
			ID:              string(rune('a' + i)),
			Name:            string(rune('A' + i)),
			Group:           models.GroupAdvanced,
			PromotionStatus: models.StatusTop16,
			QualifierScore:  floatPtr(float64(1000 - i*100)),
		})
	}
	return players
}

func (s *TournamentServiceTestSuite) TestGeneratePairingsMinMax() {
	field := s.seededField(4) // seeds a > b > c > d

	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{Group: models.GroupAdvanced}).
		Return(field, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	ids := []string{"m1", "m2"}
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}).Times(2)

	var created []*models.Match
	s.mockMatchRepo.EXPECT().
		CreateMatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *matchRepo.CreateMatchInput) error {
			created = append(created, in.Match)
			return nil
		}).
		Times(2)

	out, err := s.svc.GeneratePairings(s.ctx, &GeneratePairingsInput{
		Phase: models.PhaseTop16,
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Len(out.Matches, 2)
	s.Empty(out.UnpairedSeed)
	s.Zero(out.Skipped)

	// Best vs worst, second vs third
	s.Equal("a", created[0].Player1ID)
	s.Equal("d", created[0].Player2ID)
	s.Equal("b", created[1].Player1ID)
	s.Equal("c", created[1].Player2ID)
	s.Equal(models.MatchStatusPending, created[0].Status)
	s.Equal(s.testTime, created[0].CreatedAt)
}

func (s *TournamentServiceTestSuite) TestGeneratePairingsOddFieldLeavesMiddleSeed() {
	field := s.seededField(5) // seeds a > b > c > d > e

	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, gomock.Any()).
		Return(field, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("m").Times(2)
	s.mockMatchRepo.EXPECT().
		CreateMatch(s.ctx, gomock.Any()).
		Return(nil).
		Times(2)

	out, err := s.svc.GeneratePairings(s.ctx, &GeneratePairingsInput{
		Phase: models.PhaseTop16,
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Len(out.Matches, 2)
	s.Equal("c", out.UnpairedSeed)
}

func (s *TournamentServiceTestSuite) TestGeneratePairingsSkipsBusyPlayers() {
	field := s.seededField(4)

	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, gomock.Any()).
		Return(field, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("m").Times(2)

	calls := 0
	s.mockMatchRepo.EXPECT().
		CreateMatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *matchRepo.CreateMatchInput) error {
			calls++
			if calls == 1 {
				return matchRepo.ErrPlayerHasActiveMatch
			}
			return nil
		}).
		Times(2)

	out, err := s.svc.GeneratePairings(s.ctx, &GeneratePairingsInput{
		Phase: models.PhaseTop16,
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Len(out.Matches, 1)
	s.Equal(1, out.Skipped)
}

func (s *TournamentServiceTestSuite) TestGeneratePairingsInsufficientPlayers() {
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, gomock.Any()).
		Return(s.seededField(1), nil)

	_, err := s.svc.GeneratePairings(s.ctx, &GeneratePairingsInput{
		Phase: models.PhaseTop16,
		Group: models.GroupAdvanced,
	})
	s.Require().ErrorIs(err, ErrInsufficientPlayers)
}

func (s *TournamentServiceTestSuite) TestForfeitPreBracket() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone}

	s.expectGetPlayer(p)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	out, err := s.svc.Forfeit(s.ctx, &ForfeitInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.True(out.Player.Forfeited)
	s.Equal(models.StatusEliminated, out.Player.PromotionStatus)
	s.Nil(out.Match)
	s.False(out.NeedsManualRanking)
}

func (s *TournamentServiceTestSuite) TestForfeitCascadesActiveMatch() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop8}
	opponent := &models.Player{ID: "p2", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop8}
	m := &models.Match{
		ID:        "m1",
		Phase:     models.PhaseTop8,
		Group:     models.GroupAdvanced,
		Player1ID: "p1",
		Player2ID: "p2",
		Status:    models.MatchStatusOngoing,
	}

	s.expectGetPlayer(p)
	s.mockMatchRepo.EXPECT().
		GetActiveMatchByPlayer(s.ctx, &matchRepo.GetActiveMatchByPlayerInput{PlayerID: "p1"}).
		Return(m, nil)

	var savedMatch *models.Match
	s.mockMatchRepo.EXPECT().
		SaveMatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *matchRepo.SaveMatchInput) error {
			savedMatch = in.Match
			return nil
		})
	s.expectGetPlayer(opponent)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	out, err := s.svc.Forfeit(s.ctx, &ForfeitInput{PlayerID: "p1"})
	s.Require().NoError(err)

	s.Equal(models.MatchStatusFinished, savedMatch.Status)
	s.Equal("p2", savedMatch.WinnerID)
	s.Equal(models.StatusTop8Out, out.Player.PromotionStatus)
	s.Equal(models.StatusTop4, opponent.PromotionStatus)
	s.False(out.NeedsManualRanking)
}

func (s *TournamentServiceTestSuite) TestForfeitSemifinalNeedsManualRanking() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop4}
	opponent := &models.Player{ID: "p2", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop4}
	m := &models.Match{
		ID:        "m1",
		Phase:     models.PhaseTop4,
		Group:     models.GroupAdvanced,
		Player1ID: "p2",
		Player2ID: "p1",
		Status:    models.MatchStatusPending,
	}

	s.expectGetPlayer(p)
	s.mockMatchRepo.EXPECT().
		GetActiveMatchByPlayer(s.ctx, gomock.Any()).
		Return(m, nil)
	s.mockMatchRepo.EXPECT().SaveMatch(s.ctx, gomock.Any()).Return(nil)
	s.expectGetPlayer(opponent)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	out, err := s.svc.Forfeit(s.ctx, &ForfeitInput{PlayerID: "p1"})
	s.Require().NoError(err)

	s.Equal(models.StatusFourth, out.Player.PromotionStatus)
	s.Equal(models.StatusFinalQualified, opponent.PromotionStatus)
	s.True(out.NeedsManualRanking)
}

func (s *TournamentServiceTestSuite) TestForfeitBetweenRounds() {
	// A top16 seed with no standing match drops straight to eliminated
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop16}

	s.expectGetPlayer(p)
	s.mockMatchRepo.EXPECT().
		GetActiveMatchByPlayer(s.ctx, gomock.Any()).
		Return(nil, matchRepo.ErrMatchNotFound)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	out, err := s.svc.Forfeit(s.ctx, &ForfeitInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(models.StatusEliminated, out.Player.PromotionStatus)
	s.Nil(out.Match)
}

func (s *TournamentServiceTestSuite) TestForfeitTwiceFails() {
	p := &models.Player{ID: "p1", Group: models.GroupAdvanced, Forfeited: true}

	s.expectGetPlayer(p)

	_, err := s.svc.Forfeit(s.ctx, &ForfeitInput{PlayerID: "p1"})
	s.Require().ErrorIs(err, ErrAlreadyForfeited)
}

func (s *TournamentServiceTestSuite) TestGetSystemStateNoCountdown() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{}, nil)

	out, err := s.svc.GetSystemState(s.ctx)
	s.Require().NoError(err)
	s.Equal(-1, out.RemainingSeconds)
}

func (s *TournamentServiceTestSuite) TestGetSystemStateCountdownRemaining() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{
			MatchStarted: true,
			StartTime:    s.testTime.Add(-10 * time.Minute),
		}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	out, err := s.svc.GetSystemState(s.ctx)
	s.Require().NoError(err)
	s.Equal(50*60, out.RemainingSeconds)
}

func (s *TournamentServiceTestSuite) TestGetSystemStateCountdownFloorsAtZero() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{
			MatchStarted: true,
			StartTime:    s.testTime.Add(-2 * time.Hour),
		}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	out, err := s.svc.GetSystemState(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, out.RemainingSeconds)
}

func (s *TournamentServiceTestSuite) TestTimeoutSweepRequiresStart() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{}, nil)

	_, err := s.svc.RunCheckInTimeoutSweep(s.ctx)
	s.Require().ErrorIs(err, ErrMatchNotStarted)
}

func (s *TournamentServiceTestSuite) TestTimeoutSweepAppliesOnce() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{MatchStarted: true, TimeoutProcessed: true}, nil)

	_, err := s.svc.RunCheckInTimeoutSweep(s.ctx)
	s.Require().ErrorIs(err, ErrTimeoutAlreadyProcessed)
}

func (s *TournamentServiceTestSuite) TestTimeoutSweepRefusedBeforeDeadline() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{
			MatchStarted: true,
			StartTime:    s.testTime.Add(-30 * time.Minute),
		}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	_, err := s.svc.RunCheckInTimeoutSweep(s.ctx)
	s.Require().ErrorIs(err, ErrCountdownNotElapsed)
}

func (s *TournamentServiceTestSuite) TestTimeoutSweepEliminatesUnchecked() {
	state := &models.SystemState{
		MatchStarted: true,
		StartTime:    s.testTime.Add(-time.Hour),
	}

	s.mockStateRepo.EXPECT().GetSystemState(s.ctx).Return(state, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{}).
		Return([]*models.Player{
			{ID: "in", CheckedIn: true, PromotionStatus: models.StatusNone},
			{ID: "out", PromotionStatus: models.StatusNone},
			{ID: "gone", Forfeited: true, PromotionStatus: models.StatusEliminated},
		}, nil)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	var savedState *models.SystemState
	s.mockStateRepo.EXPECT().
		SaveSystemState(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *stateRepo.SaveSystemStateInput) error {
			savedState = in.State
			return nil
		})

	out, err := s.svc.RunCheckInTimeoutSweep(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"out"}, out.EliminatedIDs)
	s.Require().Len(saved, 1)
	s.Equal(models.StatusTimeoutEliminated, saved[0].PromotionStatus)
	s.True(saved[0].Forfeited)
	s.True(savedState.TimeoutProcessed)
}

func (s *TournamentServiceTestSuite) TestStartMatchBeginsCountdown() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{TimeoutProcessed: true}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	var savedState *models.SystemState
	s.mockStateRepo.EXPECT().
		SaveSystemState(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *stateRepo.SaveSystemStateInput) error {
			savedState = in.State
			return nil
		})

	out, err := s.svc.StartMatch(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.testTime, out.StartTime)
	s.True(savedState.MatchStarted)
	s.Equal(s.testTime, savedState.StartTime)

	// A fresh start re-arms the sweep
	s.False(savedState.TimeoutProcessed)
}

func (s *TournamentServiceTestSuite) TestRandomizeNumbersShufflesAndLocks() {
	players := []*models.Player{
		{ID: "p1", Name: "A", Group: models.GroupAdvanced, CheckedIn: true, MatchNumber: 1},
		{ID: "p2", Name: "B", Group: models.GroupAdvanced, CheckedIn: true, MatchNumber: 2},
		{ID: "p3", Name: "C", Group: models.GroupAdvanced, CheckedIn: true, MatchNumber: 3},
		// Not checked in: keeps no number
		{ID: "p4", Name: "D", Group: models.GroupAdvanced},
	}

	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{}).
		Return(players, nil)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	s.mockPlayerRepo.EXPECT().
		SetMatchNumberCounter(s.ctx, &playerRepo.SetMatchNumberCounterInput{
			Group: models.GroupAdvanced,
			Value: 3,
		}).
		Return(nil)

	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{}, nil)

	var savedState *models.SystemState
	s.mockStateRepo.EXPECT().
		SaveSystemState(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *stateRepo.SaveSystemStateInput) error {
			savedState = in.State
			return nil
		})

	out, err := s.svc.RandomizeNumbers(s.ctx)
	s.Require().NoError(err)
	s.True(savedState.NumbersLocked)
	s.Len(out.Assigned, 3)
	s.NotContains(out.Assigned, "p4")

	// The assigned numbers are exactly 1..3
	seen := make(map[int]bool)
	for _, n := range out.Assigned {
		seen[n] = true
	}
	s.Equal(map[int]bool{1: true, 2: true, 3: true}, seen)
}

func (s *TournamentServiceTestSuite) TestRandomizeNumbersRefusedWhileLocked() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{NumbersLocked: true}, nil)

	// No ListPlayers, no saves: committed numbers stay untouched
	_, err := s.svc.RandomizeNumbers(s.ctx)
	s.Require().ErrorIs(err, ErrNumbersLocked)
}

func (s *TournamentServiceTestSuite) TestUnlockNumbers() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{NumbersLocked: true}, nil)

	var savedState *models.SystemState
	s.mockStateRepo.EXPECT().
		SaveSystemState(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *stateRepo.SaveSystemStateInput) error {
			savedState = in.State
			return nil
		})

	s.Require().NoError(s.svc.UnlockNumbers(s.ctx))
	s.False(savedState.NumbersLocked)
}

func (s *TournamentServiceTestSuite) TestImportPlayersSkipsDuplicateNames() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockPlayerRepo.EXPECT().
		GetPlayerByName(s.ctx, &playerRepo.GetPlayerByNameInput{Name: "MIKU"}).
		Return(nil, playerRepo.ErrPlayerNotFound)
	s.mockPlayerRepo.EXPECT().
		GetPlayerByName(s.ctx, &playerRepo.GetPlayerByNameInput{Name: "RIN"}).
		Return(&models.Player{ID: "existing", Name: "RIN"}, nil)

	s.mockUUID.EXPECT().NewUUID().Return("new-id")

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	out, err := s.svc.ImportPlayers(s.ctx, &ImportPlayersInput{
		Entries: []ImportPlayerEntry{
			{Name: "MIKU", Rating: 2300, Group: models.GroupAdvanced},
			{Name: "RIN", Rating: 2100, Group: models.GroupAdvanced},
		},
	})
	s.Require().NoError(err)
	s.Equal(1, out.Imported)
	s.Equal([]string{"RIN"}, out.SkippedNames)

	s.Require().Len(saved, 1)
	s.Equal("MIKU", saved[0].Name)
	s.Equal(models.StatusNone, saved[0].PromotionStatus)
	s.Equal(2300, saved[0].Rating)
}

func (s *TournamentServiceTestSuite) TestImportPlayersUnknownGroup() {
	_, err := s.svc.ImportPlayers(s.ctx, &ImportPlayersInput{
		Entries: []ImportPlayerEntry{
			{Name: "MIKU", Group: "pro"},
		},
	})
	s.Require().ErrorIs(err, ErrUnknownGroup)
}

func (s *TournamentServiceTestSuite) TestUpdatePlayerStatusOverrideBypassesTransitions() {
	// An admin can move a player backwards; the engine never can
	p := &models.Player{ID: "p1", Name: "MIKU", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop8}

	s.expectGetPlayer(p)

	var saved []*models.Player
	s.captureSavedPlayers(&saved)

	status := models.StatusTop16
	out, err := s.svc.UpdatePlayer(s.ctx, &UpdatePlayerInput{
		PlayerID: "p1",
		Patch:    &PlayerPatch{PromotionStatus: &status},
	})
	s.Require().NoError(err)
	s.Equal(models.StatusTop16, out.Player.PromotionStatus)
}

func (s *TournamentServiceTestSuite) TestUpdatePlayerUnknownStatus() {
	p := &models.Player{ID: "p1", Name: "MIKU", Group: models.GroupAdvanced}

	s.expectGetPlayer(p)

	status := models.PromotionStatus("winner")
	_, err := s.svc.UpdatePlayer(s.ctx, &UpdatePlayerInput{
		PlayerID: "p1",
		Patch:    &PlayerPatch{PromotionStatus: &status},
	})
	s.Require().ErrorIs(err, ErrUnknownStatus)
}

func (s *TournamentServiceTestSuite) TestUpdatePlayerRenameChecksUniqueness() {
	p := &models.Player{ID: "p1", Name: "MIKU", Group: models.GroupAdvanced}

	s.expectGetPlayer(p)
	s.mockPlayerRepo.EXPECT().
		GetPlayerByName(s.ctx, &playerRepo.GetPlayerByNameInput{Name: "RIN"}).
		Return(&models.Player{ID: "p2", Name: "RIN"}, nil)

	name := "RIN"
	_, err := s.svc.UpdatePlayer(s.ctx, &UpdatePlayerInput{
		PlayerID: "p1",
		Patch:    &PlayerPatch{Name: &name},
	})
	s.Require().ErrorIs(err, ErrDuplicateName)
}

func (s *TournamentServiceTestSuite) TestUpdatePlayerRenameDropsOldIndex() {
	p := &models.Player{ID: "p1", Name: "MIKU", Group: models.GroupAdvanced}

	s.expectGetPlayer(p)
	s.mockPlayerRepo.EXPECT().
		GetPlayerByName(s.ctx, gomock.Any()).
		Return(nil, playerRepo.ErrPlayerNotFound)

	var savedInput *playerRepo.SavePlayerInput
	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *playerRepo.SavePlayerInput) error {
			savedInput = in
			return nil
		})

	name := "MIKU39"
	out, err := s.svc.UpdatePlayer(s.ctx, &UpdatePlayerInput{
		PlayerID: "p1",
		Patch:    &PlayerPatch{Name: &name},
	})
	s.Require().NoError(err)
	s.Equal("MIKU39", out.Player.Name)
	s.Equal("MIKU", savedInput.PreviousName)
}

func (s *TournamentServiceTestSuite) TestRankingsOrdersByPlacementThenScore() {
	players := []*models.Player{
		{ID: "p1", Name: "A", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop8Out, QualifierScore: floatPtr(9100)},
		{ID: "p2", Name: "B", Group: models.GroupAdvanced, PromotionStatus: models.StatusChampion, QualifierScore: floatPtr(8800)},
		{ID: "p3", Name: "C", Group: models.GroupAdvanced, PromotionStatus: models.StatusTop8Out, QualifierScore: floatPtr(9300)},
		{ID: "p4", Name: "D", Group: models.GroupAdvanced, PromotionStatus: models.StatusRunnerUp, QualifierScore: floatPtr(9900)},
	}

	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{Group: models.GroupAdvanced}).
		Return(players, nil)

	out, err := s.svc.Rankings(s.ctx, &RankingsInput{Group: models.GroupAdvanced})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 4)

	s.Equal("p2", out.Entries[0].Player.ID)
	s.Equal("p4", out.Entries[1].Player.ID)
	s.Equal("p3", out.Entries[2].Player.ID)
	s.Equal("p1", out.Entries[3].Player.ID)
	s.Equal(1, out.Entries[0].Rank)
	s.Equal(4, out.Entries[3].Rank)
}

func (s *TournamentServiceTestSuite) TestDashboardSummarizesGroups() {
	s.mockStateRepo.EXPECT().
		GetSystemState(s.ctx).
		Return(&models.SystemState{}, nil)
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{}).
		Return([]*models.Player{
			{ID: "p1", Name: "A", Group: models.GroupAdvanced, CheckedIn: true, OnMachine: true, PromotionStatus: models.StatusTop16},
			{ID: "p2", Name: "B", Group: models.GroupAdvanced, PromotionStatus: models.StatusNone},
			{ID: "p3", Name: "C", Group: models.GroupPeak, CheckedIn: true, PromotionStatus: models.StatusTop4Peak},
		}, nil)

	out, err := s.svc.Dashboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(-1, out.RemainingSeconds)

	advanced := out.Groups[models.GroupAdvanced]
	s.Equal(2, advanced.Total)
	s.Equal(1, advanced.CheckedIn)
	s.Equal("A", advanced.OnMachineName)
	s.Equal(1, advanced.ByStatus[models.StatusTop16])

	peak := out.Groups[models.GroupPeak]
	s.Equal(1, peak.Total)

	// Every configured group has a row, players or not
	s.Contains(out.Groups, models.GroupBeginner)
}
