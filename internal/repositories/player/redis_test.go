package player

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mokutan/stagepass/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisFailsOnDeadConnection() {
	dead, err := miniredis.Run()
	s.Require().NoError(err)

	client := redis.NewClient(&redis.Options{
		Addr: dead.Addr(),
	})
	defer client.Close()
	dead.Close()

	_, err = NewRedis(&Config{RedisClient: client})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) savePlayer(id, name string, group models.Group) *models.Player {
	p := &models.Player{
		ID:              id,
		Name:            name,
		Group:           group,
		PromotionStatus: models.StatusNone,
		Rating:          2000,
		CreatedAt:       s.testNow,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: p,
	})
	s.Require().NoError(err)

	return p
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	score := 9987.0
	p := &models.Player{
		ID:              "test-player-id",
		Name:            "MIKU",
		Group:           models.GroupAdvanced,
		CheckedIn:       true,
		MatchNumber:     7,
		PromotionStatus: models.StatusTop16,
		Rating:          2350,
		QualifierScore:  &score,
		CreatedAt:       s.testNow,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: p,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-player-id", retrieved.ID)
	s.Equal("MIKU", retrieved.Name)
	s.Equal(models.GroupAdvanced, retrieved.Group)
	s.True(retrieved.CheckedIn)
	s.Equal(7, retrieved.MatchNumber)
	s.Equal(models.StatusTop16, retrieved.PromotionStatus)
	s.Equal(2350, retrieved.Rating)
	s.Require().NotNil(retrieved.QualifierScore)
	s.Equal(9987.0, *retrieved.QualifierScore)
	s.Nil(retrieved.RevivalScore)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSavePlayerRename() {
	p := s.savePlayer("p1", "MIKU", models.GroupAdvanced)

	p.Name = "MIKU39"
	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player:       p,
		PreviousName: "MIKU",
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayerByName(context.Background(), &GetPlayerByNameInput{
		Name: "MIKU39",
	})
	s.Require().NoError(err)
	s.Equal("p1", retrieved.ID)

	// The stale index entry is gone
	_, err = s.repo.GetPlayerByName(context.Background(), &GetPlayerByNameInput{
		Name: "MIKU",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "no-such-player",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
	s.Nil(retrieved)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerByName() {
	s.savePlayer("test-player-id", "MIKU", models.GroupAdvanced)

	retrieved, err := s.repo.GetPlayerByName(context.Background(), &GetPlayerByNameInput{
		Name: "MIKU",
	})
	s.Require().NoError(err)
	s.Equal("test-player-id", retrieved.ID)

	_, err = s.repo.GetPlayerByName(context.Background(), &GetPlayerByNameInput{
		Name: "NOBODY",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestListPlayersByGroup() {
	s.savePlayer("p1", "MIKU", models.GroupAdvanced)
	s.savePlayer("p2", "RIN", models.GroupAdvanced)
	s.savePlayer("p3", "LEN", models.GroupBeginner)

	all, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{})
	s.Require().NoError(err)
	s.Len(all, 3)

	advanced, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Len(advanced, 2)

	peak, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{
		Group: models.GroupPeak,
	})
	s.Require().NoError(err)
	s.Empty(peak)
}

func (s *RedisRepositoryTestSuite) TestDeletePlayer() {
	s.savePlayer("p1", "MIKU", models.GroupAdvanced)

	err := s.repo.DeletePlayer(context.Background(), &DeletePlayerInput{
		PlayerID: "p1",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "p1",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)

	// The name index must be gone too
	_, err = s.repo.GetPlayerByName(context.Background(), &GetPlayerByNameInput{
		Name: "MIKU",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeletePlayerReleasesMachine() {
	p := s.savePlayer("p1", "MIKU", models.GroupAdvanced)

	out, err := s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p1",
	})
	s.Require().NoError(err)
	s.Require().True(out.Acquired)

	p.OnMachine = true
	err = s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: p,
	})
	s.Require().NoError(err)

	err = s.repo.DeletePlayer(context.Background(), &DeletePlayerInput{
		PlayerID: "p1",
	})
	s.Require().NoError(err)

	// The cabinet is free for the next player
	out, err = s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p2",
	})
	s.Require().NoError(err)
	s.True(out.Acquired)
}

func (s *RedisRepositoryTestSuite) TestNextMatchNumberIsSequentialPerGroup() {
	n, err := s.repo.NextMatchNumber(context.Background(), &NextMatchNumberInput{
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Equal(1, n)

	n, err = s.repo.NextMatchNumber(context.Background(), &NextMatchNumberInput{
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Equal(2, n)

	// Groups count independently
	n, err = s.repo.NextMatchNumber(context.Background(), &NextMatchNumberInput{
		Group: models.GroupBeginner,
	})
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *RedisRepositoryTestSuite) TestSetMatchNumberCounter() {
	err := s.repo.SetMatchNumberCounter(context.Background(), &SetMatchNumberCounterInput{
		Group: models.GroupAdvanced,
		Value: 10,
	})
	s.Require().NoError(err)

	n, err := s.repo.NextMatchNumber(context.Background(), &NextMatchNumberInput{
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Equal(11, n)
}

func (s *RedisRepositoryTestSuite) TestAcquireMachineExclusive() {
	out, err := s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p1",
	})
	s.Require().NoError(err)
	s.True(out.Acquired)

	// A second player is refused and told who holds the cabinet
	out, err = s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p2",
	})
	s.Require().NoError(err)
	s.False(out.Acquired)
	s.Equal("p1", out.HolderID)

	// Re-claim by the holder is a no-op success
	out, err = s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p1",
	})
	s.Require().NoError(err)
	s.True(out.Acquired)

	// A different group's cabinet is independent
	out, err = s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupBeginner,
		PlayerID: "p2",
	})
	s.Require().NoError(err)
	s.True(out.Acquired)
}

func (s *RedisRepositoryTestSuite) TestReleaseMachineOnlyByHolder() {
	out, err := s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p1",
	})
	s.Require().NoError(err)
	s.Require().True(out.Acquired)

	// A non-holder release does nothing
	err = s.repo.ReleaseMachine(context.Background(), &ReleaseMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p2",
	})
	s.Require().NoError(err)

	out, err = s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p2",
	})
	s.Require().NoError(err)
	s.False(out.Acquired)

	// The holder can release
	err = s.repo.ReleaseMachine(context.Background(), &ReleaseMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p1",
	})
	s.Require().NoError(err)

	out, err = s.repo.AcquireMachine(context.Background(), &AcquireMachineInput{
		Group:    models.GroupAdvanced,
		PlayerID: "p2",
	})
	s.Require().NoError(err)
	s.True(out.Acquired)
}
