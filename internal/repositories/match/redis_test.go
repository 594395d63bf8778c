package match

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

func (s *RedisRepositoryTestSuite) newMatch(id, p1, p2 string) *models.Match {
	return &models.Match{
		ID:        id,
		Phase:     models.PhaseTop16,
		Group:     models.GroupAdvanced,
		Player1ID: p1,
		Player2ID: p2,
		Status:    models.MatchStatusPending,
		CreatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetMatch() {
	m := s.newMatch("test-match-id", "player-a", "player-b")

	err := s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: m,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-match-id", retrieved.ID)
	s.Equal(models.PhaseTop16, retrieved.Phase)
	s.Equal(models.GroupAdvanced, retrieved.Group)
	s.Equal("player-a", retrieved.Player1ID)
	s.Equal("player-b", retrieved.Player2ID)
	s.Equal(models.MatchStatusPending, retrieved.Status)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetMatchNotFound() {
	retrieved, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "no-such-match",
	})
	s.Require().ErrorIs(err, ErrMatchNotFound)
	s.Nil(retrieved)
}

func (s *RedisRepositoryTestSuite) TestCreateMatchRejectsBusyPlayer() {
	err := s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: s.newMatch("match-1", "player-a", "player-b"),
	})
	s.Require().NoError(err)

	// player-b is already booked into match-1
	err = s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: s.newMatch("match-2", "player-c", "player-b"),
	})
	s.Require().ErrorIs(err, ErrPlayerHasActiveMatch)

	// The failed create must not leave player-c claimed
	err = s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: s.newMatch("match-3", "player-c", "player-d"),
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetActiveMatchByPlayer() {
	err := s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: s.newMatch("match-1", "player-a", "player-b"),
	})
	s.Require().NoError(err)

	for _, playerID := range []string{"player-a", "player-b"} {
		active, err := s.repo.GetActiveMatchByPlayer(context.Background(), &GetActiveMatchByPlayerInput{
			PlayerID: playerID,
		})
		s.Require().NoError(err)
		s.Require().NotNil(active)
		s.Equal("match-1", active.ID)
	}

	active, err := s.repo.GetActiveMatchByPlayer(context.Background(), &GetActiveMatchByPlayerInput{
		PlayerID: "player-c",
	})
	s.Require().ErrorIs(err, ErrMatchNotFound)
	s.Nil(active)
}

func (s *RedisRepositoryTestSuite) TestFinishingMatchReleasesPlayers() {
	m := s.newMatch("match-1", "player-a", "player-b")

	err := s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: m,
	})
	s.Require().NoError(err)

	m.Status = models.MatchStatusFinished
	m.WinnerID = "player-a"

	err = s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: m,
	})
	s.Require().NoError(err)

	// Both players are free again
	_, err = s.repo.GetActiveMatchByPlayer(context.Background(), &GetActiveMatchByPlayerInput{
		PlayerID: "player-a",
	})
	s.Require().ErrorIs(err, ErrMatchNotFound)

	err = s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: s.newMatch("match-2", "player-a", "player-c"),
	})
	s.Require().NoError(err)

	// The finished match is still readable with its winner recorded
	retrieved, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "match-1",
	})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusFinished, retrieved.Status)
	s.Equal("player-a", retrieved.WinnerID)
}

func (s *RedisRepositoryTestSuite) TestListMatches() {
	err := s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: s.newMatch("match-1", "player-a", "player-b"),
	})
	s.Require().NoError(err)

	err = s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: s.newMatch("match-2", "player-c", "player-d"),
	})
	s.Require().NoError(err)

	// A match in a different group must not show up
	other := s.newMatch("match-3", "player-e", "player-f")
	other.Group = models.GroupBeginner
	err = s.repo.CreateMatch(context.Background(), &CreateMatchInput{
		Match: other,
	})
	s.Require().NoError(err)

	matches, err := s.repo.ListMatches(context.Background(), &ListMatchesInput{
		Phase: models.PhaseTop16,
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Len(matches, 2)

	ids := map[string]bool{}
	for _, m := range matches {
		ids[m.ID] = true
	}
	s.True(ids["match-1"])
	s.True(ids["match-2"])

	matches, err = s.repo.ListMatches(context.Background(), &ListMatchesInput{
		Phase: models.PhaseTop8,
		Group: models.GroupAdvanced,
	})
	s.Require().NoError(err)
	s.Empty(matches)
}
