package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mokutan/stagepass/internal/models"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix     = "match:"
	phaseIndexPrefix   = "match:index:"        // match:index:<group>:<phase> set of match IDs
	activeMatchPrefix  = "match:active:player:" // match:active:player:<playerID> -> match ID
)

var (
	// ErrMatchNotFound is returned when a match is not found
	ErrMatchNotFound = errors.New("match not found")

	// ErrPlayerHasActiveMatch is returned when a player's active-match slot
	// is already claimed
	ErrPlayerHasActiveMatch = errors.New("player already has an active match")
)

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func phaseIndexKey(group models.Group, phase models.Phase) string {
	return fmt.Sprintf("%s%s:%s", phaseIndexPrefix, group, phase)
}

// CreateMatch persists a new match, claiming both players' active-match slots
// with SETNX so concurrent pairing generation cannot double-book a player
func (r *redisRepository) CreateMatch(ctx context.Context, input *CreateMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	m := input.Match
	if m.ID == "" || m.Player1ID == "" || m.Player2ID == "" {
		return errors.New("match ID and both player IDs are required")
	}

	ok, err := r.client.SetNX(ctx, activeMatchPrefix+m.Player1ID, m.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim player 1 slot: %w", err)
	}
	if !ok {
		return ErrPlayerHasActiveMatch
	}

	ok, err = r.client.SetNX(ctx, activeMatchPrefix+m.Player2ID, m.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim player 2 slot: %w", err)
	}
	if !ok {
		// Roll back the first claim so player 1 is not stuck
		r.client.Del(ctx, activeMatchPrefix+m.Player1ID)
		return ErrPlayerHasActiveMatch
	}

	if err := r.writeMatch(ctx, m); err != nil {
		r.client.Del(ctx, activeMatchPrefix+m.Player1ID, activeMatchPrefix+m.Player2ID)
		return err
	}

	return nil
}

// SaveMatch persists an existing match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	return r.writeMatch(ctx, input.Match)
}

func (r *redisRepository) writeMatch(ctx context.Context, m *models.Match) error {
	matchJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, matchKeyPrefix+m.ID, matchJSON, 0)
	pipe.SAdd(ctx, phaseIndexKey(m.Group, m.Phase), m.ID)

	// A finished match no longer occupies its players
	if !m.Active() {
		pipe.Del(ctx, activeMatchPrefix+m.Player1ID, activeMatchPrefix+m.Player2ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchJSON, err := r.client.Get(ctx, matchKeyPrefix+input.MatchID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var m models.Match
	if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &m, nil
}

// GetActiveMatchByPlayer retrieves the player's pending/ongoing match
func (r *redisRepository) GetActiveMatchByPlayer(ctx context.Context, input *GetActiveMatchByPlayerInput) (*models.Match, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	matchID, err := r.client.Get(ctx, activeMatchPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get active match ID: %w", err)
	}

	return r.GetMatch(ctx, &GetMatchInput{
		MatchID: matchID,
	})
}

// ListMatches retrieves all matches for a phase and group from Redis
func (r *redisRepository) ListMatches(ctx context.Context, input *ListMatchesInput) ([]*models.Match, error) {
	if input == nil || input.Phase == "" || input.Group == "" {
		return nil, errors.New("input, phase and group cannot be empty")
	}

	matchIDs, err := r.client.SMembers(ctx, phaseIndexKey(input.Group, input.Phase)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return []*models.Match{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(matchIDs))
	for _, id := range matchIDs {
		commands[id] = pipe.Get(ctx, matchKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for id, cmd := range commands {
		matchJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", id, err)
		}

		var m models.Match
		if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", id, err)
		}

		matches = append(matches, &m)
	}

	return matches, nil
}
