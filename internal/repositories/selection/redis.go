package selection

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
	selectionKeyPrefix = "selection:"
	matchIndexPrefix   = "selection:match:"  // selection:match:<matchID> set of selection IDs
	activeKeyPrefix    = "selection:active:" // selection:active:<matchID>:<playerID> -> selection ID
)

var (
	// ErrSelectionNotFound is returned when a selection is not found
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrSelectionExists is returned when the player already has an unbanned
	// selection for the match
	ErrSelectionExists = errors.New("selection already exists for player in match")
)

// Config holds configuration for the Redis selection repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed selection repository
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

func activeKey(matchID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", activeKeyPrefix, matchID, playerID)
}

// CreateSelection persists a new selection, claiming the player's
// active-selection slot with SETNX so a double-tap cannot record two songs
func (r *redisRepository) CreateSelection(ctx context.Context, input *CreateSelectionInput) error {
	if input == nil || input.Selection == nil {
		return errors.New("input and selection cannot be nil")
	}

	sel := input.Selection
	if sel.ID == "" || sel.MatchID == "" || sel.PlayerID == "" {
		return errors.New("selection ID, match ID and player ID are required")
	}

	ok, err := r.client.SetNX(ctx, activeKey(sel.MatchID, sel.PlayerID), sel.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim selection slot: %w", err)
	}
	if !ok {
		return ErrSelectionExists
	}

	selJSON, err := json.Marshal(sel)
	if err != nil {
		r.client.Del(ctx, activeKey(sel.MatchID, sel.PlayerID))
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, selectionKeyPrefix+sel.ID, selJSON, 0)
	pipe.SAdd(ctx, matchIndexPrefix+sel.MatchID, sel.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		r.client.Del(ctx, activeKey(sel.MatchID, sel.PlayerID))
		return fmt.Errorf("failed to save selection: %w", err)
	}

	return nil
}

// GetSelection retrieves a selection by ID from Redis
func (r *redisRepository) GetSelection(ctx context.Context, input *GetSelectionInput) (*models.SongSelection, error) {
	if input == nil || input.SelectionID == "" {
		return nil, errors.New("input and selection ID cannot be empty")
	}

	selJSON, err := r.client.Get(ctx, selectionKeyPrefix+input.SelectionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSelectionNotFound
		}
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}

	var sel models.SongSelection
	if err := json.Unmarshal([]byte(selJSON), &sel); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selection: %w", err)
	}

	return &sel, nil
}

// GetActiveSelection retrieves the player's unbanned selection for a match
func (r *redisRepository) GetActiveSelection(ctx context.Context, input *GetActiveSelectionInput) (*models.SongSelection, error) {
	if input == nil || input.MatchID == "" || input.PlayerID == "" {
		return nil, errors.New("input, match ID and player ID cannot be empty")
	}

	selID, err := r.client.Get(ctx, activeKey(input.MatchID, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSelectionNotFound
		}
		return nil, fmt.Errorf("failed to get active selection ID: %w", err)
	}

	return r.GetSelection(ctx, &GetSelectionInput{
		SelectionID: selID,
	})
}

// ListByMatch retrieves all selections for a match from Redis
func (r *redisRepository) ListByMatch(ctx context.Context, input *ListByMatchInput) ([]*models.SongSelection, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	selIDs, err := r.client.SMembers(ctx, matchIndexPrefix+input.MatchID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get selection IDs: %w", err)
	}

	if len(selIDs) == 0 {
		return []*models.SongSelection{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(selIDs))
	for _, id := range selIDs {
		commands[id] = pipe.Get(ctx, selectionKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get selections: %w", err)
	}

	selections := make([]*models.SongSelection, 0, len(selIDs))
	for id, cmd := range commands {
		selJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get selection %s: %w", id, err)
		}

		var sel models.SongSelection
		if err := json.Unmarshal([]byte(selJSON), &sel); err != nil {
			return nil, fmt.Errorf("failed to unmarshal selection %s: %w", id, err)
		}

		selections = append(selections, &sel)
	}

	return selections, nil
}

// BanSelection marks a selection banned and frees the owner's slot
func (r *redisRepository) BanSelection(ctx context.Context, input *BanSelectionInput) error {
	if input == nil || input.SelectionID == "" || input.BannedByID == "" {
		return errors.New("input, selection ID and banned-by ID cannot be empty")
	}

	sel, err := r.GetSelection(ctx, &GetSelectionInput{
		SelectionID: input.SelectionID,
	})
	if err != nil {
		return err
	}

	sel.Banned = true
	sel.BannedByID = input.BannedByID

	selJSON, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, selectionKeyPrefix+sel.ID, selJSON, 0)
	pipe.Del(ctx, activeKey(sel.MatchID, sel.PlayerID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to ban selection: %w", err)
	}

	return nil
}
