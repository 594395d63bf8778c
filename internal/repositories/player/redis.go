package player

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
	playerKeyPrefix  = "player:"
	nameIndexPrefix  = "player:name:"
	allPlayersKey    = "players:all"
	numberSeqPrefix  = "number:seq:"
	machineKeyPrefix = "machine:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	playerJSON, err := json.Marshal(input.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKeyPrefix+input.Player.ID, playerJSON, 0)
	pipe.Set(ctx, nameIndexPrefix+input.Player.Name, input.Player.ID, 0)
	pipe.SAdd(ctx, allPlayersKey, input.Player.ID)

	if input.PreviousName != "" && input.PreviousName != input.Player.Name {
		pipe.Del(ctx, nameIndexPrefix+input.PreviousName)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var p models.Player
	if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &p, nil
}

// GetPlayerByName retrieves a player by registered name from Redis
func (r *redisRepository) GetPlayerByName(ctx context.Context, input *GetPlayerByNameInput) (*models.Player, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and name cannot be empty")
	}

	playerID, err := r.client.Get(ctx, nameIndexPrefix+input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player ID for name: %w", err)
	}

	return r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: playerID,
	})
}

// ListPlayers retrieves players from Redis, optionally filtered by group
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) ([]*models.Player, error) {
	if input == nil {
		input = &ListPlayersInput{}
	}

	playerIDs, err := r.client.SMembers(ctx, allPlayersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs: %w", err)
	}

	if len(playerIDs) == 0 {
		return []*models.Player{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(playerIDs))
	for _, id := range playerIDs {
		commands[id] = pipe.Get(ctx, playerKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for id, cmd := range commands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", id, err)
		}

		var p models.Player
		if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", id, err)
		}

		if input.Group != "" && p.Group != input.Group {
			continue
		}

		players = append(players, &p)
	}

	return players, nil
}

// DeletePlayer removes a player from Redis
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	p, err := r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return err
	}

	// Free the cabinet first so the group doesn't stay blocked by a ghost
	if p.OnMachine {
		if err := r.ReleaseMachine(ctx, &ReleaseMachineInput{
			Group:    p.Group,
			PlayerID: p.ID,
		}); err != nil {
			return err
		}
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, playerKeyPrefix+p.ID)
	pipe.Del(ctx, nameIndexPrefix+p.Name)
	pipe.SRem(ctx, allPlayersKey, p.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}

// NextMatchNumber atomically allocates the next sequence number for a group
func (r *redisRepository) NextMatchNumber(ctx context.Context, input *NextMatchNumberInput) (int, error) {
	if input == nil || input.Group == "" {
		return 0, errors.New("input and group cannot be empty")
	}

	n, err := r.client.Incr(ctx, numberSeqPrefix+string(input.Group)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate match number: %w", err)
	}

	return int(n), nil
}

// SetMatchNumberCounter pins a group's sequence counter
func (r *redisRepository) SetMatchNumberCounter(ctx context.Context, input *SetMatchNumberCounterInput) error {
	if input == nil || input.Group == "" {
		return errors.New("input and group cannot be empty")
	}

	if err := r.client.Set(ctx, numberSeqPrefix+string(input.Group), input.Value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set match number counter: %w", err)
	}

	return nil
}

// AcquireMachine atomically claims a group's cabinet for a player using SETNX,
// so two concurrent claims for the same group cannot both succeed
func (r *redisRepository) AcquireMachine(ctx context.Context, input *AcquireMachineInput) (*AcquireMachineOutput, error) {
	if input == nil || input.Group == "" || input.PlayerID == "" {
		return nil, errors.New("input, group and player ID cannot be empty")
	}

	key := machineKeyPrefix + string(input.Group)

	ok, err := r.client.SetNX(ctx, key, input.PlayerID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim machine: %w", err)
	}
	if ok {
		return &AcquireMachineOutput{Acquired: true}, nil
	}

	holder, err := r.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read machine holder: %w", err)
	}

	// Re-claim by the current holder is a no-op, not a conflict
	if holder == input.PlayerID {
		return &AcquireMachineOutput{Acquired: true}, nil
	}

	return &AcquireMachineOutput{Acquired: false, HolderID: holder}, nil
}

// ReleaseMachine frees a group's cabinet if the player holds it
func (r *redisRepository) ReleaseMachine(ctx context.Context, input *ReleaseMachineInput) error {
	if input == nil || input.Group == "" || input.PlayerID == "" {
		return errors.New("input, group and player ID cannot be empty")
	}

	key := machineKeyPrefix + string(input.Group)

	holder, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("failed to read machine holder: %w", err)
	}

	if holder != input.PlayerID {
		return nil
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release machine: %w", err)
	}

	return nil
}
