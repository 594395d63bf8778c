package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mokutan/stagepass/internal/models"
)

const (
	// Fixed keys for the two singleton records
	systemStateKey   = "system:state"
	songDrawStateKey = "songdraw:state"
)

// Config holds configuration for the Redis state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed state repository
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

// GetSystemState retrieves the global flags; a fresh install gets zero values
func (r *redisRepository) GetSystemState(ctx context.Context) (*models.SystemState, error) {
	stateJSON, err := r.client.Get(ctx, systemStateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.SystemState{}, nil
		}
		return nil, fmt.Errorf("failed to get system state: %w", err)
	}

	var st models.SystemState
	if err := json.Unmarshal([]byte(stateJSON), &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal system state: %w", err)
	}

	return &st, nil
}

// SaveSystemState persists the global flags to Redis
func (r *redisRepository) SaveSystemState(ctx context.Context, input *SaveSystemStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal system state: %w", err)
	}

	if err := r.client.Set(ctx, systemStateKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save system state: %w", err)
	}

	return nil
}

// GetSongDrawState retrieves the lottery state; a missing record is idle
func (r *redisRepository) GetSongDrawState(ctx context.Context) (*models.SongDrawState, error) {
	stateJSON, err := r.client.Get(ctx, songDrawStateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.SongDrawState{
				Status: models.DrawStatusIdle,
			}, nil
		}
		return nil, fmt.Errorf("failed to get song draw state: %w", err)
	}

	var st models.SongDrawState
	if err := json.Unmarshal([]byte(stateJSON), &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal song draw state: %w", err)
	}

	return &st, nil
}

// SaveSongDrawState persists the lottery state to Redis
func (r *redisRepository) SaveSongDrawState(ctx context.Context, input *SaveSongDrawStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal song draw state: %w", err)
	}

	if err := r.client.Set(ctx, songDrawStateKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save song draw state: %w", err)
	}

	return nil
}
