package song

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
	songKeyPrefix = "song:"
	allSongsKey   = "songs:all"
)

// ErrSongNotFound is returned when a song is not found
var ErrSongNotFound = errors.New("song not found")

// Config holds configuration for the Redis song repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed song repository
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

// SaveSong persists a song to Redis
func (r *redisRepository) SaveSong(ctx context.Context, input *SaveSongInput) error {
	if input == nil || input.Song == nil {
		return errors.New("input and song cannot be nil")
	}

	songJSON, err := json.Marshal(input.Song)
	if err != nil {
		return fmt.Errorf("failed to marshal song: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, songKeyPrefix+input.Song.ID, songJSON, 0)
	pipe.SAdd(ctx, allSongsKey, input.Song.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save song: %w", err)
	}

	return nil
}

// GetSong retrieves a song by ID from Redis
func (r *redisRepository) GetSong(ctx context.Context, input *GetSongInput) (*models.Song, error) {
	if input == nil || input.SongID == "" {
		return nil, errors.New("input and song ID cannot be empty")
	}

	songJSON, err := r.client.Get(ctx, songKeyPrefix+input.SongID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}

	var sg models.Song
	if err := json.Unmarshal([]byte(songJSON), &sg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal song: %w", err)
	}

	return &sg, nil
}

// ListSongs retrieves songs from Redis, filtered in memory
func (r *redisRepository) ListSongs(ctx context.Context, input *ListSongsInput) ([]*models.Song, error) {
	if input == nil {
		input = &ListSongsInput{}
	}

	songIDs, err := r.client.SMembers(ctx, allSongsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get song IDs: %w", err)
	}

	if len(songIDs) == 0 {
		return []*models.Song{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(songIDs))
	for _, id := range songIDs {
		commands[id] = pipe.Get(ctx, songKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get songs: %w", err)
	}

	songs := make([]*models.Song, 0, len(songIDs))
	for id, cmd := range commands {
		songJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get song %s: %w", id, err)
		}

		var sg models.Song
		if err := json.Unmarshal([]byte(songJSON), &sg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal song %s: %w", id, err)
		}

		if input.Phase != "" && sg.Phase != input.Phase {
			continue
		}
		if input.Group != "" && sg.Group != input.Group {
			continue
		}
		if input.ActiveOnly && !sg.Active {
			continue
		}

		songs = append(songs, &sg)
	}

	return songs, nil
}

// DeleteSong removes a song from Redis
func (r *redisRepository) DeleteSong(ctx context.Context, input *DeleteSongInput) error {
	if input == nil || input.SongID == "" {
		return errors.New("input and song ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, songKeyPrefix+input.SongID)
	pipe.SRem(ctx, allSongsKey, input.SongID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	return nil
}
