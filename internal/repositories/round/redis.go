package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fairwaylabs/pressbook/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roundKeyPrefix  = "round:"
	ownerIndexPrefix = "owner:rounds:" // Sorted set of a user's round IDs by creation time
)

// ErrRoundNotFound is returned when a round is not found
var ErrRoundNotFound = errors.New("round not found")

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed round repository
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

// SaveRound persists a round to Redis
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	roundJSON, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	pipe := r.client.Pipeline()

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, input.Round.ID)
	pipe.Set(ctx, roundKey, roundJSON, 0)

	// Index the round under its owner, scored by creation time so lists
	// come back newest first.
	if input.Round.OwnerID != "" {
		ownerKey := fmt.Sprintf("%s%s", ownerIndexPrefix, input.Round.OwnerID)
		pipe.ZAdd(ctx, ownerKey, redis.Z{
			Score:  float64(input.Round.CreatedAt.UnixNano()),
			Member: input.Round.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// GetRound retrieves a round by ID from Redis
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error) {
	if input == nil || input.RoundID == "" {
		return nil, errors.New("input and round ID cannot be empty")
	}

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, input.RoundID)
	roundJSON, err := r.client.Get(ctx, roundKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	var round models.Round
	if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &round, nil
}

// ListRoundsByOwner retrieves every round owned by a user, newest first
func (r *redisRepository) ListRoundsByOwner(ctx context.Context, input *ListRoundsByOwnerInput) ([]*models.Round, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	ownerKey := fmt.Sprintf("%s%s", ownerIndexPrefix, input.OwnerID)
	roundIDs, err := r.client.ZRevRange(ctx, ownerKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	rounds := make([]*models.Round, 0, len(roundIDs))
	for _, roundID := range roundIDs {
		round, err := r.GetRound(ctx, &GetRoundInput{RoundID: roundID})
		if err != nil {
			// A dangling index entry is not fatal; skip it.
			if errors.Is(err, ErrRoundNotFound) {
				continue
			}
			return nil, err
		}
		rounds = append(rounds, round)
	}

	return rounds, nil
}

// DeleteRound removes a round and its owner index entry
func (r *redisRepository) DeleteRound(ctx context.Context, input *DeleteRoundInput) error {
	if input == nil || input.RoundID == "" {
		return errors.New("input and round ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", roundKeyPrefix, input.RoundID))
	if input.OwnerID != "" {
		pipe.ZRem(ctx, fmt.Sprintf("%s%s", ownerIndexPrefix, input.OwnerID), input.RoundID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}

	return nil
}
