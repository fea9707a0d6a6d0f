package sharecode

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
	codeKeyPrefix  = "sharecode:"
	roundKeyPrefix = "sharecode:round:" // Reverse index from round ID to code
)

// ErrShareCodeNotFound is returned when a share code is not found
var ErrShareCodeNotFound = errors.New("share code not found")

// Config holds configuration for the Redis share-code repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed share-code repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveShareCode persists a share code and its reverse index
func (r *redisRepository) SaveShareCode(ctx context.Context, input *SaveShareCodeInput) error {
	if input == nil || input.ShareCode == nil {
		return errors.New("input and share code cannot be nil")
	}

	codeJSON, err := json.Marshal(input.ShareCode)
	if err != nil {
		return fmt.Errorf("failed to marshal share code: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", codeKeyPrefix, input.ShareCode.Code), codeJSON, 0)
	pipe.Set(ctx, fmt.Sprintf("%s%s", roundKeyPrefix, input.ShareCode.RoundID), input.ShareCode.Code, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save share code: %w", err)
	}

	return nil
}

// GetShareCode resolves a share code
func (r *redisRepository) GetShareCode(ctx context.Context, input *GetShareCodeInput) (*models.ShareCode, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	codeJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", codeKeyPrefix, input.Code)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrShareCodeNotFound
		}
		return nil, fmt.Errorf("failed to get share code: %w", err)
	}

	var code models.ShareCode
	if err := json.Unmarshal([]byte(codeJSON), &code); err != nil {
		return nil, fmt.Errorf("failed to unmarshal share code: %w", err)
	}

	return &code, nil
}

// GetShareCodeByRound finds an existing code for a round
func (r *redisRepository) GetShareCodeByRound(ctx context.Context, input *GetShareCodeByRoundInput) (*models.ShareCode, error) {
	if input == nil || input.RoundID == "" {
		return nil, errors.New("input and round ID cannot be empty")
	}

	code, err := r.client.Get(ctx, fmt.Sprintf("%s%s", roundKeyPrefix, input.RoundID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrShareCodeNotFound
		}
		return nil, fmt.Errorf("failed to get share code by round: %w", err)
	}

	return r.GetShareCode(ctx, &GetShareCodeInput{Code: code})
}
