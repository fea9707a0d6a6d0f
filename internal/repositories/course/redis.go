package course

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
	courseKeyPrefix  = "course:"
	ownerIndexPrefix = "owner:courses:" // Set of a user's course IDs
)

// ErrCourseNotFound is returned when a course is not found
var ErrCourseNotFound = errors.New("course not found")

// Config holds configuration for the Redis course repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed course repository
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

// SaveCourse persists a course to Redis
func (r *redisRepository) SaveCourse(ctx context.Context, input *SaveCourseInput) error {
	if input == nil || input.Course == nil {
		return errors.New("input and course cannot be nil")
	}

	courseJSON, err := json.Marshal(input.Course)
	if err != nil {
		return fmt.Errorf("failed to marshal course: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", courseKeyPrefix, input.Course.ID), courseJSON, 0)
	if input.Course.OwnerID != "" {
		pipe.SAdd(ctx, fmt.Sprintf("%s%s", ownerIndexPrefix, input.Course.OwnerID), input.Course.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}

	return nil
}

// GetCourse retrieves a course by ID from Redis
func (r *redisRepository) GetCourse(ctx context.Context, input *GetCourseInput) (*models.Course, error) {
	if input == nil || input.CourseID == "" {
		return nil, errors.New("input and course ID cannot be empty")
	}

	courseJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", courseKeyPrefix, input.CourseID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	var course models.Course
	if err := json.Unmarshal([]byte(courseJSON), &course); err != nil {
		return nil, fmt.Errorf("failed to unmarshal course: %w", err)
	}

	return &course, nil
}

// ListCoursesByOwner retrieves a user's saved courses from Redis
func (r *redisRepository) ListCoursesByOwner(ctx context.Context, input *ListCoursesByOwnerInput) ([]*models.Course, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	courseIDs, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", ownerIndexPrefix, input.OwnerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]*models.Course, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		course, err := r.GetCourse(ctx, &GetCourseInput{CourseID: courseID})
		if err != nil {
			if errors.Is(err, ErrCourseNotFound) {
				continue
			}
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// DeleteCourse removes a course and its owner index entry
func (r *redisRepository) DeleteCourse(ctx context.Context, input *DeleteCourseInput) error {
	if input == nil || input.CourseID == "" {
		return errors.New("input and course ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", courseKeyPrefix, input.CourseID))
	if input.OwnerID != "" {
		pipe.SRem(ctx, fmt.Sprintf("%s%s", ownerIndexPrefix, input.OwnerID), input.CourseID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	return nil
}
