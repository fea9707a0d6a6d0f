package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fairwaylabs/pressbook/internal/auth"
	"github.com/fairwaylabs/pressbook/internal/common/clock"
	"github.com/fairwaylabs/pressbook/internal/common/uuid"
	"github.com/fairwaylabs/pressbook/internal/courseapi"
	"github.com/fairwaylabs/pressbook/internal/handlers/httpapi"
	courseRepo "github.com/fairwaylabs/pressbook/internal/repositories/course"
	playerRepo "github.com/fairwaylabs/pressbook/internal/repositories/player"
	roundRepo "github.com/fairwaylabs/pressbook/internal/repositories/round"
	sharecodeRepo "github.com/fairwaylabs/pressbook/internal/repositories/sharecode"
	userRepo "github.com/fairwaylabs/pressbook/internal/repositories/user"
	roundService "github.com/fairwaylabs/pressbook/internal/services/round"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		logger.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	rounds, err := roundRepo.NewRedis(&roundRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create round repository", "error", err)
		os.Exit(1)
	}
	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create player repository", "error", err)
		os.Exit(1)
	}
	courses, err := courseRepo.NewRedis(&courseRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create course repository", "error", err)
		os.Exit(1)
	}
	shareCodes, err := sharecodeRepo.NewRedis(&sharecodeRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create share code repository", "error", err)
		os.Exit(1)
	}
	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Error("failed to create user repository", "error", err)
		os.Exit(1)
	}

	systemClock := clock.New()
	uuidGen := uuid.New()

	// Initialize the round service
	roundSvc, err := roundService.NewService(&roundService.Config{
		RoundRepo:     rounds,
		PlayerRepo:    players,
		CourseRepo:    courses,
		ShareCodeRepo: shareCodes,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		logger.Error("failed to create round service", "error", err)
		os.Exit(1)
	}

	authManager, err := auth.NewManager(&auth.Config{Secret: jwtSecret})
	if err != nil {
		logger.Error("failed to create auth manager", "error", err)
		os.Exit(1)
	}

	// The external course provider is optional.
	var courseClient *courseapi.Client
	if baseURL := getEnv("COURSE_API_URL", ""); baseURL != "" {
		courseClient, err = courseapi.NewClient(&courseapi.Config{BaseURL: baseURL})
		if err != nil {
			logger.Error("failed to create course API client", "error", err)
			os.Exit(1)
		}
	}

	hub := httpapi.NewHub()
	go hub.Run()

	handler, err := httpapi.NewHandler(&httpapi.Config{
		RoundService:  roundSvc,
		PlayerRepo:    players,
		CourseRepo:    courses,
		UserRepo:      users,
		Auth:          authManager,
		CourseAPI:     courseClient,
		Hub:           hub,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create HTTP handler", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         getEnv("LISTEN_ADDR", ":8080"),
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
