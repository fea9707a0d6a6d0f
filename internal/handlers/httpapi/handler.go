// Package httpapi exposes the round, roster, and betting operations over a
// chi-routed JSON API with a websocket live feed per round.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fairwaylabs/pressbook/internal/auth"
	"github.com/fairwaylabs/pressbook/internal/common/clock"
	"github.com/fairwaylabs/pressbook/internal/common/uuid"
	"github.com/fairwaylabs/pressbook/internal/courseapi"
	courseRepo "github.com/fairwaylabs/pressbook/internal/repositories/course"
	playerRepo "github.com/fairwaylabs/pressbook/internal/repositories/player"
	userRepo "github.com/fairwaylabs/pressbook/internal/repositories/user"
	roundService "github.com/fairwaylabs/pressbook/internal/services/round"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	// RoundService handles round lifecycle and betting operations
	RoundService roundService.Service

	// PlayerRepo persists the saved-player roster
	PlayerRepo playerRepo.Repository

	// CourseRepo persists saved courses
	CourseRepo courseRepo.Repository

	// UserRepo persists user accounts
	UserRepo userRepo.Repository

	// Auth issues and verifies bearer tokens
	Auth *auth.Manager

	// CourseAPI looks up courses from the external provider. Nil disables
	// course search and import
	CourseAPI *courseapi.Client

	// Hub broadcasts round updates to websocket subscribers
	Hub *Hub

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator generates unique identifiers
	UUIDGenerator uuid.UUID

	// Logger is the structured logger
	Logger *slog.Logger
}

// Handler serves the JSON API
type Handler struct {
	roundService roundService.Service
	playerRepo   playerRepo.Repository
	courseRepo   courseRepo.Repository
	userRepo     userRepo.Repository
	auth         *auth.Manager
	courseAPI    *courseapi.Client
	hub          *Hub
	clock        clock.Clock
	uuid         uuid.UUID
	logger       *slog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoundService == nil {
		return nil, ErrNilRoundService
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.CourseRepo == nil {
		return nil, ErrNilCourseRepo
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.Auth == nil {
		return nil, ErrNilAuth
	}
	if cfg.Hub == nil {
		return nil, ErrNilHub
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		roundService: cfg.RoundService,
		playerRepo:   cfg.PlayerRepo,
		courseRepo:   cfg.CourseRepo,
		userRepo:     cfg.UserRepo,
		auth:         cfg.Auth,
		courseAPI:    cfg.CourseAPI,
		hub:          cfg.Hub,
		clock:        cfg.Clock,
		uuid:         cfg.UUIDGenerator,
		logger:       logger,
	}, nil
}

// Routes builds the API router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/register", h.handleRegister)
	r.Post("/api/login", h.handleLogin)
	r.Get("/api/shared/{code}", h.handleSharedRound)
	r.Get("/api/rounds/{id}/ws", h.handleRoundSocket)

	r.Group(func(r chi.Router) {
		r.Use(h.auth.Middleware)

		r.Get("/api/players", h.handleListPlayers)
		r.Post("/api/players", h.handleCreatePlayer)
		r.Put("/api/players/{id}", h.handleUpdatePlayer)
		r.Delete("/api/players/{id}", h.handleDeletePlayer)

		r.Get("/api/courses", h.handleListCourses)
		r.Post("/api/courses", h.handleCreateCourse)
		r.Get("/api/courses/search", h.handleSearchCourses)
		r.Post("/api/courses/import", h.handleImportCourse)
		r.Get("/api/courses/{id}", h.handleGetCourse)
		r.Delete("/api/courses/{id}", h.handleDeleteCourse)

		r.Get("/api/rounds", h.handleListRounds)
		r.Post("/api/rounds", h.handleCreateRound)
		r.Get("/api/rounds/{id}", h.handleGetRound)
		r.Delete("/api/rounds/{id}", h.handleDeleteRound)
		r.Put("/api/rounds/{id}/scores", h.handleUpdateScore)
		r.Put("/api/rounds/{id}/players/{playerID}", h.handleUpdateRoundPlayer)
		r.Put("/api/rounds/{id}/bet-selections", h.handleSelectBetWinner)
		r.Post("/api/rounds/{id}/round-bets", h.handleAddRoundBet)
		r.Delete("/api/rounds/{id}/round-bets/{betID}", h.handleRemoveRoundBet)
		r.Put("/api/rounds/{id}/round-bets/{betID}/winner", h.handleSetRoundBetWinner)
		r.Post("/api/rounds/{id}/junk-events", h.handleToggleJunkEvent)
		r.Put("/api/rounds/{id}/junk-settings", h.handleUpdateJunkSettings)
		r.Get("/api/rounds/{id}/standings", h.handleStandings)
		r.Post("/api/rounds/{id}/end", h.handleEndRound)
		r.Post("/api/rounds/{id}/share", h.handleCreateShareCode)
	})

	return r
}
