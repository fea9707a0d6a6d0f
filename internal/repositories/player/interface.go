package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairwaylabs/pressbook/internal/repositories/player Repository

import (
	"context"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// Repository defines the interface for saved-player persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// ListPlayersByOwner retrieves a user's roster
	ListPlayersByOwner(ctx context.Context, input *ListPlayersByOwnerInput) ([]*models.Player, error)

	// DeletePlayer removes a player
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error
}
