package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairwaylabs/pressbook/internal/repositories/round Repository

import (
	"context"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// Repository defines the interface for round data persistence
type Repository interface {
	// SaveRound persists a round
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// GetRound retrieves a round by ID
	GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error)

	// ListRoundsByOwner retrieves every round owned by a user, newest first
	ListRoundsByOwner(ctx context.Context, input *ListRoundsByOwnerInput) ([]*models.Round, error)

	// DeleteRound removes a round
	DeleteRound(ctx context.Context, input *DeleteRoundInput) error
}
