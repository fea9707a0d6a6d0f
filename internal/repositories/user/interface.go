package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairwaylabs/pressbook/internal/repositories/user Repository

import (
	"context"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// Repository defines the interface for user account persistence
type Repository interface {
	// SaveUser persists a user account
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// GetUserByEmail retrieves a user by email address
	GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.User, error)
}
