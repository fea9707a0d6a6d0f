package user

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// SaveUserInput contains parameters for persisting a user
type SaveUserInput struct {
	// User is the user to persist
	User *models.User
}

// GetUserInput contains parameters for retrieving a user by ID
type GetUserInput struct {
	// UserID is the user's ID
	UserID string
}

// GetUserByEmailInput contains parameters for the email lookup
type GetUserByEmailInput struct {
	// Email is the user's email address
	Email string
}
