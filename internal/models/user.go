package models

import (
	"time"
)

// User represents an authenticated account
type User struct {
	// ID is the unique identifier for the user
	ID string

	// Email is the login email, unique across users
	Email string

	// Name is the display name
	Name string

	// PasswordHash is the bcrypt hash of the user's password
	PasswordHash string

	// CreatedAt is when the account was created
	CreatedAt time.Time
}

// ShareCode maps a short code to a round for read-only viewing
type ShareCode struct {
	// Code is the short share code
	Code string

	// OwnerID is the round owner's user ID
	OwnerID string

	// RoundID is the shared round's ID
	RoundID string

	// CreatedAt is when the code was issued
	CreatedAt time.Time
}
