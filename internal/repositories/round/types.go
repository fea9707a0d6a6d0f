package round

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// SaveRoundInput contains parameters for persisting a round
type SaveRoundInput struct {
	// Round is the round to persist
	Round *models.Round
}

// GetRoundInput contains parameters for retrieving a round
type GetRoundInput struct {
	// RoundID is the unique identifier for the round
	RoundID string
}

// ListRoundsByOwnerInput contains parameters for listing a user's rounds
type ListRoundsByOwnerInput struct {
	// OwnerID is the owning user's ID
	OwnerID string
}

// DeleteRoundInput contains parameters for removing a round
type DeleteRoundInput struct {
	// RoundID is the unique identifier for the round
	RoundID string

	// OwnerID is the owning user's ID, used to clean up the owner index
	OwnerID string
}
