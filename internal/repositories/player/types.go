package player

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// SavePlayerInput contains parameters for persisting a player
type SavePlayerInput struct {
	// Player is the player to persist
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	// PlayerID is the unique identifier for the player
	PlayerID string
}

// ListPlayersByOwnerInput contains parameters for listing a user's roster
type ListPlayersByOwnerInput struct {
	// OwnerID is the owning user's ID
	OwnerID string
}

// DeletePlayerInput contains parameters for removing a player
type DeletePlayerInput struct {
	// PlayerID is the unique identifier for the player
	PlayerID string

	// OwnerID is the owning user's ID, used to clean up the owner index
	OwnerID string
}
