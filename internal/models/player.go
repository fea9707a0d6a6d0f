package models

import (
	"time"
)

// Player represents a saved player in a user's roster
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// OwnerID is the ID of the user whose roster this player belongs to
	OwnerID string

	// Name is the display name of the player, used as the lookup key
	// for scores and wager results within a round
	Name string

	// Handicap is the player's course handicap. Negative values are
	// "plus" handicaps (the player gives strokes back)
	Handicap int

	// CreatedAt is when the player was added to the roster
	CreatedAt time.Time

	// UpdatedAt is when the player was last modified
	UpdatedAt time.Time
}

// RoundPlayer is the snapshot of a player's name and handicap taken when a
// round starts. Edits to the saved Player after round start do not change
// an in-progress round's roster; only explicit round-player edits do.
type RoundPlayer struct {
	// PlayerID is the ID of the saved player this snapshot was taken from
	PlayerID string

	// Name is the player's name at round-start time
	Name string

	// Handicap is the player's course handicap at round-start time
	Handicap int
}
