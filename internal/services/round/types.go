package round

import (
	"github.com/fairwaylabs/pressbook/internal/common/clock"
	"github.com/fairwaylabs/pressbook/internal/common/uuid"
	"github.com/fairwaylabs/pressbook/internal/models"
	courseRepo "github.com/fairwaylabs/pressbook/internal/repositories/course"
	playerRepo "github.com/fairwaylabs/pressbook/internal/repositories/player"
	roundRepo "github.com/fairwaylabs/pressbook/internal/repositories/round"
	sharecodeRepo "github.com/fairwaylabs/pressbook/internal/repositories/sharecode"
)

// Config holds the dependencies for the round service
type Config struct {
	// RoundRepo persists rounds
	RoundRepo roundRepo.Repository

	// PlayerRepo reads the saved-player roster
	PlayerRepo playerRepo.Repository

	// CourseRepo reads saved courses
	CourseRepo courseRepo.Repository

	// ShareCodeRepo persists share codes
	ShareCodeRepo sharecodeRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator generates unique identifiers
	UUIDGenerator uuid.UUID
}

// WagerSetup describes one wager to configure when creating a round
type WagerSetup struct {
	// Name is the display name; empty uses the kind's default label
	Name string

	// Kind is the type of wager
	Kind models.WagerKind

	// Amount is the dollar amount at stake
	Amount float64

	// CarryOver enables skins carry-over
	CarryOver bool
}

// CreateRoundInput contains parameters for starting a round
type CreateRoundInput struct {
	// OwnerID is the creating user's ID
	OwnerID string

	// CourseID is the saved course to play
	CourseID string

	// PlayerIDs are the saved players joining the round
	PlayerIDs []string

	// HandicapMode is the handicap policy; empty defaults to lowest
	HandicapMode models.HandicapMode

	// TeamMode is the settlement grouping; empty defaults to individual
	TeamMode models.TeamMode

	// Teams are the team groupings, used only in team mode
	Teams []models.Team

	// Wagers are the bets to configure for the round
	Wagers []WagerSetup

	// SelectedJunkTypes are the junk types to track
	SelectedJunkTypes []models.JunkType

	// JunkPointValues maps a junk type to its per-event dollar value
	JunkPointValues map[models.JunkType]float64
}

// CreateRoundOutput contains the result of starting a round
type CreateRoundOutput struct {
	// Round is the newly created round
	Round *models.Round
}

// GetRoundInput contains parameters for retrieving a round
type GetRoundInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string
}

// GetRoundOutput contains the retrieved round
type GetRoundOutput struct {
	// Round is the requested round
	Round *models.Round
}

// ListRoundsInput contains parameters for listing rounds
type ListRoundsInput struct {
	// OwnerID is the calling user's ID
	OwnerID string
}

// ListRoundsOutput contains the caller's rounds
type ListRoundsOutput struct {
	// Rounds are the caller's rounds, newest first
	Rounds []*models.Round
}

// DeleteRoundInput contains parameters for removing a round
type DeleteRoundInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string
}

// DeleteRoundOutput contains the result of removing a round
type DeleteRoundOutput struct{}

// UpdateScoreInput contains parameters for recording a score entry
type UpdateScoreInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string

	// PlayerName is the roster name of the player being scored
	PlayerName string

	// Hole is the hole number, 1 through 18
	Hole int

	// Score is the raw entered score text. Anything that does not parse
	// as a positive integer counts as "not yet played"
	Score string
}

// UpdateScoreOutput contains the updated round
type UpdateScoreOutput struct {
	// Round is the round after the update
	Round *models.Round
}

// UpdateRoundPlayerInput contains parameters for editing a round player
type UpdateRoundPlayerInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string

	// PlayerID identifies the round player to edit
	PlayerID string

	// Name is the new display name; empty keeps the current name
	Name string

	// Handicap is the new course handicap for the round
	Handicap int
}

// UpdateRoundPlayerOutput contains the updated round
type UpdateRoundPlayerOutput struct {
	// Round is the round after the update
	Round *models.Round
}

// SelectBetWinnerInput contains parameters for a manual side-bet pick
type SelectBetWinnerInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string

	// WagerName is the side bet's name
	WagerName string

	// Winner is the picked player's roster name; empty clears the pick
	Winner string
}

// SelectBetWinnerOutput contains the updated round
type SelectBetWinnerOutput struct {
	// Round is the round after the update
	Round *models.Round
}

// AddRoundBetInput contains parameters for creating a prop bet
type AddRoundBetInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string

	// Name is the display name of the bet
	Name string

	// Type is how the bet is settled
	Type models.RoundBetType

	// Amount is the dollar amount at stake
	Amount float64

	// Odds multiplies the payout; zero means even odds
	Odds float64

	// Player1 and Player2 are the participants for a two-player bet
	Player1 string
	Player2 string
}

// AddRoundBetOutput contains the result of creating a prop bet
type AddRoundBetOutput struct {
	// Round is the round after the update
	Round *models.Round

	// BetID is the new bet's ID
	BetID string
}

// RemoveRoundBetInput contains parameters for deleting a prop bet
type RemoveRoundBetInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string

	// BetID is the bet's ID
	BetID string
}

// RemoveRoundBetOutput contains the updated round
type RemoveRoundBetOutput struct {
	// Round is the round after the update
	Round *models.Round
}

// SetRoundBetWinnerInput contains parameters for settling a prop bet
type SetRoundBetWinnerInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string

	// BetID is the bet's ID
	BetID string

	// Winner is the winning player's roster name; empty un-settles
	Winner string
}

// SetRoundBetWinnerOutput contains the updated round
type SetRoundBetWinnerOutput struct {
	// Round is the round after the update
	Round *models.Round
}

// ToggleJunkEventInput contains parameters for flipping a junk event
type ToggleJunkEventInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string

	// PlayerName is the roster name of the player
	PlayerName string

	// Hole is the hole number, 1 through 18
	Hole int

	// JunkType is the junk event type
	JunkType models.JunkType
}

// ToggleJunkEventOutput contains the result of the toggle
type ToggleJunkEventOutput struct {
	// Round is the round after the update
	Round *models.Round

	// Occurred is the event's new state
	Occurred bool
}

// UpdateJunkSettingsInput contains parameters for replacing junk settings
type UpdateJunkSettingsInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string

	// SelectedJunkTypes are the junk types to track
	SelectedJunkTypes []models.JunkType

	// JunkPointValues maps a junk type to its per-event dollar value
	JunkPointValues map[models.JunkType]float64
}

// UpdateJunkSettingsOutput contains the updated round
type UpdateJunkSettingsOutput struct {
	// Round is the round after the update
	Round *models.Round
}

// ComputeStandingsInput contains parameters for computing standings
type ComputeStandingsInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string
}

// ComputeStandingsOutput contains the computed standings
type ComputeStandingsOutput struct {
	// Standings are the live standings, or the frozen results for an
	// ended round
	Standings *models.Standings
}

// EndRoundInput contains parameters for ending a round
type EndRoundInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string
}

// EndRoundOutput contains the ended round and its frozen results
type EndRoundOutput struct {
	// Round is the ended round
	Round *models.Round

	// Standings are the frozen results
	Standings *models.Standings
}

// CreateShareCodeInput contains parameters for issuing a share code
type CreateShareCodeInput struct {
	// RoundID is the round's ID
	RoundID string

	// OwnerID is the calling user's ID
	OwnerID string
}

// CreateShareCodeOutput contains the issued share code
type CreateShareCodeOutput struct {
	// Code is the share code for the round
	Code string
}

// ResolveShareCodeInput contains parameters for resolving a share code
type ResolveShareCodeInput struct {
	// Code is the share code
	Code string
}

// ResolveShareCodeOutput contains the shared round
type ResolveShareCodeOutput struct {
	// Round is the shared round
	Round *models.Round
}
