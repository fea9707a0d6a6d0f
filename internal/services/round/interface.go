package round

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fairwaylabs/pressbook/internal/services/round Service

import "context"

// Service defines the interface for round operations
type Service interface {
	// CreateRound starts a new round, snapshotting the roster and course
	CreateRound(ctx context.Context, input *CreateRoundInput) (*CreateRoundOutput, error)

	// GetRound retrieves one of the caller's rounds
	GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error)

	// ListRounds retrieves the caller's rounds, newest first
	ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error)

	// DeleteRound removes one of the caller's rounds
	DeleteRound(ctx context.Context, input *DeleteRoundInput) (*DeleteRoundOutput, error)

	// UpdateScore records a score entry for a player on a hole
	UpdateScore(ctx context.Context, input *UpdateScoreInput) (*UpdateScoreOutput, error)

	// UpdateRoundPlayer edits a round player's snapshot name or handicap
	UpdateRoundPlayer(ctx context.Context, input *UpdateRoundPlayerInput) (*UpdateRoundPlayerOutput, error)

	// SelectBetWinner records the manual winner pick for a side bet
	SelectBetWinner(ctx context.Context, input *SelectBetWinnerInput) (*SelectBetWinnerOutput, error)

	// AddRoundBet creates a prop bet during an active round
	AddRoundBet(ctx context.Context, input *AddRoundBetInput) (*AddRoundBetOutput, error)

	// RemoveRoundBet deletes a prop bet
	RemoveRoundBet(ctx context.Context, input *RemoveRoundBetInput) (*RemoveRoundBetOutput, error)

	// SetRoundBetWinner settles or un-settles a prop bet
	SetRoundBetWinner(ctx context.Context, input *SetRoundBetWinnerInput) (*SetRoundBetWinnerOutput, error)

	// ToggleJunkEvent flips a junk event for a player on a hole
	ToggleJunkEvent(ctx context.Context, input *ToggleJunkEventInput) (*ToggleJunkEventOutput, error)

	// UpdateJunkSettings replaces the tracked junk types and point values
	UpdateJunkSettings(ctx context.Context, input *UpdateJunkSettingsInput) (*UpdateJunkSettingsOutput, error)

	// ComputeStandings returns live standings for an active round, or the
	// frozen results for an ended one
	ComputeStandings(ctx context.Context, input *ComputeStandingsInput) (*ComputeStandingsOutput, error)

	// EndRound freezes the round's results. Ending twice is a no-op that
	// returns the already-frozen results
	EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error)

	// CreateShareCode issues (or returns the existing) share code for a round
	CreateShareCode(ctx context.Context, input *CreateShareCodeInput) (*CreateShareCodeOutput, error)

	// ResolveShareCode resolves a share code to a read-only round view
	ResolveShareCode(ctx context.Context, input *ResolveShareCodeInput) (*ResolveShareCodeOutput, error)
}
