package sharecode

import (
	"github.com/fairwaylabs/pressbook/internal/models"
)

// SaveShareCodeInput contains parameters for persisting a share code
type SaveShareCodeInput struct {
	// ShareCode is the code to persist
	ShareCode *models.ShareCode
}

// GetShareCodeInput contains parameters for resolving a share code
type GetShareCodeInput struct {
	// Code is the short share code
	Code string
}

// GetShareCodeByRoundInput contains parameters for the round-to-code lookup
type GetShareCodeByRoundInput struct {
	// RoundID is the shared round's ID
	RoundID string
}
