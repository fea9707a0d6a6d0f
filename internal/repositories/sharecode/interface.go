package sharecode

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairwaylabs/pressbook/internal/repositories/sharecode Repository

import (
	"context"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// Repository defines the interface for share-code persistence. A share
// code is a short token mapping to an (owner, round) pair for read-only
// round viewing.
type Repository interface {
	// SaveShareCode persists a share code
	SaveShareCode(ctx context.Context, input *SaveShareCodeInput) error

	// GetShareCode resolves a share code
	GetShareCode(ctx context.Context, input *GetShareCodeInput) (*models.ShareCode, error)

	// GetShareCodeByRound finds an existing code for a round, if any
	GetShareCodeByRound(ctx context.Context, input *GetShareCodeByRoundInput) (*models.ShareCode, error)
}
