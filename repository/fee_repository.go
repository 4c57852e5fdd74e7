package repository

import (
	"context"

	"loan-fee/domain"
)

// FeeRepository supplies the fee table for a loan term. An unknown term yields
// an empty slice, not an error.
type FeeRepository interface {
	FindFeesByTerm(ctx context.Context, term int) ([]domain.Fee, error)
}
