package repository

import (
	"context"

	"loan-fee/domain"
)

type QuoteRepository interface {
	Save(ctx context.Context, quote domain.FeeQuote) error
	Recent(ctx context.Context, limit int) ([]domain.FeeQuote, error)
}
