package repository

import (
	"context"
	"sync"

	"loan-fee/domain"
)

// QuoteRepositoryMemory is an in-memory implementation of QuoteRepository
// that keeps at most capacity quotes, dropping the oldest.
type QuoteRepositoryMemory struct {
	mu       sync.Mutex
	capacity int
	data     []domain.FeeQuote
}

// NewQuoteRepositoryMemory creates a new in-memory quote repository.
func NewQuoteRepositoryMemory(capacity int) *QuoteRepositoryMemory {
	if capacity <= 0 {
		capacity = 1
	}
	return &QuoteRepositoryMemory{
		capacity: capacity,
		data:     []domain.FeeQuote{},
	}
}

// Save stores the quote in memory.
func (r *QuoteRepositoryMemory) Save(_ context.Context, quote domain.FeeQuote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, quote)
	if len(r.data) > r.capacity {
		r.data = append([]domain.FeeQuote(nil), r.data[len(r.data)-r.capacity:]...)
	}
	return nil
}

// Recent returns up to limit quotes, newest first. A limit <= 0 returns all of them.
func (r *QuoteRepositoryMemory) Recent(_ context.Context, limit int) ([]domain.FeeQuote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	quotes := make([]domain.FeeQuote, 0, limit)
	for i := len(r.data) - 1; i >= len(r.data)-limit; i-- {
		quotes = append(quotes, r.data[i])
	}
	return quotes, nil
}
