package repository

import (
	"context"

	"loan-fee/domain"
)

// FeeRepositoryMemory is an in-memory implementation of FeeRepository.
// Tables are read-only after construction, so concurrent reads are safe.
type FeeRepositoryMemory struct {
	tables map[int][]domain.Fee
}

// NewFeeRepositoryMemory creates a repository serving a copy of tables.
func NewFeeRepositoryMemory(tables map[int][]domain.Fee) *FeeRepositoryMemory {
	data := make(map[int][]domain.Fee, len(tables))
	for term, fees := range tables {
		data[term] = append([]domain.Fee(nil), fees...)
	}
	return &FeeRepositoryMemory{tables: data}
}

// NewDefaultFeeRepository creates a repository serving DefaultFeeTables.
func NewDefaultFeeRepository() *FeeRepositoryMemory {
	return NewFeeRepositoryMemory(DefaultFeeTables)
}

// FindFeesByTerm returns a copy of the fee table for term.
func (r *FeeRepositoryMemory) FindFeesByTerm(_ context.Context, term int) ([]domain.Fee, error) {
	return append([]domain.Fee{}, r.tables[term]...), nil
}
