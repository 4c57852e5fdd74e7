package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-kit/log"

	"loan-fee/domain"
)

const feeCacheKeyPrefix = "loan-fee:fees:term:"

// cachedFeeRepository decorates a FeeRepository with a read-through cache.
type cachedFeeRepository struct {
	next   FeeRepository
	cache  CacheRepository
	logger log.Logger
}

// NewCachedFeeRepository returns a FeeRepository that serves fee tables from cache
// and falls back to next on a miss. Empty tables are not cached.
func NewCachedFeeRepository(next FeeRepository, cache CacheRepository, logger log.Logger) FeeRepository {
	return &cachedFeeRepository{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (r *cachedFeeRepository) FindFeesByTerm(ctx context.Context, term int) ([]domain.Fee, error) {
	key := feeCacheKey(term)

	if cached, ok := r.cache.Get(ctx, key); ok {
		var fees []domain.Fee
		if err := json.Unmarshal([]byte(cached), &fees); err == nil {
			return fees, nil
		}
		r.logger.Log("msg", "discarding unreadable cache entry", "key", key)
	}

	r.logger.Log("msg", "fee cache miss", "term", term)
	fees, err := r.next.FindFeesByTerm(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return fees, nil
	}

	encoded, err := json.Marshal(fees)
	if err != nil {
		return nil, fmt.Errorf("encode fees for term %d: %w", term, err)
	}
	// a failed write only costs a later miss
	if err := r.cache.Set(ctx, key, string(encoded)); err != nil {
		r.logger.Log("msg", "failed to cache fees", "term", term, "err", err)
	}

	return fees, nil
}

func feeCacheKey(term int) string {
	return fmt.Sprintf("%s%d", feeCacheKeyPrefix, term)
}
