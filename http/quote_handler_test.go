package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-fee/domain"
	"loan-fee/repository"
)

func TestListQuotesHandler(t *testing.T) {
	quotes := repository.NewQuoteRepositoryMemory(10)
	for _, amount := range []int64{1000, 2000, 3000} {
		proposal := domain.NewLoanProposal(12, decimal.NewFromInt(amount))
		require.NoError(t, quotes.Save(context.Background(), domain.NewFeeQuote(proposal, decimal.NewFromInt(50), time.Now())))
	}
	handler := NewQuoteHandler(quotes, log.NewNopLogger())

	req := httptest.NewRequest(http.MethodGet, "/fee/quotes?limit=2", nil)
	w := httptest.NewRecorder()
	handler.ListQuotes(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.FeeQuote
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.True(t, decimal.NewFromInt(3000).Equal(got[0].Amount))
}

func TestListQuotesHandler_BadLimit(t *testing.T) {
	handler := NewQuoteHandler(repository.NewQuoteRepositoryMemory(10), log.NewNopLogger())

	req := httptest.NewRequest(http.MethodGet, "/fee/quotes?limit=-1", nil)
	w := httptest.NewRecorder()
	handler.ListQuotes(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
