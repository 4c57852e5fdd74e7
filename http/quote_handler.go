package http

import (
	"net/http"
	"strconv"

	"github.com/go-kit/log"

	"loan-fee/repository"
)

const defaultQuoteLimit = 20

type QuoteHandler struct {
	quotes repository.QuoteRepository
	logger log.Logger
}

func NewQuoteHandler(quotes repository.QuoteRepository, logger log.Logger) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, logger: logger}
}

// ListQuotes handles GET /fee/quotes?limit=N, newest first.
func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := defaultQuoteLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		limit = n
	}

	quotes, err := h.quotes.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Log("msg", "failed to list quotes", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, quotes)
}
