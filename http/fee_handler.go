package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-kit/log"

	"loan-fee/domain"
	"loan-fee/repository"
	"loan-fee/service"
)

type FeeHandler struct {
	service service.FeeService
	quotes  repository.QuoteRepository
	logger  log.Logger
	now     func() time.Time
}

func NewFeeHandler(
	service service.FeeService,
	quotes repository.QuoteRepository,
	logger log.Logger,
) *FeeHandler {
	return &FeeHandler{
		service: service,
		quotes:  quotes,
		logger:  logger,
		now:     time.Now,
	}
}

// CalculateFee handles POST /fee/calculate with a body like {"term": 24, "amount": "1350"}.
func (h *FeeHandler) CalculateFee(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var proposal domain.LoanProposal
	if err := json.NewDecoder(r.Body).Decode(&proposal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fee, err := h.service.Calculate(r.Context(), proposal)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	quote := domain.NewFeeQuote(proposal, fee, h.now().UTC())

	// the quote log is informational, a failed save does not fail the request
	if err := h.quotes.Save(r.Context(), quote); err != nil {
		h.logger.Log("msg", "failed to save fee quote", "err", err)
	}

	writeJSON(w, h.logger, http.StatusOK, quote)
}
