package http

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-kit/log"

	"loan-fee/domain"
	"loan-fee/repository"
)

type FeeTableHandler struct {
	repo   repository.FeeRepository
	logger log.Logger
}

func NewFeeTableHandler(repo repository.FeeRepository, logger log.Logger) *FeeTableHandler {
	return &FeeTableHandler{repo: repo, logger: logger}
}

// GetFeeTable handles GET /fee/table?term=24 and returns the table sorted by loan amount.
func (h *FeeTableHandler) GetFeeTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	term, err := strconv.Atoi(r.URL.Query().Get("term"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "term must be a whole number of months")
		return
	}

	fees, err := h.repo.FindFeesByTerm(r.Context(), term)
	if err != nil {
		h.logger.Log("msg", "failed to load fee table", "term", term, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(fees) == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no fees found for term %d", term))
		return
	}

	sort.Slice(fees, func(i, j int) bool {
		return fees[i].LoanAmount.LessThan(fees[j].LoanAmount)
	})

	writeJSON(w, h.logger, http.StatusOK, struct {
		Term int          `json:"term"`
		Fees []domain.Fee `json:"fees"`
	}{
		Term: term,
		Fees: fees,
	})
}
