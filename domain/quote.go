package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FeeQuote struct {
	Term     int             `json:"term"`
	Amount   decimal.Decimal `json:"amount"`
	Fee      decimal.Decimal `json:"fee"`
	Total    decimal.Decimal `json:"total"`
	QuotedAt time.Time       `json:"quoted_at"`
}

// NewFeeQuote pairs a proposal with its calculated fee.
func NewFeeQuote(proposal LoanProposal, fee decimal.Decimal, at time.Time) FeeQuote {
	return FeeQuote{
		Term:     proposal.Term,
		Amount:   proposal.Amount,
		Fee:      fee,
		Total:    proposal.Amount.Add(fee),
		QuotedAt: at,
	}
}
