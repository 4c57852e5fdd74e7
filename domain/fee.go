package domain

import "github.com/shopspring/decimal"

// Fee is one calibration point of a fee table: the fee charged for a loan of LoanAmount.
type Fee struct {
	LoanAmount decimal.Decimal `json:"loan_amount"`
	Value      decimal.Decimal `json:"fee"`
}

func NewFee(loanAmount, value decimal.Decimal) Fee {
	return Fee{LoanAmount: loanAmount, Value: value}
}

// LoanProposal is a cut down loan application holding only what the fee depends on.
type LoanProposal struct {
	Term   int             `json:"term"`
	Amount decimal.Decimal `json:"amount"`
}

func NewLoanProposal(term int, amount decimal.Decimal) LoanProposal {
	return LoanProposal{Term: term, Amount: amount}
}
