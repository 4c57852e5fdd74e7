package service

import "github.com/shopspring/decimal"

const (
	MinLoanAmount    = 1_000
	MaxLoanAmount    = 20_000
	RoundingMultiple = 5 // principal + fee must land on a multiple of this
)

// AllowedTerms are the loan terms, in months, a fee can be quoted for.
var AllowedTerms = []int{12, 24}

var (
	minLoanAmount    = decimal.NewFromInt(MinLoanAmount)
	maxLoanAmount    = decimal.NewFromInt(MaxLoanAmount)
	roundingMultiple = decimal.NewFromInt(RoundingMultiple)
)
