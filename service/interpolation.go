package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"loan-fee/domain"
)

// feeScale is the number of fractional digits kept when interpolating.
const feeScale = 2

const (
	InterpolationLinear = "linear"
	InterpolationStep   = "step"
)

// Interpolator estimates the fee for a loan amount that has no exact entry in the fee table.
type Interpolator interface {
	Interpolate(amount decimal.Decimal, fees []domain.Fee) (decimal.Decimal, error)
}

// NewInterpolator returns an Interpolator by strategy name.
// Unknown or empty names fall back to linear interpolation.
func NewInterpolator(name string) Interpolator {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case InterpolationStep:
		return NewStepInterpolation()
	default:
		return NewLinearInterpolation()
	}
}

// LinearInterpolation estimates a fee on the straight line between the closest
// fees at or below and at or above the loan amount.
type LinearInterpolation struct{}

func NewLinearInterpolation() *LinearInterpolation {
	return &LinearInterpolation{}
}

func (l *LinearInterpolation) Interpolate(amount decimal.Decimal, fees []domain.Fee) (decimal.Decimal, error) {
	lower, upper, err := findBounds(amount, fees)
	if err != nil {
		return decimal.Zero, err
	}

	span := upper.LoanAmount.Sub(lower.LoanAmount)
	if span.IsZero() {
		return lower.Value, nil
	}

	delta := amount.Sub(lower.LoanAmount).Mul(upper.Value.Sub(lower.Value))
	return lower.Value.Add(delta.Div(span).Truncate(feeScale)), nil
}

// StepInterpolation charges the fee of the next calibration point at or above the amount.
type StepInterpolation struct{}

func NewStepInterpolation() *StepInterpolation {
	return &StepInterpolation{}
}

func (s *StepInterpolation) Interpolate(amount decimal.Decimal, fees []domain.Fee) (decimal.Decimal, error) {
	_, upper, err := findBounds(amount, fees)
	if err != nil {
		return decimal.Zero, err
	}
	return upper.Value, nil
}

// findBounds scans fees once for the largest loan amount <= amount and the
// smallest loan amount >= amount. On equal loan amounts the last one wins.
func findBounds(amount decimal.Decimal, fees []domain.Fee) (lower, upper domain.Fee, err error) {
	if len(fees) == 0 {
		return lower, upper, ErrEmptyFees
	}

	var hasLower, hasUpper bool
	for _, fee := range fees {
		if fee.LoanAmount.LessThanOrEqual(amount) &&
			(!hasLower || fee.LoanAmount.GreaterThanOrEqual(lower.LoanAmount)) {
			lower, hasLower = fee, true
		}
		if fee.LoanAmount.GreaterThanOrEqual(amount) &&
			(!hasUpper || fee.LoanAmount.LessThanOrEqual(upper.LoanAmount)) {
			upper, hasUpper = fee, true
		}
	}

	if !hasLower || !hasUpper {
		return lower, upper, fmt.Errorf("%w: amount %s", ErrBoundaryNotFound, amount)
	}
	return lower, upper, nil
}
