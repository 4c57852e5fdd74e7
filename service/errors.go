package service

import "errors"

var (
	ErrAmountBelowMinimum = errors.New("amount below minimum")
	ErrAmountAboveMaximum = errors.New("amount above maximum")
	ErrInvalidTerm        = errors.New("invalid term")
	ErrNoFeesForTerm      = errors.New("no fees found for term")
	ErrEmptyFees          = errors.New("fees can not be empty")
	ErrBoundaryNotFound   = errors.New("can not find boundaries for the loan amount in the given fees")
)

// IsValidationError reports whether err was caused by a proposal the caller can correct.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrAmountBelowMinimum) ||
		errors.Is(err, ErrAmountAboveMaximum) ||
		errors.Is(err, ErrInvalidTerm)
}

// IsFeeDataError reports whether err points at a fee table that does not cover the proposal.
func IsFeeDataError(err error) bool {
	return errors.Is(err, ErrNoFeesForTerm) ||
		errors.Is(err, ErrEmptyFees) ||
		errors.Is(err, ErrBoundaryNotFound)
}
