package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"loan-fee/domain"
	"loan-fee/repository"
)

// FeeService calculates the origination fee for a loan proposal.
type FeeService interface {
	Calculate(ctx context.Context, proposal domain.LoanProposal) (decimal.Decimal, error)
}

type feeService struct {
	repo         repository.FeeRepository
	interpolator Interpolator
}

// NewFeeService creates a FeeService reading fee tables from repo and estimating
// amounts between calibration points with interpolator.
func NewFeeService(repo repository.FeeRepository, interpolator Interpolator) FeeService {
	return &feeService{
		repo:         repo,
		interpolator: interpolator,
	}
}

// Calculate validates the proposal, looks up the fee for its amount (interpolating
// when there is no exact entry) and rounds the fee up so that amount + fee is a
// multiple of RoundingMultiple.
func (s *feeService) Calculate(
	ctx context.Context,
	proposal domain.LoanProposal,
) (decimal.Decimal, error) {

	if err := validateProposal(proposal); err != nil {
		return decimal.Zero, err
	}

	fees, err := s.repo.FindFeesByTerm(ctx, proposal.Term)
	if err != nil {
		return decimal.Zero, fmt.Errorf("find fees for term %d: %w", proposal.Term, err)
	}
	if len(fees) == 0 {
		return decimal.Zero, fmt.Errorf("%w %d", ErrNoFeesForTerm, proposal.Term)
	}

	fee, ok := exactFee(proposal.Amount, fees)
	if !ok {
		fee, err = s.interpolator.Interpolate(proposal.Amount, fees)
		if err != nil {
			return decimal.Zero, err
		}
	}

	return roundFee(proposal.Amount, fee), nil
}

func validateProposal(proposal domain.LoanProposal) error {
	if proposal.Amount.LessThan(minLoanAmount) {
		return fmt.Errorf("%w: the minimum amount for a loan is %d", ErrAmountBelowMinimum, MinLoanAmount)
	}
	if proposal.Amount.GreaterThan(maxLoanAmount) {
		return fmt.Errorf("%w: the maximum amount for a loan is %d", ErrAmountAboveMaximum, MaxLoanAmount)
	}
	if !IsAllowedTerm(proposal.Term) {
		return fmt.Errorf("%w: loan term must be either %s months", ErrInvalidTerm, allowedTermsText())
	}
	return nil
}

// IsAllowedTerm reports whether term is one of AllowedTerms.
func IsAllowedTerm(term int) bool {
	for _, allowed := range AllowedTerms {
		if term == allowed {
			return true
		}
	}
	return false
}

func allowedTermsText() string {
	terms := make([]string, len(AllowedTerms))
	for i, term := range AllowedTerms {
		terms[i] = strconv.Itoa(term)
	}
	return strings.Join(terms, " or ")
}

func exactFee(amount decimal.Decimal, fees []domain.Fee) (decimal.Decimal, bool) {
	for _, fee := range fees {
		if fee.LoanAmount.Equal(amount) {
			return fee.Value, true
		}
	}
	return decimal.Zero, false
}

// roundFee raises fee, never lowers it, until amount + fee is a multiple of RoundingMultiple.
func roundFee(amount, fee decimal.Decimal) decimal.Decimal {
	remainder := amount.Add(fee).Mod(roundingMultiple)
	if remainder.IsZero() {
		return fee
	}
	return fee.Add(roundingMultiple.Sub(remainder))
}
