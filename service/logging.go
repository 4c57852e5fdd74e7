package service

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/shopspring/decimal"

	"loan-fee/domain"
)

// loggingService decorates a FeeService with logging
type loggingService struct {
	logger log.Logger
	next   FeeService
}

// NewLoggingService returns a FeeService that logs every calculation made by s.
func NewLoggingService(logger log.Logger, s FeeService) FeeService {
	return &loggingService{
		logger: logger,
		next:   s,
	}
}

func (s *loggingService) Calculate(ctx context.Context, proposal domain.LoanProposal) (fee decimal.Decimal, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "calculate",
			"term", proposal.Term,
			"amount", proposal.Amount,
			"fee", fee,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Calculate(ctx, proposal)
}
