// Command feecalc prints the origination fee for a loan using the built-in fee tables.
//
//	feecalc --term 24 --amount 2750
//	feecalc -t 12 -a 19250.50 --interpolation step
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"

	"loan-fee/domain"
	"loan-fee/repository"
	"loan-fee/service"
)

func main() {
	term := flag.IntP("term", "t", 24, "loan term in months (12 or 24)")
	amount := flag.StringP("amount", "a", "", "loan amount, e.g. 2750 or 1999.99")
	strategy := flag.String("interpolation", service.InterpolationLinear, "interpolation strategy: linear or step")
	verbose := flag.BoolP("verbose", "v", false, "log the calculation to stderr")
	flag.Parse()

	logger := log.NewNopLogger()
	if *verbose {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	}

	loanAmount, err := decimal.NewFromString(*amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid amount %q\n", *amount)
		flag.Usage()
		os.Exit(2)
	}

	feeService := service.NewFeeService(
		repository.NewDefaultFeeRepository(),
		service.NewInterpolator(*strategy),
	)
	feeService = service.NewLoggingService(logger, feeService)

	fee, err := feeService.Calculate(context.Background(), domain.NewLoanProposal(*term, loanAmount))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(fee.StringFixed(2))
}
