package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"loan-fee/domain"
)

// FeeRepositoryPostgres reads fee tables from the loan_fees table:
//
//	CREATE TABLE loan_fees (
//	    term        INTEGER        NOT NULL,
//	    loan_amount NUMERIC(12, 2) NOT NULL,
//	    fee         NUMERIC(12, 2) NOT NULL,
//	    PRIMARY KEY (term, loan_amount)
//	);
type FeeRepositoryPostgres struct {
	db *pgxpool.Pool
}

func NewFeeRepositoryPostgres(db *pgxpool.Pool) *FeeRepositoryPostgres {
	return &FeeRepositoryPostgres{db: db}
}

func (r *FeeRepositoryPostgres) FindFeesByTerm(ctx context.Context, term int) ([]domain.Fee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT loan_amount::text, fee::text
		FROM loan_fees
		WHERE term = $1
		ORDER BY loan_amount
	`, term)
	if err != nil {
		return nil, fmt.Errorf("query loan_fees: %w", err)
	}
	defer rows.Close()

	fees := []domain.Fee{}
	for rows.Next() {
		var amount, value string
		if err := rows.Scan(&amount, &value); err != nil {
			return nil, fmt.Errorf("scan loan_fees: %w", err)
		}
		fee, err := parseFee(amount, value)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}

	return fees, rows.Err()
}

// SaveFees replaces the fee table of term inside a single transaction.
func (r *FeeRepositoryPostgres) SaveFees(ctx context.Context, term int, fees []domain.Fee) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM loan_fees WHERE term = $1`, term); err != nil {
		return fmt.Errorf("clear fees for term %d: %w", term, err)
	}
	for _, fee := range fees {
		_, err := tx.Exec(ctx, `
			INSERT INTO loan_fees (term, loan_amount, fee)
			VALUES ($1, $2::numeric, $3::numeric)
		`, term, fee.LoanAmount.String(), fee.Value.String())
		if err != nil {
			return fmt.Errorf("insert fee %s for term %d: %w", fee.LoanAmount, term, err)
		}
	}

	return tx.Commit(ctx)
}

func parseFee(amount, value string) (domain.Fee, error) {
	loanAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Fee{}, fmt.Errorf("bad loan amount %q: %w", amount, err)
	}
	fee, err := decimal.NewFromString(value)
	if err != nil {
		return domain.Fee{}, fmt.Errorf("bad fee value %q: %w", value, err)
	}
	return domain.NewFee(loanAmount, fee), nil
}
