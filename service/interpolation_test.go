package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-fee/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fee(amount, value string) domain.Fee {
	return domain.NewFee(dec(amount), dec(value))
}

func calibrationFees() []domain.Fee {
	return []domain.Fee{
		fee("700", "20"),
		fee("900", "30"),
		fee("1100", "40"),
		fee("1300", "50"),
	}
}

func TestLinearInterpolation_Interpolate(t *testing.T) {
	tests := []struct {
		name   string
		fees   []domain.Fee
		amount string
		want   string
	}{
		{"between 900 and 1100", calibrationFees(), "950", "32.5"},
		{"midpoint", calibrationFees(), "1000", "35.0"},
		{"between 900 and 1100 off-center", calibrationFees(), "1030", "36.5"},
		{"exact calibration point", calibrationFees(), "900", "30"},
		{"lowest calibration point", calibrationFees(), "700", "20"},
		{"highest calibration point", calibrationFees(), "1300", "50"},
		{
			"unordered input",
			[]domain.Fee{fee("1300", "50"), fee("900", "30"), fee("700", "20"), fee("1100", "40")},
			"1030",
			"36.5",
		},
		{
			"decreasing fee between points",
			[]domain.Fee{fee("4000", "115"), fee("5000", "100")},
			"4500",
			"107.5",
		},
		{
			"division truncated to cents",
			[]domain.Fee{fee("1000", "10"), fee("4000", "20")},
			"2000",
			"13.33",
		},
		{
			"duplicate loan amounts resolve to the last one",
			[]domain.Fee{fee("1000", "10"), fee("1000", "12"), fee("2000", "20")},
			"1000",
			"12",
		},
	}

	interpolation := NewLinearInterpolation()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interpolation.Interpolate(dec(tt.amount), tt.fees)

			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestLinearInterpolation_EmptyFees(t *testing.T) {
	_, err := NewLinearInterpolation().Interpolate(dec("1000"), []domain.Fee{})

	assert.ErrorIs(t, err, ErrEmptyFees)
	assert.EqualError(t, err, "fees can not be empty")
}

func TestLinearInterpolation_BoundaryNotFound(t *testing.T) {
	tests := []struct {
		name   string
		fees   []domain.Fee
		amount string
	}{
		{"above the highest point", calibrationFees(), "1400"},
		{"below the lowest point", calibrationFees(), "600"},
		{"all points below", []domain.Fee{fee("100", "1"), fee("200", "2")}, "250"},
		{"all points above", []domain.Fee{fee("300", "3"), fee("400", "4")}, "250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinearInterpolation().Interpolate(dec(tt.amount), tt.fees)

			assert.ErrorIs(t, err, ErrBoundaryNotFound)
			assert.Contains(t, err.Error(), tt.amount)
		})
	}
}

func TestStepInterpolation_Interpolate(t *testing.T) {
	step := NewStepInterpolation()

	got, err := step.Interpolate(dec("950"), calibrationFees())
	require.NoError(t, err)
	assert.True(t, dec("40").Equal(got), "got %s", got)

	got, err = step.Interpolate(dec("900"), calibrationFees())
	require.NoError(t, err)
	assert.True(t, dec("30").Equal(got), "got %s", got)

	_, err = step.Interpolate(dec("1400"), calibrationFees())
	assert.ErrorIs(t, err, ErrBoundaryNotFound)

	_, err = step.Interpolate(dec("1000"), nil)
	assert.ErrorIs(t, err, ErrEmptyFees)
}

func TestNewInterpolator(t *testing.T) {
	assert.IsType(t, &LinearInterpolation{}, NewInterpolator(InterpolationLinear))
	assert.IsType(t, &LinearInterpolation{}, NewInterpolator(""))
	assert.IsType(t, &LinearInterpolation{}, NewInterpolator("spline"))
	assert.IsType(t, &StepInterpolation{}, NewInterpolator(InterpolationStep))
	assert.IsType(t, &StepInterpolation{}, NewInterpolator(" STEP "))
}
