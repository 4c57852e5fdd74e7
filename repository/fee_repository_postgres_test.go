package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFee(t *testing.T) {
	fee, err := parseFee("1500.00", "40.50")

	require.NoError(t, err)
	assert.Equal(t, "1500", fee.LoanAmount.String())
	assert.Equal(t, "40.5", fee.Value.String())
}

func TestParseFee_BadValues(t *testing.T) {
	_, err := parseFee("abc", "40")
	assert.ErrorContains(t, err, "bad loan amount")

	_, err = parseFee("1500", "")
	assert.ErrorContains(t, err, "bad fee value")
}
