package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
)

func TestFormatEmployeeNumber(t *testing.T) {
	number, err := domain.FormatEmployeeNumber(1)
	require.NoError(t, err)
	assert.Equal(t, "EMP0001", number)

	number, err = domain.FormatEmployeeNumber(42)
	require.NoError(t, err)
	assert.Equal(t, "EMP0042", number)

	number, err = domain.FormatEmployeeNumber(9999)
	require.NoError(t, err)
	assert.Equal(t, "EMP9999", number)
}

func TestFormatEmployeeNumber_Exhausted(t *testing.T) {
	_, err := domain.FormatEmployeeNumber(10000)
	assert.ErrorIs(t, err, apperrors.ErrExhausted)

	_, err = domain.FormatEmployeeNumber(0)
	assert.ErrorIs(t, err, apperrors.ErrExhausted)

	_, err = domain.FormatEmployeeNumber(-3)
	assert.ErrorIs(t, err, apperrors.ErrExhausted)
}

func TestEmployeeNumberSuffix(t *testing.T) {
	seq, ok := domain.EmployeeNumberSuffix("EMP0007")
	require.True(t, ok)
	assert.Equal(t, int64(7), seq)

	seq, ok = domain.EmployeeNumberSuffix("EMP9999")
	require.True(t, ok)
	assert.Equal(t, int64(9999), seq)

	for _, bad := range []string{"", "EMP", "EMPabcd", "emp0001", "X0001", "EMP-001"} {
		_, ok := domain.EmployeeNumberSuffix(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestFormatEmployeeNumber_RoundTrip(t *testing.T) {
	for _, seq := range []int64{1, 10, 123, 9999} {
		number, err := domain.FormatEmployeeNumber(seq)
		require.NoError(t, err)
		got, ok := domain.EmployeeNumberSuffix(number)
		require.True(t, ok)
		assert.Equal(t, seq, got)
	}
}
