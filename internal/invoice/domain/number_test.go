package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYearPrefix(t *testing.T) {
	prefix, err := YearPrefix("2025-03-14")
	require.NoError(t, err)
	require.Equal(t, "25", prefix)

	prefix, err = YearPrefix("2009-12-31")
	require.NoError(t, err)
	require.Equal(t, "09", prefix)

	_, err = YearPrefix("14/03/2025")
	require.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "250001", FormatNumber("25", 1))
	require.Equal(t, "250042", FormatNumber("25", 42))
	require.Equal(t, "2512345", FormatNumber("25", 12345))
}
