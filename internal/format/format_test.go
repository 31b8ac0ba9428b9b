package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceWholeNumbers(t *testing.T) {
	t.Parallel()

	require.Equal(t, "$ 500", Price(500, "ARS", "es"))
	require.Equal(t, "$ 500", Price(499.6, "ARS", "es"), "fractions round, never display")
	require.Equal(t, "€ 42", Price(42, "EUR", "en"))
}

func TestPriceGroupsLargeAmounts(t *testing.T) {
	t.Parallel()

	got := Price(150000, "ARS", "es")
	require.True(t, strings.HasPrefix(got, "$ "), "symbol prefix, got %q", got)
	require.Contains(t, got, "150")
	require.Contains(t, got, "000")
}

func TestPriceDefensiveInputs(t *testing.T) {
	t.Parallel()

	require.Equal(t, "$ 0", Price(-10, "ARS", "es"))
	require.Equal(t, "XYZ 7", Price(7, "xyz", "not-a-lang"))
}
