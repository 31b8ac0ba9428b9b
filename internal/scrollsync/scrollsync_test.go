package scrollsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootMargin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-40% 0px -55% 0px", DefaultBand.RootMargin())
	assert.Equal(t, "-30% 0px -60% 0px", Band{TopPct: 30, BottomPct: 60}.RootMargin())
}

func TestReduceLastIntersectingWins(t *testing.T) {
	t.Parallel()

	got := Reduce("bebidas", []Event{
		{SectionID: "bebidas", Intersecting: false},
		{SectionID: "platos", Intersecting: true},
		{SectionID: "postres", Intersecting: true},
	})
	assert.Equal(t, "postres", got)
}

// A section leaving the band must not clear the highlight; the previous
// active pill stays until another section enters.
func TestReduceLeaveEventKeepsActive(t *testing.T) {
	t.Parallel()

	got := Reduce("platos", []Event{
		{SectionID: "platos", Intersecting: false},
	})
	assert.Equal(t, "platos", got)
}

func TestReduceNoEvents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bebidas", Reduce("bebidas", nil))
}

func TestInitialActive(t *testing.T) {
	t.Parallel()

	sections := []string{"bebidas", "platos", "postres"}

	assert.Equal(t, "platos", InitialActive("platos", sections))
	assert.Equal(t, "bebidas", InitialActive("", sections))
	assert.Equal(t, "bebidas", InitialActive("desconocido", sections))
	assert.Equal(t, "", InitialActive("platos", nil))
}
