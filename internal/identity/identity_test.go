package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveNormalises(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Agua Mineral":      "agua_mineral",
		"  Agua   Mineral ": "agua_mineral",
		"AGUA MINERAL":      "agua_mineral",
		"Café Cortado":      "café_cortado",
		"Pizza 4 Quesos!":   "pizza_4_quesos",
		"combo-del-día":     "combo-del-día",
		"":                  "",
		"   ":               "",
	}
	for title, want := range cases {
		require.Equal(t, want, Resolve(title), "title %q", title)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"Milanesa Napolitana", "Café con Leche", "Flan c/ crema"} {
		id := Resolve(title)
		require.Equal(t, id, Resolve(id))
	}
}

// Titles differing only in case or whitespace share one counter. Collisions
// merge silently; this pins the behaviour rather than hiding it.
func TestResolveCollidingTitlesShareOneID(t *testing.T) {
	t.Parallel()

	require.Equal(t, Resolve("Café Cortado"), Resolve("café   cortado"))
	require.Equal(t, Resolve("Té Verde"), Resolve("TÉ  VERDE"))
}
