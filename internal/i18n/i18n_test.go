package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("es", []string{"es", "en"})
	require.NoError(t, err)
	return b
}

func TestTFallbackChain(t *testing.T) {
	t.Parallel()
	b := newBundle(t)

	require.Equal(t, "Selección", b.T("es", "section.hint"))
	require.Equal(t, "Selection", b.T("en", "section.hint"))
	require.Equal(t, "Selección", b.T("pt", "section.hint"), "unknown lang falls back")
	require.Equal(t, "missing.key", b.T("es", "missing.key"), "unknown key returns the key")
}

func TestToggleLabelNamesTargetLanguage(t *testing.T) {
	t.Parallel()
	b := newBundle(t)

	// The language toggle always shows the language you'd switch to.
	require.Equal(t, "English", b.T("es", "toggle.language"))
	require.Equal(t, "Español", b.T("en", "toggle.language"))
}

func TestResolveAcceptLanguage(t *testing.T) {
	t.Parallel()
	b := newBundle(t)

	require.Equal(t, "en", b.Resolve("en-US,en;q=0.9,es;q=0.8"))
	require.Equal(t, "es", b.Resolve("es-AR"))
	require.Equal(t, "en", b.Resolve("fr;q=0.9,en;q=0.5"))
	require.Equal(t, "es", b.Resolve(""), "empty header resolves to fallback")
	require.Equal(t, "es", b.Resolve("de,fr;q=0.7"))
}

func TestLoadRequiresFallback(t *testing.T) {
	t.Parallel()

	_, err := Load("pt", []string{"pt"})
	require.Error(t, err)
}
