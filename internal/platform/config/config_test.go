package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(WithEnvFile(""), WithSiteFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, BackendLocal, cfg.Likes.Backend)
	require.Equal(t, 6, cfg.Menu.PopularSize)
	require.Equal(t, []string{"es", "en"}, cfg.Locale.Languages())
}

func TestLoadSiteFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	site := filepath.Join(dir, "carta.yaml")
	require.NoError(t, os.WriteFile(site, []byte(`
server:
  port: "9090"
menu:
  data_dir: /srv/menu
  currency: USD
likes:
  backend: firestore
firestore:
  project_id: carta-prod
locale:
  primary: es
  secondary: en
`), 0o644))

	cfg, err := Load(
		WithEnvFile(""),
		WithSiteFile(site),
		WithEnvMap(map[string]string{
			"CARTA_PORT":         "7070",
			"CARTA_READ_TIMEOUT": "5s",
		}),
	)
	require.NoError(t, err)

	require.Equal(t, "7070", cfg.Server.Port, "env must override the site file")
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "/srv/menu", cfg.Menu.DataDir)
	require.Equal(t, "USD", cfg.Menu.Currency)
	require.Equal(t, BackendFirestore, cfg.Likes.Backend)
	require.Equal(t, "carta-prod", cfg.Firestore.ProjectID)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(
		WithEnvFile(""),
		WithSiteFile(filepath.Join(t.TempDir(), "missing.yaml")),
		WithEnvMap(map[string]string{
			"CARTA_PORT":          "not-a-port",
			"CARTA_LIKES_BACKEND": "redis",
		}),
	)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields(), "server.port")
	require.Contains(t, verr.Fields(), "likes.backend")
}

func TestFirestoreBackendRequiresProject(t *testing.T) {
	_, err := Load(
		WithEnvFile(""),
		WithSiteFile(filepath.Join(t.TempDir(), "missing.yaml")),
		WithEnvMap(map[string]string{"CARTA_LIKES_BACKEND": "firestore"}),
	)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields(), "firestore.project_id")
}
