package menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "restaurant": {
    "name": "La Esquina",
    "tagline": "Cocina de barrio",
    "palette": {"brand": "#c0392b", "bg": "#fdf6ec"}
  },
  "categories": [
    {"id": "bebidas", "emoji": "🥤", "label": "Bebidas"},
    {"id": "platos", "emoji": "🍽️", "label": "Platos"}
  ],
  "menu": [
    {"title": "Agua Mineral", "price": 500, "img": "agua.jpg", "cat": "bebidas"},
    {"title": "Milanesa", "desc": "Con papas", "price": 4200, "img": "mila.jpg", "cat": "platos"},
    {"title": "Plato Fantasma", "price": 100, "img": "x.jpg", "cat": "no-such-cat"}
  ]
}`

func writeDoc(t *testing.T, dir, lang, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, lang+".json"), []byte(body), 0o644))
}

func TestDirLoaderLoadsAndNormalises(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "es", sampleDocument)

	doc, err := NewDirLoader(dir).Load(context.Background(), "es")
	require.NoError(t, err)

	require.Equal(t, "La Esquina", doc.Restaurant.Name)
	require.Len(t, doc.Categories, 2)
	require.Len(t, doc.Items, 2, "item with unknown category is dropped")
	for _, item := range doc.Items {
		require.NotEqual(t, "Plato Fantasma", item.Title)
	}
}

func TestDirLoaderMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewDirLoader(t.TempDir()).Load(context.Background(), "es")
	require.ErrorIs(t, err, ErrDataUnavailable)
}

func TestDirLoaderRejectsBrokenDocuments(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not json":          `{"restaurant":`,
		"missing name":      `{"restaurant":{"tagline":"x"},"categories":[{"id":"a","label":"A"}],"menu":[]}`,
		"no categories":     `{"restaurant":{"name":"X"},"categories":[],"menu":[]}`,
		"negative price":    `{"restaurant":{"name":"X"},"categories":[{"id":"a","label":"A"}],"menu":[{"title":"T","price":-1,"img":"i","cat":"a"}]}`,
		"duplicate cat ids": `{"restaurant":{"name":"X"},"categories":[{"id":"a","label":"A"},{"id":"a","label":"B"}],"menu":[]}`,
	}
	for name, body := range cases {
		dir := t.TempDir()
		writeDoc(t, dir, "es", body)
		_, err := NewDirLoader(dir).Load(context.Background(), "es")
		require.ErrorIs(t, err, ErrDataUnavailable, "case %s", name)
	}
}

func TestHTTPLoader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/es.json":
			_, _ = w.Write([]byte(sampleDocument))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := NewHTTPLoader(srv.URL, srv.Client())

	doc, err := loader.Load(context.Background(), "es")
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)

	_, err = loader.Load(context.Background(), "en")
	require.ErrorIs(t, err, ErrDataUnavailable, "missing language document")
}

func TestSanitizeLang(t *testing.T) {
	t.Parallel()

	require.Equal(t, "es", sanitizeLang(" ES "))
	require.Equal(t, "en-us", sanitizeLang("en-US"))
	require.Equal(t, "etcpasswd", sanitizeLang("../../etc/passwd/"), "path characters never survive")
	require.Equal(t, "es", sanitizeLang(""))
}
