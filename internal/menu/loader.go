// Package menu loads and normalises per-language menu documents.
package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/observability"
)

// ErrDataUnavailable indicates the menu document could not be fetched or
// parsed. Loads are atomic: a complete document or this error, no retry, no
// partial result.
var ErrDataUnavailable = errors.New("menu: data unavailable")

const maxDocumentSize = 4 << 20

// Loader fetches the menu document for a language.
type Loader interface {
	Load(ctx context.Context, lang string) (domain.Document, error)
}

// DirLoader reads documents from a directory, one <lang>.json per language.
type DirLoader struct {
	dir      string
	validate *validator.Validate
}

// NewDirLoader constructs a loader rooted at dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{dir: dir, validate: validator.New()}
}

// Load implements Loader.
func (l *DirLoader) Load(ctx context.Context, lang string) (domain.Document, error) {
	path := filepath.Join(l.dir, sanitizeLang(lang)+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: read %s: %v", ErrDataUnavailable, path, err)
	}
	return decodeDocument(ctx, raw, l.validate)
}

// HTTPLoader fetches documents from a remote base URL, one <lang>.json each.
type HTTPLoader struct {
	baseURL  string
	client   *http.Client
	validate *validator.Validate
}

// NewHTTPLoader constructs a loader for the given base URL. A nil client uses
// a default with a 10s timeout.
func NewHTTPLoader(baseURL string, client *http.Client) *HTTPLoader {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPLoader{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   client,
		validate: validator.New(),
	}
}

// Load implements Loader.
func (l *HTTPLoader) Load(ctx context.Context, lang string) (domain.Document, error) {
	docURL := l.baseURL + "/" + url.PathEscape(sanitizeLang(lang)) + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: fetch %s: %v", ErrDataUnavailable, docURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Document{}, fmt.Errorf("%w: fetch %s: status %d", ErrDataUnavailable, docURL, resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: fetch %s: %v", ErrDataUnavailable, docURL, err)
	}
	return decodeDocument(ctx, raw, l.validate)
}

func decodeDocument(ctx context.Context, raw []byte, validate *validator.Validate) (domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("%w: parse: %v", ErrDataUnavailable, err)
	}
	if err := validate.StructCtx(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("%w: invalid document: %v", ErrDataUnavailable, err)
	}

	seen := make(map[string]struct{}, len(doc.Categories))
	for _, cat := range doc.Categories {
		if _, dup := seen[cat.ID]; dup {
			return domain.Document{}, fmt.Errorf("%w: duplicate category id %q", ErrDataUnavailable, cat.ID)
		}
		seen[cat.ID] = struct{}{}
	}

	return normalise(ctx, doc, seen), nil
}

// normalise drops items whose category id resolves to no known category.
// That is a content mistake, not a load failure; the rest of the document
// still renders.
func normalise(ctx context.Context, doc domain.Document, categories map[string]struct{}) domain.Document {
	kept := make([]domain.MenuItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		if _, ok := categories[item.CategoryID]; !ok {
			observability.FromContext(ctx).Warn("menu item references unknown category",
				zap.String("title", item.Title),
				zap.String("category_id", item.CategoryID),
			)
			continue
		}
		kept = append(kept, item)
	}
	doc.Items = kept
	return doc
}

func sanitizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	var b strings.Builder
	for _, r := range lang {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "es"
	}
	return b.String()
}
