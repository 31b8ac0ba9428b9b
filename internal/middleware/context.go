package middleware

import (
	"context"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyPrefs  ctxKey = "prefs"
	ctxKeyIsHTMX ctxKey = "is_htmx"
)

// WithPreferences stores the resolved visitor preferences in the context.
func WithPreferences(ctx context.Context, p domain.Preferences) context.Context {
	return context.WithValue(ctx, ctxKeyPrefs, p)
}

// PreferencesFromContext returns the resolved preferences, zero value if absent.
func PreferencesFromContext(ctx context.Context) domain.Preferences {
	v, _ := ctx.Value(ctxKeyPrefs).(domain.Preferences)
	return v
}

// WithHTMX marks the request as htmx-initiated.
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX reports whether the current request was initiated by htmx.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}
