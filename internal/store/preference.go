package store

import (
	"context"
	"fmt"
)

// Theme preference values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultTheme is returned when no preference has been stored yet.
const DefaultTheme = ThemeLight

// PreferenceStore persists small user preferences, currently just the theme,
// each under its own key in the gateway.
type PreferenceStore struct {
	kv KV
}

// NewPreferenceStore creates a PreferenceStore over the given gateway.
func NewPreferenceStore(kv KV) *PreferenceStore {
	if kv == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("kv cannot be nil for PreferenceStore")
	}
	return &PreferenceStore{kv: kv}
}

// Theme returns the stored theme preference, or DefaultTheme when none has
// been set. A stored value that is neither "dark" nor "light" falls back to
// the default rather than propagating garbage to the caller.
func (p *PreferenceStore) Theme(ctx context.Context) (string, error) {
	value, err := p.kv.Get(ctx, ThemeKey)
	if err != nil {
		if IsNotFoundError(err) {
			return DefaultTheme, nil
		}
		return "", NewStoreError("theme", "read", "gateway read failed", err)
	}

	theme := string(value)
	if theme != ThemeDark && theme != ThemeLight {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme stores the theme preference. Only "dark" and "light" are accepted.
func (p *PreferenceStore) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	if err := p.kv.Put(ctx, ThemeKey, []byte(theme)); err != nil {
		return NewStoreError("theme", "write", "gateway write failed", err)
	}
	return nil
}
