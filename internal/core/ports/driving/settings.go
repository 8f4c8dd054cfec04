package driving

import "github.com/custodia-labs/quizbank/internal/core/domain"

// SettingsService reads and updates application settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() domain.Settings

	// Set parses value for the given key and persists it.
	// Returns domain.ErrInvalidInput for unknown keys or malformed values.
	Set(key, value string) error

	// Keys returns the supported setting keys in sorted order.
	Keys() []string
}
