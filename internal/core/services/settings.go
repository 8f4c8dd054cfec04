package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyProjectRoot     = "paths.project_root"
	KeyDataDir         = "paths.data_dir"
	KeyEncodings       = "extract.encodings"
	KeyEncodingMarkers = "extract.markers"
	KeyImageMarkers    = "extract.image_markers"
	KeyMaxImages       = "finalize.max_images"
	KeyKeepImages      = "finalize.keep_images"
	KeyHistoryEnabled  = "history.enabled"
	KeyHistoryDir      = "history.data_dir"
)

// settingKind is the value type of a config key.
type settingKind int

const (
	kindString settingKind = iota
	kindStringSlice
	kindPositiveInt
	kindBool
)

var settingKinds = map[string]settingKind{
	KeyProjectRoot:     kindString,
	KeyDataDir:         kindString,
	KeyEncodings:       kindStringSlice,
	KeyEncodingMarkers: kindStringSlice,
	KeyImageMarkers:    kindStringSlice,
	KeyMaxImages:       kindPositiveInt,
	KeyKeepImages:      kindPositiveInt,
	KeyHistoryEnabled:  kindBool,
	KeyHistoryDir:      kindString,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore   driven.ConfigStore
	checkEncoding func(name string) error
}

// SettingsOption configures a SettingsService.
type SettingsOption func(*SettingsService)

// WithEncodingCheck rejects encoding names for which check returns an error.
func WithEncodingCheck(check func(name string) error) SettingsOption {
	return func(s *SettingsService) {
		s.checkEncoding = check
	}
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, opts ...SettingsOption) *SettingsService {
	s := &SettingsService{
		configStore: configStore,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get retrieves current application settings.
// Missing or malformed values fall back to defaults.
func (s *SettingsService) Get() domain.Settings {
	defaults := domain.DefaultSettings()

	return domain.Settings{
		ProjectRoot:     s.getString(KeyProjectRoot, defaults.ProjectRoot),
		DataDir:         s.getString(KeyDataDir, defaults.DataDir),
		Encodings:       s.getStringSlice(KeyEncodings, defaults.Encodings),
		EncodingMarkers: s.getStringSlice(KeyEncodingMarkers, defaults.EncodingMarkers),
		ImageMarkers:    s.getStringSlice(KeyImageMarkers, defaults.ImageMarkers),
		MaxImages:       s.getInt(KeyMaxImages, defaults.MaxImages),
		KeepImages:      s.getInt(KeyKeepImages, defaults.KeepImages),
		HistoryEnabled:  s.getBool(KeyHistoryEnabled, defaults.HistoryEnabled),
		HistoryDir:      s.configStore.GetString(KeyHistoryDir), // No default - empty means the store's default location
	}
}

// Set parses a textual value for key and stores it.
// List values are comma separated.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch kind {
	case kindString:
		parsed = strings.TrimSpace(value)
	case kindStringSlice:
		items := splitList(value)
		if len(items) == 0 {
			return fmt.Errorf("%w: %s needs at least one value", domain.ErrInvalidInput, key)
		}
		if key == KeyEncodings && s.checkEncoding != nil {
			for _, name := range items {
				if err := s.checkEncoding(name); err != nil {
					return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
				}
			}
		}
		parsed = items
	case kindPositiveInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case kindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the supported setting keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// getString returns a string value or the default if not set.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getStringSlice returns a non-empty slice value or a copy of the default.
func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if val := s.configStore.GetStringSlice(key); len(val) > 0 {
		return val
	}
	return append([]string(nil), defaultVal...)
}

// getInt returns a positive int value or the default.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

// getBool returns a bool value or the default if not set.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
