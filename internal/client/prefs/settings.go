package prefs

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	themeKey    = "theme_mode"
	languageKey = "language"

	// DefaultTheme is used until a persisted value is loaded
	DefaultTheme = "light"
	// DefaultLanguage is used until a persisted value is loaded
	DefaultLanguage = "en"
)

// stringStore is the shared lifecycle for single-value preference
// stores: async load, suppress-writes-until-loaded, full value persisted
// on every change.
type stringStore struct {
	mu      sync.Mutex
	storage Storage
	key     string
	value   string
	loaded  bool
}

func newStringStore(storage Storage, key, defaultValue string) *stringStore {
	return &stringStore{
		storage: storage,
		key:     key,
		value:   defaultValue,
	}
}

// Load reads the persisted value, keeping the default on any failure
func (s *stringStore) Load(ctx context.Context) {
	data, err := s.storage.Get(ctx, s.key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	if err != nil {
		if err != ErrNotFound {
			log.Warn().Err(err).Str("key", s.key).Msg("failed to load preference")
		}
		return
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("corrupt preference blob, keeping default")
		return
	}
	s.value = value
}

// Set updates the value in memory and persists it
func (s *stringStore) Set(ctx context.Context, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	if !s.loaded {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("failed to encode preference")
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("failed to save preference")
	}
}

// Value returns the current value
func (s *stringStore) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// ThemeStore holds the UI theme mode ("light" or "dark")
type ThemeStore struct {
	*stringStore
}

// NewThemeStore creates a theme store defaulting to light
func NewThemeStore(storage Storage) *ThemeStore {
	return &ThemeStore{newStringStore(storage, themeKey, DefaultTheme)}
}

// LanguageStore holds the UI language code (e.g. "en", "fr")
type LanguageStore struct {
	*stringStore
}

// NewLanguageStore creates a language store defaulting to English
func NewLanguageStore(storage Storage) *LanguageStore {
	return &LanguageStore{newStringStore(storage, languageKey, DefaultLanguage)}
}
