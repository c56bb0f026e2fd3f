// Package prefs persists the two user preferences (theme and language)
// across sessions.
package prefs

import (
	"errors"

	"go.uber.org/zap"
)

// Name identifies a preference.
type Name string

const (
	Theme    Name = "theme"
	Language Name = "language"
)

// Storage keys, shared with the browser bundle.
const (
	ThemeKey    = "tos-wallet-theme"
	LanguageKey = "tos-wallet-language"
)

// Defaults used when nothing has been stored yet.
const (
	DefaultTheme    = "dark"
	DefaultLanguage = "en"
)

// ErrNotFound is returned by a Backend when a key was never written.
var ErrNotFound = errors.New("preference not found")

// ErrUnknownPreference is returned for names outside Theme and Language.
var ErrUnknownPreference = errors.New("unknown preference")

// Backend is durable string key/value storage.
type Backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Store reads and writes preferences with defaults. Values are not
// validated; callers only write known-good identifiers.
type Store struct {
	backend  Backend
	defaults map[Name]string
	log      *zap.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithDefault overrides the default of one preference.
func WithDefault(name Name, value string) Option {
	return func(s *Store) {
		if value != "" {
			s.defaults[name] = value
		}
	}
}

// WithLogger attaches a logger for backend failures.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore wraps backend.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		defaults: map[Name]string{
			Theme:    DefaultTheme,
			Language: DefaultLanguage,
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key of name.
func Key(name Name) (string, error) {
	switch name {
	case Theme:
		return ThemeKey, nil
	case Language:
		return LanguageKey, nil
	default:
		return "", ErrUnknownPreference
	}
}

// Default returns the default value of name.
func (s *Store) Default(name Name) string {
	return s.defaults[name]
}

// Get returns the stored value of name, or its default when absent or when
// the backend cannot be read.
func (s *Store) Get(name Name) string {
	key, err := Key(name)
	if err != nil {
		return ""
	}
	value, err := s.backend.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("failed to read preference", zap.String("name", string(name)), zap.Error(err))
		}
		return s.defaults[name]
	}
	if value == "" {
		return s.defaults[name]
	}
	return value
}

// Set stores value under name.
func (s *Store) Set(name Name, value string) error {
	key, err := Key(name)
	if err != nil {
		return err
	}
	return s.backend.Set(key, value)
}

// Language returns the active language.
func (s *Store) Language() string {
	return s.Get(Language)
}

// SetLanguage stores the active language.
func (s *Store) SetLanguage(lang string) error {
	return s.Set(Language, lang)
}

// Theme returns the active theme.
func (s *Store) Theme() string {
	return s.Get(Theme)
}

// SetTheme stores the active theme.
func (s *Store) SetTheme(theme string) error {
	return s.Set(Theme, theme)
}
