package prefs

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	assert.Equal(t, DefaultTheme, s.Theme())
	assert.Equal(t, DefaultLanguage, s.Language())

	s = NewStore(NewMemoryBackend(), WithDefault(Language, "de"), WithDefault(Theme, ""))
	assert.Equal(t, "de", s.Language())
	assert.Equal(t, DefaultTheme, s.Theme())
}

func TestStoreSetGetIndependent(t *testing.T) {
	backend := NewMemoryBackend()
	s := NewStore(backend)

	require.NoError(t, s.SetTheme("ocean"))
	assert.Equal(t, "ocean", s.Theme())
	assert.Equal(t, DefaultLanguage, s.Language())

	require.NoError(t, s.SetLanguage("ru"))
	assert.Equal(t, "ru", s.Language())

	raw, err := backend.Get(LanguageKey)
	require.NoError(t, err)
	assert.Equal(t, "ru", raw)
}

func TestStoreDoesNotValidate(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	require.NoError(t, s.SetLanguage("xx"))
	assert.Equal(t, "xx", s.Language())
}

func TestStoreUnknownName(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	assert.ErrorIs(t, s.Set("font", "big"), ErrUnknownPreference)
	assert.Empty(t, s.Get("font"))
}

type failingBackend struct{}

func (failingBackend) Get(string) (string, error) { return "", errors.New("disk on fire") }
func (failingBackend) Set(string, string) error   { return errors.New("disk on fire") }

func TestStoreBackendFailureFallsBackToDefault(t *testing.T) {
	s := NewStore(failingBackend{})
	assert.Equal(t, DefaultTheme, s.Theme())
	assert.Error(t, s.SetTheme("light"))
}

func TestCookieBackend(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ThemeKey, Value: "purple"})
	rec := httptest.NewRecorder()

	s := NewStore(NewCookieBackend(rec, req))
	assert.Equal(t, "purple", s.Theme())
	assert.Equal(t, DefaultLanguage, s.Language())

	require.NoError(t, s.SetLanguage("ja"))
	require.NoError(t, s.SetLanguage("ja"))
	assert.Equal(t, "ja", s.Language())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, LanguageKey, cookies[0].Name)
	assert.Equal(t, "ja", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestBadgerBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()

	backend, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	s := NewStore(backend)
	assert.Equal(t, DefaultLanguage, s.Language())
	require.NoError(t, s.SetLanguage("tr"))
	require.NoError(t, backend.Close())

	backend, err = OpenBadger(dir, nil)
	require.NoError(t, err)
	defer backend.Close()

	assert.Equal(t, "tr", NewStore(backend).Language())
	_, err = backend.Get(ThemeKey)
	assert.ErrorIs(t, err, ErrNotFound)
}
