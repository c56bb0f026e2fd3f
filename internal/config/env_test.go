package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "DEFAULT_LANGUAGE", "DEFAULT_THEME", "QR_LOAD_TIMEOUT", "ASSETS_DIR", "PREFS_DIR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, "dark", cfg.DefaultTheme)
	assert.Equal(t, 5*time.Second, cfg.QRLoadTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DEFAULT_LANGUAGE", "de")
	t.Setenv("QR_LOAD_TIMEOUT", "250ms")
	t.Setenv("PREFS_DIR", "/tmp/prefs")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "de", cfg.DefaultLanguage)
	assert.Equal(t, 250*time.Millisecond, cfg.QRLoadTimeout)

	dir, err := cfg.PreferencesDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/prefs", dir)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("QR_LOAD_TIMEOUT", "0s")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("QR_LOAD_TIMEOUT", "soon")
	_, err = Load()
	assert.Error(t, err)
}
