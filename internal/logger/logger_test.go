package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	prod, err := New(true)
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))

	dev, err := New(false)
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))
}

func TestNewCLI(t *testing.T) {
	quiet, err := NewCLI(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zap.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zap.WarnLevel))

	verbose, err := NewCLI(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zap.DebugLevel))
}
