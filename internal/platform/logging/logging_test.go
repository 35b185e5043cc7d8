package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewSetsLevelAndGlobal(t *testing.T) {
	logger, err := New("debug", "console")
	require.NoError(t, err)
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.Same(t, logger, zap.L())
}

func TestNewDefaultsToInfo(t *testing.T) {
	logger, err := New("", "")
	require.NoError(t, err)
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", "json")
	assert.Error(t, err)
}
