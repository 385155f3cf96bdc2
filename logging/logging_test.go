package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/logging"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]zapcore.Level{
		"debug": zap.DebugLevel,
		"INFO":  zap.InfoLevel,
		"":      zap.InfoLevel,
		"warn":  zap.WarnLevel,
		"error": zap.ErrorLevel,
	} {
		got, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := logging.ParseLevel("trace")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, lvl, err := logging.New(config.LogConfig{Level: "warn", Format: format})
		require.NoError(t, err, format)
		require.NotNil(t, log)
		assert.Equal(t, zap.WarnLevel, lvl.Level())
		assert.False(t, log.Core().Enabled(zap.InfoLevel))

		lvl.SetLevel(zap.DebugLevel)
		assert.True(t, log.Core().Enabled(zap.DebugLevel), "level is live")
	}

	_, _, err := logging.New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestFollow(t *testing.T) {
	p := filepath.Join(t.TempDir(), "lvroute.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log:\n  level: info\n"), 0o600))
	loader, err := config.NewLoader(p)
	require.NoError(t, err)

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	logging.Follow(loader, lvl, zap.NewNop())

	require.NoError(t, os.WriteFile(p, []byte("log:\n  level: debug\n"), 0o600))
	_, err = loader.Reload()
	require.NoError(t, err)
	assert.Equal(t, zap.DebugLevel, lvl.Level())
}
