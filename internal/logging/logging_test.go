package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.InfoLevel))
	assert.False(t, log.Core().Enabled(zap.DebugLevel))

	log, err = New(Config{Level: "debug", Encoding: "json"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combat.log")
	log, err := New(Config{Level: "info", Encoding: "json", Output: []string{path}})
	require.NoError(t, err)
	log.Info("unit died", zap.Int("hp", -2))
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"unit died"`)
	assert.Contains(t, string(b), `"hp":-2`)
	assert.Contains(t, string(b), `"level":"info"`)
}
