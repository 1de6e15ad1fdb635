package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadFromFile(t *testing.T) {
	p := writeFile(t, "commstyle.yaml", `
log:
  level: debug
  file: /tmp/quiz.log
output:
  format: json
`)
	cfg, err := LoadFromFile(p)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/quiz.log", cfg.Log.File)
	assert.Equal(t, "json", cfg.Output.Format)
	// untouched keys keep their defaults
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 30, cfg.Output.BarWidth)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile_FallsBackToDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadFromFile(writeFile(t, "bad.yaml", "log: [unterminated"))
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("COMMSTYLE_LOG_LEVEL", "WARN")
	t.Setenv("COMMSTYLE_OUTPUT_FORMAT", "json")
	t.Setenv("COMMSTYLE_COLOR", "false")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Log.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output.BarWidth = -1
	assert.Error(t, cfg.Validate())
}
