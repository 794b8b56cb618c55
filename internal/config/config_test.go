package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "kashi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
log:
  level: "debug"
  encoding: "json"

translate:
  provider: "anthropic"
  model: "claude-haiku-4-5"
  batch_size: 20
  concurrency: 2

export:
  format: "lrc"
  max_chars_per_line: 30

media:
  probe_timeout: "3s"
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("KASHI_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, "anthropic", cfg.Translate.Provider)
	assert.Equal(t, "claude-haiku-4-5", cfg.Translate.Model)
	assert.Equal(t, 20, cfg.Translate.BatchSize)
	assert.Equal(t, 2, cfg.Translate.Concurrency)
	assert.Equal(t, "lrc", cfg.Export.Format)
	assert.Equal(t, 30, cfg.Export.MaxCharsPerLine)
	assert.Equal(t, 3*time.Second, cfg.Media.ProbeTimeout)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("KASHI_CONFIG", path)
	t.Setenv("KASHI_EXPORT_FORMAT", "srt")
	t.Setenv("KASHI_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "srt", cfg.Export.Format)
	assert.Equal(t, "secret", cfg.Translate.APIKey)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KASHI_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, "gemini", cfg.Translate.Provider)
	assert.Equal(t, 50, cfg.Translate.BatchSize)
	assert.Equal(t, 3, cfg.Translate.Concurrency)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, 42, cfg.Export.MaxCharsPerLine)
	assert.Equal(t, 10*time.Second, cfg.Media.ProbeTimeout)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("KASHI_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad level", "log:\n  level: \"loud\"\n"},
		{"bad provider", "translate:\n  provider: \"mystery\"\n"},
		{"bad format", "export:\n  format: \"docx\"\n"},
		{"zero batch", "translate:\n  batch_size: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KASHI_CONFIG", writeYAML(t, t.TempDir(), tt.yaml))
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
