//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/quotes", filepath.Join(home, "quotes")},
		{"tilde with nested path", "~/a/b/c", filepath.Join(home, "a", "b", "c")},
		{"absolute path unchanged", "/var/lib/quotes", "/var/lib/quotes"},
		{"relative path unchanged", "data/quotes", "data/quotes"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, "config.toml", paths[len(paths)-1])
	assert.Equal(t, "config.toml", filepath.Base(paths[0]))
	assert.Equal(t, appName, filepath.Base(filepath.Dir(paths[0])))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.DataDir)
	assert.Equal(t, "json", cfg.Storage)
	assert.Equal(t, DefaultSaveTimeout, cfg.SaveTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultLogMaxSizeMB, cfg.Log.MaxSizeMB)
	assert.Equal(t, DefaultLogMaxBackups, cfg.Log.MaxBackups)
	assert.Equal(t, DefaultLogMaxAgeDays, cfg.Log.MaxAgeDays)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
data_dir = "/tmp/quotes"
storage = "sqlite"
save_timeout = "500ms"

[log]
level = "debug"
file = "/tmp/quotes.log"
max_size = 10
compress = true
`)

	cfg, err := load([]string{path})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/quotes", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, 500*time.Millisecond, cfg.SaveTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/quotes.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.True(t, cfg.Log.Compress)
	assert.Equal(t, DefaultLogMaxBackups, cfg.Log.MaxBackups, "unset keys keep defaults")
}

func TestLoad_LaterFileWins(t *testing.T) {
	first := writeConfig(t, `storage = "sqlite"`+"\n"+`save_timeout = "3s"`)
	second := writeConfig(t, `storage = "json"`)

	cfg, err := load([]string{first, second})

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Storage)
	assert.Equal(t, 3*time.Second, cfg.SaveTimeout)
}

func TestLoad_MissingFilesIgnored(t *testing.T) {
	cfg, err := load([]string{filepath.Join(t.TempDir(), "nope.toml")})

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Storage)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `storage = "json"`)
	t.Setenv("QUICKQUOTES_STORAGE", "sqlite")
	t.Setenv("QUICKQUOTES_SAVE_TIMEOUT", "750ms")
	t.Setenv("QUICKQUOTES_LOG__LEVEL", "warn")

	cfg, err := load([]string{path})

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, 750*time.Millisecond, cfg.SaveTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ExpandsPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}
	path := writeConfig(t, `data_dir = "~/quotes"`+"\n[log]\nfile = \"~/quotes.log\"")

	cfg, err := load([]string{path})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "quotes"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, "quotes.log"), cfg.Log.File)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"unknown storage", `storage = "yaml"`, "storage must be one of: json sqlite"},
		{"timeout too short", `save_timeout = "1ms"`, "savetimeout must be at least 100ms"},
		{"bad log level", "[log]\nlevel = \"loud\"", "log.level must be one of"},
		{"log size zero", "[log]\nmax_size = 0", "log.maxsizemb must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load([]string{writeConfig(t, tt.content)})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := load([]string{writeConfig(t, "storage = ")})

	require.Error(t, err)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	require.Error(t, err)
}

func TestLogFilePath(t *testing.T) {
	cfg := &Config{Log: LogConfig{File: "/tmp/custom.log"}}
	path, err := cfg.LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.log", path)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "storage", envKey("QUICKQUOTES_STORAGE"))
	assert.Equal(t, "save_timeout", envKey("QUICKQUOTES_SAVE_TIMEOUT"))
	assert.Equal(t, "log.max_size", envKey("QUICKQUOTES_LOG__MAX_SIZE"))
}
