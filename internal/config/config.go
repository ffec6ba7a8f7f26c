package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName = "quickquotes"

	// EnvPrefix prefixes environment overrides. Nested keys use a double
	// underscore: QUICKQUOTES_LOG__LEVEL=debug sets log.level.
	EnvPrefix = "QUICKQUOTES_"

	DefaultSaveTimeout   = 2 * time.Second
	DefaultLogMaxSizeMB  = 5
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// Config holds the application configuration.
type Config struct {
	DataDir     string        `koanf:"data_dir"`                                 // defaults to the XDG data home
	Storage     string        `koanf:"storage"      validate:"oneof=json sqlite"` // "json" or "sqlite"
	SaveTimeout time.Duration `koanf:"save_timeout" validate:"min=100ms,max=1m"`  // deadline for saves on suspend/quit
	Log         LogConfig     `koanf:"log"`
}

// LogConfig holds log file settings. Logs never go to the terminal.
type LogConfig struct {
	Level      string `koanf:"level"       validate:"oneof=debug info warn error"`
	File       string `koanf:"file"` // defaults to the XDG state home
	MaxSizeMB  int    `koanf:"max_size"    validate:"min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

func defaults() map[string]any {
	return map[string]any{
		"data_dir":     "",
		"storage":      "json",
		"save_timeout": DefaultSaveTimeout.String(),

		"log.level":       "info",
		"log.file":        "",
		"log.max_size":    DefaultLogMaxSizeMB,
		"log.max_backups": DefaultLogMaxBackups,
		"log.max_age":     DefaultLogMaxAgeDays,
		"log.compress":    false,
	}
}

// Load reads the configuration from defaults, the config files, the optional
// explicit file and the environment, in increasing order of priority.
func Load(explicitPath string) (*Config, error) {
	paths := getConfigPaths()
	if explicitPath != "" {
		path := expandPath(explicitPath)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, path)
	}
	return load(paths)
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("loading %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps QUICKQUOTES_LOG__MAX_SIZE to log.max_size.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/quickquotes/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogFilePath returns the configured log file or the default under the XDG state home.
func (c *Config) LogFilePath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
