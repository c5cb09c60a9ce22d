// Package config loads fittrack settings from the environment, an optional
// .env file and an optional fittrack.yaml file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable fittrack reads.
const EnvPrefix = "FITTRACK"

// ColorMode controls terminal styling of CLI output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode string.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Config holds CLI settings.
type Config struct {
	Color     ColorMode
	LogLevel  string
	LogFormat string
}

// DefaultConfig returns a Config with sensible defaults.
// Logging is disabled by default.
func DefaultConfig() Config {
	return Config{
		Color:     ColorAuto,
		LogLevel:  "off",
		LogFormat: "text",
	}
}

// Load reads configuration, falling back to defaults for unset or invalid
// values. Precedence, highest first: process environment, .env file,
// fittrack.yaml, defaults. Both files are looked up in dirs, or in the
// working directory and ~/.fittrack when dirs is empty.
func Load(dirs ...string) (Config, error) {
	if len(dirs) == 0 {
		dirs = defaultDirs()
	}

	defaults := DefaultConfig()
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("color", string(defaults.Color))
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)

	v.SetConfigName("fittrack")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := applyDotEnv(v, dirs); err != nil {
		return defaults, err
	}

	cfg := defaults
	if mode, err := ParseColorMode(v.GetString("color")); err == nil {
		cfg.Color = mode
	}
	if level, err := ParseLogLevel(v.GetString("log_level")); err == nil {
		cfg.LogLevel = level
	}
	if format := strings.ToLower(v.GetString("log_format")); format == "text" || format == "json" {
		cfg.LogFormat = format
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog level. It returns false when logging
// is turned off.
func (c Config) SlogLevel() (slog.Level, bool) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// ParseLogLevel validates a log level string.
func ParseLogLevel(s string) (string, error) {
	switch level := strings.ToLower(strings.TrimSpace(s)); level {
	case "off", "debug", "info", "warn", "error":
		return level, nil
	default:
		return "", fmt.Errorf("invalid log level %q (want off, debug, info, warn or error)", s)
	}
}

// applyDotEnv copies FITTRACK_* keys from the first .env file found into v.
// Variables already present in the process environment win.
func applyDotEnv(v *viper.Viper, dirs []string) error {
	for _, dir := range dirs {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for key, value := range values {
			if !strings.HasPrefix(key, EnvPrefix+"_") {
				continue
			}
			if _, set := os.LookupEnv(key); set {
				continue
			}
			v.Set(strings.ToLower(strings.TrimPrefix(key, EnvPrefix+"_")), value)
		}
		return nil
	}
	return nil
}

func defaultDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fittrack"))
	}
	return dirs
}
