// Package config loads the cisctl configuration file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/blockberries/ciscodec/internal/logging"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// Limit profiles.
const (
	ProfileDefault = "default"
	ProfileSecure  = "secure"
	ProfileNone    = "none"
)

// Config holds cisctl settings.
type Config struct {
	LogLevel   string
	LogNoColor bool
	LogJSON    bool

	// Limits names the decoding limit profile.
	Limits         string
	MaxListLength  int
	MaxBytesLength int
	ValidateUTF8   bool
}

// fileConfig is the on-disk TOML layout.
type fileConfig struct {
	LogLevel       string `toml:"log_level"`
	LogNoColor     bool   `toml:"log_no_color"`
	LogJSON        bool   `toml:"log_json"`
	Limits         string `toml:"limits"`
	MaxListLength  int    `toml:"max_list_length"`
	MaxBytesLength int    `toml:"max_bytes_length"`
	ValidateUTF8   bool   `toml:"validate_utf8"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:     "info",
		Limits:       ProfileDefault,
		ValidateUTF8: true,
	}
}

// Load reads the TOML file at path over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return overlay(Default(), raw, meta)
}

// Parse is Load for TOML held in memory.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return overlay(Default(), raw, meta)
}

func overlay(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_no_color") {
		cfg.LogNoColor = raw.LogNoColor
	}
	if meta.IsDefined("log_json") {
		cfg.LogJSON = raw.LogJSON
	}
	if meta.IsDefined("limits") {
		cfg.Limits = strings.ToLower(strings.TrimSpace(raw.Limits))
	}
	if meta.IsDefined("max_list_length") {
		cfg.MaxListLength = raw.MaxListLength
	}
	if meta.IsDefined("max_bytes_length") {
		cfg.MaxBytesLength = raw.MaxBytesLength
	}
	if meta.IsDefined("validate_utf8") {
		cfg.ValidateUTF8 = raw.ValidateUTF8
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch c.Limits {
	case ProfileDefault, ProfileSecure, ProfileNone:
	default:
		return fmt.Errorf("config: unknown limits profile %q", c.Limits)
	}
	if c.MaxListLength < 0 || c.MaxBytesLength < 0 {
		return fmt.Errorf("config: negative limit")
	}
	return nil
}

// Options returns the decoding options selected by the configuration.
func (c Config) Options() serial.Options {
	var opts serial.Options
	switch c.Limits {
	case ProfileSecure:
		opts = serial.SecureOptions
	case ProfileNone:
		opts = serial.Options{Limits: serial.NoLimits}
	default:
		opts = serial.DefaultOptions
	}
	if c.MaxListLength > 0 {
		opts.Limits.MaxListLength = c.MaxListLength
	}
	if c.MaxBytesLength > 0 {
		opts.Limits.MaxBytesLength = c.MaxBytesLength
	}
	opts.ValidateUTF8 = c.ValidateUTF8
	return opts
}

// Logging returns the logger settings, with environment overrides applied.
func (c Config) Logging() logging.Settings {
	return logging.Settings{
		Level:   c.LogLevel,
		NoColor: c.LogNoColor,
		JSON:    c.LogJSON,
	}.FromEnv()
}
