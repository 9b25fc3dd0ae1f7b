// Package logging builds the zerolog loggers used by cisctl.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables that override the configured settings.
const (
	EnvLevel   = "CISCTL_LOG_LEVEL"
	EnvNoColor = "CISCTL_LOG_NOCOLOR"
)

// Settings configures a logger.
type Settings struct {
	Level   string
	NoColor bool
	// JSON writes structured JSON lines instead of console output.
	JSON bool
}

// FromEnv returns s with the environment overrides applied.
func (s Settings) FromEnv() Settings {
	if v := strings.TrimSpace(os.Getenv(EnvLevel)); v != "" {
		s.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvNoColor)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.NoColor = b
		}
	}
	return s
}

// New builds a logger writing to out. An empty level means info.
func New(out io.Writer, s Settings) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if s.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(s.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	w := out
	if !s.JSON {
		w = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    s.NoColor,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "cisctl").Logger(), nil
}
