package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Settings{Level: "debug", JSON: true})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug().Str("kind", "balanceOf").Msg("decoded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "debug" || entry["kind"] != "balanceOf" || entry["app"] != "cisctl" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Settings{Level: "WARN", NoColor: true})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Settings{Level: "loud"}); err == nil {
		t.Error("invalid level accepted")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "trace")
	t.Setenv(EnvNoColor, "true")
	s := Settings{Level: "info"}.FromEnv()
	if s.Level != "trace" || !s.NoColor {
		t.Errorf("settings = %+v", s)
	}

	t.Setenv(EnvNoColor, "maybe")
	if s := (Settings{}).FromEnv(); s.NoColor {
		t.Error("unparsable boolean applied")
	}
}
