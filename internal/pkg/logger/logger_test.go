package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	Info().Str("course", "CS101").Msg("material created")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "material created" || entry["course"] != "CS101" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp field in %v", entry)
	}
}

func TestConfigureLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	Debug().Msg("hidden")
	Info().Msg("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("expected global warn level, got %v", zerolog.GlobalLevel())
	}
}

func TestConfigFromStrings(t *testing.T) {
	cfg := ConfigFromStrings(" DEBUG ", "Text")
	if cfg.Level != DebugLevel || !cfg.Pretty {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if ConfigFromStrings("info", "json").Pretty {
		t.Fatalf("json format must not be pretty")
	}
}
