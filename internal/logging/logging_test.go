package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", FormatJSON)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug().Str("line", "line1").Msg("rendered")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "rendered" || entry["line"] != "line1" || entry["level"] != "debug" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "WARN", FormatJSON)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", FormatConsole)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Warn().Msg("Inputs are not valid!")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("expected console output, got JSON: %q", out)
	}
	if !strings.Contains(out, "Inputs are not valid!") {
		t.Errorf("message missing: %q", out)
	}
}

func TestNew_AutoOnBufferIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", FormatAuto)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info().Msg("hello")

	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON for non-terminal writer, got %q", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(&buf, "loud", FormatJSON); err == nil {
		t.Error("expected error for invalid level")
	}
}
