package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goliatone/go-formview/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("warn", "json", &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("field", "people").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info must be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"field":"people"`) || !strings.Contains(out, `"message":"shown"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("chatty", "json", &buf)

	logger.Debug().Msg("debug")
	logger.Info().Msg("info")

	if out := buf.String(); strings.Contains(out, `"debug"`) || !strings.Contains(out, `"info"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "console", &buf)
	logger.Info().Msg("hello")

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") || !strings.Contains(out, "hello") {
		t.Fatalf("expected console output, got %q", out)
	}
}
