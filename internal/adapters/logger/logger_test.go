package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/deparse/internal/adapters/logger"
	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		return "", err
	}
	output := <-done
	if err := r.Close(); err != nil {
		return "", err
	}
	return output, nil
}

func TestNew_WritesToStderr(t *testing.T) {
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("normalized 12 entries")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "normalized 12 entries") {
		t.Errorf("Expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("info line")
	lg.Warn("warn line")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="info line"`)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="warn line"`)
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetLevel(slog.LevelWarn)

	lg.Info("hidden")
	lg.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)
	lg.SetLevel(slog.LevelWarn)
	lg.SetOutput(&second)

	lg.Info("still hidden")
	lg.Warn("moved")

	assert.Empty(t, first.String())
	assert.NotContains(t, second.String(), "still hidden")
	assert.Contains(t, second.String(), "moved")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	err := zerr.With(zerr.Wrap(domain.ErrIntentNotFound, "lookup failed"), "intent", "react@^16.4.2")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "intent not found in lock table")
	assert.Contains(t, out, "intent=react@^16.4.2")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChainMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	inner := zerr.With(zerr.Wrap(domain.ErrLockfileInvalid, "cannot parse"), "line", 7)
	outer := zerr.With(zerr.Wrap(inner, "failed to load inputs"), "path", "yarn.lock")
	lg.Error(errors.Join(outer, errors.New("sibling")))

	out := buf.String()
	assert.Contains(t, out, "line=7")
	assert.Contains(t, out, "path=yarn.lock")
	assert.Less(t, strings.Index(out, "line=7"), strings.Index(out, "path=yarn.lock"), "keys are sorted")
}
