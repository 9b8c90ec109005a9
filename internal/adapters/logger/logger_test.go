package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/loom/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)
	l.Info("generated 3 targets")

	assert.Contains(t, buf.String(), "generated 3 targets")
}

func TestLogger_Error_RendersCauseChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)

	err := zerr.Wrap(zerr.New("file not found"), "failed to read build file")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to read build file")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ file not found")
}

func TestLogger_Error_PlainError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)
	l.Error(errors.New("boom"))

	assert.Contains(t, buf.String(), "Error: boom")
	assert.NotContains(t, buf.String(), "Caused by:")
}

func TestLogger_Error_NilIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)
	l.Error(nil)

	assert.Empty(t, buf.String())
}
