package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfoWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log = slog.New(slog.NewJSONHandler(&buf, nil))

	Info("check-in recorded", "student_id", 42)

	output := buf.String()
	assert.Contains(t, output, "check-in recorded")
	assert.Contains(t, output, "student_id")
	assert.Contains(t, output, "42")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	log = slog.New(slog.NewJSONHandler(&buf, nil))

	Errorf("failed to assign plan %d: %s", 7, "boom")

	output := buf.String()
	assert.Contains(t, output, "failed to assign plan 7: boom")
	assert.Contains(t, output, `"level":"ERROR"`)
}
