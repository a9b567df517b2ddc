package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Log
	Log = NewLoggerTo(&buf, level)
	t.Cleanup(func() { Log = prev })
	return &buf
}

func TestWarnWithFieldsWritesFallbackRecord(t *testing.T) {
	t.Setenv("SERVICE_NAME", "ai-marketing-api")
	buf := capture(t, "info")

	fields := Fields{
		"request_id": "req-1",
		"provider":   "gemini",
		"kind":       "INTRO",
		"index":      1,
		"error_kind": "parse",
		"error":      errors.New("no json object"),
	}
	WarnWithFields("generation fell back to template", fields)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "generation fell back to template", line["message"])
	assert.Equal(t, "gemini", line["provider"])
	assert.Equal(t, "parse", line["error_kind"])
	assert.Equal(t, "no json object", line["error"])
	assert.Equal(t, "ai-marketing-api", line["service_name"])
	_, mutated := fields["service_name"]
	assert.False(t, mutated)
}

func TestDebugIsDroppedAtInfoLevel(t *testing.T) {
	buf := capture(t, "info")

	DebugWithFields("fetcher cache hit", Fields{"url": "https://shop.example.com/x1"})
	assert.Empty(t, strings.TrimSpace(buf.String()))

	InfoWithFields("generation batch completed", Fields{"copies": 3})
	assert.Contains(t, buf.String(), `"copies":3`)
}
