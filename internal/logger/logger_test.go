package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscards(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: false, Output: &out})
	Error("dropped")
	assert.Zero(t, out.Len())
}

func TestInitJSONLevel(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: true, Output: &out, Level: slog.LevelWarn, JSON: true})
	t.Cleanup(func() { Init(Options{}) })

	Info("hidden")
	Warn("chunk skipped", "type", "ruSt", "offset", 33)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "chunk skipped", rec["msg"])
	assert.Equal(t, "ruSt", rec["type"])
	assert.EqualValues(t, 33, rec["offset"])
}

func TestInitText(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: true, Output: &out, Level: slog.LevelDebug})
	t.Cleanup(func() { Init(Options{}) })

	Debug("parsed", "chunks", 3)
	assert.Contains(t, out.String(), "msg=parsed")
	assert.Contains(t, out.String(), "chunks=3")
}
