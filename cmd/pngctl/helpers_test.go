package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/pngkit/internal/format"
	"github.com/joshuapare/pngkit/pkg/types"
)

// writeTestPNG writes a 1x1 greyscale PNG holding the extra chunks before
// IEND and returns its path. The file is always named test.png.
func writeTestPNG(t *testing.T, extra ...format.Chunk) string {
	t.Helper()
	chunks := []format.Chunk{
		format.NewChunk(types.IHDR, []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 0, 0, 0, 0}),
		format.NewChunk(types.IDAT, []byte{0x78, 0x9c, 0x63, 0x60, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01}),
	}
	chunks = append(chunks, extra...)
	chunks = append(chunks, format.NewChunk(types.IEND, nil))

	img := &format.Image{Chunks: chunks}
	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, img.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write test png: %v", err)
	}
	return path
}

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	limitsPreset = "default"
	limitsFile = ""
	encodeOutput = ""
	encodeKeyword = ""
	encodeBackup = false
	removeOutput = ""
	removeBackup = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON and returns it decoded
func assertJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
	return result
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
