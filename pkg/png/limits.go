package png

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/pngkit/pkg/types"
)

// LoadLimits reads limits from a YAML file. The optional "preset" key
// selects the base (default, strict or relaxed); any other keys override
// individual fields of that preset.
//
//	preset: strict
//	max_chunk_length: 4194304
//	require_valid_types: false
func LoadLimits(path string) (Limits, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("limits %s: %w", path, err)
	}
	return ParseLimits(raw)
}

// ParseLimits is LoadLimits for an in-memory document.
func ParseLimits(raw []byte) (Limits, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(raw, &head); err != nil {
		return Limits{}, fmt.Errorf("limits: %w", err)
	}
	lim, ok := types.LimitsPreset(head.Preset)
	if !ok {
		return Limits{}, fmt.Errorf("limits: unknown preset %q (must be default, strict, or relaxed)", head.Preset)
	}
	// Strict pass: unknown keys such as a misspelled field are errors.
	doc := struct {
		Preset       string `yaml:"preset"`
		types.Limits `yaml:",inline"`
	}{Limits: lim}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Limits{}, fmt.Errorf("limits: %w", err)
	}
	lim = doc.Limits
	if err := checkLimits(lim); err != nil {
		return Limits{}, err
	}
	return lim, nil
}

func checkLimits(l Limits) error {
	switch {
	case l.MaxFileSize < 0:
		return fmt.Errorf("limits: max_file_size must not be negative")
	case l.MaxChunks < 0:
		return fmt.Errorf("limits: max_chunks must not be negative")
	case l.MaxChunkLength < 0 || l.MaxChunkLength > types.PNGMaxChunkLength:
		return fmt.Errorf("limits: max_chunk_length must be within 0..%d", types.PNGMaxChunkLength)
	}
	return nil
}
