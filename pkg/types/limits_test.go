package types

import "testing"

func TestLimitsPreset(t *testing.T) {
	tests := []struct {
		name string
		want Limits
		ok   bool
	}{
		{"", DefaultLimits(), true},
		{"default", DefaultLimits(), true},
		{"strict", StrictLimits(), true},
		{"relaxed", RelaxedLimits(), true},
		{"bogus", Limits{}, false},
	}
	for _, tt := range tests {
		got, ok := LimitsPreset(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("LimitsPreset(%q) = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLimitsOrdering(t *testing.T) {
	s, d, r := StrictLimits(), DefaultLimits(), RelaxedLimits()
	if !(s.MaxFileSize < d.MaxFileSize && d.MaxFileSize < r.MaxFileSize) {
		t.Fatalf("file size presets out of order: %d %d %d", s.MaxFileSize, d.MaxFileSize, r.MaxFileSize)
	}
	if !(s.MaxChunks < d.MaxChunks && d.MaxChunks < r.MaxChunks) {
		t.Fatalf("chunk count presets out of order")
	}
	if r.MaxChunkLength > PNGMaxChunkLength {
		t.Fatalf("relaxed chunk length exceeds format maximum")
	}
}

func TestErrorKinds(t *testing.T) {
	err := Wrap(ErrCorrupt, ErrNotFound)
	if err.Kind != ErrKindCorrupt {
		t.Fatalf("kind = %v", err.Kind)
	}
	if got := err.Error(); got != "corrupt PNG structure: chunk not found" {
		t.Fatalf("Error() = %q", got)
	}
	if ErrKindLimit.String() != "limit" {
		t.Fatalf("String() = %q", ErrKindLimit.String())
	}
}
