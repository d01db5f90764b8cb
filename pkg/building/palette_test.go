package building

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestSamplePaletteCoversAllGroups(t *testing.T) {
	pal, err := SamplePalette(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	for _, group := range materialGroups {
		c, ok := pal[group]
		if !ok {
			t.Errorf("material group %s missing from palette", group)
			continue
		}
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			t.Errorf("%s channels (%f, %f, %f) outside [0, 1]", group, c.R, c.G, c.B)
		}
		found := false
		for _, hex := range materialCandidates[group] {
			if hex == c.Hex {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s sampled %s, not in its candidate list", group, c.Hex)
		}
	}
}

func TestSamplePaletteDeterminism(t *testing.T) {
	p1, err := SamplePalette(rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	p2, err := SamplePalette(rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if !reflect.DeepEqual(p1, p2) {
		t.Error("same rng seed produced different palettes")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		hex     string
		want    Color
		wantErr bool
	}{
		{"#ffffff", Color{R: 1, G: 1, B: 1, Hex: "#ffffff"}, false},
		{"#000000", Color{Hex: "#000000"}, false},
		{"#ff0000", Color{R: 1, Hex: "#ff0000"}, false},
		{"ffffff", Color{}, true},
		{"#fff", Color{}, true},
		{"#gggggg", Color{}, true},
	}
	for _, tt := range tests {
		got, err := parseHex(tt.hex)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHex(%q) err = %v, wantErr %v", tt.hex, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestCandidateListsWellFormed(t *testing.T) {
	for _, group := range materialGroups {
		candidates := materialCandidates[group]
		if len(candidates) == 0 {
			t.Errorf("material group %s has no candidates", group)
		}
		for _, hex := range candidates {
			if _, err := parseHex(hex); err != nil {
				t.Errorf("candidate %s for %s: %v", hex, group, err)
			}
		}
	}
	if len(materialGroups) != len(materialCandidates) {
		t.Errorf("ordered group list has %d entries, candidate table %d", len(materialGroups), len(materialCandidates))
	}
}
