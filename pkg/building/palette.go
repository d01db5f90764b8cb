package building

import (
	"fmt"
	"math/rand"
	"strconv"
)

// materialGroups fixes the sampling order so a seeded rng produces the
// same palette every run.
var materialGroups = []string{
	MaterialWood,
	MaterialGreenRoof,
	MaterialDarkStone,
	MaterialBanner,
	MaterialShield,
}

// materialCandidates lists the fixed candidate colors per material group.
var materialCandidates = map[string][]string{
	MaterialWood:      {"#8a5a2b", "#9c6b30", "#a9746e", "#7b4f21", "#b08d57"},
	MaterialGreenRoof: {"#2f6b4f", "#3f7d52", "#557d46", "#1f5e45"},
	MaterialDarkStone: {"#4a4a52", "#3b3b40", "#5a5a63", "#2e2e33"},
	MaterialBanner:    {"#8c2b2b", "#a03030", "#6e1f1f", "#b5413c"},
	MaterialShield:    {"#8e9299", "#767a80", "#a5a9ae"},
}

// Color is one sampled palette entry: normalized channels plus the source
// hex string.
type Color struct {
	R   float64 `json:"r"`
	G   float64 `json:"g"`
	B   float64 `json:"b"`
	Hex string  `json:"hex"`
}

// Palette maps a material-group tag to the color sampled for it. Generated
// once per building and immutable thereafter.
type Palette map[string]Color

// SamplePalette picks one color per material group from the fixed
// candidate lists.
func SamplePalette(rng *rand.Rand) (Palette, error) {
	pal := make(Palette, len(materialGroups))
	for _, group := range materialGroups {
		candidates := materialCandidates[group]
		hex := candidates[rng.Intn(len(candidates))]
		c, err := parseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("material %s: %w", group, err)
		}
		pal[group] = c
	}
	return pal, nil
}

// parseHex converts "#rrggbb" to a normalized Color.
func parseHex(hex string) (Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, fmt.Errorf("malformed hex color %q", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("malformed hex color %q: %v", hex, err)
	}
	return Color{
		R:   float64(v>>16&0xFF) / 255,
		G:   float64(v>>8&0xFF) / 255,
		B:   float64(v&0xFF) / 255,
		Hex: hex,
	}, nil
}
