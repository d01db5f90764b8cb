// Package preset carries the built-in building spec library and loads
// overrides from a YAML file.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voxelforge/buildgen/pkg/building"
	"github.com/voxelforge/buildgen/pkg/noise"
)

// Builtin returns the built-in preset table. The map is freshly built on
// every call so callers may mutate their copy.
func Builtin() map[string]building.Spec {
	return map[string]building.Spec{
		// A squat house: generous footprint, quick taper, busy walls.
		"cottage": {
			Width: 6, Height: 4, Depth: 6,
			Noise:           noise.Params{Amplitude: 2, Frequency: 0.11, Octaves: 3, Persistence: 0.5},
			HeightDampener:  3,
			RoofPointChance: 0.35,
			WindowChance:    0.35,
			DoorChance:      0.25,
			BannerChance:    0.1,
			ShieldChance:    0.15,
		},
		// A narrow footprint pushed high; the dampener is loose so the
		// silhouette survives the climb.
		"tower": {
			Width: 4, Height: 9, Depth: 4,
			Noise:           noise.Params{Amplitude: 3, Frequency: 0.09, Octaves: 4, Persistence: 0.55},
			HeightDampener:  8,
			RoofPointChance: 0.7,
			WindowChance:    0.45,
			DoorChance:      0.2,
			BannerChance:    0.25,
			ShieldChance:    0.2,
		},
		// Low, broken, and bare: a tight dampener erodes the upper layer
		// and decoration chances drop to almost nothing.
		"ruin": {
			Width: 8, Height: 2, Depth: 8,
			Noise:           noise.Params{Amplitude: 1.2, Frequency: 0.2, Octaves: 2, Persistence: 0.4},
			HeightDampener:  1.5,
			RoofPointChance: 0.1,
			WindowChance:    0.1,
			DoorChance:      0.1,
			BannerChance:    0,
			ShieldChance:    0.05,
		},
	}
}

// Load returns the built-in presets merged with overrides from the YAML
// file at path. An empty path returns just the built-ins. Every preset,
// including overrides, must validate; a preset that would make generation
// undefined fails the load.
func Load(path string) (map[string]building.Spec, error) {
	presets := Builtin()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var overrides map[string]building.Spec
		if err := yaml.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("presets %s: %w", path, err)
		}
		for name, spec := range overrides {
			presets[name] = spec
		}
	}
	for name, spec := range presets {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
	}
	return presets, nil
}
