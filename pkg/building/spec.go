package building

import (
	"errors"
	"fmt"
	"math"

	"github.com/voxelforge/buildgen/pkg/noise"
)

// ErrInvalidSpec is wrapped by every spec validation failure.
var ErrInvalidSpec = errors.New("invalid building spec")

// Spec is the immutable input for one generation run. Width and Depth
// define a grid centered at 0 on X/Z; the height grid spans [0, Height).
// The origin offsets noise sampling only, so neighboring buildings built
// from the same seed still differ.
type Spec struct {
	OriginX int `json:"origin_x" yaml:"origin_x"`
	OriginZ int `json:"origin_z" yaml:"origin_z"`

	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Depth  int `json:"depth" yaml:"depth"`

	Noise noise.Params `json:"noise" yaml:"noise"`

	// HeightDampener divides into Y: higher layers need progressively more
	// noise to qualify as solid, tapering the silhouette.
	HeightDampener float64 `json:"height_dampener" yaml:"height_dampener"`

	RoofPointChance float64 `json:"roof_point_chance" yaml:"roof_point_chance"`
	WindowChance    float64 `json:"window_chance" yaml:"window_chance"`
	DoorChance      float64 `json:"door_chance" yaml:"door_chance"`
	BannerChance    float64 `json:"banner_chance" yaml:"banner_chance"`
	ShieldChance    float64 `json:"shield_chance" yaml:"shield_chance"`
}

// Validate reports the first problem that would make generation undefined.
// Callers must validate before invoking generation.
func (s Spec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Depth <= 0 {
		return fmt.Errorf("%w: dimensions %dx%dx%d must be positive", ErrInvalidSpec, s.Width, s.Height, s.Depth)
	}
	finite := []struct {
		name string
		v    float64
	}{
		{"amplitude", s.Noise.Amplitude},
		{"frequency", s.Noise.Frequency},
		{"persistence", s.Noise.Persistence},
		{"height_dampener", s.HeightDampener},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidSpec, f.name)
		}
	}
	if s.Noise.Octaves < 1 {
		return fmt.Errorf("%w: octaves %d must be at least 1", ErrInvalidSpec, s.Noise.Octaves)
	}
	if s.HeightDampener <= 0 {
		return fmt.Errorf("%w: height_dampener %f must be positive", ErrInvalidSpec, s.HeightDampener)
	}
	chances := []struct {
		name string
		c    float64
	}{
		{"roof_point_chance", s.RoofPointChance},
		{"window_chance", s.WindowChance},
		{"door_chance", s.DoorChance},
		{"banner_chance", s.BannerChance},
		{"shield_chance", s.ShieldChance},
	}
	for _, ch := range chances {
		if math.IsNaN(ch.c) || ch.c < 0 || ch.c > 1 {
			return fmt.Errorf("%w: %s %f outside [0, 1]", ErrInvalidSpec, ch.name, ch.c)
		}
	}
	return nil
}
