package building

import "github.com/voxelforge/buildgen/pkg/noise"

// Oracle decides solid/empty for any integer grid coordinate by combining
// the noise field with a height-based damping term. Grid bounds are hard
// walls: coordinates outside them are never solid.
type Oracle struct {
	spec  Spec
	field noise.Sampler
}

// NewOracle creates an Oracle over the given spec and noise field.
func NewOracle(spec Spec, field noise.Sampler) *Oracle {
	return &Oracle{spec: spec, field: field}
}

// IsSolid reports whether the cell at (x, y, z) is solid. X spans
// [-Width/2, Width/2), Z spans [-Depth/2, Depth/2), Y spans [0, Height).
func (o *Oracle) IsSolid(x, y, z int) bool {
	if x < -o.spec.Width/2 || x >= o.spec.Width/2 {
		return false
	}
	if z < -o.spec.Depth/2 || z >= o.spec.Depth/2 {
		return false
	}
	if y < 0 || y >= o.spec.Height {
		return false
	}
	n := o.field.Sample(float64(o.spec.OriginX+x), float64(y), float64(o.spec.OriginZ+z))
	return n-float64(y)/o.spec.HeightDampener > 0
}
