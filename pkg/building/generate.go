package building

import (
	"math/rand"

	"github.com/voxelforge/buildgen/pkg/noise"
)

// Building is the artifact of one generation run. The element list and
// palette are the only outputs that outlive the run; the voxel grid is
// recomputed from scratch every time.
type Building struct {
	Spec     Spec            `json:"spec"`
	Seed     int64           `json:"seed"`
	Elements []PlacedElement `json:"elements"`
	Palette  Palette         `json:"palette"`
}

// GenerateStream runs the full pipeline: build the noise field, classify
// every cell of the bounding grid, assemble elements in grid order, then
// sample the palette. Each element is handed to emit as it is produced;
// an emit error aborts the run. A fixed seed yields identical output, as
// both the noise permutation and every randomized draw derive from it.
func GenerateStream(spec Spec, seed int64, emit EmitFunc) (Palette, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	field := noise.NewField(seed, spec.Noise)
	rng := rand.New(rand.NewSource(seed))
	oracle := NewOracle(spec, field)
	asm := NewAssembler(spec, rng)

	for x := -spec.Width / 2; x < spec.Width/2; x++ {
		for y := 0; y < spec.Height; y++ {
			for z := -spec.Depth / 2; z < spec.Depth/2; z++ {
				if err := asm.Assemble(oracle.Classify(x, y, z), emit); err != nil {
					return nil, err
				}
			}
		}
	}

	return SamplePalette(rng)
}

// Generate runs GenerateStream and collects the output into a Building.
func Generate(spec Spec, seed int64) (*Building, error) {
	var elements []PlacedElement
	pal, err := GenerateStream(spec, seed, func(e PlacedElement) error {
		elements = append(elements, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Building{Spec: spec, Seed: seed, Elements: elements, Palette: pal}, nil
}
