package noise

// Params configure a fractal noise field.
type Params struct {
	Amplitude   float64 `json:"amplitude" yaml:"amplitude"`
	Frequency   float64 `json:"frequency" yaml:"frequency"`
	Octaves     int     `json:"octaves" yaml:"octaves"`
	Persistence float64 `json:"persistence" yaml:"persistence"`
}

// Sampler answers "noise value at (x, y, z)".
type Sampler interface {
	Sample(x, y, z float64) float64
}

// Field is a seeded fractal noise field. Octaves are composed as standard
// fBm: octave i samples at Frequency*2^i and is weighted by
// Amplitude*Persistence^i.
type Field struct {
	perlin *Perlin
	params Params
}

// NewField creates a Field from a seed and parameter set.
func NewField(seed int64, params Params) *Field {
	return &Field{
		perlin: NewPerlin(seed),
		params: params,
	}
}

// Sample computes the fractal noise value at (x, y, z). Deterministic for
// a given seed and parameter set.
func (f *Field) Sample(x, y, z float64) float64 {
	var total float64
	frequency := f.params.Frequency
	amplitude := f.params.Amplitude

	for i := 0; i < f.params.Octaves; i++ {
		total += f.perlin.Noise3D(x*frequency, y*frequency, z*frequency) * amplitude
		amplitude *= f.params.Persistence
		frequency *= 2
	}

	return total
}
