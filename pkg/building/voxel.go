package building

// Neighbors holds the solidity of the six face-adjacent cells. North and
// south run along -Z/+Z, east and west along +X/-X.
type Neighbors struct {
	North bool
	South bool
	East  bool
	West  bool
	Up    bool
	Down  bool
}

// Voxel is the classification result for one cell of the grid. Voxels are
// pure computed values, never mutated after creation.
type Voxel struct {
	X, Y, Z   int
	Solid     bool
	Neighbors Neighbors
	// Ceiling is true when this voxel is empty and the voxel directly
	// above it is solid: open interior space under a roof or overhang.
	Ceiling bool
}

// Classify builds the voxel descriptor for (x, y, z) from seven oracle
// queries. Each voxel's classification is independent of traversal order.
func (o *Oracle) Classify(x, y, z int) Voxel {
	solid := o.IsSolid(x, y, z)
	up := o.IsSolid(x, y+1, z)
	return Voxel{
		X: x, Y: y, Z: z,
		Solid: solid,
		Neighbors: Neighbors{
			North: o.IsSolid(x, y, z-1),
			South: o.IsSolid(x, y, z+1),
			East:  o.IsSolid(x+1, y, z),
			West:  o.IsSolid(x-1, y, z),
			Up:    up,
			Down:  o.IsSolid(x, y-1, z),
		},
		Ceiling: !solid && up,
	}
}
