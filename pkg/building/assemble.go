package building

import "math/rand"

// Assembler turns classified voxels into placed elements by applying four
// independent rule sets per voxel: floor, roof, walls, pillars. Each rule
// set reads only the voxel's own flags and emits zero or more elements.
type Assembler struct {
	spec Spec
	rng  *rand.Rand
}

// NewAssembler creates an Assembler drawing randomized decisions from rng.
func NewAssembler(spec Spec, rng *rand.Rand) *Assembler {
	return &Assembler{spec: spec, rng: rng}
}

// EmitFunc receives each placed element as it is produced. Returning an
// error aborts generation; a collaborator that cannot resolve a piece must
// surface that rather than drop the element.
type EmitFunc func(PlacedElement) error

// Assemble applies all rule sets to one voxel.
func (a *Assembler) Assemble(v Voxel, emit EmitFunc) error {
	if err := a.floorRule(v, emit); err != nil {
		return err
	}
	if err := a.roofRule(v, emit); err != nil {
		return err
	}
	if err := a.wallRule(v, emit); err != nil {
		return err
	}
	return a.pillarRule(v, emit)
}

// base returns the element position at the voxel's base height.
func base(v Voxel) Vec3 {
	return Vec3{
		X: float64(v.X) * SpacingX,
		Y: float64(v.Y) * SpacingY,
		Z: float64(v.Z) * SpacingZ,
	}
}

// floorRule emits a road plate under empty ground-level voxels and a wood
// plate beneath every solid voxel. The two conditions are independent; a
// solid ground voxel only matches the wood branch.
func (a *Assembler) floorRule(v Voxel, emit EmitFunc) error {
	if v.Y == 0 && !v.Solid {
		if err := emit(PlacedElement{Kind: PieceFloorRoad, Position: base(v), Material: MaterialDarkStone}); err != nil {
			return err
		}
	}
	if v.Solid {
		return emit(PlacedElement{Kind: PieceFloorWood, Position: base(v), Material: MaterialWood})
	}
	return nil
}

// roofRule emits exactly one roof piece over every solid voxel with open
// sky above it.
func (a *Assembler) roofRule(v Voxel, emit EmitFunc) error {
	if !v.Solid || v.Neighbors.Up {
		return nil
	}
	kind, yaw := a.chooseRoof(v.Neighbors)
	pos := base(v)
	pos.Y += SpacingY
	return emit(PlacedElement{Kind: kind, Position: pos, Yaw: yaw, Material: MaterialGreenRoof})
}

// chooseRoof maps the horizontal neighbor pattern to a roof piece. The
// cases are checked in priority order; the final case covers fully or
// near-fully enclosed voxels.
func (a *Assembler) chooseRoof(n Neighbors) (PieceKind, int) {
	ns := n.North || n.South
	ew := n.East || n.West
	switch {
	case !ns && !ew:
		// Free-standing cap: pointed or a ridge along a random axis.
		if a.rng.Float64() < a.spec.RoofPointChance {
			return PieceRoofPoint, 0
		}
		return PieceRoofStraight, a.rng.Intn(2)
	case ew && !ns:
		return PieceRoofStraight, 1
	case ns && !ew:
		return PieceRoofStraight, 0
	case n.North && n.East && n.West && !n.South:
		return PieceRoofSlant, 0
	case n.South && n.East && n.West && !n.North:
		return PieceRoofSlant, 2
	default:
		return PieceRoofFlat, 0
	}
}

// wallSides maps each horizontal side to its neighbor flag, outward
// normal, and outward-facing yaw.
var wallSides = [4]struct {
	solid  func(Neighbors) bool
	dx, dz float64
	yaw    int
}{
	{func(n Neighbors) bool { return n.North }, 0, -1, 0},
	{func(n Neighbors) bool { return n.East }, 1, 0, 1},
	{func(n Neighbors) bool { return n.South }, 0, 1, 2},
	{func(n Neighbors) bool { return n.West }, -1, 0, 3},
}

// wallRule emits one wall treatment for every exposed side of a solid
// voxel, pushed half a cell along the outward normal.
func (a *Assembler) wallRule(v Voxel, emit EmitFunc) error {
	if !v.Solid {
		return nil
	}
	for _, side := range wallSides {
		if side.solid(v.Neighbors) {
			continue
		}
		el := a.chooseWall(v)
		el.Position = base(v)
		el.Position.X += side.dx * halfCell
		el.Position.Z += side.dz * halfCell
		el.Yaw = side.yaw
		if err := emit(el); err != nil {
			return err
		}
	}
	return nil
}

// chooseWall picks exactly one treatment for an exposed side: a door (only
// at ground level), else a window, else a plain variant. A plain wall may
// carry exactly one decoration, banner taking priority over shield.
func (a *Assembler) chooseWall(v Voxel) PlacedElement {
	if v.Y == 0 && a.rng.Float64() < a.spec.DoorChance {
		return PlacedElement{Kind: PieceWallDoor, Material: MaterialWood}
	}
	if a.rng.Float64() < a.spec.WindowChance {
		return PlacedElement{Kind: PieceWallWindow, Material: MaterialWood}
	}
	el := PlacedElement{
		Kind:     PieceWallPlain,
		Material: MaterialWood,
		Variant:  a.rng.Intn(PlainWallVariants),
	}
	if a.rng.Float64() < a.spec.BannerChance {
		el.Kind = PieceWallDecorated
		el.Decoration = &PlacedElement{Kind: PieceDecoBanner, Position: decorationOffset, Material: MaterialBanner}
	} else if a.rng.Float64() < a.spec.ShieldChance {
		el.Kind = PieceWallDecorated
		el.Decoration = &PlacedElement{Kind: PieceDecoShield, Position: decorationOffset, Material: MaterialShield}
	}
	return el
}

// decorationOffset positions a banner or shield relative to its wall's
// local origin.
var decorationOffset = Vec3{X: 0, Y: 1.25, Z: 0.2}

// pillarCorners maps each diagonal corner to the two flanking sides that
// suppress it when both are solid.
var pillarCorners = [4]struct {
	dx, dz  float64
	covered func(Neighbors) bool
}{
	{-1, -1, func(n Neighbors) bool { return n.North && n.West }},
	{1, -1, func(n Neighbors) bool { return n.North && n.East }},
	{-1, 1, func(n Neighbors) bool { return n.South && n.West }},
	{1, 1, func(n Neighbors) bool { return n.South && n.East }},
}

// pillarRule supports overhangs: an empty voxel under a solid one gets a
// pillar at each corner not already enclosed by walls.
func (a *Assembler) pillarRule(v Voxel, emit EmitFunc) error {
	if v.Solid || !v.Ceiling {
		return nil
	}
	for _, c := range pillarCorners {
		if c.covered(v.Neighbors) {
			continue
		}
		pos := base(v)
		pos.X += c.dx * halfCell
		pos.Z += c.dz * halfCell
		if err := emit(PlacedElement{Kind: PiecePillar, Position: pos, Material: MaterialDarkStone}); err != nil {
			return err
		}
	}
	return nil
}
