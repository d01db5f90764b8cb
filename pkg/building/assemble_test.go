package building

import (
	"math/rand"
	"testing"
)

func newAssembler(spec Spec, seed int64) *Assembler {
	return NewAssembler(spec, rand.New(rand.NewSource(seed)))
}

func collect(t *testing.T, a *Assembler, v Voxel) []PlacedElement {
	t.Helper()
	var out []PlacedElement
	err := a.Assemble(v, func(e PlacedElement) error {
		out = append(out, e)
		return nil
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return out
}

func kindCount(elems []PlacedElement, kinds ...PieceKind) int {
	n := 0
	for _, e := range elems {
		for _, k := range kinds {
			if e.Kind == k {
				n++
			}
		}
	}
	return n
}

var roofKinds = []PieceKind{PieceRoofPoint, PieceRoofStraight, PieceRoofSlant, PieceRoofFlat}
var wallKinds = []PieceKind{PieceWallPlain, PieceWallDoor, PieceWallWindow, PieceWallDecorated}

// enclosed returns neighbor flags with all four horizontal sides solid.
func enclosed() Neighbors {
	return Neighbors{North: true, South: true, East: true, West: true}
}

func TestFloorRule(t *testing.T) {
	a := newAssembler(testSpec(), 1)

	// Empty ground-level voxel: exactly one road plate, nothing else.
	elems := collect(t, a, Voxel{X: 1, Y: 0, Z: -1})
	if len(elems) != 1 || elems[0].Kind != PieceFloorRoad {
		t.Fatalf("empty ground voxel emitted %+v, want a single road plate", elems)
	}
	if elems[0].Position != (Vec3{X: 3, Y: 0, Z: -3}) {
		t.Errorf("road plate at %+v, want cell-spaced position", elems[0].Position)
	}

	// Solid voxel at height: one wood plate at its base.
	v := Voxel{Y: 2, Solid: true, Neighbors: enclosed()}
	v.Neighbors.Up = true
	elems = collect(t, a, v)
	if len(elems) != 1 || elems[0].Kind != PieceFloorWood {
		t.Fatalf("enclosed solid voxel emitted %+v, want a single wood plate", elems)
	}
	if elems[0].Position.Y != 5 {
		t.Errorf("wood plate Y = %f, want 5", elems[0].Position.Y)
	}

	// Empty voxel above ground: no floor piece at all.
	elems = collect(t, a, Voxel{Y: 1})
	if n := kindCount(elems, PieceFloorRoad, PieceFloorWood); n != 0 {
		t.Errorf("empty elevated voxel emitted %d floor pieces, want 0", n)
	}

	// Solid ground voxel: wood plate only, never the road branch.
	v = Voxel{Y: 0, Solid: true, Neighbors: enclosed()}
	v.Neighbors.Up = true
	elems = collect(t, a, v)
	if kindCount(elems, PieceFloorRoad) != 0 || kindCount(elems, PieceFloorWood) != 1 {
		t.Errorf("solid ground voxel emitted %+v, want exactly one wood plate", elems)
	}
}

func TestChooseRoofPriority(t *testing.T) {
	spec := testSpec()
	tests := []struct {
		name     string
		n        Neighbors
		wantKind PieceKind
		wantYaw  int
	}{
		{"east west only", Neighbors{East: true}, PieceRoofStraight, 1},
		{"both east and west", Neighbors{East: true, West: true}, PieceRoofStraight, 1},
		{"north south only", Neighbors{South: true}, PieceRoofStraight, 0},
		{"missing south only", Neighbors{North: true, East: true, West: true}, PieceRoofSlant, 0},
		{"missing north only", Neighbors{South: true, East: true, West: true}, PieceRoofSlant, 2},
		{"fully enclosed", enclosed(), PieceRoofFlat, 0},
		{"missing east only", Neighbors{North: true, South: true, West: true}, PieceRoofFlat, 0},
	}
	for _, tt := range tests {
		a := newAssembler(spec, 1)
		kind, yaw := a.chooseRoof(tt.n)
		if kind != tt.wantKind || yaw != tt.wantYaw {
			t.Errorf("%s: chooseRoof = (%s, %d), want (%s, %d)", tt.name, kind, yaw, tt.wantKind, tt.wantYaw)
		}
	}
}

func TestChooseRoofFreeStanding(t *testing.T) {
	spec := testSpec()
	spec.RoofPointChance = 1
	a := newAssembler(spec, 1)
	if kind, _ := a.chooseRoof(Neighbors{}); kind != PieceRoofPoint {
		t.Errorf("free-standing voxel with certain point chance gave %s", kind)
	}

	spec.RoofPointChance = 0
	a = newAssembler(spec, 1)
	for i := 0; i < 20; i++ {
		kind, yaw := a.chooseRoof(Neighbors{})
		if kind != PieceRoofStraight {
			t.Fatalf("free-standing voxel with zero point chance gave %s", kind)
		}
		if yaw != 0 && yaw != 1 {
			t.Fatalf("free-standing ridge yaw = %d, want 0 or 1", yaw)
		}
	}
}

func TestRoofRuleExactlyOne(t *testing.T) {
	// Every solid voxel with open sky gets exactly one roof piece,
	// regardless of horizontal neighbor pattern.
	for mask := 0; mask < 16; mask++ {
		n := Neighbors{
			North: mask&1 != 0,
			South: mask&2 != 0,
			East:  mask&4 != 0,
			West:  mask&8 != 0,
		}
		a := newAssembler(testSpec(), int64(mask))
		elems := collect(t, a, Voxel{Solid: true, Neighbors: n})
		if got := kindCount(elems, roofKinds...); got != 1 {
			t.Errorf("neighbor mask %04b: %d roof pieces, want 1", mask, got)
		}
	}

	// Solid neighbor above suppresses the roof entirely.
	n := enclosed()
	n.Up = true
	a := newAssembler(testSpec(), 1)
	elems := collect(t, a, Voxel{Solid: true, Neighbors: n})
	if got := kindCount(elems, roofKinds...); got != 0 {
		t.Errorf("covered voxel emitted %d roof pieces, want 0", got)
	}
}

func TestRoofElevated(t *testing.T) {
	a := newAssembler(testSpec(), 1)
	elems := collect(t, a, Voxel{Y: 1, Solid: true, Neighbors: enclosed()})
	for _, e := range elems {
		if e.Kind == PieceRoofFlat && e.Position.Y != 1*SpacingY+SpacingY {
			t.Errorf("roof at Y=%f, want offset above the voxel base", e.Position.Y)
		}
	}
}

func TestWallDoorOnlyAtGroundLevel(t *testing.T) {
	spec := testSpec()
	spec.DoorChance = 1
	a := newAssembler(spec, 1)

	elems := collect(t, a, Voxel{Y: 0, Solid: true, Neighbors: Neighbors{Up: true}})
	if got := kindCount(elems, PieceWallDoor); got != 4 {
		t.Errorf("ground voxel with certain door chance: %d doors, want 4", got)
	}

	elems = collect(t, a, Voxel{Y: 1, Solid: true, Neighbors: Neighbors{Up: true}})
	if got := kindCount(elems, PieceWallDoor); got != 0 {
		t.Errorf("elevated voxel emitted %d doors, want 0", got)
	}
	if got := kindCount(elems, wallKinds...); got != 4 {
		t.Errorf("elevated voxel emitted %d walls, want 4", got)
	}
}

func TestWallWindowFallback(t *testing.T) {
	spec := testSpec()
	spec.WindowChance = 1
	a := newAssembler(spec, 1)
	elems := collect(t, a, Voxel{Y: 1, Solid: true, Neighbors: Neighbors{Up: true}})
	if got := kindCount(elems, PieceWallWindow); got != 4 {
		t.Errorf("certain window chance: %d windows, want 4", got)
	}
}

func TestWallDecorationAtMostOne(t *testing.T) {
	spec := testSpec()
	spec.BannerChance = 1
	spec.ShieldChance = 1
	a := newAssembler(spec, 1)

	elems := collect(t, a, Voxel{Y: 1, Solid: true, Neighbors: Neighbors{Up: true}})
	walls := 0
	for _, e := range elems {
		if e.Kind != PieceWallDecorated {
			continue
		}
		walls++
		if e.Decoration == nil {
			t.Fatal("decorated wall without nested decoration")
		}
		// Banner wins; the shield draw never happens once a banner is placed.
		if e.Decoration.Kind != PieceDecoBanner {
			t.Errorf("decoration kind = %s, want banner", e.Decoration.Kind)
		}
		if e.Decoration.Decoration != nil {
			t.Error("decoration carries its own decoration")
		}
	}
	if walls != 4 {
		t.Errorf("%d decorated walls, want 4", walls)
	}
}

func TestWallShieldWithoutBanner(t *testing.T) {
	spec := testSpec()
	spec.ShieldChance = 1
	a := newAssembler(spec, 1)
	elems := collect(t, a, Voxel{Y: 1, Solid: true, Neighbors: Neighbors{Up: true}})
	for _, e := range elems {
		if e.Kind == PieceWallDecorated && e.Decoration.Kind != PieceDecoShield {
			t.Errorf("decoration kind = %s, want shield", e.Decoration.Kind)
		}
	}
	if got := kindCount(elems, PieceWallDecorated); got != 4 {
		t.Errorf("%d decorated walls, want 4", got)
	}
}

func TestWallPlacementAndFacing(t *testing.T) {
	// Only the west side is exposed: one wall, pushed west, facing west.
	n := enclosed()
	n.West = false
	n.Up = true
	a := newAssembler(testSpec(), 1)
	elems := collect(t, a, Voxel{Y: 1, Solid: true, Neighbors: n})

	var walls []PlacedElement
	for _, e := range elems {
		for _, k := range wallKinds {
			if e.Kind == k {
				walls = append(walls, e)
			}
		}
	}
	if len(walls) != 1 {
		t.Fatalf("%d walls, want 1", len(walls))
	}
	w := walls[0]
	if w.Position.X != -halfCell || w.Position.Z != 0 {
		t.Errorf("west wall at (%f, %f), want (-1.5, 0)", w.Position.X, w.Position.Z)
	}
	if w.Yaw != 3 {
		t.Errorf("west wall yaw = %d, want 3", w.Yaw)
	}
}

func TestWallVariantInCatalog(t *testing.T) {
	a := newAssembler(testSpec(), 99)
	for i := 0; i < 50; i++ {
		elems := collect(t, a, Voxel{Y: 1, Solid: true, Neighbors: Neighbors{Up: true}})
		for _, e := range elems {
			if e.Kind == PieceWallPlain && (e.Variant < 0 || e.Variant >= PlainWallVariants) {
				t.Fatalf("plain wall variant %d outside catalog [0, %d)", e.Variant, PlainWallVariants)
			}
		}
	}
}

func TestPillarSuppression(t *testing.T) {
	a := newAssembler(testSpec(), 1)

	// Ceiling voxel with solid north and west: the northwest corner is
	// covered by walls, the other three corners get pillars.
	v := Voxel{Y: 1, Ceiling: true, Neighbors: Neighbors{North: true, West: true, Up: true}}
	elems := collect(t, a, v)
	if got := kindCount(elems, PiecePillar); got != 3 {
		t.Fatalf("%d pillars, want 3", got)
	}
	for _, e := range elems {
		if e.Kind == PiecePillar && e.Position.X == -halfCell && e.Position.Z == -halfCell {
			t.Error("northwest pillar emitted despite both flanking walls solid")
		}
	}

	// Only one flanking neighbor solid: all four corners get a pillar,
	// each exactly once.
	v = Voxel{Y: 1, Ceiling: true, Neighbors: Neighbors{North: true, Up: true}}
	elems = collect(t, a, v)
	if got := kindCount(elems, PiecePillar); got != 4 {
		t.Fatalf("%d pillars, want 4", got)
	}
	seen := make(map[Vec3]bool)
	for _, e := range elems {
		if e.Kind != PiecePillar {
			continue
		}
		if seen[e.Position] {
			t.Errorf("duplicate pillar at %+v", e.Position)
		}
		seen[e.Position] = true
	}
}

func TestPillarOnlyUnderCeiling(t *testing.T) {
	a := newAssembler(testSpec(), 1)
	if got := kindCount(collect(t, a, Voxel{Y: 1}), PiecePillar); got != 0 {
		t.Errorf("plain empty voxel emitted %d pillars, want 0", got)
	}
	v := Voxel{Y: 1, Solid: true, Neighbors: enclosed()}
	v.Neighbors.Up = true
	if got := kindCount(collect(t, a, v), PiecePillar); got != 0 {
		t.Errorf("solid voxel emitted %d pillars, want 0", got)
	}
}
