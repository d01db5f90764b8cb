package building

import "math"

// PieceKind identifies a structural piece from the fixed catalog. The
// rendering collaborator maps each kind to a prefab; the core never
// resolves assets itself.
type PieceKind string

// The piece catalog.
const (
	PieceFloorRoad     PieceKind = "floor_road"
	PieceFloorWood     PieceKind = "floor_wood"
	PieceRoofPoint     PieceKind = "roof_point"
	PieceRoofStraight  PieceKind = "roof_straight"
	PieceRoofSlant     PieceKind = "roof_slant"
	PieceRoofFlat      PieceKind = "roof_flat"
	PieceWallPlain     PieceKind = "wall_plain"
	PieceWallDoor      PieceKind = "wall_door"
	PieceWallWindow    PieceKind = "wall_window"
	PieceWallDecorated PieceKind = "wall_decorated"
	PieceDecoBanner    PieceKind = "deco_banner"
	PieceDecoShield    PieceKind = "deco_shield"
	PiecePillar        PieceKind = "pillar"
)

// Material group tags. Every element carries one; the collaborator applies
// the palette color sampled for that group after generation.
const (
	MaterialWood      = "Wood"
	MaterialGreenRoof = "Green_Roof"
	MaterialDarkStone = "Dark_Stone"
	MaterialBanner    = "Red_Banner"
	MaterialShield    = "Iron"
)

// Cell spacing per axis, in collaborator units.
const (
	SpacingX = 3.0
	SpacingY = 2.5
	SpacingZ = 3.0
)

// Lateral offset from a voxel center to its wall plane or pillar corner.
const halfCell = 1.5

// PlainWallVariants is the size of the plain wall catalog; a plain wall's
// Variant is sampled uniformly from [0, PlainWallVariants).
const PlainWallVariants = 3

// Vec3 is a position in collaborator space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PlacedElement is one structural piece ready for rendering: a symbolic
// kind, a position, a quarter-turn yaw, and a material-group tag.
// Decorated walls own one nested decoration whose position and yaw are
// relative to the wall's local origin.
type PlacedElement struct {
	Kind     PieceKind `json:"kind"`
	Position Vec3      `json:"position"`
	// Yaw counts quarter turns: 0, 1, 2, 3 for 0, 90, 180, 270 degrees.
	Yaw      int    `json:"yaw"`
	Material string `json:"material"`
	// Variant selects from the plain wall catalog; zero elsewhere.
	Variant    int            `json:"variant,omitempty"`
	Decoration *PlacedElement `json:"decoration,omitempty"`
}

// YawRadians returns the yaw as radians.
func (e PlacedElement) YawRadians() float64 {
	return float64(e.Yaw) * math.Pi / 2
}
