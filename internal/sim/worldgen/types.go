package worldgen

// ChunkType classifies what a grid cell generates into.
type ChunkType string

const (
	TypeCity      ChunkType = "city"
	TypeSuburb    ChunkType = "suburb"
	TypePark      ChunkType = "park"
	TypeHighway   ChunkType = "highway"
	TypeWasteland ChunkType = "wasteland"
)

type ChunkKey struct {
	CX int32
	CZ int32
}

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Collider is an axis-aligned box in world space, tagged with the chunk
// that owns it. It lives and dies with that chunk.
type Collider struct {
	Chunk                  ChunkKey
	MinX, MaxX, MinZ, MaxZ float64
}

type DoorKind string

const (
	DoorShop   DoorKind = "shop"
	DoorOffice DoorKind = "office"
)

// Door is an interaction point on a building. The ID is derived from
// (cx, cz, row, col) and is stable across regeneration because content
// generation is deterministic.
type Door struct {
	ID    string
	Chunk ChunkKey
	X, Z  float64
	Kind  DoorKind
	Name  string
}

// Building is a placed box in the chunk manifest: center position, extents
// and a color. Y is half the height so the box sits on the ground plane.
type Building struct {
	X, Y, Z float64
	W, H, D float64
	Color   [3]float64
}

// RoadSegment is a flat slab; highways reuse it with an elevated Y.
type RoadSegment struct {
	X, Y, Z float64
	W, D    float64
}

// Prop is a decorative placement (park trees, wasteland debris).
type Prop struct {
	Kind string
	X, Z float64
	Size float64
}

// Chunk is the unit of generation and eviction. Generation is
// all-or-nothing: a chunk is never partially regenerated.
type Chunk struct {
	Key  ChunkKey
	Type ChunkType
	Name string

	Buildings []Building
	Roads     []RoadSegment
	Props     []Prop
	Doors     []Door
}

type Config struct {
	Seed         float64
	ChunkSize    float64
	ActiveRadius int32
	FloorY       float64
}

func (c *Config) applyDefaults() {
	if c.Seed == 0 {
		c.Seed = 1337
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = 60
	}
	if c.ActiveRadius <= 0 {
		c.ActiveRadius = 1
	}
}
