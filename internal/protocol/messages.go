package protocol

// HELLO (client -> server)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Name            string `json:"name,omitempty"`
}

// WELCOME (server -> client)
type WelcomeMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	ObserverID      string      `json:"observer_id"`
	WorldParams     WorldParams `json:"world_params"`
	Factions        []Faction   `json:"factions"`
}

type WorldParams struct {
	Seed         int64   `json:"seed"`
	ChunkSize    float64 `json:"chunk_size"`
	ActiveRadius int     `json:"active_radius"`
}

type Faction struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Color [3]float64 `json:"color"`
}

// POS (client -> server): the observer's reference position; drives chunk
// loading around it.
type PosMsg struct {
	Type            string  `json:"type"`
	ProtocolVersion string  `json:"protocol_version"`
	X               float64 `json:"x"`
	Z               float64 `json:"z"`
}

// STATE (server -> client): per-frame digest of both simulations.
type StateMsg struct {
	Type            string     `json:"type"`
	ProtocolVersion string     `json:"protocol_version"`
	Tick            uint64     `json:"tick"`
	Area            string     `json:"area"`
	NearbyDoor      *DoorRef   `json:"nearby_door,omitempty"`
	WarStatus       string     `json:"war_status"`
	Events          []WarEvent `json:"events,omitempty"`
	Bases           []BaseRef  `json:"bases"`
	Units           []UnitRef  `json:"units"`
}

type DoorRef struct {
	ID   string  `json:"id"`
	Kind string  `json:"kind"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Z    float64 `json:"z"`
}

type WarEvent struct {
	Tick uint64 `json:"tick"`
	Text string `json:"text"`
}

type BaseRef struct {
	ID      int     `json:"id"`
	Faction int     `json:"faction"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	HP      float64 `json:"hp"`
}

type UnitRef struct {
	ID      int     `json:"id"`
	Faction int     `json:"faction"`
	Kind    string  `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// CHUNKS (server -> client): manifests of chunks that became loaded since
// the previous frame, plus the keys of evicted ones.
type ChunksMsg struct {
	Type            string          `json:"type"`
	ProtocolVersion string          `json:"protocol_version"`
	Loaded          []ChunkManifest `json:"loaded,omitempty"`
	Evicted         [][2]int32      `json:"evicted,omitempty"`
}

// ChunkManifest is the full renderable description of one chunk. Every
// placement in it is reproducible from (cx, cz, seed) alone.
type ChunkManifest struct {
	CX   int32  `json:"cx"`
	CZ   int32  `json:"cz"`
	Kind string `json:"kind"`
	Name string `json:"name"`

	Buildings []BuildingRef `json:"buildings,omitempty"`
	Roads     []RoadRef     `json:"roads,omitempty"`
	Props     []PropRef     `json:"props,omitempty"`
	Doors     []DoorRef     `json:"doors,omitempty"`
}

type BuildingRef struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	Z     float64    `json:"z"`
	W     float64    `json:"w"`
	H     float64    `json:"h"`
	D     float64    `json:"d"`
	Color [3]float64 `json:"color"`
}

type RoadRef struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
	D float64 `json:"d"`
}

type PropRef struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Z    float64 `json:"z"`
	Size float64 `json:"size"`
}

// ERROR (server -> client)
type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Code            string `json:"code"`
	Message         string `json:"message,omitempty"`
}
