package worldgen

import (
	"math"
	"sort"
)

// Store owns every loaded chunk plus the world-space colliders and doors
// derived from them. Accessed only from the session loop goroutine.
type Store struct {
	cfg Config

	chunks    map[ChunkKey]*Chunk
	colliders []Collider
	doors     []Door
}

func NewStore(cfg Config) *Store {
	cfg.applyDefaults()
	return &Store{
		cfg:    cfg,
		chunks: map[ChunkKey]*Chunk{},
	}
}

func (s *Store) Config() Config { return s.cfg }

// ChunkCoord maps a world coordinate onto its containing chunk index.
func (s *Store) ChunkCoord(v float64) int32 {
	return int32(math.Floor(v / s.cfg.ChunkSize))
}

// Update keeps the active window around the reference position loaded:
// every chunk within ActiveRadius of the containing chunk exists afterward,
// and every chunk farther than ActiveRadius+1 on either axis is evicted
// along with its colliders and doors. Calling Update again with the same
// position performs no work.
func (s *Store) Update(refX, refZ float64) {
	ccx := s.ChunkCoord(refX)
	ccz := s.ChunkCoord(refZ)

	r := s.cfg.ActiveRadius
	for dz := -r; dz <= r; dz++ {
		for dx := -r; dx <= r; dx++ {
			k := ChunkKey{CX: ccx + dx, CZ: ccz + dz}
			if _, ok := s.chunks[k]; !ok {
				s.generate(k)
			}
		}
	}

	for k := range s.chunks {
		dx := k.CX - ccx
		dz := k.CZ - ccz
		if abs32(dx) > r+1 || abs32(dz) > r+1 {
			s.evict(k)
		}
	}
}

func (s *Store) evict(k ChunkKey) {
	delete(s.chunks, k)

	kept := s.colliders[:0]
	for _, c := range s.colliders {
		if c.Chunk != k {
			kept = append(kept, c)
		}
	}
	s.colliders = kept

	keptDoors := s.doors[:0]
	for _, d := range s.doors {
		if d.Chunk != k {
			keptDoors = append(keptDoors, d)
		}
	}
	s.doors = keptDoors
}

// Chunk returns the loaded chunk at k, or nil.
func (s *Store) Chunk(k ChunkKey) *Chunk { return s.chunks[k] }

func (s *Store) LoadedChunkKeys() []ChunkKey {
	keys := make([]ChunkKey, 0, len(s.chunks))
	for k := range s.chunks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].CX != keys[j].CX {
			return keys[i].CX < keys[j].CX
		}
		return keys[i].CZ < keys[j].CZ
	})
	return keys
}

func (s *Store) ColliderCount() int { return len(s.colliders) }
func (s *Store) DoorCount() int     { return len(s.doors) }

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
