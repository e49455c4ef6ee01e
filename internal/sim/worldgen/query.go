package worldgen

// AreaName returns the stored name of the loaded chunk containing the
// world position. When the chunk is not loaded the name is computed on the
// fly without mutating any state; the fallback agrees with what the chunk
// would be named if generated.
func (s *Store) AreaName(x, z float64) string {
	k := ChunkKey{CX: s.ChunkCoord(x), CZ: s.ChunkCoord(z)}
	if ch, ok := s.chunks[k]; ok {
		return ch.Name
	}
	t := TypeAt(k.CX, k.CZ, s.cfg.Seed)
	return areaName(t, k.CX, k.CZ, s.cfg.Seed)
}

// NearbyDoor returns the closest door within maxDist of the position, by
// squared planar distance. Equidistant doors resolve to the first one in
// insertion order. ok is false when no door is in range.
func (s *Store) NearbyDoor(x, z, maxDist float64) (Door, bool) {
	best := maxDist * maxDist
	found := -1
	for i, d := range s.doors {
		dx := d.X - x
		dz := d.Z - z
		if dd := dx*dx + dz*dz; dd < best {
			best = dd
			found = i
		}
	}
	if found < 0 {
		return Door{}, false
	}
	return s.doors[found], true
}
