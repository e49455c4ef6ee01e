package worldgen

// Resolve pushes a position out of any collider whose box, inflated by
// radius, contains it. Each collider is resolved independently along the
// axis of minimal overlap; overlapping several colliders at once may not
// converge to a globally minimal correction. That approximation is the
// intended behavior, not something to solve properly.
func (s *Store) Resolve(pos *Vec3, radius float64) {
	for _, c := range s.colliders {
		minX := c.MinX - radius
		maxX := c.MaxX + radius
		minZ := c.MinZ - radius
		maxZ := c.MaxZ + radius

		if pos.X <= minX || pos.X >= maxX || pos.Z <= minZ || pos.Z >= maxZ {
			continue
		}

		toMinX := pos.X - minX
		toMaxX := maxX - pos.X
		toMinZ := pos.Z - minZ
		toMaxZ := maxZ - pos.Z

		min := toMinX
		axis := 0 // 0:-x 1:+x 2:-z 3:+z
		if toMaxX < min {
			min = toMaxX
			axis = 1
		}
		if toMinZ < min {
			min = toMinZ
			axis = 2
		}
		if toMaxZ < min {
			axis = 3
		}

		switch axis {
		case 0:
			pos.X = minX
		case 1:
			pos.X = maxX
		case 2:
			pos.Z = minZ
		case 3:
			pos.Z = maxZ
		}
	}

	if pos.Y < s.cfg.FloorY {
		pos.Y = s.cfg.FloorY
	}
}
