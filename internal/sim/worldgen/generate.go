package worldgen

import (
	"fmt"

	"neoncity.dev/internal/sim/namegen"
	"neoncity.dev/internal/sim/rng"
)

// Seed offsets per derived quantity. The type draw uses the bare seed; every
// other quantity adds its own offset so independently derived values do not
// correlate. Changing any of these changes every generated world.
const (
	extraLot      = 11.0 // empty-lot check AND shop/office split (same draw)
	extraWidth    = 23.0
	extraDepth    = 37.0
	extraHeight   = 53.0
	extraShade    = 71.0
	extraTreeX    = 131.0
	extraTreeZ    = 149.0
	extraTreeSize = 167.0
	extraDebrisX  = 191.0
	extraDebrisZ  = 223.0
	extraDebris   = 251.0
)

const (
	emptyLotProb = 0.2
	treeCount    = 10
	debrisCount  = 8
	roadWidth    = 6.0
)

// TypeFromRoll buckets one hash draw into a chunk type. The cumulative
// thresholds (0.45 / 0.60 / 0.72 / 0.84) are load-bearing: moving them
// re-types every chunk in every world.
func TypeFromRoll(v float64) ChunkType {
	switch {
	case v < 0.45:
		return TypeCity
	case v < 0.60:
		return TypeSuburb
	case v < 0.72:
		return TypePark
	case v < 0.84:
		return TypeHighway
	default:
		return TypeWasteland
	}
}

// TypeAt computes the chunk type for a grid cell without touching any
// loaded state.
func TypeAt(cx, cz int32, seed float64) ChunkType {
	return TypeFromRoll(rng.Unit(cx, cz, seed))
}

func areaName(t ChunkType, cx, cz int32, seed float64) string {
	switch t {
	case TypeCity:
		return namegen.CityName(cx, cz, seed)
	case TypeSuburb:
		return namegen.SuburbName(cx, cz, seed)
	case TypePark:
		return namegen.ParkName(cx, cz, seed)
	case TypeHighway:
		return namegen.HighwayName(cx, cz, seed)
	default:
		return namegen.WastelandName(cx, cz, seed)
	}
}

func (s *Store) generate(k ChunkKey) {
	seed := s.cfg.Seed
	t := TypeAt(k.CX, k.CZ, seed)

	ch := &Chunk{
		Key:  k,
		Type: t,
		Name: areaName(t, k.CX, k.CZ, seed),
	}

	switch t {
	case TypeCity:
		s.populateLots(ch, 4)
		s.addRoadCross(ch, 0.01)
	case TypeSuburb:
		s.populateLots(ch, 3)
		s.addRoadCross(ch, 0.01)
	case TypePark:
		s.scatterProps(ch, "tree", treeCount, extraTreeX, extraTreeZ, extraTreeSize, 2.0, 3.0)
	case TypeHighway:
		size := s.cfg.ChunkSize
		ox := float64(k.CX) * size
		oz := float64(k.CZ) * size
		ch.Roads = append(ch.Roads, RoadSegment{
			X: ox + size/2, Y: 3.0, Z: oz + size/2,
			W: size, D: 12,
		})
	case TypeWasteland:
		s.scatterProps(ch, "debris", debrisCount, extraDebrisX, extraDebrisZ, extraDebris, 0.5, 2.0)
	}

	s.chunks[k] = ch
}

// populateLots lays out an n×n grid of candidate building lots. One hash
// draw per lot decides both whether the lot is empty (< 0.2) and, when
// occupied, whether its door is a shop (< 0.6) or an office. The coupling
// is deliberate: decorrelating the two would change every generated door.
func (s *Store) populateLots(ch *Chunk, n int32) {
	seed := s.cfg.Seed
	size := s.cfg.ChunkSize
	ox := float64(ch.Key.CX) * size
	oz := float64(ch.Key.CZ) * size
	cell := size / float64(n)

	base := buildingBaseColor(ch.Type)
	doorIndex := 0

	for row := int32(0); row < n; row++ {
		for col := int32(0); col < n; col++ {
			gx := ch.Key.CX*n + col
			gz := ch.Key.CZ*n + row

			lot := rng.Unit(gx, gz, seed+extraLot)
			if lot < emptyLotProb {
				continue
			}

			w := cell * (0.45 + 0.3*rng.Unit(gx, gz, seed+extraWidth))
			d := cell * (0.45 + 0.3*rng.Unit(gx, gz, seed+extraDepth))
			var h float64
			if ch.Type == TypeCity {
				h = 8 + 22*rng.Unit(gx, gz, seed+extraHeight)
			} else {
				h = 4 + 4*rng.Unit(gx, gz, seed+extraHeight)
			}

			bx := ox + (float64(col)+0.5)*cell
			bz := oz + (float64(row)+0.5)*cell

			shade := 0.8 + 0.35*rng.Unit(gx, gz, seed+extraShade)
			ch.Buildings = append(ch.Buildings, Building{
				X: bx, Y: h / 2, Z: bz,
				W: w, H: h, D: d,
				Color: [3]float64{base[0] * shade, base[1] * shade, base[2] * shade},
			})

			s.colliders = append(s.colliders, Collider{
				Chunk: ch.Key,
				MinX:  bx - w/2, MaxX: bx + w/2,
				MinZ: bz - d/2, MaxZ: bz + d/2,
			})

			door := Door{
				ID:    fmt.Sprintf("door:%d:%d:%d:%d", ch.Key.CX, ch.Key.CZ, row, col),
				Chunk: ch.Key,
				X:     bx,
				Z:     bz + d/2 + 0.4,
			}
			if lot < 0.6 {
				door.Kind = DoorShop
				door.Name = namegen.POIName(ch.Key.CX, ch.Key.CZ, doorIndex, seed)
			} else {
				door.Kind = DoorOffice
				door.Name = fmt.Sprintf("%s Office %d", ch.Name, doorIndex+1)
			}
			ch.Doors = append(ch.Doors, door)
			s.doors = append(s.doors, door)
			doorIndex++
		}
	}
}

func (s *Store) addRoadCross(ch *Chunk, y float64) {
	size := s.cfg.ChunkSize
	cx := float64(ch.Key.CX)*size + size/2
	cz := float64(ch.Key.CZ)*size + size/2
	ch.Roads = append(ch.Roads,
		RoadSegment{X: cx, Y: y, Z: cz, W: size, D: roadWidth},
		RoadSegment{X: cx, Y: y, Z: cz, W: roadWidth, D: size},
	)
}

// scatterProps places count decorations with per-index hashed position and
// size. Parks and wastelands have no colliders and no doors.
func (s *Store) scatterProps(ch *Chunk, kind string, count int, ex, ez, es, sizeMin, sizeSpan float64) {
	seed := s.cfg.Seed
	size := s.cfg.ChunkSize
	ox := float64(ch.Key.CX) * size
	oz := float64(ch.Key.CZ) * size

	for i := 0; i < count; i++ {
		fi := float64(i)
		px := ox + size*rng.Unit(ch.Key.CX, ch.Key.CZ, seed+ex+fi*17.17)
		pz := oz + size*rng.Unit(ch.Key.CX, ch.Key.CZ, seed+ez+fi*29.73)
		ps := sizeMin + sizeSpan*rng.Unit(ch.Key.CX, ch.Key.CZ, seed+es+fi*41.11)
		ch.Props = append(ch.Props, Prop{Kind: kind, X: px, Z: pz, Size: ps})
	}
}

func buildingBaseColor(t ChunkType) [3]float64 {
	if t == TypeCity {
		return [3]float64{0.55, 0.58, 0.65}
	}
	return [3]float64{0.7, 0.62, 0.5}
}
