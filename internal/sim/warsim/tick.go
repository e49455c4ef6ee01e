package warsim

import "math"

const (
	gatherBase  = 5.0
	gatherSpan  = 5.0
	spawnStock  = 80.0
	convoyStock = 120.0
	convoyRoll  = 0.7
	convoyCost  = 80.0

	costTank     = 40.0
	costAir      = 35.0
	costInfantry = 25.0

	arriveEps     = 0.01
	combatRange   = 1.0
	foundSpacing  = 1.0
	skirmishRange = 0.7
	skirmishDmg   = 5.0
)

// Update accumulates elapsed time and runs one simulation step once the
// accumulator passes the tick interval, then resets it. Sub-threshold
// calls only accumulate.
func (s *Sim) Update(dt float64) {
	s.accum += dt
	if s.accum < s.cfg.TickInterval {
		return
	}
	s.accum = 0
	s.step()
}

func (s *Sim) step() {
	s.tick++

	// Base economy: gather, spawn, convoy. Base order is creation order,
	// which keeps the RNG draw sequence reproducible.
	for _, b := range s.bases {
		b.Stock += gatherBase + s.rng.Next()*gatherSpan

		if b.Stock > spawnStock {
			roll := s.rng.Next()
			var ut UnitType
			var cost float64
			switch {
			case roll > 0.75:
				ut, cost = UnitTank, costTank
			case roll > 0.5:
				ut, cost = UnitAir, costAir
			default:
				ut, cost = UnitInfantry, costInfantry
			}
			if b.Stock >= cost {
				b.Stock -= cost
				tx, ty := s.pickEnemyBase(b.FactionID)
				s.spawnUnit(b.FactionID, ut, b.X, b.Y, tx, ty)
			}
		}

		if b.Stock > convoyStock && s.rng.Next() > convoyRoll {
			b.Stock -= convoyCost
			dir := int(s.rng.Next() * 4)
			offsets := [4][2]float64{{3, 0}, {-3, 0}, {0, 3}, {0, -3}}
			s.spawnUnit(b.FactionID, UnitBuilder, b.X, b.Y, b.X+offsets[dir][0], b.Y+offsets[dir][1])
		}
	}

	// Movement plus arrival behavior.
	for _, u := range s.units {
		dx := u.TargetX - u.X
		dy := u.TargetY - u.Y
		dist := math.Hypot(dx, dy)
		if dist > arriveEps {
			step := unitSpeed(u.Type)
			if dist < step {
				step = dist
			}
			u.X += dx / dist * step
			u.Y += dy / dist * step
			dist = math.Hypot(u.TargetX-u.X, u.TargetY-u.Y)
		}
		if dist > arriveEps {
			continue
		}

		if u.Type == UnitBuilder {
			s.tryFoundBase(u)
		} else {
			s.strikeBases(u)
		}

		// Arrived units pick a fresh enemy base to head for.
		u.TargetX, u.TargetY = s.pickEnemyBase(u.FactionID)
	}

	// Skirmish pass: every cross-faction pair in range trades damage once.
	// Casualties are purged only after the whole pass.
	for i := 0; i < len(s.units); i++ {
		for j := i + 1; j < len(s.units); j++ {
			a, b := s.units[i], s.units[j]
			if a.FactionID == b.FactionID {
				continue
			}
			if math.Hypot(a.X-b.X, a.Y-b.Y) <= skirmishRange {
				a.HP -= skirmishDmg
				b.HP -= skirmishDmg
			}
		}
	}

	alive := s.units[:0]
	for _, u := range s.units {
		if u.HP > 0 {
			alive = append(alive, u)
		}
	}
	s.units = alive
}

func (s *Sim) spawnUnit(factionID int, ut UnitType, x, y, tx, ty float64) {
	s.nextUnitID++
	s.units = append(s.units, &Unit{
		ID:        s.nextUnitID,
		FactionID: factionID,
		X:         x,
		Y:         y,
		TargetX:   tx,
		TargetY:   ty,
		Type:      ut,
		HP:        unitHP(ut),
	})
}

// pickEnemyBase returns the position of a uniformly chosen enemy base, or
// the origin when no enemy base exists. The draw is consumed even when
// only a single candidate remains.
func (s *Sim) pickEnemyBase(factionID int) (float64, float64) {
	var enemies []*Base
	for _, b := range s.bases {
		if b.FactionID != factionID {
			enemies = append(enemies, b)
		}
	}
	if len(enemies) == 0 {
		return 0, 0
	}
	idx := int(s.rng.Next() * float64(len(enemies)))
	if idx >= len(enemies) {
		idx = len(enemies) - 1
	}
	return enemies[idx].X, enemies[idx].Y
}

func (s *Sim) tryFoundBase(u *Unit) {
	rx := math.Round(u.X)
	ry := math.Round(u.Y)
	for _, b := range s.bases {
		if math.Hypot(b.X-rx, b.Y-ry) <= foundSpacing {
			return
		}
	}
	s.nextBaseID++
	s.bases = append(s.bases, &Base{
		ID:        s.nextBaseID,
		FactionID: u.FactionID,
		X:         rx,
		Y:         ry,
		HP:        100,
		Stock:     50,
	})
	s.emit("%s founded a new base at (%.0f, %.0f)", s.factionName(u.FactionID), rx, ry)
}

func (s *Sim) strikeBases(u *Unit) {
	dmg := unitDamage(u.Type)
	for i := 0; i < len(s.bases); i++ {
		b := s.bases[i]
		if b.FactionID == u.FactionID {
			continue
		}
		if math.Hypot(b.X-u.X, b.Y-u.Y) > combatRange {
			continue
		}
		b.HP -= dmg
		if b.HP <= 0 {
			s.bases = append(s.bases[:i], s.bases[i+1:]...)
			i--
			s.emit("%s destroyed a %s base at (%.0f, %.0f)",
				s.factionName(u.FactionID), s.factionName(b.FactionID), b.X, b.Y)
		}
	}
}
