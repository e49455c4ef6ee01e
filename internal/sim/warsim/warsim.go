// Package warsim runs the autonomous faction war: three permanent factions
// whose bases accumulate resources, spawn units, and found new bases while
// the player does something else entirely. The simulation is coarse on
// purpose; it produces a believable stream of narrative events, not an RTS.
package warsim

import (
	"neoncity.dev/internal/sim/rng"
)

type Faction struct {
	ID    int
	Name  string
	Color [3]float64
}

type UnitType string

const (
	UnitInfantry UnitType = "infantry"
	UnitTank     UnitType = "tank"
	UnitAir      UnitType = "air"
	UnitBuilder  UnitType = "builder"
)

// Base lives on the abstract war plane, not in world units. Destroyed at
// HP <= 0: removed from the roster with an emitted event.
type Base struct {
	ID        int
	FactionID int
	X, Y      float64
	HP        float64
	Stock     float64
}

type Unit struct {
	ID               int
	FactionID        int
	X, Y             float64
	TargetX, TargetY float64
	Type             UnitType
	HP               float64
}

// Event is one narrative line, stamped with the tick it happened on.
type Event struct {
	Tick uint64
	Text string
}

type Config struct {
	Seed         uint32
	TickInterval float64
	MaxEvents    int
}

func (c *Config) applyDefaults() {
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.TickInterval <= 0 {
		c.TickInterval = 0.5
	}
	if c.MaxEvents <= 0 {
		c.MaxEvents = 10
	}
}

// Sim owns all war state. Accessed only from the session loop goroutine.
type Sim struct {
	cfg Config
	rng *rng.Seq

	// Draws for RandomEvent only. Kept apart from the simulation sequence
	// so dialogue sampling never shifts the replayed tick outcomes; it is
	// deliberately absent from snapshots.
	sampleRNG *rng.Seq

	factions []Faction
	bases    []*Base
	units    []*Unit
	events   []Event

	accum float64
	tick  uint64

	nextBaseID int
	nextUnitID int

	// Optional, invoked on every emitted event. May be nil.
	eventSink func(Event)
}

var startingBases = [3][2]float64{{0, 0}, {6, -4}, {-5, 5}}

func New(cfg Config) *Sim {
	cfg.applyDefaults()
	s := &Sim{
		cfg:       cfg,
		rng:       rng.NewSeq(cfg.Seed),
		sampleRNG: rng.NewSeq(cfg.Seed ^ 0x5bd1e995),
		factions: []Faction{
			{ID: 1, Name: "Crimson Pact", Color: [3]float64{0.85, 0.2, 0.2}},
			{ID: 2, Name: "Cobalt Syndicate", Color: [3]float64{0.2, 0.4, 0.9}},
			{ID: 3, Name: "Verdant Order", Color: [3]float64{0.2, 0.75, 0.3}},
		},
	}
	for i, f := range s.factions {
		s.nextBaseID++
		s.bases = append(s.bases, &Base{
			ID:        s.nextBaseID,
			FactionID: f.ID,
			X:         startingBases[i][0],
			Y:         startingBases[i][1],
			HP:        100,
			Stock:     50,
		})
	}
	return s
}

func (s *Sim) SetEventSink(fn func(Event)) { s.eventSink = fn }

func (s *Sim) Tick() uint64 { return s.tick }

func (s *Sim) Factions() []Faction { return append([]Faction(nil), s.factions...) }

// Bases returns a copy of the live base roster.
func (s *Sim) Bases() []Base {
	out := make([]Base, 0, len(s.bases))
	for _, b := range s.bases {
		out = append(out, *b)
	}
	return out
}

// Units returns a copy of the live unit roster.
func (s *Sim) Units() []Unit {
	out := make([]Unit, 0, len(s.units))
	for _, u := range s.units {
		out = append(out, *u)
	}
	return out
}

func (s *Sim) factionName(id int) string {
	for _, f := range s.factions {
		if f.ID == id {
			return f.Name
		}
	}
	return "Unknown"
}

func unitHP(t UnitType) float64 {
	switch t {
	case UnitTank:
		return 40
	case UnitAir:
		return 30
	default:
		return 20
	}
}

func unitSpeed(t UnitType) float64 {
	switch t {
	case UnitInfantry:
		return 0.5
	case UnitAir:
		return 0.8
	default:
		// tank and builder
		return 0.4
	}
}

func unitDamage(t UnitType) float64 {
	switch t {
	case UnitTank:
		return 30
	case UnitAir:
		return 20
	case UnitInfantry:
		return 10
	default:
		return 0
	}
}
