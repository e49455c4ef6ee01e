// Package rng provides the two sources of pseudo-randomness the simulation
// is built on: a memoryless coordinate hash for world generation, and a
// small stateful sequential generator for temporal variation.
//
// The two must not be conflated. Unit is a pure function of its inputs and
// is what makes chunk regeneration reproducible; Seq mutates state on every
// call and is only reproducible as a whole sequence from a fixed seed.
package rng

import "math"

// Unit hashes integer coordinates and a seed into [0, 1).
//
// Callers that derive several independent quantities from the same
// coordinates must offset the seed by a distinct "extra" constant per
// quantity; reusing the same (x, z, seed) triple yields the same value.
func Unit(x, z int32, seed float64) float64 {
	v := math.Sin(float64(x)*127.1+float64(z)*311.7+seed*0.17) * 43758.5453123
	return v - math.Floor(v)
}

// Seq is a 32-bit xorshift generator. Not safe for concurrent use; the
// simulation owns exactly one per component and advances it only from the
// component's own update path.
type Seq struct {
	state uint32
}

func NewSeq(seed uint32) *Seq {
	if seed == 0 {
		// xorshift has a fixed point at zero.
		seed = 0x9e3779b9
	}
	return &Seq{state: seed}
}

// Next advances the generator and returns a value in [0, 1).
func (s *Seq) Next() float64 {
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.state = x
	return float64(x) / 4294967296.0
}

// Range returns a value in [min, max).
func (s *Seq) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// IntN returns an integer in [min, max], inclusive on both ends.
func (s *Seq) IntN(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(s.Next()*float64(max-min+1))
}

// State exposes the raw generator state for snapshots.
func (s *Seq) State() uint32 { return s.state }

// Restore overwrites the generator state, e.g. when resuming a snapshot.
func (s *Seq) Restore(state uint32) {
	if state == 0 {
		state = 0x9e3779b9
	}
	s.state = state
}
