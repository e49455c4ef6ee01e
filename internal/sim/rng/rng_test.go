package rng

import "testing"

func TestUnitPure(t *testing.T) {
	for _, tc := range []struct {
		x, z int32
		seed float64
	}{
		{0, 0, 1337},
		{-12, 44, 1337},
		{1 << 20, -(1 << 20), 0.5},
		{7, 7, 0},
	} {
		a := Unit(tc.x, tc.z, tc.seed)
		b := Unit(tc.x, tc.z, tc.seed)
		if a != b {
			t.Errorf("Unit(%d,%d,%g) not stable: %v vs %v", tc.x, tc.z, tc.seed, a, b)
		}
		if a < 0 || a >= 1 {
			t.Errorf("Unit(%d,%d,%g) = %v out of [0,1)", tc.x, tc.z, tc.seed, a)
		}
	}
}

func TestUnitExtraDecorrelates(t *testing.T) {
	// Distinct seed offsets over the same coordinates must not collapse to
	// the same value; derived names depend on this.
	a := Unit(3, -9, 1337)
	b := Unit(3, -9, 1337+17.0)
	if a == b {
		t.Fatalf("offset seed produced identical draw %v", a)
	}
}

func TestSeqReproducible(t *testing.T) {
	s1 := NewSeq(99)
	s2 := NewSeq(99)
	for i := 0; i < 1000; i++ {
		a, b := s1.Next(), s2.Next()
		if a != b {
			t.Fatalf("sequence diverged at call %d: %v vs %v", i, a, b)
		}
		if a < 0 || a >= 1 {
			t.Fatalf("Next out of [0,1): %v", a)
		}
	}
}

func TestSeqZeroSeed(t *testing.T) {
	s := NewSeq(0)
	if s.Next() == 0 && s.Next() == 0 {
		t.Fatal("zero seed stuck at fixed point")
	}
}

func TestSeqIntNInclusive(t *testing.T) {
	s := NewSeq(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.IntN(0, 3)
		if v < 0 || v > 3 {
			t.Fatalf("IntN(0,3) = %d out of range", v)
		}
		seen[v] = true
	}
	for v := 0; v <= 3; v++ {
		if !seen[v] {
			t.Errorf("IntN(0,3) never produced %d", v)
		}
	}
}

func TestSeqRangeBounds(t *testing.T) {
	s := NewSeq(31)
	for i := 0; i < 1000; i++ {
		v := s.Range(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("Range(5,10) = %v out of bounds", v)
		}
	}
}

func TestSeqStateRoundTrip(t *testing.T) {
	s := NewSeq(1234)
	for i := 0; i < 10; i++ {
		s.Next()
	}
	saved := s.State()
	want := []float64{s.Next(), s.Next(), s.Next()}

	r := NewSeq(1)
	r.Restore(saved)
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Fatalf("restored sequence diverged at call %d: %v vs %v", i, got, w)
		}
	}
}
