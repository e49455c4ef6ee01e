package worldgen

import "testing"

func TestResolvePushesOutMinimalAxis(t *testing.T) {
	s := newTestStore()
	s.colliders = []Collider{{MinX: 0, MaxX: 10, MinZ: 0, MaxZ: 10}}

	// Close to the -x edge: pushed left.
	pos := Vec3{X: 0.5, Y: 1, Z: 5}
	s.Resolve(&pos, 0.5)
	if pos.X != -0.5 {
		t.Errorf("push -x: X = %v, want -0.5", pos.X)
	}
	if pos.Z != 5 {
		t.Errorf("push -x moved Z to %v", pos.Z)
	}

	// Close to the +z edge: pushed forward.
	pos = Vec3{X: 5, Y: 1, Z: 9.7}
	s.Resolve(&pos, 0.5)
	if pos.Z != 10.5 {
		t.Errorf("push +z: Z = %v, want 10.5", pos.Z)
	}
}

func TestResolveOutsideUntouched(t *testing.T) {
	s := newTestStore()
	s.colliders = []Collider{{MinX: 0, MaxX: 10, MinZ: 0, MaxZ: 10}}

	pos := Vec3{X: 20, Y: 1, Z: 20}
	s.Resolve(&pos, 0.5)
	if pos.X != 20 || pos.Z != 20 {
		t.Errorf("position outside collider moved to (%v,%v)", pos.X, pos.Z)
	}
}

func TestResolveFloorClamp(t *testing.T) {
	s := newTestStore()
	pos := Vec3{X: 0, Y: -3, Z: 0}
	s.Resolve(&pos, 0.5)
	if pos.Y != s.Config().FloorY {
		t.Errorf("Y = %v, want floor %v", pos.Y, s.Config().FloorY)
	}
}

func TestResolvePerColliderIndependently(t *testing.T) {
	// Two overlapping colliders are resolved one after the other; this is
	// not a global solver. The position must still end up outside the last
	// collider processed.
	s := newTestStore()
	s.colliders = []Collider{
		{MinX: 0, MaxX: 10, MinZ: 0, MaxZ: 10},
		{MinX: -12, MaxX: 1, MinZ: 0, MaxZ: 10},
	}
	pos := Vec3{X: 0.5, Y: 1, Z: 5}
	s.Resolve(&pos, 0.5)

	last := s.colliders[1]
	inside := pos.X > last.MinX-0.5 && pos.X < last.MaxX+0.5 &&
		pos.Z > last.MinZ-0.5 && pos.Z < last.MaxZ+0.5
	if inside {
		t.Errorf("position (%v,%v) still inside last collider", pos.X, pos.Z)
	}
}
