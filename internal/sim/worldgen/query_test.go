package worldgen

import "testing"

func TestAreaNameLoaded(t *testing.T) {
	s := newTestStore()
	s.Update(0, 0)

	ch := s.Chunk(ChunkKey{})
	half := s.Config().ChunkSize / 2
	if got := s.AreaName(half, half); got != ch.Name {
		t.Fatalf("AreaName inside loaded chunk = %q, want %q", got, ch.Name)
	}
}

func TestAreaNameFallbackAgrees(t *testing.T) {
	s := newTestStore()
	size := s.Config().ChunkSize

	// Far away, nothing loaded there.
	farX, farZ := 50*size+1, 50*size+1
	before := len(s.chunks)
	fallback := s.AreaName(farX, farZ)
	if len(s.chunks) != before {
		t.Fatal("read-only fallback mutated loaded chunks")
	}

	s.Update(farX, farZ)
	loaded := s.AreaName(farX, farZ)
	if fallback != loaded {
		t.Fatalf("fallback name %q disagrees with generated name %q", fallback, loaded)
	}
}

func TestNearbyDoor(t *testing.T) {
	s := newTestStore()
	s.doors = []Door{
		{ID: "a", X: 0, Z: 0},
		{ID: "b", X: 3, Z: 0},
		{ID: "c", X: 0, Z: 1},
	}

	d, ok := s.NearbyDoor(0.2, 0.2, 5)
	if !ok || d.ID != "a" {
		t.Fatalf("NearbyDoor = %+v ok=%v, want door a", d, ok)
	}

	d, ok = s.NearbyDoor(2.9, 0, 5)
	if !ok || d.ID != "b" {
		t.Fatalf("NearbyDoor = %+v ok=%v, want door b", d, ok)
	}

	if _, ok := s.NearbyDoor(100, 100, 5); ok {
		t.Fatal("NearbyDoor found a door out of range")
	}
}

func TestNearbyDoorTieBreaksByInsertionOrder(t *testing.T) {
	s := newTestStore()
	s.doors = []Door{
		{ID: "first", X: -1, Z: 0},
		{ID: "second", X: 1, Z: 0},
	}
	d, ok := s.NearbyDoor(0, 0, 5)
	if !ok || d.ID != "first" {
		t.Fatalf("equidistant doors resolved to %q, want first-inserted", d.ID)
	}
}

func TestNearbyDoorEmptyStore(t *testing.T) {
	s := newTestStore()
	if _, ok := s.NearbyDoor(0, 0, 100); ok {
		t.Fatal("NearbyDoor on empty store reported a door")
	}
}
