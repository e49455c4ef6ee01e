package namegen

import (
	"regexp"
	"testing"
)

func TestNamesStable(t *testing.T) {
	const seed = 1337.0
	for i := 0; i < 3; i++ {
		if a, b := CityName(4, -7, seed), CityName(4, -7, seed); a != b {
			t.Fatalf("CityName unstable: %q vs %q", a, b)
		}
		if a, b := POIName(4, -7, 2, seed), POIName(4, -7, 2, seed); a != b {
			t.Fatalf("POIName unstable: %q vs %q", a, b)
		}
	}
}

func TestCityNameFormat(t *testing.T) {
	re := regexp.MustCompile(`^[A-Za-z]+ City, Block [A-Z][0-9]+$`)
	for _, c := range [][2]int32{{0, 0}, {5, 9}, {-3, -88}, {1000, -1000}} {
		name := CityName(c[0], c[1], 1337)
		if !re.MatchString(name) {
			t.Errorf("CityName(%d,%d) = %q does not match format", c[0], c[1], name)
		}
	}
}

func TestBlockCode(t *testing.T) {
	tests := []struct {
		cx, cz int32
		want   string
	}{
		{0, 0, "A1"},
		{1, 0, "B1"},
		{26, 0, "A1"},
		{-2, 0, "C1"},
		{0, 98, "A99"},
		{0, 99, "A1"},
		{0, -4, "A5"},
	}
	for _, tt := range tests {
		if got := BlockCode(tt.cx, tt.cz); got != tt.want {
			t.Errorf("BlockCode(%d,%d) = %q, want %q", tt.cx, tt.cz, got, tt.want)
		}
	}
}

func TestPOIIndexDecorrelates(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		seen[POIName(2, 2, i, 1337)] = true
	}
	if len(seen) < 2 {
		t.Fatalf("POI names for distinct indices collapsed to %d value(s)", len(seen))
	}
}
