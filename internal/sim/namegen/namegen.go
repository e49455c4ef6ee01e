// Package namegen derives human-readable area and point-of-interest names
// from grid coordinates. Every name is a pure function of (type, cx, cz) or
// (cx, cz, index), so a chunk regenerated after eviction names itself
// identically.
package namegen

import (
	"fmt"

	"neoncity.dev/internal/sim/rng"
)

// Seed offsets. Each independently derived name component draws Unit with
// its own offset; sharing an offset across components would visibly
// correlate them (same root word picking the same suffix everywhere).
const (
	extraCityRoot   = 101.0
	extraSuffix     = 211.0
	extraRouteNum   = 307.0
	extraPOIAdj     = 401.0
	extraPOINoun    = 503.0
)

var cityRoots = []string{
	"Arco", "Vesper", "Halcyon", "Meridian", "Kestrel",
	"Sodium", "Ferrule", "Cobalt", "Marrow", "Tessera",
	"Volta", "Cinder", "Lumen", "Drift", "Pallas",
}

var suburbSuffixes = []string{
	"Heights", "Gardens", "Terrace", "Hollow", "Crossing", "Glen",
}

var poiAdjectives = []string{
	"Neon", "Rusty", "Golden", "Quiet", "Last", "Lucky",
	"Paper", "Velvet", "Static", "Hollow",
}

var poiNouns = []string{
	"Noodle Bar", "Pawn Shop", "Arcade", "Diner", "Bookstore",
	"Laundromat", "Record Store", "Tea House", "Bodega", "Repair Shop",
}

func pick(list []string, x, z int32, seed, extra float64) string {
	h := rng.Unit(x, z, seed+extra)
	return list[int(h*float64(len(list)))%len(list)]
}

// BlockCode maps chunk coordinates onto a short grid reference:
// column letter from |cx| mod 26, row number from |cz| mod 99 + 1.
func BlockCode(cx, cz int32) string {
	ax, az := cx, cz
	if ax < 0 {
		ax = -ax
	}
	if az < 0 {
		az = -az
	}
	return fmt.Sprintf("%c%d", 'A'+ax%26, az%99+1)
}

// CityName names a city chunk: "<Root> City, Block <Letter><Number>".
func CityName(cx, cz int32, seed float64) string {
	root := pick(cityRoots, cx, cz, seed, extraCityRoot)
	return fmt.Sprintf("%s City, Block %s", root, BlockCode(cx, cz))
}

// SuburbName names a suburb chunk: "<Root> <Suffix>".
func SuburbName(cx, cz int32, seed float64) string {
	root := pick(cityRoots, cx, cz, seed, extraCityRoot)
	suffix := pick(suburbSuffixes, cx, cz, seed, extraSuffix)
	return fmt.Sprintf("%s %s", root, suffix)
}

// ParkName names a park chunk.
func ParkName(cx, cz int32, seed float64) string {
	return pick(cityRoots, cx, cz, seed, extraCityRoot) + " Park"
}

// HighwayName names a highway chunk with a deterministic route number.
func HighwayName(cx, cz int32, seed float64) string {
	n := int(rng.Unit(cx, cz, seed+extraRouteNum)*89) + 10
	return fmt.Sprintf("Route %d", n)
}

// WastelandName names a wasteland chunk.
func WastelandName(cx, cz int32, seed float64) string {
	return pick(cityRoots, cx, cz, seed, extraCityRoot) + " Wastes"
}

// POIName names a shop door. The index decorrelates multiple POIs inside
// the same chunk.
func POIName(cx, cz int32, index int, seed float64) string {
	adj := pick(poiAdjectives, cx, cz, seed, extraPOIAdj+float64(index)*7.31)
	noun := pick(poiNouns, cx, cz, seed, extraPOINoun+float64(index)*13.77)
	return "The " + adj + " " + noun
}
