// Package geo holds the minimal geometry the fact record needs: WGS84 parcel
// boundaries, their centroids, and distances between points.
package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/umahmood/haversine"
)

// Point is a WGS84 (EPSG:4326) coordinate.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Polygon is a single closed ring of WGS84 points. Rings are stored the way
// municipal registries export them: first and last vertex may or may not
// coincide, so calculations treat the ring as implicitly closed.
type Polygon struct {
	Ring []Point `json:"ring"`
}

// IsZero reports whether no boundary was recorded.
func (p Polygon) IsZero() bool { return len(p.Ring) == 0 }

// Centroid computes the area-weighted centroid of the ring using the shoelace
// formula, falling back to the vertex mean for degenerate (zero-area) rings.
func (p Polygon) Centroid() (Point, bool) {
	n := len(p.Ring)
	if n == 0 {
		return Point{}, false
	}
	if n < 3 {
		return p.vertexMean(), true
	}

	var area, cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Ring[i].Lon*p.Ring[j].Lat - p.Ring[j].Lon*p.Ring[i].Lat
		area += cross
		cx += (p.Ring[i].Lon + p.Ring[j].Lon) * cross
		cy += (p.Ring[i].Lat + p.Ring[j].Lat) * cross
	}
	area /= 2
	if math.Abs(area) < 1e-12 {
		return p.vertexMean(), true
	}
	return Point{Lon: cx / (6 * area), Lat: cy / (6 * area)}, true
}

func (p Polygon) vertexMean() Point {
	var lon, lat float64
	for _, pt := range p.Ring {
		lon += pt.Lon
		lat += pt.Lat
	}
	n := float64(len(p.Ring))
	return Point{Lon: lon / n, Lat: lat / n}
}

// Geohash encodes the ring centroid at the given character precision.
// Returns "" when the polygon has no boundary.
func (p Polygon) Geohash(chars uint) string {
	c, ok := p.Centroid()
	if !ok {
		return ""
	}
	return geohash.EncodeWithPrecision(c.Lat, c.Lon, chars)
}

// DistanceKm returns the great-circle distance between two points in
// kilometres.
func DistanceKm(a, b Point) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km
}
