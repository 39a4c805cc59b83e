package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(lon, lat, side float64) Polygon {
	return Polygon{Ring: []Point{
		{Lon: lon, Lat: lat},
		{Lon: lon + side, Lat: lat},
		{Lon: lon + side, Lat: lat + side},
		{Lon: lon, Lat: lat + side},
	}}
}

func TestCentroid(t *testing.T) {
	t.Run("square centroid is its center", func(t *testing.T) {
		c, ok := square(46.6, 24.7, 0.02).Centroid()
		require.True(t, ok)
		assert.InDelta(t, 46.61, c.Lon, 1e-9)
		assert.InDelta(t, 24.71, c.Lat, 1e-9)
	})

	t.Run("empty polygon has no centroid", func(t *testing.T) {
		_, ok := Polygon{}.Centroid()
		assert.False(t, ok)
	})

	t.Run("degenerate ring falls back to vertex mean", func(t *testing.T) {
		p := Polygon{Ring: []Point{{Lon: 1, Lat: 1}, {Lon: 3, Lat: 1}, {Lon: 2, Lat: 1}}}
		c, ok := p.Centroid()
		require.True(t, ok)
		assert.InDelta(t, 2.0, c.Lon, 1e-9)
		assert.InDelta(t, 1.0, c.Lat, 1e-9)
	})

	t.Run("centroid ignores ring orientation", func(t *testing.T) {
		p := square(10, 10, 1)
		reversed := Polygon{Ring: []Point{p.Ring[3], p.Ring[2], p.Ring[1], p.Ring[0]}}
		c1, _ := p.Centroid()
		c2, _ := reversed.Centroid()
		assert.InDelta(t, c1.Lon, c2.Lon, 1e-9)
		assert.InDelta(t, c1.Lat, c2.Lat, 1e-9)
	})
}

func TestGeohash(t *testing.T) {
	t.Run("encodes centroid at requested precision", func(t *testing.T) {
		h := square(46.6, 24.7, 0.02).Geohash(5)
		assert.Len(t, h, 5)
	})

	t.Run("empty boundary encodes to empty string", func(t *testing.T) {
		assert.Empty(t, Polygon{}.Geohash(5))
	})
}

func TestDistanceKm(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		p := Point{Lon: 46.68, Lat: 24.71}
		assert.InDelta(t, 0, DistanceKm(p, p), 1e-9)
	})

	t.Run("one degree of latitude is roughly 111km", func(t *testing.T) {
		a := Point{Lon: 46.68, Lat: 24.0}
		b := Point{Lon: 46.68, Lat: 25.0}
		assert.InDelta(t, 111.0, DistanceKm(a, b), 1.0)
	})
}
