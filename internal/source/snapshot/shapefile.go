package snapshot

import (
	"fmt"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"fundus/pkg/geo"
)

// LoadBoundaries reads parcel polygons from a cadastral shapefile, keyed by
// the muni_id attribute named by muniIDField. Multi-part polygons keep only
// their outer ring (the first part); cadastral parcel layers rarely carry
// holes and the centroid and geohash derivations only need the outline.
// Non-polygon shapes and rows without the key attribute are skipped.
func LoadBoundaries(path, muniIDField string) (map[string]geo.Polygon, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}
	defer r.Close()

	fieldIdx := -1
	for i, f := range r.Fields() {
		if strings.EqualFold(f.String(), muniIDField) {
			fieldIdx = i
			break
		}
	}
	if fieldIdx < 0 {
		return nil, fmt.Errorf("shapefile has no %q attribute", muniIDField)
	}

	out := make(map[string]geo.Polygon)
	for r.Next() {
		row, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		muniID := strings.TrimSpace(r.ReadAttribute(row, fieldIdx))
		if muniID == "" {
			continue
		}

		end := len(poly.Points)
		if len(poly.Parts) > 1 {
			end = int(poly.Parts[1])
		}
		ring := make([]geo.Point, 0, end)
		for _, pt := range poly.Points[:end] {
			ring = append(ring, geo.Point{Lon: pt.X, Lat: pt.Y})
		}
		if len(ring) < 3 {
			continue
		}
		out[muniID] = geo.Polygon{Ring: ring}
	}
	return out, nil
}
