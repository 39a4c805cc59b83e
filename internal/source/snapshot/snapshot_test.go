package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
)

var (
	parcelID   = uuid.New()
	buildingID = uuid.New()
	unitID     = uuid.New()
)

func fixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func validSnapshot() string {
	return fmt.Sprintf(`{
		"parcels": [{
			"id": %q, "muni_id": "RYD-10-0042", "zoning": "residential",
			"boundary": {"ring": [
				{"lon": 46.675, "lat": 24.713},
				{"lon": 46.676, "lat": 24.713},
				{"lon": 46.676, "lat": 24.714}
			]}
		}],
		"buildings": [{
			"id": %q, "parcel_id": %q, "year_built": 2016,
			"structure": "concrete", "floors": 4, "bua_m2": 1850
		}],
		"units": [{
			"id": %q, "building_id": %q, "use_type": "apartment",
			"nla_m2": 96.5, "floor_no": 3, "bedrooms": 2
		}],
		"leases": [{
			"id": %q, "unit_id": %q, "tenant_hash": "th-1",
			"start_date": "2026-02-01T00:00:00Z", "end_date": "2027-02-01T00:00:00Z",
			"rent_monthly": 5200, "deposit": 5200, "status": "active"
		}]
	}`, parcelID, buildingID, parcelID, unitID, buildingID, uuid.New(), unitID)
}

func TestLoad(t *testing.T) {
	store, err := Load(fixture(t, validSnapshot()))
	require.NoError(t, err)

	ctx := context.Background()
	chain, err := store.FetchUnitChain(ctx, domain.UnitID(unitID))
	require.NoError(t, err)
	assert.Equal(t, "RYD-10-0042", chain.Parcel.MuniID)
	assert.Len(t, chain.Parcel.Boundary.Ring, 3)

	leases, err := store.FetchActiveLeases(ctx, domain.UnitID(unitID))
	require.NoError(t, err)
	require.Len(t, leases, 1)
	assert.Equal(t, 5200.0, leases[0].RentMonthly)
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	for name, body := range map[string]string{
		"not json":          `{"parcels": [`,
		"missing units":     `{"parcels": [], "buildings": []}`,
		"negative area":     fmt.Sprintf(`{"parcels": [], "buildings": [], "units": [{"id": %q, "building_id": %q, "use_type": "apartment", "nla_m2": -1, "floor_no": 0}]}`, unitID, buildingID),
		"bad lease status":  fmt.Sprintf(`{"parcels": [], "buildings": [], "units": [], "leases": [{"id": %q, "unit_id": %q, "tenant_hash": "t", "start_date": "2026-01-01T00:00:00Z", "end_date": "2027-01-01T00:00:00Z", "rent_monthly": 1, "status": "paused"}]}`, uuid.New(), unitID),
		"malformed uuid":    `{"parcels": [{"id": "not-a-uuid", "muni_id": "X"}], "buildings": [], "units": []}`,
		"unknown top field": `{"parcels": [], "buildings": [], "units": [], "owners": []}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(fixture(t, body))
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func TestLoadRejectsInvariantViolations(t *testing.T) {
	// Dates pass the schema but invert; the entity constructor rejects them.
	body := fmt.Sprintf(`{
		"parcels": [], "buildings": [], "units": [],
		"leases": [{
			"id": %q, "unit_id": %q, "tenant_hash": "t",
			"start_date": "2027-01-01T00:00:00Z", "end_date": "2026-01-01T00:00:00Z",
			"rent_monthly": 1, "status": "active"
		}]
	}`, uuid.New(), unitID)
	_, err := Load(fixture(t, body))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func writeParcelShapefile(t *testing.T, muniID string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parcels.shp")

	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)

	require.NoError(t, w.SetFields([]shp.Field{shp.StringField("MUNI_ID", 25)}))

	ring := []shp.Point{
		{X: 46.6000, Y: 24.7000},
		{X: 46.6010, Y: 24.7000},
		{X: 46.6010, Y: 24.7008},
		{X: 46.6000, Y: 24.7008},
		{X: 46.6000, Y: 24.7000},
	}
	w.Write((*shp.Polygon)(shp.NewPolyLine([][]shp.Point{ring})))
	w.WriteAttribute(0, 0, muniID)
	w.Close()
	return path
}

func TestLoadWithBoundaryShapefile(t *testing.T) {
	shpPath := writeParcelShapefile(t, "RYD-10-0042")

	store, err := Load(fixture(t, validSnapshot()), WithBoundaryShapefile(shpPath, "MUNI_ID"))
	require.NoError(t, err)

	chain, err := store.FetchUnitChain(context.Background(), domain.UnitID(unitID))
	require.NoError(t, err)
	// Shapefile geometry replaces the snapshot's own ring.
	assert.Len(t, chain.Parcel.Boundary.Ring, 5)
	assert.InDelta(t, 46.60, chain.Parcel.Boundary.Ring[0].Lon, 0.01)
}

func TestLoadBoundariesMissingAttribute(t *testing.T) {
	shpPath := writeParcelShapefile(t, "RYD-10-0042")
	_, err := LoadBoundaries(shpPath, "PARCEL_NO")
	require.Error(t, err)
}
