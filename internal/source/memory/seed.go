package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fundus/internal/property/models"
	domain "fundus/pkg/domain"
	"fundus/pkg/geo"
	"fundus/pkg/pseudonym"
)

// SeededChain names the identifiers a seeded dataset hangs off, so tests
// and the dev server can address what Seed created.
type SeededChain struct {
	ParcelID   domain.ParcelID
	BuildingID domain.BuildingID
	UnitID     domain.UnitID
	MeterID    domain.MeterID
}

// Seed loads one coherent unit chain: a zoned parcel with a boundary, a
// four-floor building, an occupied unit with an active lease, a completed
// occupancy permit, a clean unit-scoped title, and thirty days of
// electricity readings. Personal identifiers are pseudonymized through
// hasher before they enter the store.
func Seed(s *Store, hasher *pseudonym.Hasher, asOf time.Time) (SeededChain, error) {
	chain := SeededChain{
		ParcelID:   domain.ParcelID(uuid.New()),
		BuildingID: domain.BuildingID(uuid.New()),
		UnitID:     domain.UnitID(uuid.New()),
		MeterID:    domain.MeterID(uuid.New()),
	}

	parcel, err := models.NewParcel(chain.ParcelID, "RYD-10-0042", "residential", geo.Polygon{Ring: []geo.Point{
		{Lon: 46.6750, Lat: 24.7130},
		{Lon: 46.6757, Lat: 24.7130},
		{Lon: 46.6757, Lat: 24.7136},
		{Lon: 46.6750, Lat: 24.7136},
	}})
	if err != nil {
		return SeededChain{}, fmt.Errorf("seed parcel: %w", err)
	}
	s.PutParcel(parcel)

	building, err := models.NewBuilding(chain.BuildingID, chain.ParcelID, 2016, "reinforced concrete", 4, 1850)
	if err != nil {
		return SeededChain{}, fmt.Errorf("seed building: %w", err)
	}
	s.PutBuilding(building)

	bedrooms := 2
	unit, err := models.NewUnit(chain.UnitID, chain.BuildingID, "apartment", 96.5, 3, &bedrooms, "north")
	if err != nil {
		return SeededChain{}, fmt.Errorf("seed unit: %w", err)
	}
	s.PutUnit(unit)

	leaseStart := asOf.AddDate(0, -6, 0)
	lease, err := models.NewLease(
		domain.LeaseID(uuid.New()), chain.UnitID,
		hasher.Derive("tenant:1010101010"),
		leaseStart, leaseStart.AddDate(1, 0, 0),
		5200, 5200, models.LeaseStatusActive,
	)
	if err != nil {
		return SeededChain{}, fmt.Errorf("seed lease: %w", err)
	}
	s.PutLease(lease)

	completed := asOf.AddDate(0, 0, -400)
	permit, err := models.NewPermit(
		domain.PermitID(uuid.New()),
		domain.ScopeRef{Tag: domain.ScopeBuilding, ID: uuid.UUID(chain.BuildingID)},
		models.PermitKindOccupancy, models.PermitStatusCompleted,
		completed.AddDate(0, -2, 0), &completed, "OCC-2025-0417",
	)
	if err != nil {
		return SeededChain{}, fmt.Errorf("seed permit: %w", err)
	}
	s.PutPermit(permit)

	title, err := models.NewTitleRecord(
		domain.TitleID(uuid.New()),
		domain.ScopeRef{Tag: domain.ScopeUnit, ID: uuid.UUID(chain.UnitID)},
		hasher.Derive("owner:2020202020"), "DEED-88421",
		map[string]string{models.EncumbranceLienStatus: "free"},
		asOf.AddDate(-1, 0, 0),
	)
	if err != nil {
		return SeededChain{}, fmt.Errorf("seed title: %w", err)
	}
	s.PutTitle(title)

	meter, err := models.NewMeter(
		chain.MeterID,
		domain.ScopeRef{Tag: domain.ScopeUnit, ID: uuid.UUID(chain.UnitID)},
		models.MeterTypeElectricity, "SEC-7781",
	)
	if err != nil {
		return SeededChain{}, fmt.Errorf("seed meter: %w", err)
	}
	s.PutMeter(meter)

	// Cumulative kWh, one reading a day, roughly 12 kWh of draw.
	value := 48210.0
	for day := 30; day >= 0; day-- {
		reading, err := models.NewMeterReading(chain.MeterID, asOf.AddDate(0, 0, -day), value)
		if err != nil {
			return SeededChain{}, fmt.Errorf("seed reading: %w", err)
		}
		s.PutReading(reading)
		value += 12 + float64(day%3)
	}

	return chain, nil
}
