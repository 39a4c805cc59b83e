//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"fundus/internal/property/models"
	"fundus/internal/source/postgres"
	domain "fundus/pkg/domain"
	"fundus/pkg/platform/sentinel"
	"fundus/pkg/testutil/containers"
)

type StoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *postgres.Store

	parcelID   uuid.UUID
	buildingID uuid.UUID
	unitID     uuid.UUID
	meterID    uuid.UUID
	asOf       time.Time
}

func TestStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = postgres.New(s.pg.Pool)
	s.Require().NoError(s.store.Migrate(context.Background()))
}

func (s *StoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.pg.TruncateTables(ctx,
		"meter_readings", "meters", "leases", "permits", "titles", "units", "buildings", "parcels")
	s.Require().NoError(err)

	s.asOf = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.parcelID = uuid.New()
	s.buildingID = uuid.New()
	s.unitID = uuid.New()
	s.meterID = uuid.New()

	exec := func(sql string, args ...any) {
		_, err := s.pg.Pool.Exec(ctx, sql, args...)
		s.Require().NoError(err)
	}

	exec(`INSERT INTO parcels (id, muni_id, zoning, boundary) VALUES ($1, $2, $3, $4)`,
		s.parcelID, "RYD-10-0042", "residential",
		[]byte(`{"ring":[{"lon":46.675,"lat":24.713},{"lon":46.676,"lat":24.713},{"lon":46.676,"lat":24.714}]}`))
	exec(`INSERT INTO buildings (id, parcel_id, year_built, structure, floors, bua_m2) VALUES ($1, $2, 2016, 'concrete', 4, 1850)`,
		s.buildingID, s.parcelID)
	exec(`INSERT INTO units (id, building_id, use_type, nla_m2, floor_no, bedrooms, orientation) VALUES ($1, $2, 'apartment', 96.5, 3, 2, 'north')`,
		s.unitID, s.buildingID)
	exec(`INSERT INTO leases (id, unit_id, tenant_hash, start_date, end_date, rent_monthly, deposit, status)
	      VALUES ($1, $2, 'th-1', $3, $4, 5200, 5200, 'active')`,
		uuid.New(), s.unitID, s.asOf.AddDate(0, -6, 0), s.asOf.AddDate(0, 6, 0))
	exec(`INSERT INTO leases (id, unit_id, tenant_hash, start_date, end_date, rent_monthly, deposit, status)
	      VALUES ($1, $2, 'th-0', $3, $4, 4800, 4800, 'ended')`,
		uuid.New(), s.unitID, s.asOf.AddDate(-2, 0, 0), s.asOf.AddDate(-1, 0, 0))
	exec(`INSERT INTO permits (id, scope, scope_id, kind, status, issued_on, completed_on, permit_no)
	      VALUES ($1, 'building', $2, 'occupancy', 'completed', $3, $4, 'OCC-1')`,
		uuid.New(), s.buildingID, s.asOf.AddDate(-2, 0, 0), s.asOf.AddDate(0, 0, -400))
	exec(`INSERT INTO titles (id, scope, scope_id, owner_hash, deed_no, encumbrance, effective_on)
	      VALUES ($1, 'unit', $2, 'oh-1', 'DEED-1', '{"lien_status":"free"}', $3)`,
		uuid.New(), s.unitID, s.asOf.AddDate(-1, 0, 0))
	exec(`INSERT INTO meters (id, scope, scope_id, type, provider_acct) VALUES ($1, 'unit', $2, 'electricity', 'SEC-1')`,
		s.meterID, s.unitID)
	for day := 10; day >= 0; day-- {
		exec(`INSERT INTO meter_readings (meter_id, ts, value) VALUES ($1, $2, $3)`,
			s.meterID, s.asOf.AddDate(0, 0, -day), 48000.0+float64(10-day)*12)
	}
}

func (s *StoreSuite) TestFetchUnitChain() {
	ctx := context.Background()

	chain, err := s.store.FetchUnitChain(ctx, domain.UnitID(s.unitID))
	s.Require().NoError(err)
	s.Equal("apartment", chain.Unit.UseType)
	s.Equal(2016, chain.Building.YearBuilt)
	s.Equal("RYD-10-0042", chain.Parcel.MuniID)
	s.Require().NotNil(chain.Unit.Bedrooms)
	s.Equal(2, *chain.Unit.Bedrooms)
	s.Len(chain.Parcel.Boundary.Ring, 3)

	_, err = s.store.FetchUnitChain(ctx, domain.UnitID(uuid.New()))
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestFetchActiveLeases() {
	leases, err := s.store.FetchActiveLeases(context.Background(), domain.UnitID(s.unitID))
	s.Require().NoError(err)
	s.Require().Len(leases, 1)
	s.Equal(5200.0, leases[0].RentMonthly)
	s.Equal(models.LeaseStatusActive, leases[0].Status)
}

func (s *StoreSuite) TestFetchLatestPermit() {
	ctx := context.Background()
	ref := domain.ScopeRef{Tag: domain.ScopeBuilding, ID: s.buildingID}

	permit, err := s.store.FetchLatestPermit(ctx, ref, models.PermitKindOccupancy, models.PermitKindCompletion)
	s.Require().NoError(err)
	s.Equal("OCC-1", permit.PermitNo)
	s.Require().NotNil(permit.CompletedOn)

	_, err = s.store.FetchLatestPermit(ctx, ref, "demolition")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestFetchLatestTitle() {
	ctx := context.Background()

	title, err := s.store.FetchLatestTitle(ctx, domain.ScopeRef{Tag: domain.ScopeUnit, ID: s.unitID})
	s.Require().NoError(err)
	s.True(title.Clean())

	_, err = s.store.FetchLatestTitle(ctx, domain.ScopeRef{Tag: domain.ScopeParcel, ID: s.parcelID})
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestFetchMetersAndReadings() {
	ctx := context.Background()

	meters, err := s.store.FetchMeters(ctx, domain.ScopeRef{Tag: domain.ScopeUnit, ID: s.unitID})
	s.Require().NoError(err)
	s.Require().Len(meters, 1)

	readings, err := s.store.FetchReadings(ctx, meters[0].ID, 5, s.asOf)
	s.Require().NoError(err)
	s.Require().Len(readings, 6)
	for i := 1; i < len(readings); i++ {
		s.True(readings[i].Timestamp.After(readings[i-1].Timestamp))
	}
}

func (s *StoreSuite) TestLookupEntity() {
	ctx := context.Background()

	entity, err := s.store.LookupEntity(ctx, domain.ScopeBuilding, s.buildingID)
	s.Require().NoError(err)
	s.Equal(domain.ScopeBuilding, entity.EntityKind())

	_, err = s.store.LookupEntity(ctx, domain.ScopeParcel, uuid.New())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
