// Package postgres implements the fact-source port over a pgx connection
// pool.
package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundus/internal/property/models"
	"fundus/internal/source"
	domain "fundus/pkg/domain"
	"fundus/pkg/geo"
	"fundus/pkg/platform/sentinel"
)

//go:embed schema.sql
var Schema string

// Store reads property facts from PostgreSQL. All operations are
// single-statement reads; no transaction state is held between calls.
type Store struct {
	pool *pgxpool.Pool
}

var _ source.Source = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate applies the embedded schema. Idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const unitChainQuery = `
SELECT u.id, u.building_id, u.use_type, u.nla_m2, u.floor_no, u.bedrooms, u.orientation,
       b.id, b.parcel_id, b.year_built, b.structure, b.floors, b.bua_m2,
       p.id, p.muni_id, p.zoning, p.boundary
FROM units u
JOIN buildings b ON b.id = u.building_id
JOIN parcels p ON p.id = b.parcel_id
WHERE u.id = $1`

func (s *Store) FetchUnitChain(ctx context.Context, unitID domain.UnitID) (source.Chain, error) {
	var (
		chain    source.Chain
		bedrooms *int
		orient   *string
		boundary []byte
	)
	err := s.pool.QueryRow(ctx, unitChainQuery, uuid.UUID(unitID)).Scan(
		&chain.Unit.ID, &chain.Unit.BuildingID, &chain.Unit.UseType, &chain.Unit.NetLettableAreaM2,
		&chain.Unit.FloorNo, &bedrooms, &orient,
		&chain.Building.ID, &chain.Building.ParcelID, &chain.Building.YearBuilt,
		&chain.Building.Structure, &chain.Building.Floors, &chain.Building.BuiltUpAreaM2,
		&chain.Parcel.ID, &chain.Parcel.MuniID, &chain.Parcel.Zoning, &boundary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return source.Chain{}, fmt.Errorf("unit %s: %w", unitID, sentinel.ErrNotFound)
		}
		return source.Chain{}, fmt.Errorf("fetch unit chain: %w", err)
	}
	chain.Unit.Bedrooms = bedrooms
	if orient != nil {
		chain.Unit.Orientation = *orient
	}
	if len(boundary) > 0 {
		var poly geo.Polygon
		if err := json.Unmarshal(boundary, &poly); err != nil {
			return source.Chain{}, fmt.Errorf("decode parcel boundary: %w", err)
		}
		chain.Parcel.Boundary = poly
	}
	return chain, nil
}

const activeLeasesQuery = `
SELECT id, unit_id, tenant_hash, start_date, end_date, rent_monthly, deposit, status
FROM leases
WHERE unit_id = $1 AND status = 'active'
ORDER BY start_date`

func (s *Store) FetchActiveLeases(ctx context.Context, unitID domain.UnitID) ([]models.Lease, error) {
	rows, err := s.pool.Query(ctx, activeLeasesQuery, uuid.UUID(unitID))
	if err != nil {
		return nil, fmt.Errorf("fetch active leases: %w", err)
	}
	defer rows.Close()

	var out []models.Lease
	for rows.Next() {
		var l models.Lease
		if err := rows.Scan(&l.ID, &l.UnitID, &l.TenantHash, &l.StartDate, &l.EndDate,
			&l.RentMonthly, &l.Deposit, &l.Status); err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch active leases: %w", err)
	}
	return out, nil
}

const latestPermitQuery = `
SELECT id, scope, scope_id, kind, status, issued_on, completed_on, permit_no
FROM permits
WHERE scope = $1 AND scope_id = $2 AND kind = ANY($3)
ORDER BY issued_on DESC
LIMIT 1`

func (s *Store) FetchLatestPermit(ctx context.Context, ref domain.ScopeRef, kinds ...string) (models.Permit, error) {
	var p models.Permit
	err := s.pool.QueryRow(ctx, latestPermitQuery, string(ref.Tag), ref.ID, kinds).Scan(
		&p.ID, &p.Scope.Tag, &p.Scope.ID, &p.Kind, &p.Status, &p.IssuedOn, &p.CompletedOn, &p.PermitNo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Permit{}, fmt.Errorf("permit for %s: %w", ref, sentinel.ErrNotFound)
		}
		return models.Permit{}, fmt.Errorf("fetch latest permit: %w", err)
	}
	return p, nil
}

const latestTitleQuery = `
SELECT id, scope, scope_id, owner_hash, deed_no, encumbrance, effective_on
FROM titles
WHERE scope = $1 AND scope_id = $2
ORDER BY effective_on DESC
LIMIT 1`

func (s *Store) FetchLatestTitle(ctx context.Context, ref domain.ScopeRef) (models.TitleRecord, error) {
	var (
		t   models.TitleRecord
		enc []byte
	)
	err := s.pool.QueryRow(ctx, latestTitleQuery, string(ref.Tag), ref.ID).Scan(
		&t.ID, &t.Scope.Tag, &t.Scope.ID, &t.OwnerHash, &t.DeedNo, &enc, &t.EffectiveOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.TitleRecord{}, fmt.Errorf("title for %s: %w", ref, sentinel.ErrNotFound)
		}
		return models.TitleRecord{}, fmt.Errorf("fetch latest title: %w", err)
	}
	if len(enc) > 0 {
		if err := json.Unmarshal(enc, &t.Encumbrance); err != nil {
			return models.TitleRecord{}, fmt.Errorf("decode encumbrance: %w", err)
		}
	}
	return t, nil
}

const metersQuery = `
SELECT id, scope, scope_id, type, provider_acct
FROM meters
WHERE scope = $1 AND scope_id = $2
ORDER BY id`

func (s *Store) FetchMeters(ctx context.Context, ref domain.ScopeRef) ([]models.Meter, error) {
	rows, err := s.pool.Query(ctx, metersQuery, string(ref.Tag), ref.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch meters: %w", err)
	}
	defer rows.Close()

	var out []models.Meter
	for rows.Next() {
		var m models.Meter
		if err := rows.Scan(&m.ID, &m.Scope.Tag, &m.Scope.ID, &m.Type, &m.ProviderAcct); err != nil {
			return nil, fmt.Errorf("scan meter: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch meters: %w", err)
	}
	return out, nil
}

const readingsQuery = `
SELECT meter_id, ts, value
FROM meter_readings
WHERE meter_id = $1 AND ts >= $2 AND ts <= $3
ORDER BY ts`

func (s *Store) FetchReadings(ctx context.Context, meterID domain.MeterID, windowDays int, asOf time.Time) ([]models.MeterReading, error) {
	cutoff := asOf.AddDate(0, 0, -windowDays)
	rows, err := s.pool.Query(ctx, readingsQuery, uuid.UUID(meterID), cutoff, asOf)
	if err != nil {
		return nil, fmt.Errorf("fetch readings: %w", err)
	}
	defer rows.Close()

	var out []models.MeterReading
	for rows.Next() {
		var r models.MeterReading
		if err := rows.Scan(&r.MeterID, &r.Timestamp, &r.Value); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch readings: %w", err)
	}
	return out, nil
}

func (s *Store) LookupEntity(ctx context.Context, tag domain.ScopeTag, id uuid.UUID) (models.Entity, error) {
	switch tag {
	case domain.ScopeParcel:
		var (
			p        models.Parcel
			boundary []byte
		)
		err := s.pool.QueryRow(ctx,
			`SELECT id, muni_id, zoning, boundary FROM parcels WHERE id = $1`, id,
		).Scan(&p.ID, &p.MuniID, &p.Zoning, &boundary)
		if err != nil {
			return nil, lookupErr(tag, id, err)
		}
		if len(boundary) > 0 {
			if err := json.Unmarshal(boundary, &p.Boundary); err != nil {
				return nil, fmt.Errorf("decode parcel boundary: %w", err)
			}
		}
		return p, nil

	case domain.ScopeBuilding:
		var b models.Building
		err := s.pool.QueryRow(ctx,
			`SELECT id, parcel_id, year_built, structure, floors, bua_m2 FROM buildings WHERE id = $1`, id,
		).Scan(&b.ID, &b.ParcelID, &b.YearBuilt, &b.Structure, &b.Floors, &b.BuiltUpAreaM2)
		if err != nil {
			return nil, lookupErr(tag, id, err)
		}
		return b, nil

	case domain.ScopeUnit:
		var (
			u      models.Unit
			orient *string
		)
		err := s.pool.QueryRow(ctx,
			`SELECT id, building_id, use_type, nla_m2, floor_no, bedrooms, orientation FROM units WHERE id = $1`, id,
		).Scan(&u.ID, &u.BuildingID, &u.UseType, &u.NetLettableAreaM2, &u.FloorNo, &u.Bedrooms, &orient)
		if err != nil {
			return nil, lookupErr(tag, id, err)
		}
		if orient != nil {
			u.Orientation = *orient
		}
		return u, nil

	default:
		return nil, fmt.Errorf("lookup %s %s: unknown scope tag", tag, id)
	}
}

func lookupErr(tag domain.ScopeTag, id uuid.UUID, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", tag, id, sentinel.ErrNotFound)
	}
	return fmt.Errorf("lookup %s %s: %w", tag, id, err)
}
