//go:generate mockgen -source=source.go -destination=mocks/mocks.go -package=mocks Source

// Package source defines the port to the external fact store. The report
// builder consumes this interface; map-backed, postgres, and snapshot
// adapters implement it. Every operation is a read; absence is reported
// with sentinel.ErrNotFound and is never retried.
package source

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fundus/internal/property/models"
	"fundus/internal/property/scope"
	domain "fundus/pkg/domain"
)

// Chain is a unit with its owning building and parcel. The hierarchy is a
// strict three-level tree, so a resolvable unit always carries exactly one
// of each.
type Chain struct {
	Unit     models.Unit
	Building models.Building
	Parcel   models.Parcel
}

// Source exposes the query-by-id operations the report builder needs.
//
// FetchLatestPermit and FetchLatestTitle return sentinel.ErrNotFound when
// no matching record exists; the caller decides whether absence is fatal.
// FetchReadings returns readings within the trailing windowDays before
// asOf, ordered by timestamp.
type Source interface {
	FetchUnitChain(ctx context.Context, unitID domain.UnitID) (Chain, error)
	FetchActiveLeases(ctx context.Context, unitID domain.UnitID) ([]models.Lease, error)
	FetchLatestPermit(ctx context.Context, ref domain.ScopeRef, kinds ...string) (models.Permit, error)
	FetchLatestTitle(ctx context.Context, ref domain.ScopeRef) (models.TitleRecord, error)
	FetchMeters(ctx context.Context, ref domain.ScopeRef) ([]models.Meter, error)
	FetchReadings(ctx context.Context, meterID domain.MeterID, windowDays int, asOf time.Time) ([]models.MeterReading, error)

	// LookupEntity fetches whatever entity of the given kind is stored
	// under id. It backs the scope resolver's dispatch table.
	LookupEntity(ctx context.Context, tag domain.ScopeTag, id uuid.UUID) (models.Entity, error)
}

// Lookups adapts a Source into the resolver's per-kind dispatch table.
func Lookups(src Source) scope.Lookups {
	lookup := func(tag domain.ScopeTag) scope.LookupFunc {
		return func(ctx context.Context, id uuid.UUID) (models.Entity, error) {
			return src.LookupEntity(ctx, tag, id)
		}
	}
	return scope.Lookups{
		domain.ScopeParcel:   lookup(domain.ScopeParcel),
		domain.ScopeBuilding: lookup(domain.ScopeBuilding),
		domain.ScopeUnit:     lookup(domain.ScopeUnit),
	}
}
