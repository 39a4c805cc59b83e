// Package memory is a map-backed Source for tests and local development.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fundus/internal/property/models"
	"fundus/internal/source"
	domain "fundus/pkg/domain"
	"fundus/pkg/platform/sentinel"
)

// Store holds entities in memory, indexed per kind plus a unified by-id
// index backing polymorphic lookups. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	units    map[domain.UnitID]models.Unit
	leases   map[domain.LeaseID]models.Lease
	meters   map[domain.MeterID]models.Meter
	readings map[domain.MeterID][]models.MeterReading
	permits  map[domain.PermitID]models.Permit
	titles   map[domain.TitleID]models.TitleRecord
	entities map[uuid.UUID]models.Entity
}

var _ source.Source = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		units:    make(map[domain.UnitID]models.Unit),
		leases:   make(map[domain.LeaseID]models.Lease),
		meters:   make(map[domain.MeterID]models.Meter),
		readings: make(map[domain.MeterID][]models.MeterReading),
		permits:  make(map[domain.PermitID]models.Permit),
		titles:   make(map[domain.TitleID]models.TitleRecord),
		entities: make(map[uuid.UUID]models.Entity),
	}
}

func (s *Store) PutParcel(p models.Parcel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[uuid.UUID(p.ID)] = p
}

func (s *Store) PutBuilding(b models.Building) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[uuid.UUID(b.ID)] = b
}

func (s *Store) PutUnit(u models.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[u.ID] = u
	s.entities[uuid.UUID(u.ID)] = u
}

func (s *Store) PutLease(l models.Lease) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leases[l.ID] = l
}

func (s *Store) PutMeter(m models.Meter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meters[m.ID] = m
}

func (s *Store) PutReading(r models.MeterReading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings[r.MeterID] = append(s.readings[r.MeterID], r)
}

func (s *Store) PutPermit(p models.Permit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permits[p.ID] = p
}

func (s *Store) PutTitle(t models.TitleRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles[t.ID] = t
}

func (s *Store) FetchUnitChain(_ context.Context, unitID domain.UnitID) (source.Chain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unit, ok := s.units[unitID]
	if !ok {
		return source.Chain{}, fmt.Errorf("unit %s: %w", unitID, sentinel.ErrNotFound)
	}
	building, ok := s.entities[uuid.UUID(unit.BuildingID)].(models.Building)
	if !ok {
		return source.Chain{}, fmt.Errorf("building %s: %w", unit.BuildingID, sentinel.ErrNotFound)
	}
	parcel, ok := s.entities[uuid.UUID(building.ParcelID)].(models.Parcel)
	if !ok {
		return source.Chain{}, fmt.Errorf("parcel %s: %w", building.ParcelID, sentinel.ErrNotFound)
	}
	return source.Chain{Unit: unit, Building: building, Parcel: parcel}, nil
}

func (s *Store) FetchActiveLeases(_ context.Context, unitID domain.UnitID) ([]models.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Lease
	for _, l := range s.leases {
		if l.UnitID == unitID && l.IsActive() {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, func(a, b models.Lease) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return out, nil
}

func (s *Store) FetchLatestPermit(_ context.Context, ref domain.ScopeRef, kinds ...string) (models.Permit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest models.Permit
	found := false
	for _, p := range s.permits {
		if p.Scope != ref || !slices.Contains(kinds, p.Kind) {
			continue
		}
		if !found || p.IssuedOn.After(latest.IssuedOn) {
			latest = p
			found = true
		}
	}
	if !found {
		return models.Permit{}, fmt.Errorf("permit for %s: %w", ref, sentinel.ErrNotFound)
	}
	return latest, nil
}

func (s *Store) FetchLatestTitle(_ context.Context, ref domain.ScopeRef) (models.TitleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest models.TitleRecord
	found := false
	for _, t := range s.titles {
		if t.Scope != ref {
			continue
		}
		if !found || t.EffectiveOn.After(latest.EffectiveOn) {
			latest = t
			found = true
		}
	}
	if !found {
		return models.TitleRecord{}, fmt.Errorf("title for %s: %w", ref, sentinel.ErrNotFound)
	}
	return latest, nil
}

func (s *Store) FetchMeters(_ context.Context, ref domain.ScopeRef) ([]models.Meter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Meter
	for _, m := range s.meters {
		if m.Scope == ref {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b models.Meter) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (s *Store) FetchReadings(_ context.Context, meterID domain.MeterID, windowDays int, asOf time.Time) ([]models.MeterReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := asOf.AddDate(0, 0, -windowDays)
	var out []models.MeterReading
	for _, r := range s.readings[meterID] {
		if !r.Timestamp.Before(cutoff) && !r.Timestamp.After(asOf) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b models.MeterReading) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out, nil
}

// LookupEntity consults the unified by-id index so a stored entity of the
// wrong kind surfaces to the resolver's cross-check instead of being
// masked as absent.
func (s *Store) LookupEntity(_ context.Context, tag domain.ScopeTag, id uuid.UUID) (models.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.entities[id]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", tag, id, sentinel.ErrNotFound)
	}
	return entity, nil
}
