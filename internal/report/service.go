package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"fundus/internal/audit"
	"fundus/internal/features"
	"fundus/internal/property/models"
	"fundus/internal/property/scope"
	"fundus/internal/report/metrics"
	"fundus/internal/source"
	domain "fundus/pkg/domain"
	"fundus/pkg/platform/sentinel"
	"fundus/pkg/requestcontext"
)

// AuditPublisher records report lifecycle events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service builds unit reports: it fetches the unit's entity chain and
// related collections, resolves polymorphic references, runs the derived
// metrics, and assembles one nested report. Secondary facts that cannot be
// fetched or resolved degrade to null fields; only an absent unit chain or
// an invalid config fails the call.
type Service struct {
	src     source.Source
	zoning  features.CompatibilityTable
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   AuditPublisher
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

// WithZoningTable swaps the compatibility table; municipal code sets vary
// by registry.
func WithZoningTable(table features.CompatibilityTable) Option {
	return func(s *Service) {
		s.zoning = table
	}
}

// New constructs a Service.
func New(src source.Source, opts ...Option) *Service {
	s := &Service{
		src:    src,
		zoning: DefaultZoningTable(),
		logger: slog.Default(),
		tracer: otel.Tracer("fundus/report"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// occupancyKinds are the permit kinds that evidence legal occupancy.
var occupancyKinds = []string{models.PermitKindOccupancy, models.PermitKindCompletion}

// Build assembles the report for one unit. The result is deterministic
// given identical source facts and config; the generation timestamp comes
// from the request clock and is the only non-pure element.
func (s *Service) Build(ctx context.Context, unitID domain.UnitID, cfg Config) (*Report, error) {
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		s.metrics.IncrementBuilt("invalid")
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "report.Build",
		trace.WithAttributes(attribute.String("unit_id", unitID.String())))
	defer span.End()

	start := time.Now()
	asOf := requestcontext.Now(ctx)

	chain, err := s.src.FetchUnitChain(ctx, unitID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementBuilt("not_found")
		} else {
			s.metrics.IncrementBuilt("error")
		}
		return nil, err
	}

	facts := s.fetchSecondary(ctx, chain, cfg, asOf)

	// Resolution is sequential: the resolver and its memo live for this
	// call only and are not shared across goroutines.
	resolver := scope.NewResolver(source.Lookups(s.src))

	var daysSinceOccupancy *int
	if facts.permit != nil {
		if _, err := resolver.Resolve(ctx, facts.permit.Scope); err != nil {
			s.degrade(ctx, "permit", err)
		} else if days, ok := features.DaysSinceLastOccupancy(facts.permit, asOf); ok {
			daysSinceOccupancy = &days
		}
	}

	var titleClean *bool
	if facts.title != nil {
		if _, err := resolver.Resolve(ctx, facts.title.Scope); err != nil {
			s.degrade(ctx, "title", err)
		} else {
			clean := facts.title.Clean()
			titleClean = &clean
		}
	}

	rentRoll := features.RentRollTotal(facts.leases)
	noiAnnual := features.NOI(rentRoll, cfg.OpexAnnual)
	implied, impliedOK := features.ValueFromCap(noiAnnual, cfg.AssumedCapRate)

	var ltv *float64
	if cfg.LoanBalance != nil && impliedOK {
		if v, ok := features.LTV(*cfg.LoanBalance, implied); ok {
			ltv = &v
		}
	}

	var kwh *float64
	if v, ok := features.KWhPerM2Day(facts.readings, chain.Unit.NetLettableAreaM2, cfg.DaysBack, asOf); ok {
		kwh = &v
	}

	report := &Report{
		Parcel: ParcelSection{
			Zoning:  chain.Parcel.Zoning,
			MuniID:  chain.Parcel.MuniID,
			Geohash: chain.Parcel.Boundary.Geohash(9),
		},
		Building: BuildingSection{
			AgeYears: chain.Building.AgeYears(asOf),
			Floors:   chain.Building.Floors,
			BuaM2:    chain.Building.BuiltUpAreaM2,
		},
		Unit: UnitSection{
			UseType: chain.Unit.UseType,
			NlaM2:   chain.Unit.NetLettableAreaM2,
			FloorNo: chain.Unit.FloorNo,
		},
		Leases: LeasesSection{
			ActiveCount:      len(facts.leases),
			RentMonthlyTotal: rentRoll,
		},
		Valuation: ValuationSection{
			AssumedCapRate:      cfg.AssumedCapRate,
			NOIAnnual:           noiAnnual,
			ImpliedValue:        ptrIf(implied, impliedOK),
			LTVFromInputBalance: ltv,
		},
		Compliance: ComplianceSection{
			DaysSinceOccupancy: daysSinceOccupancy,
			TitleClean:         titleClean,
			ZoningUse:          features.ZoningCheck(chain.Parcel.Zoning, chain.Unit.UseType, s.zoning),
		},
		Energy: EnergySection{
			KWhPerM2Day: kwh,
			WindowDays:  cfg.DaysBack,
		},
		Meta: MetaSection{GeneratedOn: asOf},
	}

	if s.audit != nil {
		s.audit.Emit(ctx, audit.Event{
			Action:  audit.ActionReportGenerated,
			UnitID:  unitID.String(),
			Outcome: "ok",
		})
	}
	s.metrics.IncrementBuilt("ok")
	s.metrics.ObserveBuildLatency(time.Since(start))

	s.logger.InfoContext(ctx, "report built",
		"unit_id", unitID,
		"active_leases", len(facts.leases),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

// secondaryFacts carries whatever the independent fetches produced. Nil
// pointers mean the fact is absent or failed and its fields stay null.
type secondaryFacts struct {
	leases   []models.Lease
	permit   *models.Permit
	title    *models.TitleRecord
	readings []models.MeterReading
}

// fetchSecondary runs the four independent fetches concurrently. They read
// disjoint data and no ordering holds between them; each failure degrades
// its own fields and never fails the build, so every goroutine reports nil
// to the group.
func (s *Service) fetchSecondary(ctx context.Context, chain source.Chain, cfg Config, asOf time.Time) secondaryFacts {
	var facts secondaryFacts

	unitRef := domain.ScopeRef{Tag: domain.ScopeUnit, ID: uuid.UUID(chain.Unit.ID)}
	buildingRef := domain.ScopeRef{Tag: domain.ScopeBuilding, ID: uuid.UUID(chain.Building.ID)}
	parcelRef := domain.ScopeRef{Tag: domain.ScopeParcel, ID: uuid.UUID(chain.Parcel.ID)}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		leases, err := s.src.FetchActiveLeases(gctx, chain.Unit.ID)
		if err != nil {
			s.degrade(gctx, "leases", err)
			return nil
		}
		facts.leases = leases
		return nil
	})

	g.Go(func() error {
		// Occupancy evidence attaches to the building or, failing that,
		// the parcel.
		for _, ref := range []domain.ScopeRef{buildingRef, parcelRef} {
			permit, err := s.src.FetchLatestPermit(gctx, ref, occupancyKinds...)
			if err == nil {
				facts.permit = &permit
				return nil
			}
			if !errors.Is(err, sentinel.ErrNotFound) {
				s.degrade(gctx, "permit", err)
				return nil
			}
		}
		return nil
	})

	g.Go(func() error {
		// Unit-scoped title takes precedence over the parcel's.
		for _, ref := range []domain.ScopeRef{unitRef, parcelRef} {
			title, err := s.src.FetchLatestTitle(gctx, ref)
			if err == nil {
				facts.title = &title
				return nil
			}
			if !errors.Is(err, sentinel.ErrNotFound) {
				s.degrade(gctx, "title", err)
				return nil
			}
		}
		return nil
	})

	g.Go(func() error {
		meters, err := s.src.FetchMeters(gctx, unitRef)
		if err != nil {
			s.degrade(gctx, "meters", err)
			return nil
		}
		for _, meter := range meters {
			if meter.Type != models.MeterTypeElectricity {
				continue
			}
			readings, err := s.src.FetchReadings(gctx, meter.ID, cfg.DaysBack, asOf)
			if err != nil {
				s.degrade(gctx, "readings", err)
				return nil
			}
			facts.readings = readings
			break
		}
		return nil
	})

	_ = g.Wait()
	return facts
}

// degrade logs a recoverable secondary failure; the dependent report field
// stays null.
func (s *Service) degrade(ctx context.Context, fact string, err error) {
	s.metrics.IncrementSourceError(fact)
	s.logger.WarnContext(ctx, "secondary fact degraded to null",
		"fact", fact,
		"error", err,
	)
}

func ptrIf(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
