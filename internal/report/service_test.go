package report

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fundus/internal/audit"
	"fundus/internal/property/models"
	"fundus/internal/source/memory"
	"fundus/internal/source/mocks"
	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
	"fundus/pkg/geo"
	"fundus/pkg/platform/sentinel"
	"fundus/pkg/pseudonym"
	"fundus/pkg/requestcontext"
)

// recordingPublisher captures emitted events in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []audit.Event
}

func (p *recordingPublisher) Emit(_ context.Context, event audit.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []audit.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]audit.Event(nil), p.events...)
}

type ServiceSuite struct {
	suite.Suite

	asOf      time.Time
	ctx       context.Context
	store     *memory.Store
	seeded    memory.SeededChain
	publisher *recordingPublisher
	svc       *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.asOf = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.asOf)

	hasher, err := pseudonym.New([]byte("0123456789abcdef0123456789abcdef"))
	s.Require().NoError(err)

	s.store = memory.NewStore()
	s.seeded, err = memory.Seed(s.store, hasher, s.asOf)
	s.Require().NoError(err)

	s.publisher = &recordingPublisher{}
	s.svc = New(s.store, WithAuditPublisher(s.publisher))
}

func (s *ServiceSuite) TestBuildAssemblesFullReport() {
	balance := 650000.0
	report, err := s.svc.Build(s.ctx, s.seeded.UnitID, Config{
		AssumedCapRate: 0.06,
		LoanBalance:    &balance,
	})
	s.Require().NoError(err)

	s.Equal("residential", report.Parcel.Zoning)
	s.Equal("RYD-10-0042", report.Parcel.MuniID)
	s.NotEmpty(report.Parcel.Geohash)

	s.Equal(10, report.Building.AgeYears)
	s.Equal(4, report.Building.Floors)
	s.Equal("apartment", report.Unit.UseType)
	s.InDelta(96.5, report.Unit.NlaM2, 0.001)

	s.Equal(1, report.Leases.ActiveCount)
	s.InDelta(5200, report.Leases.RentMonthlyTotal, 0.001)

	s.InDelta(0.06, report.Valuation.AssumedCapRate, 1e-9)
	s.InDelta(62400, report.Valuation.NOIAnnual, 0.001)
	s.Require().NotNil(report.Valuation.ImpliedValue)
	s.InDelta(1040000, *report.Valuation.ImpliedValue, 0.001)
	s.Require().NotNil(report.Valuation.LTVFromInputBalance)
	s.InDelta(0.625, *report.Valuation.LTVFromInputBalance, 1e-9)

	s.Require().NotNil(report.Compliance.DaysSinceOccupancy)
	s.Equal(400, *report.Compliance.DaysSinceOccupancy)
	s.Require().NotNil(report.Compliance.TitleClean)
	s.True(*report.Compliance.TitleClean)
	s.Equal("compatible", string(report.Compliance.ZoningUse))

	// The seeded meter draws an average of 13 kWh a day over a 96.5 m2 unit.
	s.Require().NotNil(report.Energy.KWhPerM2Day)
	s.InDelta(13.0/96.5, *report.Energy.KWhPerM2Day, 0.001)
	s.Equal(DefaultDaysBack, report.Energy.WindowDays)

	s.True(report.Meta.GeneratedOn.Equal(s.asOf))

	events := s.publisher.Events()
	s.Require().Len(events, 1)
	s.Equal(audit.ActionReportGenerated, events[0].Action)
	s.Equal(s.seeded.UnitID.String(), events[0].UnitID)
	s.Equal("ok", events[0].Outcome)
}

func (s *ServiceSuite) TestBuildWithoutLoanBalance() {
	report, err := s.svc.Build(s.ctx, s.seeded.UnitID, Config{AssumedCapRate: 0.06})
	s.Require().NoError(err)
	s.Nil(report.Valuation.LTVFromInputBalance)
}

func (s *ServiceSuite) TestBuildRejectsInvalidConfig() {
	s.Run("cap rate required", func() {
		_, err := s.svc.Build(s.ctx, s.seeded.UnitID, Config{})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
	s.Run("negative loan balance", func() {
		balance := -1.0
		_, err := s.svc.Build(s.ctx, s.seeded.UnitID, Config{AssumedCapRate: 0.06, LoanBalance: &balance})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *ServiceSuite) TestBuildUnknownUnitIsFatal() {
	_, err := s.svc.Build(s.ctx, domain.UnitID(uuid.New()), Config{AssumedCapRate: 0.06})
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.Empty(s.publisher.Events())
}

func (s *ServiceSuite) TestBuildWithAbsentSecondaryFacts() {
	// A chain alone, with no lease, permit, title, or meter behind it.
	bare := memory.NewStore()
	parcelID := domain.ParcelID(uuid.New())
	buildingID := domain.BuildingID(uuid.New())
	unitID := domain.UnitID(uuid.New())

	parcel, err := models.NewParcel(parcelID, "RYD-77-0001", "commercial", geo.Polygon{})
	s.Require().NoError(err)
	bare.PutParcel(parcel)
	building, err := models.NewBuilding(buildingID, parcelID, 2020, "steel frame", 2, 600)
	s.Require().NoError(err)
	bare.PutBuilding(building)
	unit, err := models.NewUnit(unitID, buildingID, "office", 120, 1, nil, "")
	s.Require().NoError(err)
	bare.PutUnit(unit)

	svc := New(bare)
	report, err := svc.Build(s.ctx, unitID, Config{AssumedCapRate: 0.08, OpexAnnual: 2400})
	s.Require().NoError(err)

	s.Equal(0, report.Leases.ActiveCount)
	s.InDelta(0, report.Leases.RentMonthlyTotal, 0.001)
	s.InDelta(-2400, report.Valuation.NOIAnnual, 0.001)
	s.Require().NotNil(report.Valuation.ImpliedValue)
	s.InDelta(-30000, *report.Valuation.ImpliedValue, 0.001)

	s.Nil(report.Compliance.DaysSinceOccupancy)
	s.Nil(report.Compliance.TitleClean)
	s.Nil(report.Energy.KWhPerM2Day)
	s.Empty(report.Parcel.Geohash)

	raw, err := json.Marshal(report)
	s.Require().NoError(err)
	s.Contains(string(raw), `"days_since_occupancy":null`)
	s.Contains(string(raw), `"title_clean":null`)
	s.Contains(string(raw), `"kwh_per_m2_day":null`)
	s.Contains(string(raw), `"ltv_from_input_balance":null`)
}

// A permit recorded under the parcel tag but pointing at the building's id
// fails the resolver's kind cross-check; the compliance field degrades to
// null instead of trusting the tag.
func (s *ServiceSuite) TestBuildDegradesOnScopeKindMismatch() {
	ctrl := gomock.NewController(s.T())
	src := mocks.NewMockSource(ctrl)

	hasher, err := pseudonym.New([]byte("0123456789abcdef0123456789abcdef"))
	s.Require().NoError(err)
	seededStore := memory.NewStore()
	seeded, err := memory.Seed(seededStore, hasher, s.asOf)
	s.Require().NoError(err)
	chain, err := seededStore.FetchUnitChain(s.ctx, seeded.UnitID)
	s.Require().NoError(err)

	completed := s.asOf.AddDate(0, 0, -100)
	crossed, err := models.NewPermit(
		domain.PermitID(uuid.New()),
		domain.ScopeRef{Tag: domain.ScopeParcel, ID: uuid.UUID(seeded.BuildingID)},
		models.PermitKindOccupancy, models.PermitStatusCompleted,
		completed.AddDate(0, -1, 0), &completed, "OCC-2026-0099",
	)
	s.Require().NoError(err)

	src.EXPECT().FetchUnitChain(gomock.Any(), seeded.UnitID).Return(chain, nil)
	src.EXPECT().FetchActiveLeases(gomock.Any(), seeded.UnitID).Return(nil, nil)
	src.EXPECT().FetchLatestPermit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(crossed, nil)
	src.EXPECT().FetchLatestTitle(gomock.Any(), gomock.Any()).
		Return(models.TitleRecord{}, sentinel.ErrNotFound).Times(2)
	src.EXPECT().FetchMeters(gomock.Any(), gomock.Any()).Return(nil, nil)
	src.EXPECT().LookupEntity(gomock.Any(), domain.ScopeParcel, uuid.UUID(seeded.BuildingID)).
		Return(chain.Building, nil)

	svc := New(src)
	report, err := svc.Build(s.ctx, seeded.UnitID, Config{AssumedCapRate: 0.06})
	s.Require().NoError(err)
	s.Nil(report.Compliance.DaysSinceOccupancy)
}
