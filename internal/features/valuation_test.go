package features

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundus/internal/property/models"
	domain "fundus/pkg/domain"
)

func lease(t *testing.T, rent float64, status models.LeaseStatus) models.Lease {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l, err := models.NewLease(
		domain.LeaseID(uuid.New()), domain.UnitID(uuid.New()), "t-hash",
		start, start.AddDate(1, 0, 0), rent, rent, status,
	)
	require.NoError(t, err)
	return l
}

func TestRentRollTotal(t *testing.T) {
	t.Run("sums active leases only", func(t *testing.T) {
		leases := []models.Lease{
			lease(t, 5200, models.LeaseStatusActive),
			lease(t, 3100, models.LeaseStatusEnded),
			lease(t, 900, models.LeaseStatusActive),
		}
		assert.Equal(t, 6100.0, RentRollTotal(leases))
	})

	t.Run("zero for empty input", func(t *testing.T) {
		assert.Equal(t, 0.0, RentRollTotal(nil))
	})

	t.Run("invariant under reordering", func(t *testing.T) {
		a := lease(t, 1200.50, models.LeaseStatusActive)
		b := lease(t, 75.25, models.LeaseStatusActive)
		c := lease(t, 3000, models.LeaseStatusPending)
		assert.Equal(t,
			RentRollTotal([]models.Lease{a, b, c}),
			RentRollTotal([]models.Lease{c, b, a}),
		)
	})
}

func TestValuationScenario(t *testing.T) {
	// One active lease at 5200/month, cap rate 0.06, balance 650000.
	leases := []models.Lease{lease(t, 5200, models.LeaseStatusActive)}

	noi := NOI(RentRollTotal(leases), 0)
	assert.Equal(t, 62400.0, noi)

	implied, ok := ValueFromCap(noi, 0.06)
	require.True(t, ok)
	assert.InDelta(t, 1040000.0, implied, 1e-9)

	ltv, ok := LTV(650000, implied)
	require.True(t, ok)
	assert.InDelta(t, 0.625, ltv, 1e-12)
}

func TestValueFromCapRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		noi, rate float64
	}{
		{62400, 0.06},
		{-5000, 0.045},
		{0.001, 0.99},
		{1e9, 0.0125},
	} {
		value, ok := ValueFromCap(tc.noi, tc.rate)
		require.True(t, ok)
		got, ok := CapRate(tc.noi, value)
		require.True(t, ok)
		assert.InEpsilon(t, tc.rate, got, 1e-12)
	}
}

func TestCapRateUndefinedAtZeroValue(t *testing.T) {
	_, ok := CapRate(62400, 0)
	assert.False(t, ok)
}

func TestValueFromCapUndefinedAtZeroRate(t *testing.T) {
	_, ok := ValueFromCap(62400, 0)
	assert.False(t, ok)
}

func TestZeroActiveLeases(t *testing.T) {
	// With no income the algebra runs through unmodified: negative NOI
	// gives a negative implied value, no sign special-casing.
	noi := NOI(RentRollTotal(nil), 1800)
	assert.Equal(t, -1800.0, noi)

	implied, ok := ValueFromCap(noi, 0.06)
	require.True(t, ok)
	assert.InDelta(t, -30000.0, implied, 1e-9)
}

func TestLendingRatios(t *testing.T) {
	t.Run("ltv undefined for non-positive value", func(t *testing.T) {
		_, ok := LTV(650000, 0)
		assert.False(t, ok)
		_, ok = LTV(650000, -1)
		assert.False(t, ok)
	})

	t.Run("cltv stacks liens", func(t *testing.T) {
		got, ok := CLTV(500000+150000, 1040000)
		require.True(t, ok)
		assert.InDelta(t, 0.625, got, 1e-12)
	})

	t.Run("dscr undefined at zero debt service", func(t *testing.T) {
		_, ok := DSCR(62400, 0)
		assert.False(t, ok)
		got, ok := DSCR(62400, 48000)
		require.True(t, ok)
		assert.InDelta(t, 1.3, got, 1e-12)
	})

	t.Run("dti and residual income", func(t *testing.T) {
		got, ok := DTI(4500, 15000)
		require.True(t, ok)
		assert.InDelta(t, 0.3, got, 1e-12)
		_, ok = DTI(4500, 0)
		assert.False(t, ok)
		assert.Equal(t, 2500.0, ResidualIncome(15000, 8000, 4500))
	})
}

func TestOccupancyRate(t *testing.T) {
	active := lease(t, 1000, models.LeaseStatusActive)

	t.Run("undefined for non-positive denominator", func(t *testing.T) {
		_, ok := OccupancyRate([]models.Lease{active}, 0)
		assert.False(t, ok)
	})

	t.Run("clamped to one", func(t *testing.T) {
		got, ok := OccupancyRate([]models.Lease{active, lease(t, 2000, models.LeaseStatusActive)}, 1)
		require.True(t, ok)
		assert.Equal(t, 1.0, got)
	})

	t.Run("pending leases do not occupy", func(t *testing.T) {
		got, ok := OccupancyRate([]models.Lease{lease(t, 1000, models.LeaseStatusPending)}, 4)
		require.True(t, ok)
		assert.Equal(t, 0.0, got)
	})
}
