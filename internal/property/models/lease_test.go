package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewLease_DateInvariant(t *testing.T) {
	leaseID := domain.LeaseID(uuid.New())
	unitID := domain.UnitID(uuid.New())

	t.Run("end strictly after start is accepted", func(t *testing.T) {
		l, err := NewLease(leaseID, unitID, "t-hash", date(2025, 1, 1), date(2026, 1, 1), 5200, 5200, LeaseStatusActive)
		require.NoError(t, err)
		assert.True(t, l.IsActive())
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		_, err := NewLease(leaseID, unitID, "t-hash", date(2025, 1, 1), date(2025, 1, 1), 5200, 0, LeaseStatusActive)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := NewLease(leaseID, unitID, "t-hash", date(2025, 6, 1), date(2025, 1, 1), 5200, 0, LeaseStatusActive)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestNewLease_AmountInvariants(t *testing.T) {
	leaseID := domain.LeaseID(uuid.New())
	unitID := domain.UnitID(uuid.New())

	t.Run("negative rent is rejected", func(t *testing.T) {
		_, err := NewLease(leaseID, unitID, "t-hash", date(2025, 1, 1), date(2026, 1, 1), -1, 0, LeaseStatusActive)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("negative deposit is rejected", func(t *testing.T) {
		_, err := NewLease(leaseID, unitID, "t-hash", date(2025, 1, 1), date(2026, 1, 1), 5200, -0.01, LeaseStatusActive)
		require.Error(t, err)
	})

	t.Run("zero amounts are legitimate", func(t *testing.T) {
		_, err := NewLease(leaseID, unitID, "t-hash", date(2025, 1, 1), date(2026, 1, 1), 0, 0, LeaseStatusPending)
		require.NoError(t, err)
	})
}

func TestParseLeaseStatus(t *testing.T) {
	for _, raw := range []string{"active", "ended", "pending"} {
		status, err := ParseLeaseStatus(raw)
		require.NoError(t, err, raw)
		assert.True(t, status.IsValid())
	}

	_, err := ParseLeaseStatus("defaulted")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
