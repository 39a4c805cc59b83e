package models

import (
	"fmt"
	"time"

	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
)

// LeaseStatus is a closed enumeration of lease lifecycle states.
type LeaseStatus string

const (
	LeaseStatusActive  LeaseStatus = "active"
	LeaseStatusEnded   LeaseStatus = "ended"
	LeaseStatusPending LeaseStatus = "pending"
)

var validLeaseStatuses = map[LeaseStatus]bool{
	LeaseStatusActive:  true,
	LeaseStatusEnded:   true,
	LeaseStatusPending: true,
}

// ParseLeaseStatus constructs a LeaseStatus from external input.
func ParseLeaseStatus(s string) (LeaseStatus, error) {
	status := LeaseStatus(s)
	if !validLeaseStatuses[status] {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown lease status %q", s))
	}
	return status, nil
}

func (s LeaseStatus) IsValid() bool  { return validLeaseStatuses[s] }
func (s LeaseStatus) String() string { return string(s) }

// Lease binds a pseudonymous tenant to one Unit for a date interval.
//
// Invariants:
//   - ID and UnitID are non-nil identifiers
//   - EndDate is strictly after StartDate
//   - RentMonthly and Deposit are non-negative
//   - Status is within the closed enumeration
//
// StartDate and EndDate are date-valued (midnight UTC by convention).
type Lease struct {
	ID          domain.LeaseID `json:"id"`
	UnitID      domain.UnitID  `json:"unit_id"`
	TenantHash  string         `json:"tenant_hash"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	RentMonthly float64        `json:"rent_monthly"`
	Deposit     float64        `json:"deposit"`
	Status      LeaseStatus    `json:"status"`
}

func NewLease(id domain.LeaseID, unitID domain.UnitID, tenantHash string, start, end time.Time, rentMonthly, deposit float64, status LeaseStatus) (Lease, error) {
	if id.IsNil() {
		return Lease{}, dErrors.New(dErrors.CodeInvariantViolation, "lease id is required")
	}
	if unitID.IsNil() {
		return Lease{}, dErrors.New(dErrors.CodeInvariantViolation, "lease unit_id is required")
	}
	if !end.After(start) {
		return Lease{}, dErrors.New(dErrors.CodeInvariantViolation, "lease end_date must be strictly after start_date")
	}
	if rentMonthly < 0 {
		return Lease{}, dErrors.New(dErrors.CodeInvariantViolation, "lease rent_monthly cannot be negative")
	}
	if deposit < 0 {
		return Lease{}, dErrors.New(dErrors.CodeInvariantViolation, "lease deposit cannot be negative")
	}
	if !status.IsValid() {
		return Lease{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("unknown lease status %q", status))
	}
	return Lease{
		ID:          id,
		UnitID:      unitID,
		TenantHash:  tenantHash,
		StartDate:   start,
		EndDate:     end,
		RentMonthly: rentMonthly,
		Deposit:     deposit,
		Status:      status,
	}, nil
}

func (l Lease) IsActive() bool { return l.Status == LeaseStatusActive }
