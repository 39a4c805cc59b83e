package models

import (
	"fmt"
	"time"

	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
)

// PermitStatus is a closed enumeration of municipal permit states.
type PermitStatus string

const (
	PermitStatusIssued    PermitStatus = "issued"
	PermitStatusCompleted PermitStatus = "completed"
	PermitStatusRevoked   PermitStatus = "revoked"
	PermitStatusExpired   PermitStatus = "expired"
)

var validPermitStatuses = map[PermitStatus]bool{
	PermitStatusIssued:    true,
	PermitStatusCompleted: true,
	PermitStatusRevoked:   true,
	PermitStatusExpired:   true,
}

// ParsePermitStatus constructs a PermitStatus from external input.
func ParsePermitStatus(s string) (PermitStatus, error) {
	status := PermitStatus(s)
	if !validPermitStatuses[status] {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown permit status %q", s))
	}
	return status, nil
}

func (s PermitStatus) IsValid() bool  { return validPermitStatuses[s] }
func (s PermitStatus) String() string { return string(s) }

// Occupancy-relevant permit kinds. Kind is open municipal text; these are the
// values the compliance metrics select on.
const (
	PermitKindOccupancy  = "occupancy"
	PermitKindCompletion = "completion"
)

// Permit is a municipal permit scoped to a Parcel, Building, or Unit.
//
// Invariants:
//   - ID is a non-nil identifier, PermitNo is non-empty
//   - scope tag is within the three-kind enumeration
//   - CompletedOn, when present, is on or after IssuedOn
type Permit struct {
	ID          domain.PermitID `json:"id"`
	Scope       domain.ScopeRef `json:"scope"`
	Kind        string          `json:"kind"`
	Status      PermitStatus    `json:"status"`
	IssuedOn    time.Time       `json:"issued_on"`
	CompletedOn *time.Time      `json:"completed_on,omitempty"`
	PermitNo    string          `json:"permit_no"`
}

func NewPermit(id domain.PermitID, scope domain.ScopeRef, kind string, status PermitStatus, issuedOn time.Time, completedOn *time.Time, permitNo string) (Permit, error) {
	if id.IsNil() {
		return Permit{}, dErrors.New(dErrors.CodeInvariantViolation, "permit id is required")
	}
	if !scope.Tag.IsValid() {
		return Permit{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("unknown permit scope %q", scope.Tag))
	}
	if !status.IsValid() {
		return Permit{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("unknown permit status %q", status))
	}
	if issuedOn.IsZero() {
		return Permit{}, dErrors.New(dErrors.CodeInvariantViolation, "permit issued_on is required")
	}
	if completedOn != nil && completedOn.Before(issuedOn) {
		return Permit{}, dErrors.New(dErrors.CodeInvariantViolation, "permit completed_on cannot precede issued_on")
	}
	if permitNo == "" {
		return Permit{}, dErrors.New(dErrors.CodeInvariantViolation, "permit permit_no is required")
	}
	return Permit{
		ID:          id,
		Scope:       scope,
		Kind:        kind,
		Status:      status,
		IssuedOn:    issuedOn,
		CompletedOn: completedOn,
		PermitNo:    permitNo,
	}, nil
}
