package domain

import (
	"github.com/google/uuid"

	dErrors "fundus/pkg/domain-errors"
)

// Typed entity identifiers. Each entity kind gets its own UUID-backed type so
// the compiler rejects cross-kind mix-ups (a LeaseID can never be passed where
// a UnitID is expected).
//
// Usage: construct via Parse* at trust boundaries to enforce the "valid,
// non-empty, non-nil UUID" invariant; direct casting bypasses validation.
type (
	ParcelID   uuid.UUID
	BuildingID uuid.UUID
	UnitID     uuid.UUID
	LeaseID    uuid.UUID
	MeterID    uuid.UUID
	PermitID   uuid.UUID
	TitleID    uuid.UUID
)

func parseUUID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id is not a valid uuid")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil uuid")
	}
	return parsed, nil
}

func ParseParcelID(raw string) (ParcelID, error) {
	parsed, err := parseUUID(raw)
	return ParcelID(parsed), err
}

func ParseBuildingID(raw string) (BuildingID, error) {
	parsed, err := parseUUID(raw)
	return BuildingID(parsed), err
}

func ParseUnitID(raw string) (UnitID, error) {
	parsed, err := parseUUID(raw)
	return UnitID(parsed), err
}

func ParseLeaseID(raw string) (LeaseID, error) {
	parsed, err := parseUUID(raw)
	return LeaseID(parsed), err
}

func ParseMeterID(raw string) (MeterID, error) {
	parsed, err := parseUUID(raw)
	return MeterID(parsed), err
}

func ParsePermitID(raw string) (PermitID, error) {
	parsed, err := parseUUID(raw)
	return PermitID(parsed), err
}

func ParseTitleID(raw string) (TitleID, error) {
	parsed, err := parseUUID(raw)
	return TitleID(parsed), err
}

func (id ParcelID) String() string   { return uuid.UUID(id).String() }
func (id BuildingID) String() string { return uuid.UUID(id).String() }
func (id UnitID) String() string     { return uuid.UUID(id).String() }
func (id LeaseID) String() string    { return uuid.UUID(id).String() }
func (id MeterID) String() string    { return uuid.UUID(id).String() }
func (id PermitID) String() string   { return uuid.UUID(id).String() }
func (id TitleID) String() string    { return uuid.UUID(id).String() }

func (id ParcelID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id BuildingID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id UnitID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id LeaseID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id MeterID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id PermitID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id TitleID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
