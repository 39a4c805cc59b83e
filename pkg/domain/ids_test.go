package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "fundus/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
//
// Justification: This is a pure function enforcing a domain invariant
// at trust boundaries.
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseUnitID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseUnitID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseUnitID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseUnitID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, UnitID(validUUID), id)
	})
}

// TestTypeDistinction verifies the compiler enforces type safety.
// This is a compile-time check - if this compiles, the invariant holds.
func TestTypeDistinction(t *testing.T) {
	unitID := UnitID(uuid.New())
	buildingID := BuildingID(uuid.New())

	// These would fail to compile if types were interchangeable:
	// var _ UnitID = buildingID   // compile error
	// var _ BuildingID = unitID   // compile error

	// Verify they're distinct at runtime too
	assert.NotEqual(t, uuid.UUID(unitID), uuid.UUID(buildingID))
}

// TestParseID_SecurityInvariants validates trust-boundary parsing rules.
func TestParseID_SecurityInvariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE unit;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Unicode zero-width space", "550e8400​-e29b-41d4-a716-446655440000", true},
		{"Valid UUID", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMeterID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseScopeTag(t *testing.T) {
	t.Run("accepts the closed enumeration", func(t *testing.T) {
		for _, raw := range []string{"parcel", "building", "unit"} {
			tag, err := ParseScopeTag(raw)
			require.NoError(t, err)
			assert.True(t, tag.IsValid())
			assert.Equal(t, raw, tag.String())
		}
	})

	t.Run("rejects empty and unknown tags", func(t *testing.T) {
		for _, raw := range []string{"", "floor", "PARCEL", "unit "} {
			_, err := ParseScopeTag(raw)
			require.Error(t, err, "input %q", raw)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})

	t.Run("OneOf restricts to an entity subset", func(t *testing.T) {
		assert.True(t, ScopeUnit.OneOf(ScopeBuilding, ScopeUnit))
		assert.False(t, ScopeParcel.OneOf(ScopeBuilding, ScopeUnit))
	})
}
