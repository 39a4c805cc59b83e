package domain

import (
	"fmt"

	"github.com/google/uuid"

	dErrors "fundus/pkg/domain-errors"
)

// ScopeTag discriminates a polymorphic scope reference: a tagged pointer from
// Meter, Permit, or TitleRecord to the Parcel, Building, or Unit it describes.
// Invariant: the tag must match the actual kind of the entity addressed by the
// scope ID; this is cross-checked at resolution, not at construction, since
// construction may precede lookup.
type ScopeTag string

const (
	ScopeParcel   ScopeTag = "parcel"
	ScopeBuilding ScopeTag = "building"
	ScopeUnit     ScopeTag = "unit"
)

var validScopeTags = map[ScopeTag]bool{
	ScopeParcel:   true,
	ScopeBuilding: true,
	ScopeUnit:     true,
}

// ParseScopeTag constructs a ScopeTag from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or outside the
// closed enumeration.
func ParseScopeTag(s string) (ScopeTag, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "scope tag cannot be empty")
	}
	tag := ScopeTag(s)
	if !tag.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown scope tag %q", s))
	}
	return tag, nil
}

func (t ScopeTag) IsValid() bool { return validScopeTags[t] }

func (t ScopeTag) String() string { return string(t) }

// OneOf reports whether the tag is within an entity's allowed subset (meters
// scope to building|unit, titles to parcel|unit, permits to all three).
func (t ScopeTag) OneOf(allowed ...ScopeTag) bool {
	for _, a := range allowed {
		if t == a {
			return true
		}
	}
	return false
}

// ScopeRef is the (tag, id) pair carried by polymorphically scoped entities.
// The ID is deliberately untyped: which concrete ID type it is depends on the
// tag and is only established by the resolver.
type ScopeRef struct {
	Tag ScopeTag
	ID  uuid.UUID
}

func (r ScopeRef) String() string {
	return fmt.Sprintf("%s/%s", r.Tag, r.ID)
}
