// Package models holds the immutable value records of the property fact
// chain. Every record is constructed through a New* constructor that enforces
// the field invariants; a construction error carries CodeInvariantViolation.
// Records are never mutated after construction - derived facts are recomputed,
// never patched in place.
package models

import domain "fundus/pkg/domain"

// Entity is implemented by the three scopeable record kinds (Parcel, Building,
// Unit). The scope resolver uses EntityKind to cross-check a polymorphic
// reference's tag against the kind actually found in storage.
type Entity interface {
	EntityKind() domain.ScopeTag
}
