package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and resolvers return these
// (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the fact source
// - ErrScopeMismatch: a polymorphic scope tag disagrees with the kind of the
//   entity its scope_id resolves to (inconsistent storage)
// - ErrConflict: write rejected because the record already exists
// - ErrUnavailable: fact source temporarily unreachable
//
// For validation errors (bad input, broken invariants), use pkg/domain-errors directly.
var (
	ErrNotFound      = errors.New("not found")
	ErrScopeMismatch = errors.New("scope mismatch")
	ErrConflict      = errors.New("conflict")
	ErrUnavailable   = errors.New("unavailable")
)
