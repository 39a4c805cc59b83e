// Package scope resolves polymorphic (tag, id) references to concrete
// entities via a dispatch table of per-kind lookup functions.
package scope

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fundus/internal/property/models"
	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
	"fundus/pkg/platform/sentinel"
)

// LookupFunc fetches whatever entity is stored under the given identifier.
// Implementations return sentinel.ErrNotFound when nothing is stored there;
// absence is a legitimate, reportable outcome, not a transient fault, so no
// implementation retries.
type LookupFunc func(ctx context.Context, id uuid.UUID) (models.Entity, error)

// Lookups is the dispatch table: one lookup per scopeable entity kind,
// supplied by the external fact source.
type Lookups map[domain.ScopeTag]LookupFunc

// Resolver resolves scope references and memoizes the outcome of successful
// resolutions. A Resolver is scoped to a single report build and discarded
// afterwards; it is not safe for concurrent use and must never be shared
// across calls.
type Resolver struct {
	lookups Lookups
	memo    map[domain.ScopeRef]models.Entity
}

func NewResolver(lookups Lookups) *Resolver {
	return &Resolver{
		lookups: lookups,
		memo:    make(map[domain.ScopeRef]models.Entity),
	}
}

// Resolve dispatches on the reference's tag and cross-checks the returned
// entity's actual kind against it.
//
// Errors: CodeInvalidInput for a tag outside the dispatch table,
// sentinel.ErrNotFound when nothing is stored under the id, and
// sentinel.ErrScopeMismatch when storage holds an entity of a different kind
// than the tag claims.
func (r *Resolver) Resolve(ctx context.Context, ref domain.ScopeRef) (models.Entity, error) {
	if entity, ok := r.memo[ref]; ok {
		return entity, nil
	}

	lookup, ok := r.lookups[ref.Tag]
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("no lookup for scope tag %q", ref.Tag))
	}

	entity, err := lookup(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ref, err)
	}
	if entity == nil {
		return nil, fmt.Errorf("resolve %s: %w", ref, sentinel.ErrNotFound)
	}
	if kind := entity.EntityKind(); kind != ref.Tag {
		return nil, fmt.Errorf("resolve %s: stored entity is a %s: %w", ref, kind, sentinel.ErrScopeMismatch)
	}

	r.memo[ref] = entity
	return entity, nil
}
