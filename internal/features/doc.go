// Package features holds the deterministic metric-derivation layer: pure,
// stateless functions over already-resolved entities and collections. No
// function here performs I/O or reads a clock; callers pass the as-of time.
//
// Partial functions follow the (value, ok) convention: ok=false is the
// explicit undefined result for inputs outside the documented domain.
// Undefined is not an error. A report stays producible with partial data;
// the report layer serializes undefined as null.
package features
