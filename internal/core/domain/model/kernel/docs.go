// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. Domain entities and aggregates use
// kernel.UUID for their identities so that identifier validation and
// comparison rules live in one place.
package kernel
