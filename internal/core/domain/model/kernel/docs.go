// Package kernel provides core domain primitives shared across the dispatch
// domain model.
//
// The package includes:
//   - GeoPoint: A value object for geographic coordinates with validation and
//     great-circle distance calculation
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
