// Package kernel provides core domain primitives shared across the marketplace
// domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a non-negative monetary amount in cents used for prices and totals
//
// These primitives enforce domain invariants at construction time, are immutable,
// and are safe for concurrent use.
package kernel
