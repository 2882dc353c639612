// Package services contains stateless domain services for the order core.
//
// The package includes:
//   - Pricer: resolves item prices from dish definitions and customer selections
//   - AccessPolicy: pure authorization predicates for order visibility and
//     role-gated status transitions
//
// Both services operate on immutable domain snapshots and perform no I/O, which
// keeps them trivially testable and safe to call from any goroutine.
package services
