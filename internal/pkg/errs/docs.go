// Package errs provides the standardized error taxonomy for the marketplace backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one typed error per failure kind the core can report:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation (including bad status transitions)
//   - ObjectNotFoundError: a restaurant, dish, or order could not be located
//   - ForbiddenError: the actor is not allowed to view or transition an order
//   - ConflictError: the operation lost against a concurrent change
//   - InternalError: an infrastructure fault masked behind a caller-safe message
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause
//   - Error() for formatting and Unwrap() to the sentinel for errors.Is classification
//
// Domain errors carry fixed, caller-safe messages. InternalError additionally keeps
// the original fault in its Cause field for logging; the cause is never rendered
// to callers.
package errs
