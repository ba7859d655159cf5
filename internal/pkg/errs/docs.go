// Package errs provides standardized error types for the meal-box order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced entity is absent
//   - DateParseError: a persisted timestamp cannot be read
//   - InvalidTransitionError: an illegal order status move
//   - ConflictError: a lost compare-and-set race
//   - PersistenceError: the store failed or timed out
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// KindOf maps any error to the machine-readable Kind carried in API responses.
package errs
