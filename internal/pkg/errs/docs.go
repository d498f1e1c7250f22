// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two families of errors live here:
//
//   - Generic validation errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError, VersionIsInvalidError)
//   - Transactional-core errors (InsufficientBalanceError,
//     InvalidTransitionError, ConcurrencyConflictError,
//     IntegrityViolationError, GatewayVerificationFailedError)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInsufficientBalance)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is classification works
//
// Handlers map these sentinels to transport responses in exactly one place,
// keeping classification out of the domain and application layers.
package errs
