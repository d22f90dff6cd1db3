// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - DuplicateKeyError: For unique-key conflicts (order code, vehicle plate, license, product name)
//   - InsufficientStockError: For reservations exceeding available stock
//   - DriverUnavailableError: For claims on an already-busy driver
//   - StorageUnavailableError: For transient infrastructure failures (retryable)
//   - InvariantViolationError: For internal consistency check failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Business-rule errors (not found, conflict, insufficient stock, driver
// unavailable) are permanent for a given input; only StorageUnavailableError
// is safe to retry without changing the input.
package errs
