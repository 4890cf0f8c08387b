// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - FieldIsNotAllowedError: For when a request carries a field the operation rejects
//   - ObjectNotFoundError: For when an object cannot be found
//   - ForbiddenError: For when the caller may not act on an object
//   - OperationNotSupportedError: For operations that exist on the surface but are disabled
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter classifies errors with errors.Is against the sentinels, so
// every layer can return these types without knowing about status codes.
package errs
