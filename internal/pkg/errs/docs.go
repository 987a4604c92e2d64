// Package errs provides standardized error types for the dispatch office.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the domain model.
//
// The package includes:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is present but not acceptable
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
