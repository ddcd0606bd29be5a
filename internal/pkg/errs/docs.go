// Package errs provides the standardized error taxonomy for the coffeeshop
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the failure kinds the API surfaces:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a numeric value violates its bounds
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ObjectAlreadyExistsError: a uniqueness rule (coffee name, customer
//     email) is violated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details (param name, id, cause)
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps sentinels to status codes; the core never inspects
// message text. Persistence failures are not translated into these kinds and
// propagate unmodified.
package errs
