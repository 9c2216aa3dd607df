// Package errs provides standardized error types for the freight brokering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the four failure classes of the allocation engine:
//   - ObjectNotFoundError: a referenced entity is absent
//   - ObjectForbiddenError: the actor lacks authority over the entity
//   - ConflictError: capacity exhausted, lost allocation race, duplicate
//     assignment, or an already-resolved proposal
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     validation failures such as a non-positive price or a price below the
//     regulatory floor
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Callers distinguish "try another proposal" (ErrConflict) from "this
// proposal is unacceptable as priced" (ErrValueIsInvalid) by sentinel,
// never by message text.
package errs
