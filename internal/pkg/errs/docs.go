// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every type pairs with a sentinel, and Unwrap returns only that sentinel:
//
//	ValueIsRequiredError   -> ErrValueIsRequired   (zero value or missing input)
//	ValueIsInvalidError    -> ErrValueIsInvalid    (malformed input, decode failures)
//	ValueIsOutOfRangeError -> ErrValueIsOutOfRange (history page size)
//	ObjectNotFoundError    -> ErrObjectNotFound    (unknown check id)
//
// Callers branch with errors.Is on the sentinel and reach the details with
// errors.As. The Cause field is reported in Error() but is not part of the
// unwrap chain, so
//
//	err := errs.NewValueIsInvalidErrorWithCause("path", route.ErrInvalidInputFormat)
//	errors.Is(err, errs.ErrValueIsInvalid)     // true
//	errors.Is(err, route.ErrInvalidInputFormat) // false, read err.Cause instead
package errs
