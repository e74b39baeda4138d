// Package errs holds the error types shared by every layer of the ordering service.
//
// Each kind pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) with a struct
// carrying the offending parameter, so callers can branch with errors.Is and still
// report which field or record was at fault. The HTTP adapter maps the sentinels to
// status codes; anything that does not unwrap to one of them is an internal error.
package errs
