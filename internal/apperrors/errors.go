package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrMalformedResponse indicates that a routine payload could not be decoded
// into the expected shape. Distinct from ErrNotFound: the row existed, the
// response shape is wrong.
var ErrMalformedResponse = errors.New("malformed routine response")
