package apperr

import "errors"

// ErrInvalidInput is returned when a phone number, format token, or other
// caller-supplied setting fails validation. The rejected value is never stored.
var ErrInvalidInput = errors.New("invalid input")

// ErrRequestFailed is returned by the HTTP transport when the request fails at the
// connection/TLS level or the server responds with a non-2xx status code.
var ErrRequestFailed = errors.New("request failed")

// ErrMalformedResponse is returned when a response body does not have the shape
// expected for the requested format.
var ErrMalformedResponse = errors.New("malformed response")
