// Package cnam builds and executes OpenCNAM caller-name lookups.
//
// A Request holds the phone number, response format and optional credentials
// for one lookup. It is reusable: callers reconfigure it with the setters and
// call Execute again. The network call itself is delegated to a Transport
// bound at construction, so TLS trust (including a pinned certificate bundle)
// is a property of the transport and never of the request.
//
// Execute returns the response body exactly as received. Decoding it into a
// caller name is done by package response.
package cnam
