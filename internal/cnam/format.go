package cnam

import (
	"fmt"
	"strings"

	"github.com/tbckr/cnam/internal/apperr"
)

// Format is the serialization format requested from the API.
type Format string

// Format values accepted by the API's format query parameter.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// DefaultFormat is used by a new Request until SetFormat is called.
const DefaultFormat = FormatText

// Formats returns the accepted format tokens in display order.
// Suitable for shell completion functions.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatXML)}
}

// Valid reports whether f is one of the three accepted formats.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatXML:
		return true
	}
	return false
}

// String returns the wire token for f.
func (f Format) String() string { return string(f) }

// ParseFormat converts a case-insensitive string ("text", "json", "xml") to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: unknown format %q: must be one of text, json, xml", apperr.ErrInvalidInput, s)
	}
	return f, nil
}
