// Package output renders lookup results for the terminal or for other tools.
package output

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Format is the output format requested with --output.
type Format string

// Output format constants supported by the --output flag.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// Formats returns the supported --output values. Suitable for shell completion.
func Formats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain)}
}

// ParseFormat validates s as an output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatPlain:
		return f, nil
	}
	return "", fmt.Errorf("invalid output format %q: must be \"table\", \"json\", or \"plain\"", s)
}

// TableFormattable results know how to render themselves as an ASCII table.
type TableFormattable interface {
	WriteTable(w io.Writer) error
}

// PlainFormattable results know how to render themselves as plain text (one record per line).
// Used for piping output to other tools.
type PlainFormattable interface {
	WritePlain(w io.Writer) error
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Write dispatches a result to the formatter for format.
// JSON is indented; table and plain require the matching interface.
func Write(w io.Writer, format Format, result any) error {
	switch format {
	case FormatJSON:
		enc := jsonAPI.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatTable:
		tf, ok := result.(TableFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support table output", result)
		}
		return tf.WriteTable(w)
	case FormatPlain:
		pf, ok := result.(PlainFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support plain output", result)
		}
		return pf.WritePlain(w)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
