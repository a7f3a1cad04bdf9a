package response

import (
	"fmt"
	"io"

	"github.com/tbckr/cnam/internal/cnam"
	"github.com/tbckr/cnam/internal/output"
)

var tableHeader = []string{"Number", "CNAM"}

// Result holds one decoded lookup.
type Result struct {
	Number string      `json:"number"`
	CNAM   string      `json:"cnam"`
	Format cnam.Format `json:"format"`
	// Raw is the body exactly as returned by the API.
	Raw string `json:"-"`
}

// IsEmpty reports whether the API returned no caller name.
func (r *Result) IsEmpty() bool {
	return r.CNAM == ""
}

// WriteTable writes a two-column table to w.
func (r *Result) WriteTable(w io.Writer) error {
	return output.RenderTable(w, tableHeader, [][]string{{r.Number, r.CNAM}})
}

// WritePlain writes "<number> <cnam>" followed by a newline.
func (r *Result) WritePlain(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\n", r.Number, r.CNAM)
	return err
}
