package response

import (
	"io"

	"github.com/tbckr/cnam/internal/output"
)

// MultiResult holds decoded lookups for several numbers, in input order.
type MultiResult struct {
	Results []*Result
}

// IsEmpty reports whether every contained result is empty.
func (m *MultiResult) IsEmpty() bool {
	for _, r := range m.Results {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

// MarshalJSON serializes the multi-result as a JSON array of individual results.
func (m *MultiResult) MarshalJSON() ([]byte, error) {
	if m.Results == nil {
		return []byte("[]"), nil
	}
	return jsonAPI.Marshal(m.Results)
}

// WriteTable renders all results in one table.
func (m *MultiResult) WriteTable(w io.Writer) error {
	rows := make([][]string, 0, len(m.Results))
	for _, r := range m.Results {
		rows = append(rows, []string{r.Number, r.CNAM})
	}
	return output.RenderTable(w, tableHeader, rows)
}

// WritePlain writes one "<number> <cnam>" line per result.
func (m *MultiResult) WritePlain(w io.Writer) error {
	for _, r := range m.Results {
		if err := r.WritePlain(w); err != nil {
			return err
		}
	}
	return nil
}
