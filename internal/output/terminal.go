package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

const (
	defaultTermWidth = 80
	minColumnWidth   = 20
)

// TerminalWidth returns the width of the terminal behind w, or 80 when w is not
// a terminal (pipes, files, buffers).
func TerminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // file descriptors fit in int
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// columnBudget is the widest a cell may grow before it wraps: the terminal
// width less one border and two padding spaces per column, never below 20.
func columnBudget(termWidth, columns int) int {
	return max(minColumnWidth, termWidth-3*columns-1)
}

// RenderTable writes header and rows to w as a bordered table. Long cells
// (caller names, proxy URLs) are wrapped to fit the terminal.
func RenderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting:   tw.CellFormatting{AutoWrap: tw.WrapNormal},
				ColMaxWidths: tw.CellWidth{Global: columnBudget(TerminalWidth(w), len(header))},
			},
		}),
	)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("building table: %w", err)
	}
	return table.Render()
}
