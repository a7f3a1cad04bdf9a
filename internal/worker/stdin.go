package worker

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadInputs reads one phone number per line from r. Everything after a '#'
// is a comment; lines that are empty once comments and surrounding whitespace
// are removed are skipped.
func ReadInputs(r io.Reader) ([]string, error) {
	var inputs []string
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		number, _, _ := strings.Cut(lines.Text(), "#")
		if number = strings.TrimSpace(number); number != "" {
			inputs = append(inputs, number)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return inputs, nil
}
