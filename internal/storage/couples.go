package storage

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadCoupleLines collects couple-pair lines from the input stream, one
// "cpf1,cpf2" pair per line, stopping at the first blank line or at EOF.
// Splitting and trimming happen later, per couple, so a malformed pair fails
// the run at the same point the processing loop reaches it.
func ReadCoupleLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read couple pairs: %w", err)
	}
	return lines, nil
}
