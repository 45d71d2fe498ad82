// Package matrix reads and writes external elevation matrices.
// It depends on terrain for error kinds; terrain does not depend on matrix.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/islands/internal/terrain"
)

// ParseText parses whitespace-separated integers, one matrix row per line.
// Blank lines are skipped. Row lengths are not checked here; shape
// validation belongs to terrain.FromMatrix.
func ParseText(r io.Reader) ([][]int, error) {
	var rows [][]int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for col, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, &terrain.ShapeError{
					Row:    line,
					Col:    col,
					Reason: fmt.Sprintf("not an integer: %q", field),
				}
			}
			row[col] = v
		}
		rows = append(rows, row)
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("matrix: reading text: %w", err)
	}
	return rows, nil
}

// WriteText writes m in the format ParseText reads.
func WriteText(w io.Writer, m [][]int) error {
	bw := bufio.NewWriter(w)
	for _, row := range m {
		for i, v := range row {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
