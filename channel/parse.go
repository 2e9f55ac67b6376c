package channel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//Parse reads a source distribution followed by a channel matrix.
// The first non blank line holds p0 p1 and the next two hold the rows of the channel matrix,
// values are separated by whitespace.
func Parse(r io.Reader) (Distribution, Matrix, error) {
	lines := make([][]float64, 0, 3)
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Distribution{}, Matrix{}, fmt.Errorf("line %v: unable to parse %q: %w", lineNumber, field, ErrMalformedInput)
			}
			row[i] = v
		}
		lines = append(lines, row)
	}
	if err := scanner.Err(); err != nil {
		return Distribution{}, Matrix{}, err
	}

	if len(lines) != 3 {
		return Distribution{}, Matrix{}, fmt.Errorf("expected 3 lines (source + 2 channel rows) but found %v: %w", len(lines), ErrMalformedInput)
	}
	if len(lines[0]) != 2 {
		return Distribution{}, Matrix{}, fmt.Errorf("source requires 2 probabilities but found %v: %w", len(lines[0]), ErrMalformedInput)
	}

	d, err := NewDistribution(lines[0][0], lines[0][1])
	if err != nil {
		return Distribution{}, Matrix{}, err
	}
	c, err := NewMatrix(lines[1:])
	if err != nil {
		return Distribution{}, Matrix{}, err
	}
	return d, c, nil
}
