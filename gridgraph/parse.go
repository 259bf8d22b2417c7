package gridgraph

import (
	"bufio"
	"io"
	"math"
	"strings"
)

// Parse builds a CostGrid from text holding one row per line, each line a run
// of ASCII digits. Trailing blank lines and CRLF endings are ignored.
// Lines may be of any length.
// No partial grid is ever returned: on failure the grid is nil and the error
// is a *ParseError wrapping ErrNonDigit, ErrNonRectangular or the reader's
// own error, or ErrEmptyGrid.
func Parse(text string) (*CostGrid, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) (*CostGrid, error) {
	var (
		values [][]int
		width  = -1
		line   int
		blanks int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blanks++
			continue
		}
		// a blank line followed by more rows is a hole in the grid
		if blanks > 0 && values != nil {
			return nil, &ParseError{Line: line - blanks, Err: ErrNonRectangular}
		}
		blanks = 0

		if width >= 0 && len(text) != width {
			return nil, &ParseError{Line: line, Err: ErrNonRectangular}
		}
		width = len(text)

		row := make([]int, width)
		for i := 0; i < len(text); i++ {
			ch := text[i]
			if ch < '0' || ch > '9' {
				return nil, &ParseError{Line: line, Column: i + 1, Err: ErrNonDigit}
			}
			row[i] = int(ch - '0')
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: line + 1, Err: err}
	}

	return NewCostGrid(values)
}
