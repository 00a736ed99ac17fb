// SPDX-License-Identifier: MIT

// Package sparse - plain-text codec.
//
// Wire format, preserved structurally for compatibility with existing
// sample files:
//
//	rows=<n>
//	cols=<n>
//	(<row>, <col>, <value>)
//	...
//
// Parsing is atomic: any malformed non-blank line fails the whole call
// and no partial matrix escapes. Serialization emits entries in
// row-major ascending order so output is reproducible and diff-friendly.

package sparse

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// entryPattern matches one "(row, col, value)" line after trimming:
// non-negative row and col, optionally negative value, optional
// whitespace around every number.
var entryPattern = regexp.MustCompile(`^\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(-?\d+)\s*\)$`)

var _ io.WriterTo = (*Matrix)(nil)

// Parse decodes text into a Matrix. See ParseReader for the contract.
func Parse(text string, opts ...Option) (*Matrix, error) {
	return ParseReader(strings.NewReader(text), opts...)
}

// ParseReader decodes one matrix from r.
//
// The first two lines carry the shape. By default anything left of '=' is
// ignored, mirroring the historical loader; WithStrictHeader requires the
// labels to read exactly "rows" and "cols". Every following non-blank
// line (after trimming) must match the entry pattern; blank lines are
// skipped. Duplicate coordinates resolve last-write-wins, and an explicit
// zero value clears the cell.
//
// Errors: ErrFormat for malformed headers or entries, ErrOutOfRange for
// entries outside the declared shape; both are wrapped with the 1-based
// line number and the offending text.
func ParseReader(r io.Reader, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)

	rows, err := scanHeader(sc, 1, "rows", o.strictHeader)
	if err != nil {
		return nil, err
	}
	cols, err := scanHeader(sc, 2, "cols", o.strictHeader)
	if err != nil {
		return nil, err
	}

	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	for line := 3; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		match := entryPattern.FindStringSubmatch(text)
		if match == nil {
			return nil, fmt.Errorf("sparse: line %d %q: %w", line, text, ErrFormat)
		}
		row, convErr := strconv.Atoi(match[1])
		if convErr != nil {
			return nil, fmt.Errorf("sparse: line %d %q: %w", line, text, ErrFormat)
		}
		col, convErr := strconv.Atoi(match[2])
		if convErr != nil {
			return nil, fmt.Errorf("sparse: line %d %q: %w", line, text, ErrFormat)
		}
		val, convErr := strconv.ParseInt(match[3], 10, 64)
		if convErr != nil {
			return nil, fmt.Errorf("sparse: line %d %q: %w", line, text, ErrFormat)
		}
		if setErr := m.Set(row, col, val); setErr != nil {
			return nil, fmt.Errorf("sparse: line %d: %w", line, setErr)
		}
	}
	if scanErr := sc.Err(); scanErr != nil {
		return nil, fmt.Errorf("sparse: read: %w", scanErr)
	}

	return m, nil
}

// scanHeader consumes one header line and returns its non-negative value.
func scanHeader(sc *bufio.Scanner, line int, label string, strict bool) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("sparse: read: %w", err)
		}
		return 0, fmt.Errorf("sparse: line %d: missing %s header: %w", line, label, ErrFormat)
	}
	text := strings.TrimSpace(sc.Text())
	idx := strings.IndexByte(text, '=')
	if idx < 0 {
		return 0, fmt.Errorf("sparse: line %d %q: %w", line, text, ErrFormat)
	}
	if strict && strings.TrimSpace(text[:idx]) != label {
		return 0, fmt.Errorf("sparse: line %d %q: header label must be %q: %w", line, text, label, ErrFormat)
	}
	n, err := strconv.Atoi(strings.TrimSpace(text[idx+1:]))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("sparse: line %d %q: %w", line, text, ErrFormat)
	}

	return n, nil
}

// Serialize encodes m into the wire format: two header lines, then one
// line per stored cell in row-major ascending order.
// Round-trip law: Parse(m.Serialize()) equals m for any valid m.
func (m *Matrix) Serialize() string {
	var b strings.Builder
	_, _ = m.WriteTo(&b) // strings.Builder never errors

	return b.String()
}

// WriteTo streams the wire format into w, implementing io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "rows=%d\ncols=%d\n", m.rows, m.cols)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, e := range m.Entries() {
		n, err = fmt.Fprintf(w, "(%d, %d, %d)\n", e.Row, e.Col, e.Val)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// String returns the serialized form; handy in logs and test failures.
func (m *Matrix) String() string { return m.Serialize() }
