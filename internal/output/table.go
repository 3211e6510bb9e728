package output

import (
	"strings"
	"unicode/utf8"
)

// Table is an ASCII table with a header row.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	t := &Table{
		headers: headers,
		widths:  make([]int, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = displayWidth(h)
	}
	return t
}

// AddRow adds a row. Missing cells are blank and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	for i, cell := range row {
		if w := displayWidth(cell); w > t.widths[i] {
			t.widths[i] = w
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the table with a border, a header separator and no
// separators between data rows.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	sep := t.separator("-")

	sb.WriteString(sep)
	sb.WriteString(t.row(t.headers))
	sb.WriteString(t.separator("="))
	for _, row := range t.rows {
		sb.WriteString(t.row(row))
	}
	sb.WriteString(sep)

	return sb.String()
}

// separator renders a line like +-----+-----+
func (t *Table) separator(fill string) string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat(fill, w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}

// row renders a line like | val | val |
func (t *Table) row(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = " " + padToWidth(cell, t.widths[i]) + " "
	}
	return "|" + strings.Join(parts, "|") + "|\n"
}

// displayWidth returns the rune width of s ignoring ANSI escape codes.
func displayWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func padToWidth(s string, width int) string {
	if w := displayWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
