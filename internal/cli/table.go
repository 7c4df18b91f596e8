package cli

import (
	"strings"
)

// Table is a plain-text table with dynamic column widths.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	rightAlign map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2, // 2 spaces between columns
		rightAlign: make(map[int]bool),
	}
}

// AlignRight right-aligns a column, which suits numbers.
func (t *Table) AlignRight(colIndex int) {
	t.rightAlign[colIndex] = true
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		row = newRow
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var sb strings.Builder
	gap := strings.Repeat(" ", t.padding)

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = t.pad(i, cell, widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		sb.WriteString("\n")
	}

	writeLine(t.headers)

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeLine(seps)

	for _, row := range t.rows {
		writeLine(row)
	}
	return sb.String()
}

func (t *Table) pad(col int, s string, width int) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if t.rightAlign[col] {
		return fill + s
	}
	return s + fill
}
