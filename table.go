package homologsampler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Table accumulates rows in call order for a single write.
type Table struct {
	Title  string
	Legend string
	Header []string
	Rows   [][]string
}

func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// SortBy sorts rows on the named columns, in order. Cell pairs that
// both parse as integers compare numerically, so release 100 follows
// release 81; anything else compares lexically.
func (t *Table) SortBy(columns ...string) {
	var indices []int
	for _, c := range columns {
		for i, h := range t.Header {
			if h == c {
				indices = append(indices, i)
			}
		}
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		for _, k := range indices {
			a, b := t.Rows[i][k], t.Rows[j][k]
			if a == b {
				continue
			}
			an, aerr := strconv.Atoi(a)
			bn, berr := strconv.Atoi(b)
			if aerr == nil && berr == nil {
				return an < bn
			}
			return a < b
		}
		return false
	})
}

// Write saves the table to path. A ".csv" suffix selects comma
// delimited output, anything else is tab delimited.
func (t *Table) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !strings.HasSuffix(path, ".csv") {
		w.Comma = '\t'
	}
	if err := w.Write(t.Header); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// String renders the table with aligned columns for terminal display.
func (t *Table) String() string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)
	rule := strings.Repeat("=", total)
	sep := strings.Repeat("-", total)

	var buf bytes.Buffer
	if t.Title != "" {
		fmt.Fprintln(&buf, t.Title)
	}
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, line(t.Header))
	fmt.Fprintln(&buf, sep)
	for _, row := range t.Rows {
		fmt.Fprintln(&buf, line(row))
	}
	fmt.Fprintln(&buf, rule)
	if t.Legend != "" {
		fmt.Fprintln(&buf, t.Legend)
	}
	return buf.String()
}
