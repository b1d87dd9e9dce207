package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specialistvlad/rpngrid/internal/cell"
	"github.com/specialistvlad/rpngrid/internal/workbook"
)

const (
	NotEvaluated   = "Not Evaluated"
	CircularSuffix = " (Circular Dependency)"
)

// Format names accepted by Lookup.
const (
	FormatPlain  = "plain"
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Func writes a workbook to w.
type Func func(w io.Writer, wb *workbook.Workbook) error

var formats = map[string]Func{
	FormatPlain:  Plain,
	FormatPretty: Pretty,
	FormatJSON:   JSON,
}

// Lookup returns the renderer registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q: must be one of %s", name, strings.Join(Formats(), ", "))
	}
	return fn, nil
}

// Formats lists the known format names.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatValue renders a value with fixed five-decimal precision.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.5f", v)
}

// Result is the text shown for a cell's outcome.
func Result(wb *workbook.Workbook, c *cell.Cell) string {
	if v, ok := c.Value(); ok {
		return FormatValue(v)
	}
	if wb.IsReferenced(c.Coord) {
		return NotEvaluated + CircularSuffix
	}
	return NotEvaluated
}

// Plain writes one result per line in row-major order. The last line is not
// terminated.
func Plain(w io.Writer, wb *workbook.Workbook) error {
	cells := wb.Cells()
	lines := make([]string, 0, len(cells))
	for _, c := range cells {
		lines = append(lines, Result(wb, c))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
