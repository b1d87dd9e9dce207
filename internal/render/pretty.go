package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/specialistvlad/rpngrid/internal/cell"
	"github.com/specialistvlad/rpngrid/internal/cellref"
	"github.com/specialistvlad/rpngrid/internal/workbook"
)

// Pretty writes two boxed tables, the raw formulas and then the results.
// Columns are headed by their number and rows by their letters, which is
// how references address them.
func Pretty(w io.Writer, wb *workbook.Workbook) error {
	bw := bufio.NewWriter(w)

	writeTable(bw, "Inputs:", grid(wb, func(c *cell.Cell) string { return c.Raw }))
	bw.WriteString("\n")
	writeTable(bw, "Results:", grid(wb, func(c *cell.Cell) string { return Result(wb, c) }))

	return bw.Flush()
}

// grid lays the workbook out with a header row and a header column.
func grid(wb *workbook.Workbook, text func(*cell.Cell) string) [][]string {
	rows := make([][]string, wb.Height+1)

	header := make([]string, wb.Width+1)
	header[0] = " "
	for col := 0; col < wb.Width; col++ {
		header[col+1] = strconv.Itoa(col + 1)
	}
	rows[0] = header

	for row := 0; row < wb.Height; row++ {
		line := make([]string, wb.Width+1)
		line[0] = cellref.RowName(row)
		for col := 0; col < wb.Width; col++ {
			line[col+1] = text(wb.Cell(cellref.New(row, col)))
		}
		rows[row+1] = line
	}
	return rows
}

func writeTable(w *bufio.Writer, title string, rows [][]string) {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, s := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(s))
		}
	}

	var sep strings.Builder
	sep.WriteString("+")
	for _, wd := range widths {
		sep.WriteString(strings.Repeat("-", wd+2))
		sep.WriteString("+")
	}
	border := sep.String()

	w.WriteString(title)
	w.WriteString("\n")
	w.WriteString(border)
	w.WriteString("\n")
	for i, row := range rows {
		w.WriteString("|")
		for j, s := range row {
			w.WriteString(" ")
			w.WriteString(runewidth.FillRight(s, widths[j]))
			w.WriteString(" |")
		}
		w.WriteString("\n")
		if i == 0 || i == len(rows)-1 {
			w.WriteString(border)
			w.WriteString("\n")
		}
	}
}
