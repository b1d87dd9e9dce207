package workbook

import (
	"context"
	"fmt"
	"math"

	"github.com/specialistvlad/rpngrid/internal/cell"
	"github.com/specialistvlad/rpngrid/internal/cellref"
	"github.com/specialistvlad/rpngrid/internal/ctxlog"
	"github.com/specialistvlad/rpngrid/internal/depindex"
)

// Workbook is a width x height grid of cells together with the reverse
// dependency index used to evaluate it.
type Workbook struct {
	Width  int
	Height int

	cells [][]*cell.Cell // [row][col]
	index *depindex.Index

	// ready is a FIFO of cells whose references are all resolved.
	ready []*cell.Cell

	evaluated int
	circular  bool
	started   bool
}

// New builds a workbook from row-major formulas. It fails with a
// *cell.ParseError on the first formula that cannot be parsed or that
// references a cell outside the grid.
func New(ctx context.Context, width, height int, formulas []string) (*Workbook, error) {
	logger := ctxlog.FromContext(ctx)

	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInput, width, height)
	}
	if height > 0 && width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: dimensions %dx%d are too large", ErrInput, width, height)
	}
	if len(formulas) != width*height {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInput, width*height, len(formulas))
	}

	wb := &Workbook{
		Width:  width,
		Height: height,
		cells:  make([][]*cell.Cell, height),
		index:  depindex.New(),
	}

	for row := 0; row < height; row++ {
		wb.cells[row] = make([]*cell.Cell, width)
		for col := 0; col < width; col++ {
			c, err := cell.New(cellref.New(row, col), formulas[row*width+col])
			if err != nil {
				return nil, err
			}
			wb.cells[row][col] = c

			if err := wb.register(c); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Workbook built.",
		"width", width,
		"height", height,
		"ready", len(wb.ready),
		"referenced", wb.index.Len(),
		"edges", wb.index.EdgeCount(),
	)
	return wb, nil
}

// register adds the cell's reference edges to the index, or queues the cell
// if it has none.
func (wb *Workbook) register(c *cell.Cell) error {
	if len(c.Refs) == 0 {
		c.MarkReady()
		wb.ready = append(wb.ready, c)
		return nil
	}

	for _, ref := range c.Refs {
		if !ref.Ref.InBounds(wb.Height, wb.Width) {
			return &cell.ParseError{
				Coord: c.Coord,
				Raw:   c.Raw,
				Err:   fmt.Errorf("%w: %s in a %dx%d grid", ErrRefOutOfRange, ref.Text, wb.Width, wb.Height),
			}
		}
		wb.index.Add(ref.Ref, c.Coord)
	}
	return nil
}

// Size returns the number of cells.
func (wb *Workbook) Size() int {
	return wb.Width * wb.Height
}

// Cell returns the cell at the given coordinate, or nil if it is outside
// the grid.
func (wb *Workbook) Cell(at cellref.Coord) *cell.Cell {
	if !at.InBounds(wb.Height, wb.Width) {
		return nil
	}
	return wb.cells[at.Row][at.Col]
}

// Cells returns all cells in row-major order.
func (wb *Workbook) Cells() []*cell.Cell {
	out := make([]*cell.Cell, 0, wb.Size())
	for _, row := range wb.cells {
		out = append(out, row...)
	}
	return out
}

// IsCircular reports whether evaluation ended with stuck cells.
func (wb *Workbook) IsCircular() bool {
	return wb.circular
}

// IsReferenced reports whether any formula references the cell.
func (wb *Workbook) IsReferenced(at cellref.Coord) bool {
	return wb.index.HasDependents(at)
}

// Dependents returns the cells whose formulas reference at, row-major.
func (wb *Workbook) Dependents(at cellref.Coord) []cellref.Coord {
	edges := wb.index.Dependents(at)
	out := make([]cellref.Coord, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Dependent)
	}
	return out
}

// EvaluatedCount returns how many cells hold a value.
func (wb *Workbook) EvaluatedCount() int {
	return wb.evaluated
}
