// internal/cellref/types.go
package cellref

// Coord is the zero-based position of a cell. It is comparable and is used
// directly as a map key wherever a cell identity is needed.
type Coord struct {
	Row int
	Col int
}

// New creates a Coord from zero-based row and column indices.
func New(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// InBounds reports whether the coordinate addresses a cell of a grid with
// the given number of rows and columns.
func (c Coord) InBounds(height, width int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// Less orders coordinates row-major.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}
