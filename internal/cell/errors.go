package cell

import (
	"fmt"

	"github.com/specialistvlad/rpngrid/internal/cellref"
)

// ParseError reports a formula that could not be turned into a cell.
type ParseError struct {
	Coord cellref.Coord
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cell %s (%q): %v", e.Coord, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
