package workbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/rpngrid/internal/cellref"
)

var (
	// ErrInput is returned when the grid text is not in the expected shape.
	ErrInput = errors.New("invalid workbook input")
	// ErrRefOutOfRange is returned for a reference to a cell outside the grid.
	ErrRefOutOfRange = errors.New("reference out of range")
	// ErrCircularDependency marks cells that can never be resolved.
	ErrCircularDependency = errors.New("circular dependency")
	// ErrAlreadyEvaluated is returned when Evaluate is called a second time.
	ErrAlreadyEvaluated = errors.New("workbook already evaluated")
)

// CircularDependencyError lists the cells left unevaluated after the ready
// queue was drained. The rest of the workbook is fully evaluated.
type CircularDependencyError struct {
	Stuck []cellref.Coord
}

func (e *CircularDependencyError) Error() string {
	names := make([]string, 0, len(e.Stuck))
	for _, c := range e.Stuck {
		names = append(names, c.String())
	}
	return fmt.Sprintf("%v: unable to resolve %d cell(s): %s", ErrCircularDependency, len(e.Stuck), strings.Join(names, ", "))
}

func (e *CircularDependencyError) Unwrap() error {
	return ErrCircularDependency
}
