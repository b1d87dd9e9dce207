// Package cell defines the unit of a workbook: a formula, its parsed tokens,
// the bookkeeping needed to schedule its evaluation, and its value once known.
package cell

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/rpngrid/internal/cellref"
	"github.com/specialistvlad/rpngrid/internal/token"
)

// State tracks a cell through evaluation.
type State int

const (
	// Unresolved cells still wait on at least one referenced cell. A cell that
	// never leaves this state is stuck behind a cycle.
	Unresolved State = iota
	// Ready cells have every reference resolved and are queued.
	Ready
	// Evaluating is held while the cell's expression is on the stack.
	Evaluating
	// Evaluated cells carry their final value.
	Evaluated
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Ready:
		return "ready"
	case Evaluating:
		return "evaluating"
	case Evaluated:
		return "evaluated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cell is a single grid position. It is created once at load time and only
// mutated by evaluation.
type Cell struct {
	Coord  cellref.Coord
	Raw    string
	Tokens []token.Token
	// Refs holds the reference tokens of Tokens, in order and with repeats.
	Refs []token.Token

	unresolved int
	state      State
	value      float64
}

// New normalizes the raw formula to upper case and parses it. Errors are
// reported as *ParseError.
func New(coord cellref.Coord, raw string) (*Cell, error) {
	contents := strings.ToUpper(strings.TrimSpace(raw))

	tokens, err := token.Split(contents)
	if err != nil {
		return nil, &ParseError{Coord: coord, Raw: contents, Err: err}
	}

	refs := token.References(tokens)
	return &Cell{
		Coord:      coord,
		Raw:        contents,
		Tokens:     tokens,
		Refs:       refs,
		unresolved: len(refs),
	}, nil
}

// Unresolved returns the number of reference tokens whose target has not been
// evaluated yet.
func (c *Cell) Unresolved() int {
	return c.unresolved
}

// Resolve records that n reference tokens were satisfied and returns the
// remaining count.
func (c *Cell) Resolve(n int) int {
	c.unresolved -= n
	if c.unresolved < 0 {
		panic(fmt.Sprintf("cell %s: unresolved reference count dropped below zero", c.Coord))
	}
	return c.unresolved
}

// State returns the cell's evaluation state.
func (c *Cell) State() State {
	return c.state
}

// MarkReady moves a cell with no outstanding references into the queue state.
func (c *Cell) MarkReady() {
	if c.state == Unresolved {
		c.state = Ready
	}
}

// BeginEvaluation flags the cell as being computed. It returns false if the
// cell is already being computed further up the call stack.
func (c *Cell) BeginEvaluation() bool {
	if c.state == Evaluating {
		return false
	}
	c.state = Evaluating
	return true
}

// AbortEvaluation returns a cell whose computation failed to its previous
// scheduling state.
func (c *Cell) AbortEvaluation() {
	if c.state != Evaluating {
		return
	}
	if c.unresolved == 0 {
		c.state = Ready
	} else {
		c.state = Unresolved
	}
}

// IsEvaluated reports whether the cell holds its final value.
func (c *Cell) IsEvaluated() bool {
	return c.state == Evaluated
}

// Value returns the evaluated value and whether it is set.
func (c *Cell) Value() (float64, bool) {
	return c.value, c.state == Evaluated
}

// SetValue stores the final value. A value is set exactly once.
func (c *Cell) SetValue(v float64) {
	if c.state == Evaluated {
		panic(fmt.Sprintf("cell %s: value set twice", c.Coord))
	}
	c.value = v
	c.state = Evaluated
}
