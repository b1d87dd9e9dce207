package workbook

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rpngrid/internal/cell"
	"github.com/specialistvlad/rpngrid/internal/cellref"
	"github.com/specialistvlad/rpngrid/internal/ctxlog"
	"github.com/specialistvlad/rpngrid/internal/rpn"
)

// Evaluate drains the ready queue, evaluating each cell once all of its
// references are resolved. It returns a *CircularDependencyError if cells
// remain unresolved afterwards; any other error aborts the pass.
func (wb *Workbook) Evaluate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if wb.started {
		return ErrAlreadyEvaluated
	}
	wb.started = true

	logger.Debug("Starting topological evaluation.", "cells", wb.Size(), "ready", len(wb.ready))

	for len(wb.ready) > 0 {
		c := wb.ready[0]
		wb.ready[0] = nil
		wb.ready = wb.ready[1:]

		v, err := wb.evaluate(ctx, c)
		if err != nil {
			logger.Error("Cell evaluation failed.", "cell", c.Coord.String(), "error", err)
			return fmt.Errorf("evaluating cell %s: %w", c.Coord, err)
		}
		logger.Debug("Cell evaluated.", "cell", c.Coord.String(), "value", v)

		wb.release(ctx, c)
	}

	if wb.evaluated < wb.Size() {
		wb.circular = true
		stuck := wb.stuck()
		logger.Warn("Circular dependency detected.", "stuck", len(stuck), "evaluated", wb.evaluated)
		return &CircularDependencyError{Stuck: stuck}
	}

	logger.Debug("Topological evaluation finished.", "evaluated", wb.evaluated)
	return nil
}

// release decrements the unresolved count of every dependent of c and
// queues the ones that reach zero.
func (wb *Workbook) release(ctx context.Context, c *cell.Cell) {
	logger := ctxlog.FromContext(ctx)
	for _, edge := range wb.index.Dependents(c.Coord) {
		dep := wb.cells[edge.Dependent.Row][edge.Dependent.Col]
		if dep.Resolve(edge.Count) == 0 {
			logger.Debug("Unlocking dependent cell.", "cell", dep.Coord.String(), "dependency", c.Coord.String())
			dep.MarkReady()
			wb.ready = append(wb.ready, dep)
		}
	}
}

// Resolve implements rpn.Resolver. It returns the cached value of an
// evaluated cell and evaluates any other cell on demand.
func (wb *Workbook) Resolve(ctx context.Context, at cellref.Coord) (float64, error) {
	c := wb.Cell(at)
	if c == nil {
		return 0, fmt.Errorf("%w: %s", ErrRefOutOfRange, at)
	}
	return wb.evaluate(ctx, c)
}

// Value returns the value of a single cell, evaluating it and the cells it
// references if needed.
func (wb *Workbook) Value(ctx context.Context, at cellref.Coord) (float64, error) {
	return wb.Resolve(ctx, at)
}

func (wb *Workbook) evaluate(ctx context.Context, c *cell.Cell) (float64, error) {
	if v, ok := c.Value(); ok {
		return v, nil
	}

	if !c.BeginEvaluation() {
		return 0, fmt.Errorf("%w: cell %s references itself", ErrCircularDependency, c.Coord)
	}

	v, err := rpn.Eval(ctx, c.Tokens, wb)
	if err != nil {
		c.AbortEvaluation()
		return 0, err
	}

	c.SetValue(v)
	wb.evaluated++
	return v, nil
}

func (wb *Workbook) stuck() []cellref.Coord {
	var out []cellref.Coord
	for _, row := range wb.cells {
		for _, c := range row {
			if !c.IsEvaluated() {
				out = append(out, c.Coord)
			}
		}
	}
	return out
}
