package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/rpngrid/internal/ctxlog"
	"github.com/specialistvlad/rpngrid/internal/workbook"
)

// Run loads, evaluates and renders the workbook.
//
// Load and evaluation failures are returned before anything is written to
// the output. A workbook with circular dependencies is still rendered, after
// which an error wrapping ErrCircular is returned.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	wb, err := a.load(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Workbook loaded.", "width", wb.Width, "height", wb.Height)

	if a.config.Dump {
		a.dump(wb)
	}

	evalErr := wb.Evaluate(ctx)
	circular := errors.Is(evalErr, workbook.ErrCircularDependency)
	if evalErr != nil && !circular {
		return fmt.Errorf("evaluation failed: %w", evalErr)
	}
	a.logger.Info("Workbook evaluated.", "evaluated", wb.EvaluatedCount(), "cells", wb.Size(), "circular", circular)

	if err := a.render(a.outW, wb); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if circular {
		return fmt.Errorf("%w: %w", ErrCircular, evalErr)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) load(ctx context.Context) (*workbook.Workbook, error) {
	var r io.Reader = a.inR
	source := "stdin"

	if a.config.InputPath != "" {
		f, err := os.Open(a.config.InputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = f
		source = a.config.InputPath
	}
	a.logger.Debug("Reading workbook.", "source", source)

	wb, err := workbook.Load(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to load workbook from %s: %w", source, err)
	}
	return wb, nil
}
