package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/specialistvlad/rpngrid/internal/render"
)

// ErrCircular is returned by Run after the results of a workbook with
// circular dependencies have been written.
var ErrCircular = errors.New("workbook has circular dependencies")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	inR    io.Reader
	logger *slog.Logger
	config *Config
	render render.Func
}

// NewApp is the constructor for the main application. Results go to outW,
// logs and debug dumps go to errW, and inR is read when the config names no
// input file. cfg is expected to come from NewConfig.
func NewApp(outW, errW io.Writer, inR io.Reader, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	renderFn, err := render.Lookup(cfg.Format)
	if err != nil {
		// NewConfig already validated the format.
		panic(err)
	}

	return &App{
		outW:   outW,
		errW:   errW,
		inR:    inR,
		logger: logger,
		config: cfg,
		render: renderFn,
	}
}
