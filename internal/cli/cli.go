package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/rpngrid/internal/app"
	"github.com/specialistvlad/rpngrid/internal/config"
	"github.com/specialistvlad/rpngrid/internal/render"
	"golang.org/x/term"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stderrIsTerminal decides what the "auto" log format resolves to.
var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rpngrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rpngrid - Evaluates a grid of postfix (RPN) cell formulas.

Usage:
  rpngrid [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Workbook file: a "width height" line followed by one formula per cell,
    row by row. Standard input is read when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	prettyFlag := flagSet.Bool("pretty", false, "Print inputs and results as tables (same as -format pretty).")
	pFlag := flagSet.Bool("p", false, "Print inputs and results as tables (shorthand).")
	formatFlag := flagSet.String("format", render.FormatPlain, "Output format. Options: "+strings.Join(render.Formats(), ", ")+".")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	logFormatFlag := flagSet.String("log-format", "auto", "Log output format. Options: 'text', 'json' or 'auto'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dumpFlag := flagSet.Bool("dump", false, "Dump the parsed workbook to stderr before evaluating it.")

	positional, err := parseInterspersed(flagSet, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "positional", positional)

	if len(positional) > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid number of arguments: expected at most one input path, got %d", len(positional))}
	}

	explicit := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := app.Config{
		Format:    *formatFlag,
		LogFormat: *logFormatFlag,
		LogLevel:  *logLevelFlag,
		Dump:      *dumpFlag,
	}
	if len(positional) == 1 {
		cfg.InputPath = positional[0]
	}

	if *configFlag != "" {
		file, err := config.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applyFile(&cfg, file, explicit)
	}

	pretty := *prettyFlag || *pFlag
	if pretty {
		if explicit["format"] && !strings.EqualFold(*formatFlag, render.FormatPretty) {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("conflicting options: -pretty and -format %s", *formatFlag)}
		}
		cfg.Format = render.FormatPretty
	}

	if strings.EqualFold(cfg.LogFormat, "auto") {
		if stderrIsTerminal() {
			cfg.LogFormat = "text"
		} else {
			cfg.LogFormat = "json"
		}
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// parseInterspersed lets flags appear before and after the input path. The
// standard flag package stops at the first positional argument.
func parseInterspersed(flagSet *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for {
		if err := flagSet.Parse(rest); err != nil {
			return nil, err
		}
		remaining := flagSet.Args()
		if consumed := len(rest) - len(remaining); consumed > 0 && rest[consumed-1] == "--" {
			return append(positional, remaining...), nil
		}
		rest = remaining
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
}

// applyFile layers settings from the file over the defaults. Flags set on
// the command line keep precedence.
func applyFile(cfg *app.Config, file *config.File, explicit map[string]bool) {
	if v, ok := file.OutputFormat(); ok && !explicit["format"] {
		cfg.Format = v
	}
	if v, ok := file.OutputDump(); ok && !explicit["dump"] {
		cfg.Dump = v
	}
	if v, ok := file.LogLevel(); ok && !explicit["log-level"] {
		cfg.LogLevel = v
	}
	if v, ok := file.LogFormat(); ok && !explicit["log-format"] {
		cfg.LogFormat = v
	}
}
