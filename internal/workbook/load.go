package workbook

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/rpngrid/internal/ctxlog"
)

// maxLineSize bounds a single formula line.
const maxLineSize = 1 << 20

// Load reads the grid text format: a `width height` header line followed by
// width*height formula lines in row-major order. Lines past the last cell
// are ignored.
func Load(ctx context.Context, r io.Reader) (*Workbook, error) {
	logger := ctxlog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading header: %v", ErrInput, err)
		}
		return nil, fmt.Errorf("%w: missing header line", ErrInput)
	}

	width, height, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}
	logger.Debug("Workbook header read.", "width", width, "height", height)

	total := width * height
	formulas := make([]string, 0, min(total, 1024))
	for len(formulas) < total && scanner.Scan() {
		formulas = append(formulas, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading cell %d: %v", ErrInput, len(formulas)+1, err)
	}
	if len(formulas) < total {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInput, total, len(formulas))
	}

	if scanner.Scan() && strings.TrimSpace(scanner.Text()) != "" {
		logger.Warn("Ignoring input after the last cell.", "line", len(formulas)+2)
	}

	return New(ctx, width, height, formulas)
}

func parseHeader(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: header must be `width height`, got %q", ErrInput, line)
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil || width < 0 {
		return 0, 0, fmt.Errorf("%w: invalid width %q", ErrInput, fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || height < 0 {
		return 0, 0, fmt.Errorf("%w: invalid height %q", ErrInput, fields[1])
	}
	if height > 0 && width > math.MaxInt/height {
		return 0, 0, fmt.Errorf("%w: dimensions %dx%d are too large", ErrInput, width, height)
	}
	return width, height, nil
}
