// internal/cellref/parser.go
package cellref

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const lettersInAlphabet = 26

// refRegex matches a whole reference token, e.g. `A1` or `ab12`.
var refRegex = regexp.MustCompile(`^([a-zA-Z]+)([0-9]+)$`)

// ErrInvalidRef is returned when a string is not a reference.
var ErrInvalidRef = errors.New("invalid reference")

// IsRef reports whether s has the shape of a reference token.
func IsRef(s string) bool {
	return refRegex.MatchString(s)
}

// ParseRef decodes a reference token into a Coord. The letters become the
// row and the digits become the column.
func ParseRef(s string) (Coord, error) {
	matches := refRegex.FindStringSubmatch(s)
	if matches == nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidRef, s)
	}

	row, err := RowIndex(matches[1])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: %v", ErrInvalidRef, s, err)
	}

	col, err := strconv.Atoi(matches[2])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: column out of range", ErrInvalidRef, s)
	}

	return Coord{Row: row, Col: col - 1}, nil
}

// RowIndex decodes a run of letters to a zero-based index, A=0 ... Z=25,
// AA=26. Lower-case letters are accepted.
func RowIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("empty row name")
	}

	index := 0
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid row letter %q", letters[i])
		}
		digit := int(ch-'A') + 1
		if index > (math.MaxInt-digit)/lettersInAlphabet {
			return 0, fmt.Errorf("row name %q out of range", letters)
		}
		index = index*lettersInAlphabet + digit
	}

	return index - 1, nil
}
