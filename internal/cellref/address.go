// internal/cellref/address.go
package cellref

import (
	"strconv"
	"strings"
)

// RowName encodes a zero-based row index as letters, the inverse of
// RowIndex. Negative indices yield an empty string.
func RowName(row int) string {
	if row < 0 {
		return ""
	}

	var buf [16]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('A' + row%lettersInAlphabet)
		row = row/lettersInAlphabet - 1
		if row < 0 {
			break
		}
	}
	return string(buf[i:])
}

// String serializes the Coord into its reference form, e.g. `A1`.
func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteString(RowName(c.Row))
	sb.WriteString(strconv.Itoa(c.Col + 1))
	return sb.String()
}
