// Package token lexes the whitespace separated symbols of a cell formula into
// literals, operators and cell references.
package token
