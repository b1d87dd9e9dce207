// internal/cellref/doc.go

/*
Package cellref provides the identity of a cell within a workbook and the
decoding of reference tokens into that identity.

A reference is written as a run of letters followed by a run of digits,
e.g. `A1` or `AB12`. The letters decode base-26 (A=0, Z=25, AA=26, ...) to
the row and the digits decode as a one-based integer to the column.
*/
package cellref
