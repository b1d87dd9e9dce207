// Package render writes an evaluated workbook for humans or machines.
//
// Every format reports an evaluated cell with five decimals and an
// unevaluated cell as "Not Evaluated". An unevaluated cell that other cells
// reference is additionally flagged as a circular dependency.
package render
