// Package depindex provides the reverse adjacency of a workbook: for every
// referenced cell, the set of cells whose formulas mention it.
//
// # Purpose
//
// The topological evaluator needs to answer one question after a cell has
// been evaluated: which cells were waiting on it, and by how much. The index
// answers that in O(dependents) without scanning the grid.
//
// # Edge multiplicity
//
// A formula may mention the same cell more than once (`A1 A1 *`). Each
// mention counts as one unresolved reference on the dependent, so the index
// stores how many mentions each dependent holds. Releasing a target then
// decrements the dependent by exactly that amount.
//
// # Characteristics
//
//   - **Built once:** populated while the workbook is loaded, read during evaluation
//   - **Coordinate keyed:** keys are cellref.Coord values, never derived strings
//   - **Not thread-safe:** the workbook is loaded and evaluated on one goroutine
package depindex
