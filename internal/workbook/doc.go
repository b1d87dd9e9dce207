// Package workbook loads a grid of RPN formulas and evaluates it in
// dependency order.
//
// # Lifecycle
//
// A Workbook goes through two phases, always on a single goroutine:
//
//  1. Load: every formula is parsed into a cell. Cells that reference other
//     cells register reverse edges in a depindex.Index; cells without any
//     reference are queued as ready.
//
//  2. Evaluate: the ready queue is drained (Kahn's algorithm). Each dequeued
//     cell is evaluated by the rpn package and then releases its dependents.
//     A dependent whose unresolved count reaches zero joins the queue.
//
// When the queue runs dry with cells left over, those cells are stuck behind
// a cycle. Evaluate then returns a *CircularDependencyError, which is the one
// recoverable outcome: every other cell keeps its value and can be rendered.
// Division by zero and malformed expressions abort the pass instead.
//
// # Memoization
//
// Reference tokens are resolved through Workbook.Resolve, which returns the
// cached value of an evaluated cell and evaluates any other cell on demand.
// A cell found mid-evaluation during that recursion closes a cycle and is
// reported as ErrCircularDependency, so on-demand lookups always terminate.
package workbook
