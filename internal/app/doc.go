// Package app contains the application lifecycle: it selects the input,
// loads and evaluates the workbook, and renders the outcome. It is decoupled
// from any specific entrypoint like a CLI.
package app
