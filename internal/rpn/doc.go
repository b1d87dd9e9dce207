// Package rpn evaluates a postfix token sequence on a value stack.
//
// Literals are pushed as they are, references are pushed after being resolved
// through a Resolver, and operators pop their operands and push the result.
// Binary operators pop the right-hand operand first.
package rpn
