package ast

import (
	"fmt"
	"strings"
)

// InvalidLiteral is the canonical rendering of the invalid sentinel. Valid
// trees render either as a bare identifier or with parentheses, so the
// literal cannot collide with them; code branching on validity should still
// prefer Expression.Valid over comparing rendered strings.
const InvalidLiteral = "INVALID"

// Render transforms an expression into its canonical text form:
// identifiers verbatim, compound nodes as OPNAME(left, right). The output
// is a diagnostic and comparison format, not input for the parser.
func Render(e *Expression) string {
	switch e.Type() {
	case ExprIdentifier:
		return e.name
	case ExprCompound:
		return fmt.Sprintf("%s(%s, %s)", e.op, Render(e.left), Render(e.right))
	}
	return InvalidLiteral
}

// Print displays a human-readable representation of a node
func Print(e *Expression) {
	printLevel(e, 0)
}

func printLevel(e *Expression, level int) {
	indent := strings.Repeat("    ", level)
	switch e.Type() {
	case ExprCompound:
		fmt.Printf("%s(%s)\n", indent, e.op)
		printLevel(e.left, level+1)
		printLevel(e.right, level+1)
	case ExprIdentifier:
		fmt.Printf("%s%s\n", indent, e.name)
	default:
		fmt.Printf("%s%s\n", indent, InvalidLiteral)
	}
}
