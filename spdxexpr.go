// Package spdxexpr parses SPDX-style license expressions, as found in the
// component metadata of uploaded software bill-of-materials documents, into
// immutable expression trees.
//
// Parsing is total: any string, however malformed, yields either a valid
// tree or the invalid sentinel, never an error or a panic. Identifiers are
// opaque and kept verbatim; the package performs no registry validation and
// no normalization of spelling or case.
package spdxexpr

import (
	"github.com/walterdeboer/spdx-expr/ast"
	"github.com/walterdeboer/spdx-expr/parser"
)

// Parse builds the expression tree for a raw license expression. The
// result is the invalid sentinel for any malformed input; branch on
// Expression.Valid to tell the two apart.
func Parse(raw string) *ast.Expression {
	return parser.Parse(raw)
}

// Render returns the canonical diagnostic form of an expression tree, for
// example "OR(Apache-2.0, WITH(GPL-2.0-only, Classpath-exception-2.0))".
// The form is meant for storage, display and structural comparison; it is
// not valid input for Parse.
func Render(e *ast.Expression) string {
	return ast.Render(e)
}
