package spdxexpr

import (
	"github.com/walterdeboer/spdx-expr/ast"
)

// Acceptor reports whether a single license or exception identifier is
// acceptable.
type Acceptor func(id string) bool

// AcceptList builds an Acceptor from a fixed set of identifiers. Matching
// is exact, like everything else in this package.
func AcceptList(ids ...string) Acceptor {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(id string) bool {
		_, ok := set[id]
		return ok
	}
}

// Evaluate reports whether an expression is satisfiable under the given
// acceptor: OR is satisfied by either branch, AND and WITH require both,
// and identifiers defer to the acceptor. The invalid expression is never
// satisfiable. Policy engines use this to check a component's license
// expression against a configured license list.
func Evaluate(e *ast.Expression, accept Acceptor) bool {
	switch e.Type() {
	case ast.ExprIdentifier:
		return accept(e.Name())
	case ast.ExprCompound:
		if e.Operator() == ast.OpOr {
			return Evaluate(e.Left(), accept) || Evaluate(e.Right(), accept)
		}
		return Evaluate(e.Left(), accept) && Evaluate(e.Right(), accept)
	}
	return false
}
