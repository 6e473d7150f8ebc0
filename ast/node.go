package ast

// Expression represents a node of a parsed license expression tree. Nodes
// are immutable once constructed and a tree is owned solely by whoever
// built it; sub-trees are never shared between expressions.
type Expression struct {
	et   ExprType
	name string

	op    Operator
	left  *Expression
	right *Expression
}

var invalid = &Expression{et: ExprInvalid}

// Invalid returns the sentinel representing an unparseable expression. The
// sentinel is childless and terminal: it stands in for a whole failed parse
// and never appears inside a valid tree.
func Invalid() *Expression {
	return invalid
}

// NewIdentifier creates a leaf holding a license or exception identifier,
// exactly as it appeared in the input.
func NewIdentifier(name string) *Expression {
	return &Expression{et: ExprIdentifier, name: name}
}

// NewCompound creates a node joining two sub-expressions with a boolean
// operator. A nil or invalid child collapses the whole node to the invalid
// sentinel, so a failed sub-parse can never be embedded in a valid tree.
func NewCompound(op Operator, left, right *Expression) *Expression {
	if !left.Valid() || !right.Valid() {
		return invalid
	}
	return &Expression{et: ExprCompound, op: op, left: left, right: right}
}

// Type returns the variant of the node
func (e *Expression) Type() ExprType {
	if e == nil {
		return ExprInvalid
	}
	return e.et
}

// Valid returns false for the invalid sentinel and true for every node
// that is part of a successfully parsed tree.
func (e *Expression) Valid() bool {
	return e != nil && e.et != ExprInvalid
}

// Name returns the identifier text of a leaf node
func (e *Expression) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Operator returns the connective of a compound node
func (e *Expression) Operator() Operator {
	return e.op
}

// Left returns the left child of a compound node
func (e *Expression) Left() *Expression {
	if e == nil {
		return nil
	}
	return e.left
}

// Right returns the right child of a compound node
func (e *Expression) Right() *Expression {
	if e == nil {
		return nil
	}
	return e.right
}

func (e *Expression) String() string {
	return Render(e)
}

// Equal reports whether two expressions are structurally identical. Any
// two invalid expressions are equal; an invalid expression never equals a
// valid one.
func Equal(a, b *Expression) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case ExprIdentifier:
		return a.name == b.name
	case ExprCompound:
		return a.op == b.op && Equal(a.left, b.left) && Equal(a.right, b.right)
	}
	return true
}

// Walk visits e and its descendants in preorder. It stops early, returning
// false, as soon as fn returns false.
func Walk(e *Expression, fn func(*Expression) bool) bool {
	if e == nil {
		return true
	}
	if !fn(e) {
		return false
	}
	if e.et == ExprCompound {
		if !Walk(e.left, fn) {
			return false
		}
		return Walk(e.right, fn)
	}
	return true
}

// Identifiers returns every identifier in the tree in reading order.
// Consumers matching expressions against a configured license list use
// this instead of walking the tree themselves.
func (e *Expression) Identifiers() []string {
	ids := []string{}
	Walk(e, func(n *Expression) bool {
		if n.et == ExprIdentifier {
			ids = append(ids, n.name)
		}
		return true
	})
	return ids
}

// ContainsIdentifier reports whether any leaf of the tree holds the given
// identifier. Matching is exact: no case folding, no normalization.
func (e *Expression) ContainsIdentifier(name string) bool {
	found := false
	Walk(e, func(n *Expression) bool {
		if n.et == ExprIdentifier && n.name == name {
			found = true
			return false
		}
		return true
	})
	return found
}
