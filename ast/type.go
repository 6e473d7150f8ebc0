package ast

// ExprType represents the variant of an expression node
type ExprType uint8

// Expression variants
const (
	ExprInvalid ExprType = iota
	ExprIdentifier
	ExprCompound
)

// Operator represents the boolean connective joining the two children of a
// compound expression
type Operator uint8

// Operators, loosest to tightest binding
const (
	OpOr Operator = iota
	OpAnd
	OpWith
)

var exprTypeNames = map[ExprType]string{
	ExprInvalid:    "invalid",
	ExprIdentifier: "identifier",
	ExprCompound:   "compound",
}

var operatorNames = map[Operator]string{
	OpOr:   "OR",
	OpAnd:  "AND",
	OpWith: "WITH",
}

func (et ExprType) String() string {
	if s, ok := exprTypeNames[et]; ok {
		return s
	}
	return exprTypeNames[ExprInvalid]
}

func (op Operator) String() string {
	return operatorNames[op]
}
