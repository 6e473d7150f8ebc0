package parser

import (
	"github.com/walterdeboer/spdx-expr/ast"
	"github.com/walterdeboer/spdx-expr/lexer"
)

// DefaultMaxDepth bounds parenthesis nesting. Expressions found in real
// SBOM metadata nest a handful of levels at most; the limit keeps
// recursion on hostile input bounded.
const DefaultMaxDepth = 64

// Options alters how expressions are parsed.
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int

	// FoldOperatorCase accepts case variants of the boolean keywords as
	// operators. See lexer.Options.
	FoldOperatorCase bool
}

// Parser turns raw license expression strings into expression trees.
// Parsing holds no state between calls: a single Parser may be shared by
// any number of goroutines.
type Parser struct {
	opts Options
}

// NewParser creates a parser with default options
func NewParser() *Parser {
	return &Parser{}
}

// SetOptions alters the parser options
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

// Parse builds the expression tree for a raw license expression. It is
// total: any malformed input, and any input nesting parentheses beyond the
// configured maximum, yields ast.Invalid rather than an error or a panic.
func (p *Parser) Parse(raw string) *ast.Expression {
	maxDepth := p.opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	c := &cursor{
		tokens: lexer.TokenizeWithOptions(raw, lexer.Options{
			FoldOperatorCase: p.opts.FoldOperatorCase,
		}),
		maxDepth: maxDepth,
	}

	expr, err := c.parseOr(0)
	if err != nil {
		return ast.Invalid()
	}
	if _, ok := c.peek(); ok {
		// fully reduced expression followed by stray tokens
		return ast.Invalid()
	}
	return expr
}

// Parse builds the expression tree for a raw license expression using the
// default options.
func Parse(raw string) *ast.Expression {
	return NewParser().Parse(raw)
}

// cursor carries the whole parse state: the token sequence and a position
// into it. Productions thread the current parenthesis depth explicitly so
// recursion stays bounded by maxDepth.
type cursor struct {
	tokens   []lexer.Token
	pos      int
	maxDepth int
}

func (c *cursor) peek() (lexer.Token, bool) {
	if c.pos >= len(c.tokens) {
		return lexer.Token{}, false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) next() (lexer.Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

func (c *cursor) accept(tt lexer.TokenType) bool {
	if tok, ok := c.peek(); ok && tok.Is(tt) {
		c.pos++
		return true
	}
	return false
}

// Or := And (OR And)*
func (c *cursor) parseOr(depth int) (*ast.Expression, error) {
	left, err := c.parseAnd(depth)
	if err != nil {
		return nil, err
	}
	for c.accept(lexer.TokenOr) {
		right, err := c.parseAnd(depth)
		if err != nil {
			return nil, err
		}
		left = ast.NewCompound(ast.OpOr, left, right)
	}
	return left, nil
}

// And := With (AND With)*
func (c *cursor) parseAnd(depth int) (*ast.Expression, error) {
	left, err := c.parseWith(depth)
	if err != nil {
		return nil, err
	}
	for c.accept(lexer.TokenAnd) {
		right, err := c.parseWith(depth)
		if err != nil {
			return nil, err
		}
		left = ast.NewCompound(ast.OpAnd, left, right)
	}
	return left, nil
}

// With := Primary (WITH Primary)?
//
// WITH does not chain: after "a WITH b" a second WITH is left unconsumed
// here and surfaces as an unexpected or trailing token in the caller.
func (c *cursor) parseWith(depth int) (*ast.Expression, error) {
	left, err := c.parsePrimary(depth)
	if err != nil {
		return nil, err
	}
	if c.accept(lexer.TokenWith) {
		right, err := c.parsePrimary(depth)
		if err != nil {
			return nil, err
		}
		left = ast.NewCompound(ast.OpWith, left, right)
	}
	return left, nil
}

// Primary := Identifier | "(" Or ")"
//
// A parenthesized group is pure grouping: "(E)" yields the same tree as
// "E", so redundant pairs collapse with no effect.
func (c *cursor) parsePrimary(depth int) (*ast.Expression, error) {
	tok, ok := c.next()
	if !ok {
		return nil, errUnexpectedEOF
	}

	switch tok.Type() {
	case lexer.TokenIdentifier:
		return ast.NewIdentifier(tok.Text()), nil

	case lexer.TokenOpenGroup:
		if depth+1 > c.maxDepth {
			return nil, errMaxDepth
		}
		expr, err := c.parseOr(depth + 1)
		if err != nil {
			return nil, err
		}
		closing, ok := c.next()
		if !ok {
			return nil, errUnexpectedEOF
		}
		if !closing.Is(lexer.TokenCloseGroup) {
			return nil, errUnexpectedToken
		}
		return expr, nil
	}

	return nil, errUnexpectedToken
}
