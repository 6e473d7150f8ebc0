package parser

import (
	"errors"
)

// Parse failures are internal only: the public API reports every one of
// them as the single invalid expression.
var (
	errUnexpectedEOF   = errors.New("unexpected end of expression")
	errUnexpectedToken = errors.New("unexpected token")
	errMaxDepth        = errors.New("maximum nesting depth exceeded")
)
