package lexer

import (
	"strings"
	"unicode"
)

// Options alters how lexical units are recognized.
type Options struct {
	// FoldOperatorCase makes case variants of the boolean keywords ("or",
	// "And") operator tokens instead of identifiers. The default accepts
	// only the exact uppercase keywords.
	FoldOperatorCase bool
}

// Tokenize splits a raw license expression into lexical units using the
// default options.
//
// Parentheses are standalone tokens no matter what surrounds them, any
// maximal run of characters that is not whitespace or a parenthesis is a
// single token, and whitespace only separates. A run spelling a boolean
// keyword becomes an operator token; every other run is an identifier kept
// verbatim, so tokenization accepts any input and never fails.
func Tokenize(in string) []Token {
	return TokenizeWithOptions(in, Options{})
}

// TokenizeWithOptions splits a raw license expression into lexical units.
func TokenizeWithOptions(in string, opts Options) []Token {
	tokens := []Token{}
	buf := []rune{}

	flush := func() {
		if len(buf) == 0 {
			return
		}
		word := string(buf)
		buf = buf[:0]

		tt, ok := keywords[word]
		if !ok && opts.FoldOperatorCase {
			tt, ok = keywords[strings.ToUpper(word)]
		}
		if !ok {
			tt = TokenIdentifier
		}
		tokens = append(tokens, Token{tt: tt, lexeme: word})
	}

	for _, r := range in {
		switch {
		case r == '(':
			flush()
			tokens = append(tokens, Token{tt: TokenOpenGroup, lexeme: "("})
		case r == ')':
			flush()
			tokens = append(tokens, Token{tt: TokenCloseGroup, lexeme: ")"})
		case unicode.IsSpace(r):
			flush()
		default:
			buf = append(buf, r)
		}
	}
	flush()

	return tokens
}
