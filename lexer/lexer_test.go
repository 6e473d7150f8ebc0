package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{},
		},
		{
			" \t\n ",
			[]TokenType{},
		},
		{
			`MIT`,
			[]TokenType{
				TokenIdentifier,
			},
		},
		{
			`MIT OR Apache-2.0`,
			[]TokenType{
				TokenIdentifier,
				TokenOr,
				TokenIdentifier,
			},
		},
		{
			`LGPL-2.1-only WITH Classpath-exception-2.0 AND MIT`,
			[]TokenType{
				TokenIdentifier,
				TokenWith,
				TokenIdentifier,
				TokenAnd,
				TokenIdentifier,
			},
		},
		{
			`(MIT)AND(LGPL)`,
			[]TokenType{
				TokenOpenGroup,
				TokenIdentifier,
				TokenCloseGroup,
				TokenAnd,
				TokenOpenGroup,
				TokenIdentifier,
				TokenCloseGroup,
			},
		},
		{
			`( MIT ) AND ( LGPL )`,
			[]TokenType{
				TokenOpenGroup,
				TokenIdentifier,
				TokenCloseGroup,
				TokenAnd,
				TokenOpenGroup,
				TokenIdentifier,
				TokenCloseGroup,
			},
		},
		{
			`WITH(CC0 OR GPL-2`,
			[]TokenType{
				TokenWith,
				TokenOpenGroup,
				TokenIdentifier,
				TokenOr,
				TokenIdentifier,
			},
		},
		{
			// keywords embedded in a longer run stay one identifier
			`FOO-OR-BAR`,
			[]TokenType{
				TokenIdentifier,
			},
		},
		{
			// keywords are case-sensitive by default
			`MIT or Apache-2.0 And BSD with CC0`,
			[]TokenType{
				TokenIdentifier,
				TokenIdentifier,
				TokenIdentifier,
				TokenIdentifier,
				TokenIdentifier,
				TokenIdentifier,
				TokenIdentifier,
			},
		},
		{
			`))((`,
			[]TokenType{
				TokenCloseGroup,
				TokenCloseGroup,
				TokenOpenGroup,
				TokenOpenGroup,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)

		assert.NotNil(t, tokens)
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenizeText(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			`LGPL-2.1-only OR BSD-3-Clause`,
			[]string{"LGPL-2.1-only", "OR", "BSD-3-Clause"},
		},
		{
			`(MIT)AND(LGPL-2.1-or-later WITH(CC0 OR GPL-2))`,
			[]string{"(", "MIT", ")", "AND", "(", "LGPL-2.1-or-later", "WITH", "(", "CC0", "OR", "GPL-2", ")", ")"},
		},
		{
			// identifiers are opaque, any non-space non-paren rune is fair game
			"Frobnitz+v2🄯 §weird§",
			[]string{"Frobnitz+v2🄯", "§weird§"},
		},
	}

	getTokenTexts := func(tokens []Token) []string {
		texts := make([]string, 0, len(tokens))
		for i := range tokens {
			texts = append(texts, tokens[i].lexeme)
		}
		return texts
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)

		assert.Equal(t, testCases[i].Out, getTokenTexts(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenizeFoldOperatorCase(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			`MIT or Apache-2.0`,
			[]TokenType{
				TokenIdentifier,
				TokenOr,
				TokenIdentifier,
			},
		},
		{
			`a With b And c`,
			[]TokenType{
				TokenIdentifier,
				TokenWith,
				TokenIdentifier,
				TokenAnd,
				TokenIdentifier,
			},
		},
		{
			// folding only affects whole-run keyword matches
			`FOO-or-BAR`,
			[]TokenType{
				TokenIdentifier,
			},
		},
	}

	for i := range testCases {
		tokens := TokenizeWithOptions(testCases[i].In, Options{FoldOperatorCase: true})

		tt := make([]TokenType, 0, len(tokens))
		for j := range tokens {
			tt = append(tt, tokens[j].tt)
		}
		assert.Equal(t, testCases[i].Out, tt, "input: %q", testCases[i].In)
	}
}

func TestTokenString(t *testing.T) {
	tok := NewToken(TokenIdentifier, "MIT")

	assert.True(t, tok.Is(TokenIdentifier))
	assert.Equal(t, "MIT", tok.Text())
	assert.Equal(t, `(:identifier "MIT")`, tok.String())
}
