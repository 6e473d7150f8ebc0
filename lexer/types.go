package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenIdentifier           // License or exception identifier, e.g. "MIT"
	TokenOr                   // Keyword "OR"
	TokenAnd                  // Keyword "AND"
	TokenWith                 // Keyword "WITH"
	TokenOpenGroup            // Open parenthesis: "("
	TokenCloseGroup           // Close parenthesis: ")"
)

var keywords = map[string]TokenType{
	"OR":   TokenOr,
	"AND":  TokenAnd,
	"WITH": TokenWith,
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenIdentifier: "identifier",
	TokenOr:         "or",
	TokenAnd:        "and",
	TokenWith:       "with",
	TokenOpenGroup:  "open_group",
	TokenCloseGroup: "close_group",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}
