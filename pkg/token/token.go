// Package token defines the lexical token types for SQL expressions.
//
// ANSI core tokens are defined as constants (IDs 0-999) for switch performance.
// Dialect-specific tokens are registered dynamically via Register().
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'
	BYTES  // e'hello' byte string

	// Operators (ANSI)
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	DPIPE    // ||
	EQ       // =
	NE       // != or <>
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	DOT      // .
	COMMA    // ,
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	COLON    // :
	DCOLON   // ::

	// ANSI Keywords (alphabetical)
	AND
	AS
	BETWEEN
	CASE
	CAST
	DISTINCT
	ELSE
	END
	FALSE
	IN
	INTERVAL
	IS
	LIKE
	NOT
	NULL
	OR
	THEN
	TRUE
	WHEN

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	// Check dynamic tokens first
	if name, ok := getDynamicName(t); ok {
		return name
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps builtin token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",
	BYTES:  "BYTES",

	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	DPIPE:    "||",
	EQ:       "=",
	NE:       "!=",
	LT:       "<",
	GT:       ">",
	LE:       "<=",
	GE:       ">=",
	DOT:      ".",
	COMMA:    ",",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
	COLON:    ":",
	DCOLON:   "::",

	AND:      "AND",
	AS:       "AS",
	BETWEEN:  "BETWEEN",
	CASE:     "CASE",
	CAST:     "CAST",
	DISTINCT: "DISTINCT",
	ELSE:     "ELSE",
	END:      "END",
	FALSE:    "FALSE",
	IN:       "IN",
	INTERVAL: "INTERVAL",
	IS:       "IS",
	LIKE:     "LIKE",
	NOT:      "NOT",
	NULL:     "NULL",
	OR:       "OR",
	THEN:     "THEN",
	TRUE:     "TRUE",
	WHEN:     "WHEN",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]TokenType{
	"and":      AND,
	"as":       AS,
	"between":  BETWEEN,
	"case":     CASE,
	"cast":     CAST,
	"distinct": DISTINCT,
	"else":     ELSE,
	"end":      END,
	"false":    FALSE,
	"in":       IN,
	"interval": INTERVAL,
	"is":       IS,
	"like":     LIKE,
	"not":      NOT,
	"null":     NULL,
	"or":       OR,
	"then":     THEN,
	"true":     TRUE,
	"when":     WHEN,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a builtin keyword, the keyword token type is
// returned; otherwise IDENT. Dialect keywords are resolved separately.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a builtin keyword.
func IsKeyword(t TokenType) bool {
	return t >= AND && t <= WHEN
}

// IsOperator returns true if the token type is a builtin operator.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= DCOLON
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	// Prefix is a literal's prefix as written in the source (byte
	// strings: "e" or "E"). Empty for all other tokens.
	Prefix string
	Pos    Position
}
