package core

import "github.com/leapstack-labs/sqlbridge/pkg/token"

// Precedence constants for operator precedence parsing.
const (
	PrecedenceNone       = 0
	PrecedenceOr         = 1
	PrecedenceAnd        = 2
	PrecedenceNot        = 3
	PrecedenceComparison = 4 // =, <>, <, >, <=, >=, LIKE, IN, BETWEEN
	PrecedenceAddition   = 5 // +, -, ||
	PrecedenceMultiply   = 6 // *, /, %
	PrecedenceUnary      = 7 // -, +, NOT
	PrecedencePostfix    = 8 // ::, :>, [], ()
)

// OperatorDef defines an operator with its lexer symbol and precedence.
// Symbol is registered with the lexer when non-empty; multi-character
// symbols are matched longest-first so a 3-character operator is never
// split into a 2-character operator plus a stray character.
type OperatorDef struct {
	Token      token.TokenType
	Symbol     string
	Precedence int
}
