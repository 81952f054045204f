// Package parser tokenizes and parses SQL expressions with dialect
// awareness. It covers the expression grammar needed for function-call
// rewriting; statement-level SQL is out of scope.
package parser

import (
	"sort"
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlbridge/pkg/dialect"
	"github.com/leapstack-labs/sqlbridge/pkg/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	// Dialect support (optional)
	dialect *dialect.Dialect
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// NewLexerWithDialect creates a new dialect-aware Lexer for the given input.
func NewLexerWithDialect(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		col:     0,
		dialect: d,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	// Check dialect-specific symbols first (longest match)
	if tok, ok := l.matchDialectSymbol(pos); ok {
		return tok
	}

	// Byte string literals (e'...' in the MySQL family)
	if tok, ok := l.matchByteString(pos); ok {
		return tok
	}

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		tok = l.newToken(token.MINUS, "-")
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '%':
		tok = l.newToken(token.PERCENT, "%")
	case '=':
		tok = l.newToken(token.EQ, "=")
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = token.Token{Type: token.LE, Literal: "<=", Pos: pos}
		case '>':
			l.readChar()
			tok = token.Token{Type: token.NE, Literal: "<>", Pos: pos}
		default:
			tok = l.newToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GE, Literal: ">=", Pos: pos}
		} else {
			tok = l.newToken(token.GT, ">")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NE, Literal: "!=", Pos: pos}
		} else {
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = token.Token{Type: token.DPIPE, Literal: "||", Pos: pos}
		} else {
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		}
	case '.':
		tok = l.newToken(token.DOT, ".")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '[':
		tok = l.newToken(token.LBRACKET, "[")
	case ']':
		tok = l.newToken(token.RBRACKET, "]")
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			tok = token.Token{Type: token.DCOLON, Literal: "::", Pos: pos}
		} else {
			tok = l.newToken(token.COLON, ":")
		}
	case '\'':
		tok.Type = token.STRING
		tok.Literal = l.readString('\'')
		tok.Pos = pos
		return tok
	case '"':
		// Quoted identifier (ANSI style)
		tok.Type = token.IDENT
		tok.Literal = l.readQuotedIdentifier('"')
		tok.Pos = pos
		return tok
	case '`':
		// Quoted identifier (MySQL family)
		tok.Type = token.IDENT
		tok.Literal = l.readQuotedIdentifier('`')
		tok.Pos = pos
		return tok
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			tok.Literal = l.readIdentifier()
			lowerIdent := strings.ToLower(tok.Literal)
			// Check builtin keywords first
			tok.Type = token.LookupIdent(lowerIdent)
			// If not a builtin keyword, check dialect keywords
			if tok.Type == token.IDENT && l.dialect != nil {
				if dynTok, ok := l.dialect.LookupKeyword(lowerIdent); ok {
					tok.Type = dynTok
				}
			}
			// Fallback to dynamically registered keywords (from dialect packages)
			if tok.Type == token.IDENT {
				if dynTok, ok := token.LookupDynamicKeyword(lowerIdent); ok {
					tok.Type = dynTok
				}
			}
			tok.Pos = pos
			return tok
		case isDigit(l.ch):
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			tok.Pos = pos
			return tok
		default:
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		}
	}

	l.readChar()
	return tok
}

// matchDialectSymbol checks if the current position matches a dialect-specific
// symbol. Returns the longest matching symbol (e.g., "!:>" before ":>",
// "::$" before "::").
func (l *Lexer) matchDialectSymbol(pos token.Position) (token.Token, bool) {
	if l.dialect == nil {
		return token.Token{}, false
	}

	symbols := l.dialect.Symbols()
	if len(symbols) == 0 {
		return token.Token{}, false
	}

	if l.pos >= len(l.input) {
		return token.Token{}, false
	}

	remaining := l.input[l.pos:]

	// Find all matching symbols
	var matches []string
	for sym := range symbols {
		if strings.HasPrefix(remaining, sym) {
			matches = append(matches, sym)
		}
	}

	if len(matches) == 0 {
		return token.Token{}, false
	}

	// Sort by length descending (longest match first)
	sort.Slice(matches, func(i, j int) bool {
		return len(matches[i]) > len(matches[j])
	})

	symbol := matches[0]
	tokenType := symbols[symbol]

	// Consume the symbol characters
	for range symbol {
		l.readChar()
	}

	return token.Token{Type: tokenType, Literal: symbol, Pos: pos}, true
}

// matchByteString recognizes prefixed byte-string literals like e'...'.
func (l *Lexer) matchByteString(pos token.Position) (token.Token, bool) {
	if l.dialect == nil || l.peekChar() != '\'' {
		return token.Token{}, false
	}
	for _, prefix := range l.dialect.ByteStringPrefixes() {
		if len(prefix) == 1 && strings.EqualFold(string(l.ch), prefix) {
			written := string(l.ch)
			l.readChar() // skip prefix, now on opening quote
			lit := l.readString('\'')
			return token.Token{Type: token.BYTES, Literal: lit, Prefix: written, Pos: pos}, true
		}
	}
	return token.Token{}, false
}

// newToken creates a new token.
func (l *Lexer) newToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Pos: l.currentPos()}
}

// skipWhitespaceAndComments skips whitespace and comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		// Skip whitespace
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		// Skip line comment (-- ...)
		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}

		// Skip block comment (/* ... */)
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
			continue
		}

		break
	}
}

// readString reads a quoted string literal.
// Handles doubled quotes as escape: 'it''s' -> it's
func (l *Lexer) readString(quote byte) string {
	l.readChar() // skip opening quote

	var result strings.Builder
	for l.ch != 0 {
		if l.ch == quote {
			if l.peekChar() == quote {
				// Doubled quote escape
				result.WriteByte(quote)
				l.readChar() // skip first quote
				l.readChar() // skip second quote
			} else {
				// End of string
				l.readChar() // skip closing quote
				break
			}
		} else {
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
	return result.String()
}

// readQuotedIdentifier reads a quoted identifier.
// Handles doubled quotes as escape: `col``name` -> col`name
func (l *Lexer) readQuotedIdentifier(quote byte) string {
	return l.readString(quote)
}

// readIdentifier reads an unquoted identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Exponent part (e.g., 1e10, 1E-5)
	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

// isLetter returns true if ch is a letter.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input using the given dialect.
func Tokenize(input string, d *dialect.Dialect) []token.Token {
	l := NewLexerWithDialect(input, d)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
