package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlbridge/pkg/core"
	"github.com/leapstack-labs/sqlbridge/pkg/dialect"
	"github.com/leapstack-labs/sqlbridge/pkg/token"
)

// ParseError is a parse failure with source position.
type ParseError struct {
	Pos token.Position
	Msg string
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	}
	return "parse error: " + e.Msg
}

// Parser parses SQL expressions using dialect-provided operator
// precedence and function rewrite rules.
type Parser struct {
	lex     *Lexer
	dialect *dialect.Dialect

	cur  token.Token
	peek token.Token
}

// New creates a parser over input for the given dialect.
func New(input string, d *dialect.Dialect) *Parser {
	p := &Parser{
		lex:     NewLexerWithDialect(input, d),
		dialect: d,
	}
	// Prime cur and peek
	p.next()
	p.next()
	return p
}

// ParseExpr parses a single expression and requires the input to be
// fully consumed.
func ParseExpr(input string, d *dialect.Dialect) (core.Expr, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	p := New(input, d)
	expr, err := p.parseExpression(core.PrecedenceNone)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EOF {
		return nil, p.errorf("unexpected trailing input %q", p.cur.Literal)
	}
	return expr, nil
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.cur.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(t token.TokenType) error {
	if p.cur.Type != t {
		return p.errorf("expected %s, found %q", t, p.cur.Literal)
	}
	p.next()
	return nil
}

// parseExpression implements precedence climbing over the dialect's
// operator table.
func (p *Parser) parseExpression(minPrec int) (core.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		prec := p.precedenceOf(p.cur.Type)
		if prec == core.PrecedenceNone || prec <= minPrec {
			return left, nil
		}

		// Cast operators take a type, not an expression, on the right.
		if tryCast, ok := p.dialect.CastOperator(p.cur.Type); ok || p.cur.Type == token.DCOLON {
			p.next()
			dt, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			left = &core.Cast{Expr: left, To: dt, TryCast: tryCast}
			continue
		}

		op := p.cur.Type
		p.next()
		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}
		left = &core.BinaryExpr{Left: left, Op: op, Right: right}
	}
}

// precedenceOf resolves precedence from builtin operators first, then the
// dialect's registrations.
func (p *Parser) precedenceOf(t token.TokenType) int {
	if prec := p.dialect.Precedence(t); prec != core.PrecedenceNone {
		return prec
	}
	if t == token.DCOLON {
		return core.PrecedencePostfix
	}
	return core.PrecedenceNone
}

func (p *Parser) parsePrefix() (core.Expr, error) {
	switch p.cur.Type {
	case token.NUMBER:
		lit := &core.Literal{Type: core.LiteralNumber, Value: p.cur.Literal}
		p.next()
		return lit, nil
	case token.STRING:
		lit := &core.Literal{Type: core.LiteralString, Value: p.cur.Literal}
		p.next()
		return lit, nil
	case token.BYTES:
		lit := &core.Literal{Type: core.LiteralBytes, Value: p.cur.Literal, Prefix: p.cur.Prefix}
		p.next()
		return lit, nil
	case token.TRUE, token.FALSE:
		lit := &core.Literal{Type: core.LiteralBool, Value: strings.ToLower(p.cur.Literal)}
		p.next()
		return lit, nil
	case token.NULL:
		p.next()
		return &core.Literal{Type: core.LiteralNull, Value: "NULL"}, nil
	case token.MINUS, token.PLUS, token.NOT:
		op := p.cur.Type
		p.next()
		expr, err := p.parseExpression(core.PrecedenceUnary)
		if err != nil {
			return nil, err
		}
		return &core.UnaryExpr{Op: op, Expr: expr}, nil
	case token.LPAREN:
		p.next()
		expr, err := p.parseExpression(core.PrecedenceNone)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.CAST:
		return p.parseCast()
	case token.IDENT:
		return p.parseIdent()
	default:
		return nil, p.errorf("unexpected token %q", p.cur.Literal)
	}
}

// parseCast parses CAST(expr AS type).
func (p *Parser) parseCast() (core.Expr, error) {
	p.next() // CAST
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(core.PrecedenceNone)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &core.Cast{Expr: expr, To: dt}, nil
}

// parseIdent parses a column reference or a function call. Function
// calls with a dialect rewrite rule are built through that rule.
func (p *Parser) parseIdent() (core.Expr, error) {
	name := p.cur.Literal
	p.next()

	if p.cur.Type == token.LPAREN {
		return p.parseFuncCall(name)
	}

	if p.cur.Type == token.DOT {
		p.next()
		if p.cur.Type != token.IDENT {
			return nil, p.errorf("expected column name after %q.", name)
		}
		col := p.cur.Literal
		p.next()
		return &core.ColumnRef{Table: name, Column: col}, nil
	}

	return &core.ColumnRef{Column: name}, nil
}

func (p *Parser) parseFuncCall(name string) (core.Expr, error) {
	p.next() // (

	var args []core.Expr
	if p.cur.Type != token.RPAREN {
		for {
			arg, err := p.parseExpression(core.PrecedenceNone)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Type != token.COMMA {
				break
			}
			p.next()
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	if build := p.dialect.FunctionBuilderFor(name); build != nil {
		return build(args)
	}
	return &core.FuncCall{Name: strings.ToUpper(name), Args: args}, nil
}

// parseDataType parses a type name with optional parameters: TIME(6),
// DECIMAL(10, 2), BSON.
func (p *Parser) parseDataType() (core.DataType, error) {
	if p.cur.Type != token.IDENT && !token.IsKeyword(p.cur.Type) && !token.IsDynamic(p.cur.Type) {
		return core.DataType{}, p.errorf("expected type name, found %q", p.cur.Literal)
	}
	dt := core.DataType{Name: strings.ToUpper(p.cur.Literal)}
	p.next()

	if p.cur.Type == token.LPAREN {
		p.next()
		for {
			if p.cur.Type != token.NUMBER && p.cur.Type != token.IDENT {
				return core.DataType{}, p.errorf("expected type parameter, found %q", p.cur.Literal)
			}
			dt.Params = append(dt.Params, p.cur.Literal)
			p.next()
			if p.cur.Type != token.COMMA {
				break
			}
			p.next()
		}
		if err := p.expect(token.RPAREN); err != nil {
			return core.DataType{}, err
		}
	}
	return dt, nil
}
