package core

import "github.com/leapstack-labs/sqlbridge/pkg/token"

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	exprNode()
}

// ---------- Expression Types ----------

// ColumnRef represents a column reference (possibly qualified).
type ColumnRef struct {
	Table  string // optional table/alias qualifier
	Column string
}

func (*ColumnRef) exprNode() {}

// Literal represents a literal value.
type Literal struct {
	Type  LiteralType
	Value string
	// Prefix preserves a byte-string literal's prefix as written
	// (e or E), so regeneration round-trips the original spelling.
	Prefix string
}

func (*Literal) exprNode() {}

// LiteralType represents the type of a literal.
type LiteralType int

// LiteralType constants for SQL literal value types.
const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBytes // e'...' byte string
	LiteralBool
	LiteralNull
)

// StringLiteral constructs a string literal node.
func StringLiteral(v string) *Literal {
	return &Literal{Type: LiteralString, Value: v}
}

// NumberLiteral constructs a numeric literal node.
func NumberLiteral(v string) *Literal {
	return &Literal{Type: LiteralNumber, Value: v}
}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Left  Expr
	Op    token.TokenType
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr represents a unary expression.
type UnaryExpr struct {
	Op   token.TokenType
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

// FuncCall represents a function call that has no dedicated node type.
type FuncCall struct {
	Name string
	Args []Expr
}

func (*FuncCall) exprNode() {}

// DataType represents a type reference, optionally parameterized
// (TIME(6), DECIMAL(10,2)).
type DataType struct {
	Name   string
	Params []string
}

// Cast represents an explicit type conversion, whether written as
// CAST(x AS t), x :: t, or the SingleStore x :> t form.
type Cast struct {
	Expr Expr
	To   DataType
	// TryCast marks a non-strict cast (!:> in SingleStore) that yields
	// NULL instead of erroring on conversion failure.
	TryCast bool
}

func (*Cast) exprNode() {}

// TimeType returns the fixed-precision time type TIME(p).
func TimeType(precision string) DataType {
	return DataType{Name: "TIME", Params: []string{precision}}
}
