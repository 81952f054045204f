// Package generator renders expression ASTs back to SQL text for a
// target dialect, rewriting temporal conversions into the dialect's
// base function vocabulary.
package generator

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlbridge/pkg/core"
	"github.com/leapstack-labs/sqlbridge/pkg/dialect"
	"github.com/leapstack-labs/sqlbridge/pkg/timefmt"
	"github.com/leapstack-labs/sqlbridge/pkg/token"
)

// Generator renders expressions for one target dialect.
// Stateless across expressions; safe to reuse.
type Generator struct {
	dialect *dialect.Dialect
}

// New creates a generator bound to the target dialect.
func New(d *dialect.Dialect) *Generator {
	return &Generator{dialect: d}
}

// Generate renders an expression as SQL text.
func (g *Generator) Generate(e core.Expr) (string, error) {
	return g.expr(e)
}

func (g *Generator) expr(e core.Expr) (string, error) {
	switch n := e.(type) {
	case *core.Literal:
		return g.literal(n), nil
	case *core.ColumnRef:
		return g.columnRef(n), nil
	case *core.BinaryExpr:
		return g.binary(n)
	case *core.UnaryExpr:
		return g.unary(n)
	case *core.FuncCall:
		return g.Func(n.Name, n.Args...)
	case *core.Cast:
		return g.cast(n)
	case *core.TemporalConvert:
		return g.temporal(n)
	case nil:
		return "", fmt.Errorf("generator: nil expression")
	default:
		return "", fmt.Errorf("generator: unsupported node %T", e)
	}
}

func (g *Generator) literal(l *core.Literal) string {
	switch l.Type {
	case core.LiteralString:
		return quoteString(l.Value)
	case core.LiteralBytes:
		prefix := l.Prefix
		if prefix == "" {
			prefix = "e"
		}
		return prefix + quoteString(l.Value)
	case core.LiteralBool:
		return strings.ToUpper(l.Value)
	case core.LiteralNull:
		return "NULL"
	default:
		return l.Value
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (g *Generator) columnRef(c *core.ColumnRef) string {
	col := g.dialect.QuoteIdentifierIfNeeded(c.Column)
	if c.Table != "" {
		return g.dialect.QuoteIdentifierIfNeeded(c.Table) + "." + col
	}
	return col
}

func (g *Generator) binary(b *core.BinaryExpr) (string, error) {
	left, err := g.expr(b.Left)
	if err != nil {
		return "", err
	}
	right, err := g.expr(b.Right)
	if err != nil {
		return "", err
	}
	return left + " " + b.Op.String() + " " + right, nil
}

func (g *Generator) unary(u *core.UnaryExpr) (string, error) {
	operand, err := g.expr(u.Expr)
	if err != nil {
		return "", err
	}
	if u.Op == token.NOT {
		return "NOT " + operand, nil
	}
	return u.Op.String() + operand, nil
}

func (g *Generator) cast(c *core.Cast) (string, error) {
	operand, err := g.expr(c.Expr)
	if err != nil {
		return "", err
	}
	if c.TryCast {
		// Non-strict cast has no CAST() spelling; keep the native operator.
		return operand + " !:> " + dataType(c.To), nil
	}
	return "CAST(" + operand + " AS " + dataType(c.To) + ")", nil
}

func dataType(dt core.DataType) string {
	if len(dt.Params) == 0 {
		return dt.Name
	}
	return dt.Name + "(" + strings.Join(dt.Params, ", ") + ")"
}

// Func renders a function call with the given arguments, skipping
// trailing nil arguments.
func (g *Generator) Func(name string, args ...core.Expr) (string, error) {
	rendered := make([]string, 0, len(args))
	for _, a := range args {
		if a == nil {
			continue
		}
		s, err := g.expr(a)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, s)
	}
	return name + "(" + strings.Join(rendered, ", ") + ")", nil
}

// temporal dispatches the temporal-conversion rewrites. Conversions
// using this dialect's native functions keep this dialect's format
// vocabulary; conversions lowered to base-dialect functions re-encode
// the format into the base vocabulary.
func (g *Generator) temporal(e *core.TemporalConvert) (string, error) {
	switch e.Kind {
	case core.TsOrDsToDate:
		return g.funcWithFormat("TO_DATE", e, g.dialect.TimeTable)
	case core.StrToTime:
		return g.funcWithFormat("TO_TIMESTAMP", e, g.dialect.TimeTable)
	case core.ToChar:
		return g.funcWithFormat("TO_CHAR", e, g.dialect.TimeTable)
	case core.StrToDate:
		return g.funcWithFormat("STR_TO_DATE", e, g.baseTable())
	case core.TimeToStr:
		return g.funcWithFormat("DATE_FORMAT", e, g.baseTable())
	default:
		return "", fmt.Errorf("generator: unknown temporal kind %v", e.Kind)
	}
}

func (g *Generator) funcWithFormat(name string, e *core.TemporalConvert, table *timefmt.DirectiveTable) (string, error) {
	value, err := g.expr(e.Value)
	if err != nil {
		return "", err
	}
	format, err := g.FormatTime(e, table)
	if err != nil {
		return "", err
	}
	if format == "" {
		return name + "(" + value + ")", nil
	}
	return name + "(" + value + ", " + format + ")", nil
}

// FormatTime renders a temporal node's format argument in the given
// table's vocabulary. A non-literal format passes through unmodified;
// a node with no format at all yields the empty string.
func (g *Generator) FormatTime(e *core.TemporalConvert, table *timefmt.DirectiveTable) (string, error) {
	if e.Canonical != nil {
		if table == nil {
			return "", fmt.Errorf("generator: dialect %q has no time table", g.dialect.Name)
		}
		s, err := timefmt.Encode(e.Canonical, table)
		if err != nil {
			return "", err
		}
		return quoteString(s), nil
	}
	if e.Format != nil {
		return g.expr(e.Format)
	}
	return "", nil
}

func (g *Generator) baseTable() *timefmt.DirectiveTable {
	if g.dialect.Base != nil && g.dialect.Base.TimeTable != nil {
		return g.dialect.Base.TimeTable
	}
	return g.dialect.TimeTable
}
