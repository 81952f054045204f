package dialect

import (
	"fmt"

	"github.com/leapstack-labs/sqlbridge/pkg/core"
	"github.com/leapstack-labs/sqlbridge/pkg/timefmt"
)

// FunctionBuilder is a parse-time rewrite rule: it receives the parsed
// argument expressions of a named SQL function call and returns the AST
// node that represents it.
type FunctionBuilder func(args []core.Expr) (core.Expr, error)

// SeqGet returns args[i], or nil when the index is out of range.
func SeqGet(args []core.Expr, i int) core.Expr {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

// FormattedTime returns a builder for temporal conversion functions whose
// second argument is a format string written in the named dialect's
// vocabulary. A literal format is decoded to canonical form at parse
// time; a non-literal format passes through unmodified.
func FormattedTime(kind core.TemporalKind, dialectName string) FunctionBuilder {
	return func(args []core.Expr) (core.Expr, error) {
		node := &core.TemporalConvert{Kind: kind, Value: SeqGet(args, 0)}
		if err := ApplyFormat(node, SeqGet(args, 1), dialectName); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// ApplyFormat attaches the format argument to a temporal node: string
// literals are decoded through the named dialect's time table, anything
// else is kept as a raw expression.
func ApplyFormat(node *core.TemporalConvert, format core.Expr, dialectName string) error {
	if format == nil {
		return nil
	}
	lit, ok := format.(*core.Literal)
	if !ok || lit.Type != core.LiteralString {
		node.Format = format
		return nil
	}
	table, err := timeTableOf(dialectName)
	if err != nil {
		return err
	}
	node.Canonical = timefmt.Decode(lit.Value, table)
	return nil
}

func timeTableOf(dialectName string) (*timefmt.DirectiveTable, error) {
	d, ok := Get(dialectName)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrDialectRequired, dialectName)
	}
	if d.TimeTable == nil {
		return nil, fmt.Errorf("dialect %q has no time table", dialectName)
	}
	return d.TimeTable, nil
}
