package parser

import (
	"testing"

	"github.com/leapstack-labs/sqlbridge/pkg/core"
	"github.com/leapstack-labs/sqlbridge/pkg/dialects/singlestore"
	"github.com/leapstack-labs/sqlbridge/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSingleStore(t *testing.T, input string) core.Expr {
	t.Helper()
	expr, err := ParseExpr(input, singlestore.SingleStore)
	require.NoError(t, err, "input: %s", input)
	return expr
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  core.Expr
	}{
		{"42", &core.Literal{Type: core.LiteralNumber, Value: "42"}},
		{"'hello'", &core.Literal{Type: core.LiteralString, Value: "hello"}},
		{"e'bytes'", &core.Literal{Type: core.LiteralBytes, Value: "bytes", Prefix: "e"}},
		{"E'bytes'", &core.Literal{Type: core.LiteralBytes, Value: "bytes", Prefix: "E"}},
		{"TRUE", &core.Literal{Type: core.LiteralBool, Value: "true"}},
		{"NULL", &core.Literal{Type: core.LiteralNull, Value: "NULL"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSingleStore(t, tt.input))
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3)
	expr := parseSingleStore(t, "1 + 2 * 3")
	add, ok := expr.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, add.Op)

	mul, ok := add.Right.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.STAR, mul.Op)
}

func TestParseParens(t *testing.T) {
	// (1 + 2) * 3 parses as (1 + 2) * 3
	expr := parseSingleStore(t, "(1 + 2) * 3")
	mul, ok := expr.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.STAR, mul.Op)

	add, ok := mul.Left.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, add.Op)
}

func TestParseColumnRefs(t *testing.T) {
	t.Run("bare column", func(t *testing.T) {
		expr := parseSingleStore(t, "amount")
		assert.Equal(t, &core.ColumnRef{Column: "amount"}, expr)
	})

	t.Run("qualified column", func(t *testing.T) {
		expr := parseSingleStore(t, "orders.amount")
		assert.Equal(t, &core.ColumnRef{Table: "orders", Column: "amount"}, expr)
	})

	t.Run("quoted reserved word", func(t *testing.T) {
		expr := parseSingleStore(t, "`select`")
		assert.Equal(t, &core.ColumnRef{Column: "select"}, expr)
	})
}

func TestParseCastOperators(t *testing.T) {
	t.Run("colon-gt cast", func(t *testing.T) {
		expr := parseSingleStore(t, "x :> DATE")
		cast, ok := expr.(*core.Cast)
		require.True(t, ok)
		assert.False(t, cast.TryCast)
		assert.Equal(t, core.DataType{Name: "DATE"}, cast.To)
	})

	t.Run("non-strict cast", func(t *testing.T) {
		expr := parseSingleStore(t, "x !:> TIME(6)")
		cast, ok := expr.(*core.Cast)
		require.True(t, ok)
		assert.True(t, cast.TryCast)
		assert.Equal(t, core.TimeType("6"), cast.To)
	})

	t.Run("double colon cast", func(t *testing.T) {
		expr := parseSingleStore(t, "x::INT")
		cast, ok := expr.(*core.Cast)
		require.True(t, ok)
		assert.False(t, cast.TryCast)
		assert.Equal(t, core.DataType{Name: "INT"}, cast.To)
	})

	t.Run("cast to dialect type keyword", func(t *testing.T) {
		expr := parseSingleStore(t, "x :> GEOGRAPHYPOINT")
		cast, ok := expr.(*core.Cast)
		require.True(t, ok)
		assert.Equal(t, core.DataType{Name: "GEOGRAPHYPOINT"}, cast.To)
	})

	t.Run("cast function", func(t *testing.T) {
		expr := parseSingleStore(t, "CAST(x AS DECIMAL(10, 2))")
		cast, ok := expr.(*core.Cast)
		require.True(t, ok)
		assert.Equal(t, core.DataType{Name: "DECIMAL", Params: []string{"10", "2"}}, cast.To)
	})

	t.Run("cast binds tighter than addition", func(t *testing.T) {
		expr := parseSingleStore(t, "x :> INT + 1")
		add, ok := expr.(*core.BinaryExpr)
		require.True(t, ok)
		_, ok = add.Left.(*core.Cast)
		assert.True(t, ok)
	})
}

func TestParseJSONExtract(t *testing.T) {
	expr := parseSingleStore(t, "doc::$name")
	bin, ok := expr.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, singlestore.TokenDColonDollar, bin.Op)
	assert.Equal(t, &core.ColumnRef{Column: "doc"}, bin.Left)
	assert.Equal(t, &core.ColumnRef{Column: "name"}, bin.Right)
}

func TestParseFuncCalls(t *testing.T) {
	t.Run("plain function uppercases name", func(t *testing.T) {
		expr := parseSingleStore(t, "coalesce(a, b)")
		fn, ok := expr.(*core.FuncCall)
		require.True(t, ok)
		assert.Equal(t, "COALESCE", fn.Name)
		assert.Len(t, fn.Args, 2)
	})

	t.Run("no arguments", func(t *testing.T) {
		expr := parseSingleStore(t, "now()")
		fn, ok := expr.(*core.FuncCall)
		require.True(t, ok)
		assert.Empty(t, fn.Args)
	})
}

func TestParseTemporalRewrites(t *testing.T) {
	t.Run("TO_DATE with literal format", func(t *testing.T) {
		expr := parseSingleStore(t, "TO_DATE(x, 'YYYY-MM-DD')")
		conv, ok := expr.(*core.TemporalConvert)
		require.True(t, ok)
		assert.Equal(t, core.TsOrDsToDate, conv.Kind)
		require.True(t, conv.HasCanonical())
		assert.Equal(t, "%Y-%m-%d", conv.Canonical.String())
	})

	t.Run("TO_TIMESTAMP", func(t *testing.T) {
		expr := parseSingleStore(t, "TO_TIMESTAMP(x, 'HH24:MI:SS')")
		conv, ok := expr.(*core.TemporalConvert)
		require.True(t, ok)
		assert.Equal(t, core.StrToTime, conv.Kind)
		assert.Equal(t, "%H:%M:%S", conv.Canonical.String())
	})

	t.Run("TO_CHAR without format", func(t *testing.T) {
		expr := parseSingleStore(t, "TO_CHAR(x)")
		conv, ok := expr.(*core.TemporalConvert)
		require.True(t, ok)
		assert.Equal(t, core.ToChar, conv.Kind)
		assert.False(t, conv.HasCanonical())
		assert.Nil(t, conv.Format)
	})

	t.Run("non-literal format passes through", func(t *testing.T) {
		expr := parseSingleStore(t, "DATE_FORMAT(x, fmt_col)")
		conv, ok := expr.(*core.TemporalConvert)
		require.True(t, ok)
		assert.False(t, conv.HasCanonical())
		assert.Equal(t, &core.ColumnRef{Column: "fmt_col"}, conv.Format)
	})

	t.Run("STR_TO_DATE uses base vocabulary", func(t *testing.T) {
		expr := parseSingleStore(t, "STR_TO_DATE(x, '%Y-%m-%d')")
		conv, ok := expr.(*core.TemporalConvert)
		require.True(t, ok)
		assert.Equal(t, core.StrToDate, conv.Kind)
		assert.Equal(t, "%Y-%m-%d", conv.Canonical.String())
	})

	t.Run("TIME_FORMAT wraps value in a TIME(6) cast", func(t *testing.T) {
		expr := parseSingleStore(t, "TIME_FORMAT(x, '%H:%i')")
		conv, ok := expr.(*core.TemporalConvert)
		require.True(t, ok)
		assert.Equal(t, core.TimeToStr, conv.Kind)

		cast, ok := conv.Value.(*core.Cast)
		require.True(t, ok)
		assert.Equal(t, core.TimeType("6"), cast.To)
		assert.Equal(t, &core.ColumnRef{Column: "x"}, cast.Expr)
	})
}

func TestParseUnary(t *testing.T) {
	expr := parseSingleStore(t, "-x + 1")
	add, ok := expr.(*core.BinaryExpr)
	require.True(t, ok)
	neg, ok := add.Left.(*core.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.MINUS, neg.Op)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing input", "1 1"},
		{"unclosed paren", "(1 + 2"},
		{"missing operand", "1 +"},
		{"cast without type", "x :>"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExpr(tt.input, singlestore.SingleStore)
			assert.Error(t, err)
		})
	}
}

func TestParseExprRequiresDialect(t *testing.T) {
	_, err := ParseExpr("1", nil)
	assert.Error(t, err)
}
