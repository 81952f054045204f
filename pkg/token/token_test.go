package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenType
	}{
		{"and", AND},
		{"cast", CAST},
		{"null", NULL},
		{"interval", INTERVAL},
		{"users", IDENT},
		{"to_date", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupIdent(tt.ident))
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "+", PLUS.String())
	assert.Equal(t, "::", DCOLON.String())
	assert.Equal(t, "CAST", CAST.String())
	assert.Equal(t, "TOKEN(900)", TokenType(900).String())
}

func TestRegister(t *testing.T) {
	a := Register("TEST_OP_A")
	b := Register("TEST_OP_B")

	require.NotEqual(t, a, b)
	assert.True(t, IsDynamic(a))
	assert.True(t, IsDynamic(b))

	// Dynamic tokens render their registered name
	assert.Equal(t, "TEST_OP_A", a.String())

	got, ok := LookupDynamicKeyword("TEST_OP_B")
	require.True(t, ok)
	assert.Equal(t, b, got)

	_, ok = LookupDynamicKeyword("NOT_REGISTERED")
	assert.False(t, ok)
}

func TestRegisterFoldsKeywords(t *testing.T) {
	// The lexer resolves identifiers lowercased, so a keyword registered
	// by its display spelling must be reachable through the folded form.
	tok := Register("TEST_KW_MIXED")

	got, ok := LookupDynamicKeyword("test_kw_mixed")
	require.True(t, ok)
	assert.Equal(t, tok, got)

	// The display spelling still resolves and still renders.
	got, ok = LookupDynamicKeyword("TEST_KW_MIXED")
	require.True(t, ok)
	assert.Equal(t, tok, got)
	assert.Equal(t, "TEST_KW_MIXED", tok.String())
}

func TestIsKeywordAndIsOperator(t *testing.T) {
	assert.True(t, IsKeyword(AND))
	assert.True(t, IsKeyword(WHEN))
	assert.False(t, IsKeyword(PLUS))
	assert.False(t, IsKeyword(IDENT))

	assert.True(t, IsOperator(PLUS))
	assert.True(t, IsOperator(DCOLON))
	assert.False(t, IsOperator(AND))
	assert.False(t, IsOperator(Register("TEST_OP_C")))
}

func TestIsDynamicBuiltins(t *testing.T) {
	assert.False(t, IsDynamic(EOF))
	assert.False(t, IsDynamic(WHEN))
}
