package parser

import (
	"testing"

	"github.com/leapstack-labs/sqlbridge/pkg/dialects/singlestore"
	"github.com/leapstack-labs/sqlbridge/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(toks []token.Token) []token.TokenType {
	types := make([]token.TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	return types
}

func TestLexerBasics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{
			name:  "arithmetic",
			input: "1 + 2.5 * col",
			want:  []token.TokenType{token.NUMBER, token.PLUS, token.NUMBER, token.STAR, token.IDENT, token.EOF},
		},
		{
			name:  "comparison operators",
			input: "a <= b <> c != d",
			want:  []token.TokenType{token.IDENT, token.LE, token.IDENT, token.NE, token.IDENT, token.NE, token.IDENT, token.EOF},
		},
		{
			name:  "keywords",
			input: "CAST(x AS INT)",
			want:  []token.TokenType{token.CAST, token.LPAREN, token.IDENT, token.AS, token.IDENT, token.RPAREN, token.EOF},
		},
		{
			name:  "double colon",
			input: "x::INT",
			want:  []token.TokenType{token.IDENT, token.DCOLON, token.IDENT, token.EOF},
		},
		{
			name:  "line comment",
			input: "a -- trailing\n+ b",
			want:  []token.TokenType{token.IDENT, token.PLUS, token.IDENT, token.EOF},
		},
		{
			name:  "block comment",
			input: "a /* inner */ + b",
			want:  []token.TokenType{token.IDENT, token.PLUS, token.IDENT, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input, nil)
			assert.Equal(t, tt.want, tokenTypes(toks))
		})
	}
}

func TestLexerStrings(t *testing.T) {
	t.Run("simple string", func(t *testing.T) {
		toks := Tokenize("'hello'", nil)
		require.Equal(t, token.STRING, toks[0].Type)
		assert.Equal(t, "hello", toks[0].Literal)
	})

	t.Run("doubled quote escape", func(t *testing.T) {
		toks := Tokenize("'it''s'", nil)
		require.Equal(t, token.STRING, toks[0].Type)
		assert.Equal(t, "it's", toks[0].Literal)
	})

	t.Run("backtick identifier", func(t *testing.T) {
		toks := Tokenize("`select`", nil)
		require.Equal(t, token.IDENT, toks[0].Type)
		assert.Equal(t, "select", toks[0].Literal)
	})

	t.Run("scientific number", func(t *testing.T) {
		toks := Tokenize("1.5e-3", nil)
		require.Equal(t, token.NUMBER, toks[0].Type)
		assert.Equal(t, "1.5e-3", toks[0].Literal)
	})
}

func TestLexerDialectSymbols(t *testing.T) {
	d := singlestore.SingleStore

	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{
			name:  "cast operator",
			input: "x :> DATE",
			want:  []token.TokenType{token.IDENT, singlestore.TokenColonGT, token.IDENT, token.EOF},
		},
		{
			name:  "three-char operator is not split",
			input: "x !:> DATE",
			want:  []token.TokenType{token.IDENT, singlestore.TokenNColonGT, token.IDENT, token.EOF},
		},
		{
			name:  "json string extract",
			input: "doc::$name",
			want:  []token.TokenType{token.IDENT, singlestore.TokenDColonDollar, token.IDENT, token.EOF},
		},
		{
			name:  "json double extract",
			input: "doc::%score",
			want:  []token.TokenType{token.IDENT, singlestore.TokenDColonPercent, token.IDENT, token.EOF},
		},
		{
			name:  "plain double colon still lexes",
			input: "x::INT",
			want:  []token.TokenType{token.IDENT, token.DCOLON, token.IDENT, token.EOF},
		},
		{
			name:  "dialect type keyword",
			input: "BSON",
			want:  []token.TokenType{singlestore.TokenBSON, token.EOF},
		},
		{
			name:  "dialect type keyword lowercased",
			input: "x :> bson",
			want:  []token.TokenType{token.IDENT, singlestore.TokenColonGT, singlestore.TokenBSON, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input, d)
			assert.Equal(t, tt.want, tokenTypes(toks))
		})
	}
}

func TestLexerDynamicKeywordFallback(t *testing.T) {
	// Tokens registered by dialect packages resolve through the global
	// registry even when no dialect is attached to the lexer.
	toks := Tokenize("GEOGRAPHYPOINT", nil)
	require.Equal(t, singlestore.TokenGeographyPoint, toks[0].Type)
}

func TestLexerByteStrings(t *testing.T) {
	d := singlestore.SingleStore

	t.Run("lowercase prefix", func(t *testing.T) {
		toks := Tokenize("e'abc'", d)
		require.Equal(t, token.BYTES, toks[0].Type)
		assert.Equal(t, "abc", toks[0].Literal)
		assert.Equal(t, "e", toks[0].Prefix)
	})

	t.Run("uppercase prefix keeps its spelling", func(t *testing.T) {
		toks := Tokenize("E'abc'", d)
		require.Equal(t, token.BYTES, toks[0].Type)
		assert.Equal(t, "abc", toks[0].Literal)
		assert.Equal(t, "E", toks[0].Prefix)
	})

	t.Run("prefix without quote is an identifier", func(t *testing.T) {
		toks := Tokenize("e + 1", d)
		assert.Equal(t, []token.TokenType{token.IDENT, token.PLUS, token.NUMBER, token.EOF}, tokenTypes(toks))
	})

	t.Run("no byte strings without dialect", func(t *testing.T) {
		toks := Tokenize("e'abc'", nil)
		assert.Equal(t, token.IDENT, toks[0].Type)
		assert.Equal(t, token.STRING, toks[1].Type)
	})
}

func TestLexerPositions(t *testing.T) {
	toks := Tokenize("a +\nb", nil)
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 2, toks[2].Pos.Line) // b
}
