// Package dialect provides SQL dialect configuration for the lexer,
// parser and generator.
//
// This package contains the public contract for dialect definitions.
// Concrete dialect implementations are registered from pkg/dialects/*/
// packages.
package dialect

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlbridge/pkg/core"
	"github.com/leapstack-labs/sqlbridge/pkg/timefmt"
	"github.com/leapstack-labs/sqlbridge/pkg/token"
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig

	// Base is the dialect this one extends. A derived dialect's generator
	// emits the base dialect's function vocabulary for rewritten nodes
	// (SingleStore renders STR_TO_DATE/DATE_FORMAT in MySQL's format
	// vocabulary). Nil for root dialects.
	Base *Dialect

	// TimeTable maps this dialect's date/time format tokens to canonical
	// directives. Immutable once the dialect is built.
	TimeTable *timefmt.DirectiveTable

	// Placeholder defines how query parameters are formatted
	Placeholder core.PlaceholderStyle

	// Keywords and types for autocomplete/highlighting
	keywords      map[string]struct{}
	reservedWords map[string]struct{} // keywords that need quoting as identifiers
	dataTypes     []string

	// Lexing behavior
	symbols            map[string]token.TokenType // custom operators: ":>" -> COLON_GT
	dynamicKw          map[string]token.TokenType // custom keywords: "BSON" -> BSON
	byteStringPrefixes []string                   // e'...' style prefixes
	precedence         map[token.TokenType]int    // operator precedence

	// Parse-time function rewrites keyed by uppercase function name
	functions map[string]FunctionBuilder

	// Cast operators: tokens whose right operand is a type, not an
	// expression (:: in ANSI, :> and !:> in SingleStore). The value marks
	// non-strict casts that yield NULL on conversion failure.
	castOps map[token.TokenType]bool
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase, core.NormCaseInsensitive:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// Keywords returns all reserved keywords.
func (d *Dialect) Keywords() []string {
	kws := make([]string, 0, len(d.keywords))
	for kw := range d.keywords {
		kws = append(kws, kw)
	}
	return kws
}

// DataTypes returns all supported data types.
func (d *Dialect) DataTypes() []string {
	return d.dataTypes
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// IsReservedWord returns true if the word needs quoting when used as an
// identifier. Membership is decided on the lowercased form.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToLower(word)]
	return ok
}

// ReservedWordCount returns the number of reserved words.
func (d *Dialect) ReservedWordCount() int {
	return len(d.reservedWords)
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ` -> ``)
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes an identifier only if it's a reserved word.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if d.IsReservedWord(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

// ---------- Lexing Behavior Methods ----------

// Symbols returns the custom operators map for lexer symbol matching.
func (d *Dialect) Symbols() map[string]token.TokenType {
	return d.symbols
}

// LookupKeyword returns the token type for a dynamic keyword.
// Returns the token type and true if found, or IDENT and false if not.
func (d *Dialect) LookupKeyword(name string) (token.TokenType, bool) {
	if t, ok := d.dynamicKw[strings.ToLower(name)]; ok {
		return t, true
	}
	return token.IDENT, false
}

// ByteStringPrefixes returns the prefixes that introduce byte strings.
func (d *Dialect) ByteStringPrefixes() []string {
	return d.byteStringPrefixes
}

// Precedence returns the precedence level for an operator token.
// Returns PrecedenceNone if the operator is not recognized.
func (d *Dialect) Precedence(t token.TokenType) int {
	if p, ok := d.precedence[t]; ok {
		return p
	}
	return core.PrecedenceNone
}

// FunctionBuilderFor returns the parse-time rewrite rule for a function
// name, or nil if the function has no rewrite.
func (d *Dialect) FunctionBuilderFor(name string) FunctionBuilder {
	return d.functions[strings.ToUpper(name)]
}

// CastOperator reports whether t is a cast operator, and whether it is
// the non-strict variant.
func (d *Dialect) CastOperator(t token.TokenType) (tryCast, ok bool) {
	tryCast, ok = d.castOps[t]
	return tryCast, ok
}

// ---------- Builder ----------

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
	config  *core.DialectConfig
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name: name,
			Identifiers: core.IdentifierConfig{
				Quote:         `"`,
				QuoteEnd:      `"`,
				Escape:        `""`,
				Normalization: core.NormLowercase,
			},
			keywords:      make(map[string]struct{}),
			reservedWords: make(map[string]struct{}),
			symbols:       make(map[string]token.TokenType),
			dynamicKw:     make(map[string]token.TokenType),
			precedence:    make(map[token.TokenType]int),
			functions:     make(map[string]FunctionBuilder),
			castOps:       make(map[token.TokenType]bool),
		},
	}
}

// New creates a dialect builder from a DialectConfig.
// This is the preferred constructor for dialect packages.
func New(cfg *core.DialectConfig) *Builder {
	b := NewDialect(cfg.Name)
	b.config = cfg
	b.dialect.Identifiers = cfg.Identifiers
	b.dialect.Placeholder = cfg.Placeholder
	b.dialect.byteStringPrefixes = append(b.dialect.byteStringPrefixes, cfg.ByteStringPrefixes...)
	return b
}

// Identifiers configures identifier quoting and normalization.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// Extends sets the base dialect this one derives from.
func (b *Builder) Extends(base *Dialect) *Builder {
	b.dialect.Base = base
	return b
}

// WithTimeTable sets the dialect's date/time directive table.
func (b *Builder) WithTimeTable(t *timefmt.DirectiveTable) *Builder {
	b.dialect.TimeTable = t
	return b
}

// WithKeywords registers keywords for completion/highlighting.
func (b *Builder) WithKeywords(kws ...string) *Builder {
	for _, kw := range kws {
		b.dialect.keywords[strings.ToLower(kw)] = struct{}{}
	}
	return b
}

// WithReservedWords registers words that need quoting when used as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// WithDataTypes registers supported data types.
func (b *Builder) WithDataTypes(types ...string) *Builder {
	b.dialect.dataTypes = append(b.dialect.dataTypes, types...)
	return b
}

// AddOperator registers a custom operator symbol for the lexer.
func (b *Builder) AddOperator(symbol string, t token.TokenType) *Builder {
	b.dialect.symbols[symbol] = t
	return b
}

// AddKeyword registers a dynamic keyword for the lexer.
func (b *Builder) AddKeyword(name string, t token.TokenType) *Builder {
	b.dialect.dynamicKw[strings.ToLower(name)] = t
	return b
}

// AddInfix registers an infix operator with precedence.
func (b *Builder) AddInfix(t token.TokenType, precedence int) *Builder {
	b.dialect.precedence[t] = precedence
	return b
}

// Operators adds operator definitions in bulk.
// If Symbol is provided, it's registered with the lexer.
func (b *Builder) Operators(sets ...[]core.OperatorDef) *Builder {
	for _, set := range sets {
		for _, op := range set {
			b.dialect.precedence[op.Token] = op.Precedence
			if op.Symbol != "" {
				b.dialect.symbols[op.Symbol] = op.Token
			}
		}
	}
	return b
}

// AddCastOperator registers a cast operator symbol. The operator binds
// at postfix precedence and its right operand parses as a type name.
func (b *Builder) AddCastOperator(symbol string, t token.TokenType, tryCast bool) *Builder {
	b.dialect.symbols[symbol] = t
	b.dialect.precedence[t] = core.PrecedencePostfix
	b.dialect.castOps[t] = tryCast
	return b
}

// WithFunction registers a parse-time rewrite rule for a function name.
func (b *Builder) WithFunction(name string, fn FunctionBuilder) *Builder {
	b.dialect.functions[strings.ToUpper(name)] = fn
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	cfg := b.config
	if cfg == nil {
		return b.dialect
	}
	for _, kw := range cfg.Keywords {
		b.dialect.keywords[strings.ToLower(kw)] = struct{}{}
	}
	b.dialect.dataTypes = append(b.dialect.dataTypes, cfg.DataTypes...)
	return b.dialect
}
