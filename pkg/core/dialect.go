package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data — no handler functions.
//
// The runtime behavior (operator symbols, time tables, function builders)
// lives in pkg/dialect.Dialect, which is built from this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "mysql", "singlestore")
	Name string

	// Identifiers defines quoting and normalization rules
	Identifiers IdentifierConfig

	// Placeholder defines how query parameters are formatted
	Placeholder PlaceholderStyle

	// Keywords for autocomplete/highlighting
	Keywords  []string
	DataTypes []string

	// ByteStringPrefixes lists string-literal prefixes that introduce
	// byte strings (e.g. "e" for e'...').
	ByteStringPrefixes []string
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Snowflake, Oracle).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL, ClickHouse).
	NormCaseSensitive
	// NormCaseInsensitive normalizes to lowercase for comparison (BigQuery, Hive, DuckDB).
	NormCaseInsensitive
)

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (MySQL, SingleStore, SQLite).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
)

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `, [
	QuoteEnd      string                // End quote character (usually same as Quote, ] for [)
	Escape        string                // Escape sequence: "", ``, ]]
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}
