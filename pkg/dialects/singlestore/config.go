// Package singlestore provides the SingleStore SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package singlestore

import "github.com/leapstack-labs/sqlbridge/pkg/core"

// Config is the SingleStore dialect configuration.
// This is pure data - accessible by both the lexer and the generator.
var Config = &core.DialectConfig{
	Name:        "singlestore",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseSensitive,
	},

	// e'...' and E'...' are byte strings
	ByteStringPrefixes: []string{"e", "E"},

	Keywords: singlestoreCompletionKeywords,
	DataTypes: []string{
		"TINYINT", "SMALLINT", "MEDIUMINT", "INT", "BIGINT",
		"DECIMAL", "FLOAT", "DOUBLE",
		"DATE", "TIME", "DATETIME", "TIMESTAMP", "YEAR",
		"CHAR", "VARCHAR", "TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT",
		"BINARY", "VARBINARY", "BLOB", "JSON", "BSON",
		"GEOGRAPHY", "GEOGRAPHYPOINT", "VECTOR",
	},
}

// singlestoreCompletionKeywords are surfaced for autocomplete/highlighting.
var singlestoreCompletionKeywords = []string{
	"SELECT", "FROM", "WHERE", "GROUP", "HAVING", "ORDER", "LIMIT",
	"OFFSET", "JOIN", "INNER", "LEFT", "RIGHT", "CROSS", "UNION",
	"DISTINCT", "CASE", "WHEN", "THEN", "ELSE", "END", "CAST",
	"TO_DATE", "TO_TIMESTAMP", "TO_CHAR",
	"STR_TO_DATE", "DATE_FORMAT", "TIME_FORMAT",
}
