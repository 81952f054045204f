// Package mysql provides the MySQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/leapstack-labs/sqlbridge/pkg/core"

// Config is the MySQL dialect configuration.
// This is pure data - accessible by both the lexer and the generator.
var Config = &core.DialectConfig{
	Name:        "mysql",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseSensitive,
	},

	Keywords: mysqlCompletionKeywords,
	DataTypes: []string{
		"TINYINT", "SMALLINT", "MEDIUMINT", "INT", "BIGINT",
		"DECIMAL", "FLOAT", "DOUBLE",
		"DATE", "TIME", "DATETIME", "TIMESTAMP", "YEAR",
		"CHAR", "VARCHAR", "TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT",
		"BINARY", "VARBINARY", "BLOB", "JSON",
	},
}

// mysqlCompletionKeywords are surfaced for autocomplete/highlighting.
var mysqlCompletionKeywords = []string{
	"SELECT", "FROM", "WHERE", "GROUP", "HAVING", "ORDER", "LIMIT",
	"OFFSET", "JOIN", "INNER", "LEFT", "RIGHT", "CROSS", "UNION",
	"DISTINCT", "CASE", "WHEN", "THEN", "ELSE", "END", "CAST",
	"STR_TO_DATE", "DATE_FORMAT", "TIME_FORMAT",
}
