package mysql

import (
	"github.com/leapstack-labs/sqlbridge/pkg/core"
	"github.com/leapstack-labs/sqlbridge/pkg/dialect"
	"github.com/leapstack-labs/sqlbridge/pkg/timefmt"
)

func init() {
	dialect.Register(MySQL)
}

// TimeTable maps MySQL DATE_FORMAT tokens to canonical directives.
//
// Tokens that share a canonical directive are ordered so the preferred
// MySQL spelling is listed last and wins the forward (encode) lookup:
// canonical %M renders as %i, %S as %s, %I as %h. The %u entry keeps the
// weekday-number directive intact on encode; MySQL has no 1-7 weekday
// token of its own.
var TimeTable = timefmt.NewDirectiveTable(
	// Canonical-identical tokens
	timefmt.Entry{Token: "%Y", Directive: "%Y"}, // 4-digit year
	timefmt.Entry{Token: "%y", Directive: "%y"}, // 2-digit year
	timefmt.Entry{Token: "%m", Directive: "%m"}, // month 01-12
	timefmt.Entry{Token: "%d", Directive: "%d"}, // day of month 01-31
	timefmt.Entry{Token: "%H", Directive: "%H"}, // hour 00-23
	timefmt.Entry{Token: "%I", Directive: "%I"}, // hour 01-12
	timefmt.Entry{Token: "%S", Directive: "%S"}, // second 00-59
	timefmt.Entry{Token: "%a", Directive: "%a"}, // abbreviated weekday name
	timefmt.Entry{Token: "%b", Directive: "%b"}, // abbreviated month name
	timefmt.Entry{Token: "%f", Directive: "%f"}, // microseconds
	timefmt.Entry{Token: "%u", Directive: "%u"}, // day of week 1-7

	// MySQL-specific spellings
	timefmt.Entry{Token: "%M", Directive: "%B"},        // month name
	timefmt.Entry{Token: "%W", Directive: "%A"},        // weekday name
	timefmt.Entry{Token: "%c", Directive: "%-m"},       // month, no padding
	timefmt.Entry{Token: "%e", Directive: "%-d"},       // day, no padding
	timefmt.Entry{Token: "%k", Directive: "%-H"},       // hour 0-23, no padding
	timefmt.Entry{Token: "%l", Directive: "%-I"},       // hour 1-12, no padding
	timefmt.Entry{Token: "%h", Directive: "%I"},        // hour 01-12
	timefmt.Entry{Token: "%i", Directive: "%M"},        // minute 00-59
	timefmt.Entry{Token: "%s", Directive: "%S"},        // second 00-59
	timefmt.Entry{Token: "%T", Directive: "%H:%M:%S"},  // time, 24-hour
)

// MySQL is the MySQL dialect.
var MySQL = dialect.New(Config).
	WithTimeTable(TimeTable).
	Operators(dialect.ANSIOperators).
	WithFunction("STR_TO_DATE", dialect.FormattedTime(core.StrToDate, "mysql")).
	WithFunction("DATE_FORMAT", dialect.FormattedTime(core.TimeToStr, "mysql")).
	WithReservedWords(mysqlReservedWords...).
	Build()

// mysqlReservedWords are keywords that need quoting as identifiers.
var mysqlReservedWords = []string{
	"accessible", "add", "all", "alter", "analyze", "and", "as", "asc",
	"before", "between", "bigint", "binary", "blob", "both", "by",
	"call", "cascade", "case", "change", "char", "character", "check",
	"collate", "column", "condition", "constraint", "continue", "convert",
	"create", "cross", "cursor", "database", "databases", "decimal",
	"declare", "default", "delete", "desc", "describe", "distinct",
	"div", "double", "drop", "else", "enclosed", "escaped", "exists",
	"exit", "explain", "false", "fetch", "float", "for", "force",
	"foreign", "from", "fulltext", "generated", "grant", "group",
	"having", "if", "ignore", "in", "index", "infile", "inner", "insert",
	"int", "integer", "interval", "into", "is", "join", "key", "keys",
	"kill", "leading", "left", "like", "limit", "lines", "load", "lock",
	"long", "match", "mediumint", "mod", "natural", "not", "null",
	"numeric", "on", "optimize", "option", "or", "order", "out", "outer",
	"outfile", "partition", "precision", "primary", "procedure", "range",
	"read", "real", "references", "regexp", "rename", "repeat",
	"replace", "require", "restrict", "return", "revoke", "right",
	"rlike", "schema", "schemas", "select", "set", "show", "smallint",
	"sql", "table", "terminated", "then", "tinyint", "to", "trailing",
	"trigger", "true", "union", "unique", "unlock", "unsigned", "update",
	"usage", "use", "using", "values", "varbinary", "varchar", "when",
	"where", "while", "with", "write", "xor", "zerofill",
}
