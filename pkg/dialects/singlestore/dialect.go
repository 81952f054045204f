package singlestore

import (
	"github.com/leapstack-labs/sqlbridge/pkg/core"
	"github.com/leapstack-labs/sqlbridge/pkg/dialect"
	"github.com/leapstack-labs/sqlbridge/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqlbridge/pkg/timefmt"
	"github.com/leapstack-labs/sqlbridge/pkg/token"
)

func init() {
	dialect.Register(SingleStore)
}

// SingleStore-specific tokens. Named by their literal text so the
// generator can render them directly.
var (
	// TokenColonGT is the :> cast operator
	TokenColonGT = token.Register(":>")
	// TokenNColonGT is the !:> non-strict cast operator
	TokenNColonGT = token.Register("!:>")
	// TokenDColonDollar is the ::$ JSON string-extract operator
	TokenDColonDollar = token.Register("::$")
	// TokenDColonPercent is the ::% JSON double-extract operator
	TokenDColonPercent = token.Register("::%")

	// Type keywords
	TokenBSON           = token.Register("BSON")
	TokenGeographyPoint = token.Register("GEOGRAPHYPOINT")
)

// TimeTable maps SingleStore's Oracle-style format tokens to canonical
// directives. Alias tokens (RR, YY, HH, HH12) come before the preferred
// spelling so the preferred one wins the forward (encode) lookup.
var TimeTable = timefmt.NewDirectiveTable(
	timefmt.Entry{Token: "D", Directive: "%u"},     // day of week (1-7)
	timefmt.Entry{Token: "DD", Directive: "%d"},    // day of month (01-31)
	timefmt.Entry{Token: "DY", Directive: "%a"},    // abbreviated name of day
	timefmt.Entry{Token: "HH", Directive: "%I"},    // hour of day (01-12)
	timefmt.Entry{Token: "HH12", Directive: "%I"},  // alias for HH
	timefmt.Entry{Token: "HH24", Directive: "%H"},  // hour of day (00-23)
	timefmt.Entry{Token: "MI", Directive: "%M"},    // minute (00-59)
	timefmt.Entry{Token: "MM", Directive: "%m"},    // month (01-12; January = 01)
	timefmt.Entry{Token: "MON", Directive: "%b"},   // abbreviated name of month
	timefmt.Entry{Token: "MONTH", Directive: "%B"}, // name of month
	timefmt.Entry{Token: "SS", Directive: "%S"},    // second (00-59)
	timefmt.Entry{Token: "RR", Directive: "%y"},    // 15
	timefmt.Entry{Token: "YY", Directive: "%y"},    // 15
	timefmt.Entry{Token: "YYYY", Directive: "%Y"},  // 2015
	timefmt.Entry{Token: "FF6", Directive: "%f"},   // microseconds, 6 digits
)

// SingleStore is the SingleStore SQL dialect. It extends MySQL: rewritten
// temporal functions are lowered to MySQL's function family, with format
// strings re-encoded into MySQL's vocabulary.
var SingleStore = dialect.New(Config).
	Extends(mysql.MySQL).
	WithTimeTable(TimeTable).
	// Cast operators; a 3-character operator must never be tokenized as
	// a 2-character operator plus a trailing character
	AddCastOperator(":>", TokenColonGT, false).
	AddCastOperator("!:>", TokenNColonGT, true).
	// JSON extract operators
	AddOperator("::$", TokenDColonDollar).
	AddInfix(TokenDColonDollar, core.PrecedencePostfix).
	AddOperator("::%", TokenDColonPercent).
	AddInfix(TokenDColonPercent, core.PrecedencePostfix).
	// Type keywords
	AddKeyword("BSON", TokenBSON).
	AddKeyword("GEOGRAPHYPOINT", TokenGeographyPoint).
	Operators(dialect.ANSIOperators).
	// Temporal functions in SingleStore's own format vocabulary
	WithFunction("TO_DATE", dialect.FormattedTime(core.TsOrDsToDate, "singlestore")).
	WithFunction("TO_TIMESTAMP", dialect.FormattedTime(core.StrToTime, "singlestore")).
	WithFunction("TO_CHAR", dialect.FormattedTime(core.ToChar, "singlestore")).
	// MySQL-family functions keep MySQL's format vocabulary
	WithFunction("STR_TO_DATE", dialect.FormattedTime(core.StrToDate, "mysql")).
	WithFunction("DATE_FORMAT", dialect.FormattedTime(core.TimeToStr, "mysql")).
	WithFunction("TIME_FORMAT", buildTimeFormat).
	WithReservedWords(singlestoreReservedWords...).
	Build()

// buildTimeFormat parses TIME_FORMAT(value, format).
// The value argument is wrapped in a cast to TIME(6): the node renders
// as DATE_FORMAT, which interprets its first argument as DATETIME and
// fails to parse string literals like '12:05:47' without a date part.
// Omitting the wrap would turn a valid time-only literal into a parse
// failure, so it is part of the function's contract.
func buildTimeFormat(args []core.Expr) (core.Expr, error) {
	node := &core.TemporalConvert{
		Kind: core.TimeToStr,
		Value: &core.Cast{
			Expr: dialect.SeqGet(args, 0),
			To:   core.TimeType("6"),
		},
	}
	if err := dialect.ApplyFormat(node, dialect.SeqGet(args, 1), "mysql"); err != nil {
		return nil, err
	}
	return node, nil
}
