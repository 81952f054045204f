package core

import "github.com/leapstack-labs/sqlbridge/pkg/timefmt"

// TemporalKind enumerates the temporal string/format conversions that
// dialects rewrite. New conversions are added as cases here, not as
// entries in a runtime dispatch table.
type TemporalKind int

const (
	// StrToDate parses a string into a DATE using an explicit format.
	StrToDate TemporalKind = iota
	// StrToTime parses a string into a TIMESTAMP using an explicit format.
	StrToTime
	// TsOrDsToDate converts a timestamp or date-string to a DATE,
	// optionally guided by a format.
	TsOrDsToDate
	// TimeToStr formats a datetime value as a string.
	TimeToStr
	// ToChar formats a value as a string (Oracle-style TO_CHAR).
	ToChar
)

// String returns the conversion name for debugging.
func (k TemporalKind) String() string {
	switch k {
	case StrToDate:
		return "str_to_date"
	case StrToTime:
		return "str_to_time"
	case TsOrDsToDate:
		return "ts_or_ds_to_date"
	case TimeToStr:
		return "time_to_str"
	case ToChar:
		return "to_char"
	default:
		return "unknown"
	}
}

// TemporalConvert is a temporal conversion with an optional format
// argument.
//
// When the format argument was a compile-time string literal, Canonical
// holds its decoded dialect-neutral form and Format is nil. When the
// format was not a literal (a column, a parameter), Format holds the raw
// expression and passes through generation unmodified — dynamic formats
// are deliberately not transcoded.
type TemporalConvert struct {
	Kind      TemporalKind
	Value     Expr
	Format    Expr           // non-literal format argument, passed through
	Canonical timefmt.Format // decoded canonical format, nil if Format is set
}

func (*TemporalConvert) exprNode() {}

// HasCanonical reports whether the node carries a transcodable format.
func (t *TemporalConvert) HasCanonical() bool {
	return t.Canonical != nil
}
