// Package literal renders temporal values as PostgreSQL literal text.
//
// Every renderer is a pure function from a value to the literal syntax
// PostgreSQL parses back into an equal value, e.g. DATE '2018-04-20' or
// '[2020-01-01,2020-12-25]'::daterange. Values finer than the microsecond
// resolution of the PostgreSQL date/time types are reported as
// unrepresentable rather than silently truncated.
package literal

import (
	"errors"
	"fmt"

	"github.com/theory/pgtemporal/temporal"
)

// ErrLiteral wraps errors returned by the literal package.
var ErrLiteral = errors.New("literal")

// ErrUnrepresentable is returned when a value cannot round-trip through the
// target store type, such as sub-microsecond precision that a PostgreSQL
// timestamp cannot store.
var ErrUnrepresentable = fmt.Errorf("%w: unrepresentable value", ErrLiteral)

// SQL renders v as a PostgreSQL literal, dispatching over the closed set of
// temporal value kinds.
func SQL(v temporal.Value) (string, error) {
	switch v := v.(type) {
	case temporal.LocalDate:
		return Date(v), nil
	case temporal.LocalTime:
		return Time(v)
	case temporal.LocalDateTime:
		return Timestamp(v)
	case temporal.OffsetTime:
		return TimeTZ(v)
	case temporal.OffsetDateTime:
		return OffsetTimestampTZ(v)
	case temporal.Instant:
		return TimestampTZ(v)
	case temporal.ZonedDateTime:
		return ZonedTimestampTZ(v)
	case temporal.Period:
		return Period(v)
	case temporal.Duration:
		return Duration(v)
	case temporal.Interval:
		return TimestampTZRange(v)
	case temporal.DateInterval:
		return DateRange(v), nil
	case temporal.Range[temporal.LocalDate]:
		return Range(v)
	case temporal.Range[temporal.LocalDateTime]:
		return Range(v)
	case temporal.Range[temporal.Instant]:
		return Range(v)
	case temporal.Range[temporal.ZonedDateTime]:
		return Range(v)
	case temporal.Range[temporal.OffsetDateTime]:
		return Range(v)
	default:
		return "", fmt.Errorf("%w: unsupported value kind %v", ErrLiteral, v.Kind())
	}
}
