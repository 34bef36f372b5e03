package literal

import (
	"fmt"

	"github.com/theory/pgtemporal/temporal"
)

// DateRange renders di as a PostgreSQL daterange literal, e.g.
// '[2020-01-01,2020-12-25]'::daterange.
func DateRange(di temporal.DateInterval) string {
	return "'[" + di.Start().String() + "," + di.End().String() + "]'::daterange"
}

// TimestampTZRange renders iv as a PostgreSQL tstzrange literal over its
// half-open instant bounds, e.g.
// '[2020-01-01T12:00:00Z,2020-01-02T12:00:00Z)'::tstzrange. Absent bounds
// render as empty text.
func TimestampTZRange(iv temporal.Interval) (string, error) {
	var start, end string
	var err error
	if iv.HasStart() {
		if start, err = instantBody(*iv.Start()); err != nil {
			return "", err
		}
	}
	if iv.HasEnd() {
		if end, err = instantBody(*iv.End()); err != nil {
			return "", err
		}
	}
	return "'[" + start + "," + end + ")'::tstzrange", nil
}

// Range renders r as a PostgreSQL range literal with the cast matching its
// element type: daterange for dates, tsrange for local date-times, and
// tstzrange for the zoned kinds, whose bounds normalize to UTC instant form.
// Declared bound inclusivity is preserved exactly; unbounded bounds render
// as empty text.
func Range[T temporal.RangeElement](r temporal.Range[T]) (string, error) {
	lower, err := rangeBound(r.Lower, r.LowerBound)
	if err != nil {
		return "", err
	}
	upper, err := rangeBound(r.Upper, r.UpperBound)
	if err != nil {
		return "", err
	}
	return "'" + openBracket(r.LowerBound) + lower + "," +
		upper + closeBracket(r.UpperBound) + "'::" + rangeCast(r), nil
}

// rangeBound renders one range bound. Timestamp bounds are double-quoted,
// date bounds are bare, and unbounded bounds are empty.
func rangeBound[T temporal.RangeElement](v T, bt temporal.BoundType) (string, error) {
	if bt == temporal.Unbounded {
		return "", nil
	}
	switch v := any(v).(type) {
	case temporal.LocalDate:
		return v.String(), nil
	case temporal.LocalDateTime:
		body, err := timestampBody(v)
		if err != nil {
			return "", err
		}
		return `"` + body + `"`, nil
	case temporal.Instant:
		body, err := instantBody(v)
		if err != nil {
			return "", err
		}
		return `"` + body + `"`, nil
	case temporal.ZonedDateTime:
		body, err := instantBody(v.Instant())
		if err != nil {
			return "", err
		}
		return `"` + body + `"`, nil
	case temporal.OffsetDateTime:
		body, err := instantBody(v.Instant())
		if err != nil {
			return "", err
		}
		return `"` + body + `"`, nil
	default:
		return "", fmt.Errorf("%w: unsupported range element %T", ErrLiteral, v)
	}
}

// rangeCast returns the PostgreSQL range type name for the element type of
// r.
func rangeCast[T temporal.RangeElement](r temporal.Range[T]) string {
	switch r.Kind() {
	case temporal.KindLocalDateRange:
		return "daterange"
	case temporal.KindLocalDateTimeRange:
		return "tsrange"
	default:
		return "tstzrange"
	}
}

func openBracket(bt temporal.BoundType) string {
	if bt == temporal.Inclusive {
		return "["
	}
	return "("
}

func closeBracket(bt temporal.BoundType) string {
	if bt == temporal.Inclusive {
		return "]"
	}
	return ")"
}
