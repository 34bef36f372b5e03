package temporal

import (
	"fmt"
	"time"
)

// LocalDate represents a calendar date in the proleptic Gregorian calendar,
// with no time of day and no time zone. The distinguished MinLocalDate and
// MaxLocalDate values represent the unbounded past and future.
type LocalDate struct {
	t   time.Time
	inf InfinityModifier
}

//nolint:gochecknoglobals
var (
	// MinLocalDate is the distinguished unbounded-past date. It renders as
	// the PostgreSQL -infinity token.
	MinLocalDate = LocalDate{inf: NegativeInfinity}

	// MaxLocalDate is the distinguished unbounded-future date. It renders as
	// the PostgreSQL infinity token.
	MaxLocalDate = LocalDate{inf: Infinity}
)

// NewLocalDate returns the LocalDate for the given calendar day.
func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// dateFormat represents the canonical string format for LocalDate values.
const dateFormat = "2006-01-02"

// ParseLocalDate parses src in the "2006-01-02" format, or one of the
// -infinity/infinity tokens, into a LocalDate.
func ParseLocalDate(src string) (LocalDate, error) {
	switch src {
	case "-infinity":
		return MinLocalDate, nil
	case "infinity":
		return MaxLocalDate, nil
	}
	tim, err := time.Parse(dateFormat, src)
	if err != nil {
		return LocalDate{}, fmt.Errorf(
			"%w: Cannot parse %q as %q", ErrTemporal, src, dateFormat,
		)
	}
	return LocalDate{t: tim}, nil
}

// Kind returns KindLocalDate.
func (LocalDate) Kind() Kind { return KindLocalDate }

// Year returns the year of d.
func (d LocalDate) Year() int { return d.t.Year() }

// Month returns the month of d.
func (d LocalDate) Month() time.Month { return d.t.Month() }

// Day returns the day of the month of d.
func (d LocalDate) Day() int { return d.t.Day() }

// Inf reports whether d is one of the unbounded sentinel dates, and which.
func (d LocalDate) Inf() InfinityModifier { return d.inf }

// GoTime returns the underlying time.Time object, at midnight UTC.
func (d LocalDate) GoTime() time.Time { return d.t }

// String returns the string representation of d using the format
// "2006-01-02", or an infinity token for the sentinel values.
func (d LocalDate) String() string {
	switch d.inf {
	case NegativeInfinity:
		return "-infinity"
	case Infinity:
		return "infinity"
	default:
		return d.t.Format(dateFormat)
	}
}

// At combines d with a time of day into a LocalDateTime. Sentinel dates
// propagate to the result.
func (d LocalDate) At(t LocalTime) LocalDateTime {
	if d.inf != Finite {
		return LocalDateTime{inf: d.inf}
	}
	return LocalDateTime{t: time.Date(
		d.t.Year(), d.t.Month(), d.t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)}
}

// Compare compares d with u. Sentinel values order before and after all
// finite dates. If d is before u, it returns -1; if d is after u, it returns
// +1; if they're the same, it returns 0.
func (d LocalDate) Compare(u LocalDate) int {
	if d.inf != u.inf {
		if d.inf < u.inf {
			return -1
		}
		return 1
	}
	if d.inf != Finite {
		return 0
	}
	return d.t.Compare(u.t)
}
