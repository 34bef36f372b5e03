package temporal

import (
	"fmt"
	"time"
)

// LocalDateTime represents a calendar date and time of day with no time
// zone. Composing a sentinel LocalDate with a time of day yields a sentinel
// LocalDateTime.
type LocalDateTime struct {
	t   time.Time
	inf InfinityModifier
}

// NewLocalDateTime returns the LocalDateTime for the given calendar and
// wall-clock fields. Sub-second precision is added with PlusMilliseconds or
// PlusNanoseconds.
func NewLocalDateTime(year int, month time.Month, day, hour, minute, second int) LocalDateTime {
	return LocalDateTime{
		t: time.Date(year, month, day, hour, minute, second, 0, time.UTC),
	}
}

// timestampFormat represents the canonical string format for LocalDateTime
// values. The fractional digits are trimmed of trailing zeros.
const timestampFormat = "2006-01-02T15:04:05.9999999"

// ParseLocalDateTime parses src in the "2006-01-02T15:04:05[.fffffff]"
// format, or one of the -infinity/infinity tokens, into a LocalDateTime.
func ParseLocalDateTime(src string) (LocalDateTime, error) {
	switch src {
	case "-infinity":
		return LocalDateTime{inf: NegativeInfinity}, nil
	case "infinity":
		return LocalDateTime{inf: Infinity}, nil
	}
	tim, err := time.Parse(timestampFormat, src)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf(
			"%w: Cannot parse %q as %q", ErrTemporal, src, timestampFormat,
		)
	}
	return LocalDateTime{t: tim}, nil
}

// Kind returns KindLocalDateTime.
func (LocalDateTime) Kind() Kind { return KindLocalDateTime }

// Date returns the calendar date of dt.
func (dt LocalDateTime) Date() LocalDate {
	if dt.inf != Finite {
		return LocalDate{inf: dt.inf}
	}
	return NewLocalDate(dt.t.Year(), dt.t.Month(), dt.t.Day())
}

// TimeOfDay returns the time of day of dt.
func (dt LocalDateTime) TimeOfDay() LocalTime {
	return NewLocalTime(dt.t.Hour(), dt.t.Minute(), dt.t.Second()).
		PlusNanoseconds(int64(dt.t.Nanosecond()))
}

// Inf reports whether dt is one of the unbounded sentinel values, and which.
func (dt LocalDateTime) Inf() InfinityModifier { return dt.inf }

// GoTime returns the underlying time.Time object.
func (dt LocalDateTime) GoTime() time.Time { return dt.t }

// PlusMilliseconds returns dt advanced by ms milliseconds.
func (dt LocalDateTime) PlusMilliseconds(ms int) LocalDateTime {
	if dt.inf != Finite {
		return dt
	}
	return LocalDateTime{t: dt.t.Add(time.Duration(ms) * time.Millisecond)}
}

// PlusNanoseconds returns dt advanced by ns nanoseconds.
func (dt LocalDateTime) PlusNanoseconds(ns int64) LocalDateTime {
	if dt.inf != Finite {
		return dt
	}
	return LocalDateTime{t: dt.t.Add(time.Duration(ns))}
}

// String returns the string representation of dt using the format
// "2006-01-02T15:04:05.9999999", or an infinity token for the sentinel
// values.
func (dt LocalDateTime) String() string {
	switch dt.inf {
	case NegativeInfinity:
		return "-infinity"
	case Infinity:
		return "infinity"
	default:
		return dt.t.Format(timestampFormat)
	}
}

// WithOffset combines dt with a fixed UTC offset into an OffsetDateTime.
func (dt LocalDateTime) WithOffset(o Offset) OffsetDateTime {
	return OffsetDateTime{dt: dt, o: o}
}

// Compare compares dt with u. Sentinel values order before and after all
// finite values. If dt is before u, it returns -1; if dt is after u, it
// returns +1; if they're the same, it returns 0.
func (dt LocalDateTime) Compare(u LocalDateTime) int {
	if dt.inf != u.inf {
		if dt.inf < u.inf {
			return -1
		}
		return 1
	}
	if dt.inf != Finite {
		return 0
	}
	return dt.t.Compare(u.t)
}
