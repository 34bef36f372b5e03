package temporal

import (
	"fmt"
	"time"
)

// LocalTime represents a time of day with no date and no time zone, at tick
// (100 nanosecond) resolution.
type LocalTime struct {
	t time.Time
}

// NewLocalTime returns the LocalTime for the given wall-clock fields.
// Sub-second precision is added with PlusMilliseconds or PlusNanoseconds.
func NewLocalTime(hour, minute, second int) LocalTime {
	return LocalTime{t: time.Date(0, 1, 1, hour, minute, second, 0, time.UTC)}
}

// timeFormat represents the canonical string format for LocalTime values.
// The fractional digits are trimmed of trailing zeros.
const timeFormat = "15:04:05.9999999"

// ParseLocalTime parses src in the "15:04:05[.fffffff]" format into a
// LocalTime.
func ParseLocalTime(src string) (LocalTime, error) {
	tim, err := time.Parse(timeFormat, src)
	if err != nil {
		return LocalTime{}, fmt.Errorf(
			"%w: Cannot parse %q as %q", ErrTemporal, src, timeFormat,
		)
	}
	return LocalTime{t: time.Date(
		0, 1, 1,
		tim.Hour(), tim.Minute(), tim.Second(), tim.Nanosecond(),
		time.UTC,
	)}, nil
}

// Kind returns KindLocalTime.
func (LocalTime) Kind() Kind { return KindLocalTime }

// Hour returns the hour of t.
func (t LocalTime) Hour() int { return t.t.Hour() }

// Minute returns the minute of t.
func (t LocalTime) Minute() int { return t.t.Minute() }

// Second returns the second of t.
func (t LocalTime) Second() int { return t.t.Second() }

// Nanosecond returns the sub-second component of t in nanoseconds.
func (t LocalTime) Nanosecond() int { return t.t.Nanosecond() }

// GoTime returns the underlying time.Time object.
func (t LocalTime) GoTime() time.Time { return t.t }

// PlusMilliseconds returns t advanced by ms milliseconds.
func (t LocalTime) PlusMilliseconds(ms int) LocalTime {
	return LocalTime{t: t.t.Add(time.Duration(ms) * time.Millisecond)}
}

// PlusNanoseconds returns t advanced by ns nanoseconds.
func (t LocalTime) PlusNanoseconds(ns int64) LocalTime {
	return LocalTime{t: t.t.Add(time.Duration(ns))}
}

// String returns the string representation of t using the format
// "15:04:05.9999999".
func (t LocalTime) String() string {
	return t.t.Format(timeFormat)
}

// WithOffset combines t with a fixed UTC offset into an OffsetTime.
func (t LocalTime) WithOffset(o Offset) OffsetTime {
	return OffsetTime{t: t, o: o}
}

// Compare compares t with u. If t is before u, it returns -1; if t is after
// u, it returns +1; if they're the same, it returns 0.
func (t LocalTime) Compare(u LocalTime) int {
	return t.t.Compare(u.t)
}
