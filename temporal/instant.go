package temporal

import (
	"fmt"
	"time"
)

// Instant represents an absolute point on the UTC timeline, independent of
// any calendar or time zone. The distinguished MinInstant and MaxInstant
// values represent the unbounded past and future.
type Instant struct {
	t   time.Time
	inf InfinityModifier
}

//nolint:gochecknoglobals
var (
	// MinInstant is the distinguished unbounded-past instant. It renders as
	// the PostgreSQL -infinity token.
	MinInstant = Instant{inf: NegativeInfinity}

	// MaxInstant is the distinguished unbounded-future instant. It renders
	// as the PostgreSQL infinity token.
	MaxInstant = Instant{inf: Infinity}
)

// InstantFromUTC returns the Instant for the given UTC calendar and
// wall-clock fields. Sub-second precision is added with PlusNanoseconds.
func InstantFromUTC(year int, month time.Month, day, hour, minute, second int) Instant {
	return Instant{
		t: time.Date(year, month, day, hour, minute, second, 0, time.UTC),
	}
}

// InstantFromUnixTicks returns the Instant ticks ticks (100 nanosecond
// units) after the Unix epoch. Negative values identify instants before the
// epoch.
func InstantFromUnixTicks(ticks int64) Instant {
	return Instant{t: time.Unix(
		ticks/TicksPerSecond, (ticks%TicksPerSecond)*NanosPerTick,
	).UTC()}
}

// instantFormat represents the canonical string format for Instant values,
// always UTC. The fractional digits are trimmed of trailing zeros.
const instantFormat = "2006-01-02T15:04:05.9999999Z"

// ParseInstant parses src in the "2006-01-02T15:04:05[.fffffff]Z" format, or
// one of the -infinity/infinity tokens, into an Instant.
func ParseInstant(src string) (Instant, error) {
	switch src {
	case "-infinity":
		return MinInstant, nil
	case "infinity":
		return MaxInstant, nil
	}
	tim, err := time.Parse(instantFormat, src)
	if err != nil {
		return Instant{}, fmt.Errorf(
			"%w: Cannot parse %q as %q", ErrTemporal, src, instantFormat,
		)
	}
	return Instant{t: tim.UTC()}, nil
}

// Kind returns KindInstant.
func (Instant) Kind() Kind { return KindInstant }

// Inf reports whether i is one of the unbounded sentinel instants, and
// which.
func (i Instant) Inf() InfinityModifier { return i.inf }

// GoTime returns the underlying time.Time object in UTC.
func (i Instant) GoTime() time.Time { return i.t }

// UnixTicks returns the number of ticks (100 nanosecond units) between the
// Unix epoch and i. Sub-tick nanoseconds are discarded.
func (i Instant) UnixTicks() int64 {
	return i.t.Unix()*TicksPerSecond + int64(i.t.Nanosecond())/NanosPerTick
}

// PlusNanoseconds returns i advanced by ns nanoseconds.
func (i Instant) PlusNanoseconds(ns int64) Instant {
	if i.inf != Finite {
		return i
	}
	return Instant{t: i.t.Add(time.Duration(ns))}
}

// Ptr returns a pointer to i, for use as an Interval bound.
func (i Instant) Ptr() *Instant { return &i }

// String returns the string representation of i using the format
// "2006-01-02T15:04:05.9999999Z", or an infinity token for the sentinel
// values.
func (i Instant) String() string {
	switch i.inf {
	case NegativeInfinity:
		return "-infinity"
	case Infinity:
		return "infinity"
	default:
		return i.t.UTC().Format(instantFormat)
	}
}

// LocalDateTime returns the UTC wall-clock reading of i, dropping the zone.
// Sentinel instants propagate to the result.
func (i Instant) LocalDateTime() LocalDateTime {
	if i.inf != Finite {
		return LocalDateTime{inf: i.inf}
	}
	u := i.t.UTC()
	return LocalDateTime{t: time.Date(
		u.Year(), u.Month(), u.Day(),
		u.Hour(), u.Minute(), u.Second(), u.Nanosecond(),
		time.UTC,
	)}
}

// InZone interprets i in the named time zone z.
func (i Instant) InZone(z Zone) ZonedDateTime {
	return ZonedDateTime{i: i, z: z}
}

// Compare compares i with u. Sentinel values order before and after all
// finite instants. If i is before u, it returns -1; if i is after u, it
// returns +1; if they're the same, it returns 0.
func (i Instant) Compare(u Instant) int {
	if i.inf != u.inf {
		if i.inf < u.inf {
			return -1
		}
		return 1
	}
	if i.inf != Finite {
		return 0
	}
	return i.t.Compare(u.t)
}

// secondsToDuration converts a seconds count to a time.Duration.
func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
