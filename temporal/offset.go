package temporal

import "fmt"

// Offset represents a fixed displacement from UTC in seconds. It may be
// negative, zero, or a fraction of an hour.
type Offset struct {
	seconds int
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
)

// OffsetFromHours returns the Offset for a whole number of hours.
func OffsetFromHours(hours int) Offset {
	return Offset{seconds: hours * secondsPerHour}
}

// OffsetFromHoursMinutes returns the Offset for hours and minutes. Both
// carry their own sign; a western offset uses negative values for both.
func OffsetFromHoursMinutes(hours, minutes int) Offset {
	return Offset{seconds: hours*secondsPerHour + minutes*secondsPerMinute}
}

// OffsetFromSeconds returns the Offset for a raw number of seconds.
func OffsetFromSeconds(seconds int) Offset {
	return Offset{seconds: seconds}
}

// Seconds returns the displacement of o in seconds.
func (o Offset) Seconds() int { return o.seconds }

// IsZero reports whether o is the UTC offset.
func (o Offset) IsZero() bool { return o.seconds == 0 }

// WholeHours reports whether o is a whole number of hours.
func (o Offset) WholeHours() bool { return o.seconds%secondsPerHour == 0 }

// WholeMinutes reports whether o is a whole number of minutes.
func (o Offset) WholeMinutes() bool { return o.seconds%secondsPerMinute == 0 }

// String returns the PostgreSQL representation of o: "Z" for zero, else the
// shortest of "-07", "-07:00", and "-07:00:00" that preserves o.
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	sign := "+"
	abs := o.seconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	h := abs / secondsPerHour
	m := (abs % secondsPerHour) / secondsPerMinute
	s := abs % secondsPerMinute
	switch {
	case s != 0:
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	case m != 0:
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	default:
		return fmt.Sprintf("%s%02d", sign, h)
	}
}
