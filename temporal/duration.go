package temporal

// Duration represents an absolute elapsed time with no calendar semantics,
// stored as a signed count of ticks (100 nanosecond units). The zero value
// is the distinguished zero duration.
type Duration struct {
	ticks int64
}

// Tick multiples used by the Duration constructors and decomposition.
const (
	ticksPerMillisecond = TicksPerSecond / 1000
	ticksPerMinute      = 60 * TicksPerSecond
	ticksPerHour        = 60 * ticksPerMinute
)

// ZeroDuration is the distinguished zero-length duration.
//
//nolint:gochecknoglobals
var ZeroDuration = Duration{}

// DurationOfDays returns a Duration of n 24-hour days.
func DurationOfDays(n int64) Duration { return Duration{ticks: n * TicksPerDay} }

// DurationOfHours returns a Duration of n hours.
func DurationOfHours(n int64) Duration { return Duration{ticks: n * ticksPerHour} }

// DurationOfMinutes returns a Duration of n minutes.
func DurationOfMinutes(n int64) Duration { return Duration{ticks: n * ticksPerMinute} }

// DurationOfSeconds returns a Duration of n seconds.
func DurationOfSeconds(n int64) Duration { return Duration{ticks: n * TicksPerSecond} }

// DurationOfMilliseconds returns a Duration of n milliseconds.
func DurationOfMilliseconds(n int64) Duration {
	return Duration{ticks: n * ticksPerMillisecond}
}

// DurationOfTicks returns a Duration of n ticks.
func DurationOfTicks(n int64) Duration { return Duration{ticks: n} }

// Kind returns KindDuration.
func (Duration) Kind() Kind { return KindDuration }

// Plus returns the sum of d and o.
func (d Duration) Plus(o Duration) Duration {
	return Duration{ticks: d.ticks + o.ticks}
}

// Ticks returns the total tick count of d.
func (d Duration) Ticks() int64 { return d.ticks }

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool { return d.ticks == 0 }

// Days returns the whole-day component of d.
func (d Duration) Days() int64 { return d.ticks / TicksPerDay }

// HoursOfDay returns the hour component of d after whole days are removed.
func (d Duration) HoursOfDay() int64 { return (d.ticks % TicksPerDay) / ticksPerHour }

// MinutesOfHour returns the minute component of d after whole hours are
// removed.
func (d Duration) MinutesOfHour() int64 { return (d.ticks % ticksPerHour) / ticksPerMinute }

// SecondsOfMinute returns the second component of d after whole minutes are
// removed.
func (d Duration) SecondsOfMinute() int64 {
	return (d.ticks % ticksPerMinute) / TicksPerSecond
}

// SubsecondNanos returns the sub-second component of d in nanoseconds.
func (d Duration) SubsecondNanos() int64 {
	return (d.ticks % TicksPerSecond) * NanosPerTick
}
