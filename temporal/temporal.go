// Package temporal provides the closed set of immutable temporal value types
// that the pgtemporal renderers encode as PostgreSQL and Go literals.
//
// It makes every effort to duplicate PostgreSQL date and time semantics,
// including the distinguished -infinity and infinity values for dates and
// timestamps. The native sub-second resolution of every type is the tick,
// 100 nanoseconds.
package temporal

import "errors"

// ErrTemporal wraps errors returned by the temporal package.
var ErrTemporal = errors.New("temporal")

// Tick arithmetic constants.
const (
	// NanosPerTick is the number of nanoseconds in a tick, the native
	// sub-second resolution of the temporal types.
	NanosPerTick = 100

	// TicksPerSecond is the number of ticks in a second.
	TicksPerSecond = 10_000_000

	// TicksPerDay is the number of ticks in 24 hours.
	TicksPerDay = 24 * 60 * 60 * TicksPerSecond
)

// Kind identifies one of the closed set of temporal value kinds. The literal
// renderers and the mapping registry dispatch on Kind rather than on
// reflection.
type Kind uint8

// The complete set of value kinds.
const (
	KindLocalDate Kind = iota + 1
	KindLocalTime
	KindLocalDateTime
	KindOffsetTime
	KindOffsetDateTime
	KindInstant
	KindZonedDateTime
	KindPeriod
	KindDuration
	KindInterval
	KindDateInterval
	KindLocalDateRange
	KindLocalDateTimeRange
	KindInstantRange
	KindZonedDateTimeRange
	KindOffsetDateTimeRange
)

//nolint:gochecknoglobals
var kindNames = map[Kind]string{
	KindLocalDate:           "LocalDate",
	KindLocalTime:           "LocalTime",
	KindLocalDateTime:       "LocalDateTime",
	KindOffsetTime:          "OffsetTime",
	KindOffsetDateTime:      "OffsetDateTime",
	KindInstant:             "Instant",
	KindZonedDateTime:       "ZonedDateTime",
	KindPeriod:              "Period",
	KindDuration:            "Duration",
	KindInterval:            "Interval",
	KindDateInterval:        "DateInterval",
	KindLocalDateRange:      "Range[LocalDate]",
	KindLocalDateTimeRange:  "Range[LocalDateTime]",
	KindInstantRange:        "Range[Instant]",
	KindZonedDateTimeRange:  "Range[ZonedDateTime]",
	KindOffsetDateTimeRange: "Range[OffsetDateTime]",
}

// String returns the name of k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Value defines the interface shared by every temporal value kind.
type Value interface {
	// Kind returns the value kind tag used for dispatch.
	Kind() Kind
}

// InfinityModifier marks a LocalDate, LocalDateTime, or Instant as one of
// the distinguished unbounded sentinel values.
type InfinityModifier int8

// Sentinel markers. Finite is the zero value.
const (
	NegativeInfinity InfinityModifier = -1
	Finite           InfinityModifier = 0
	Infinity         InfinityModifier = 1
)
