package literal

import (
	"fmt"

	"github.com/theory/pgtemporal/temporal"
)

const (
	// nanosPerMicro is the precision floor of the PostgreSQL date/time
	// types: nanoseconds finer than this cannot round-trip.
	nanosPerMicro = 1000

	// timeText renders a time of day with up to six fractional digits,
	// trailing zeros trimmed.
	timeText = "15:04:05.999999"

	// timestampText renders a date and time of day with up to six fractional
	// digits, trailing zeros trimmed.
	timestampText = "2006-01-02T15:04:05.999999"
)

// Date renders d as a PostgreSQL date literal, e.g. DATE '2018-04-20'. The
// sentinel dates render as DATE '-infinity' and DATE 'infinity'.
func Date(d temporal.LocalDate) string {
	return "DATE '" + d.String() + "'"
}

// Time renders t as a PostgreSQL time literal, e.g. TIME '10:31:33.666666'.
// Fractional seconds are omitted when zero and trimmed of trailing zeros
// otherwise.
func Time(t temporal.LocalTime) (string, error) {
	if err := microAligned(t.Nanosecond()); err != nil {
		return "", err
	}
	return "TIME '" + t.GoTime().Format(timeText) + "'", nil
}

// TimeTZ renders t as a PostgreSQL time with time zone literal, e.g.
// TIMETZ '10:31:33-02:30'. A zero offset renders as Z.
func TimeTZ(t temporal.OffsetTime) (string, error) {
	local := t.TimeOfDay()
	if err := microAligned(local.Nanosecond()); err != nil {
		return "", err
	}
	return "TIMETZ '" + local.GoTime().Format(timeText) + t.Offset().String() + "'", nil
}

// Timestamp renders dt as a PostgreSQL timestamp literal, e.g.
// TIMESTAMP '2018-04-20T10:31:33.666666'. Sentinel values render as the
// infinity tokens.
func Timestamp(dt temporal.LocalDateTime) (string, error) {
	body, err := timestampBody(dt)
	if err != nil {
		return "", err
	}
	return "TIMESTAMP '" + body + "'", nil
}

// TimestampTZ renders i as a PostgreSQL timestamp with time zone literal in
// UTC, e.g. TIMESTAMPTZ '2018-04-20T10:31:33.666666Z'. Sentinel values
// render as the infinity tokens.
func TimestampTZ(i temporal.Instant) (string, error) {
	body, err := instantBody(i)
	if err != nil {
		return "", err
	}
	return "TIMESTAMPTZ '" + body + "'", nil
}

// ZonedTimestampTZ renders zdt as a PostgreSQL timestamp with time zone
// literal carrying the wall-clock reading in its zone and the explicit
// numeric offset, e.g. TIMESTAMPTZ '2018-04-20T10:31:33.666666+02'.
func ZonedTimestampTZ(zdt temporal.ZonedDateTime) (string, error) {
	if inf := zdt.Instant().Inf(); inf != temporal.Finite {
		return "TIMESTAMPTZ '" + zdt.Instant().String() + "'", nil
	}
	local, err := timestampBody(zdt.LocalDateTime())
	if err != nil {
		return "", err
	}
	return "TIMESTAMPTZ '" + local + zdt.Offset().String() + "'", nil
}

// OffsetTimestampTZ renders dt as a PostgreSQL timestamp with time zone
// literal carrying its local reading and explicit numeric offset.
func OffsetTimestampTZ(dt temporal.OffsetDateTime) (string, error) {
	if dt.LocalDateTime().Inf() != temporal.Finite {
		return "TIMESTAMPTZ '" + dt.LocalDateTime().String() + "'", nil
	}
	local, err := timestampBody(dt.LocalDateTime())
	if err != nil {
		return "", err
	}
	return "TIMESTAMPTZ '" + local + dt.Offset().String() + "'", nil
}

// timestampBody renders the quoted body of a timestamp literal: the
// wall-clock fields or an infinity token.
func timestampBody(dt temporal.LocalDateTime) (string, error) {
	if dt.Inf() != temporal.Finite {
		return dt.String(), nil
	}
	if err := microAligned(dt.GoTime().Nanosecond()); err != nil {
		return "", err
	}
	return dt.GoTime().Format(timestampText), nil
}

// instantBody renders the quoted body of a timestamptz literal in UTC: the
// wall-clock fields suffixed with Z, or an infinity token.
func instantBody(i temporal.Instant) (string, error) {
	if i.Inf() != temporal.Finite {
		return i.String(), nil
	}
	if err := microAligned(i.GoTime().Nanosecond()); err != nil {
		return "", err
	}
	return i.GoTime().UTC().Format(timestampText) + "Z", nil
}

// microAligned reports sub-microsecond precision as unrepresentable.
func microAligned(ns int) error {
	if ns%nanosPerMicro != 0 {
		return fmt.Errorf(
			"%w: %d ns is finer than microsecond precision",
			ErrUnrepresentable, ns,
		)
	}
	return nil
}
