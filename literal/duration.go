package literal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theory/pgtemporal/temporal"
)

const nanosPerSecond = 1_000_000_000

// Period renders p as a PostgreSQL interval literal in ISO-8601 form, e.g.
// INTERVAL 'P2018Y4M20DT4H3M2.000666S'. Zero-valued components are omitted;
// the milliseconds and nanoseconds components merge into the fractional
// seconds field. The zero period renders as INTERVAL 'P0D'.
func Period(p temporal.Period) (string, error) {
	if p.IsZero() {
		return "INTERVAL 'P0D'", nil
	}

	totalNs := p.Seconds*nanosPerSecond + p.Milliseconds*1_000_000 + p.Nanoseconds
	if totalNs%nanosPerMicro != 0 {
		return "", fmt.Errorf(
			"%w: %d ns is finer than microsecond precision",
			ErrUnrepresentable, totalNs,
		)
	}

	var b strings.Builder
	b.WriteByte('P')
	writeComponent(&b, p.Years, 'Y')
	writeComponent(&b, p.Months, 'M')
	writeComponent(&b, p.Weeks, 'W')
	writeComponent(&b, p.Days, 'D')
	if p.Hours != 0 || p.Minutes != 0 || totalNs != 0 {
		b.WriteByte('T')
		writeComponent(&b, p.Hours, 'H')
		writeComponent(&b, p.Minutes, 'M')
		if totalNs != 0 {
			b.WriteString(secondsField(totalNs))
			b.WriteByte('S')
		}
	}
	if b.Len() == 1 {
		// Components cancelled to nothing.
		return "INTERVAL 'P0D'", nil
	}
	return "INTERVAL '" + b.String() + "'", nil
}

// Duration renders d as a PostgreSQL interval literal in calendar-free
// ISO-8601 form, e.g. INTERVAL 'P4DT3H2M1S'. The zero duration renders as
// INTERVAL 'PT0S'.
func Duration(d temporal.Duration) (string, error) {
	if d.IsZero() {
		return "INTERVAL 'PT0S'", nil
	}
	if d.SubsecondNanos()%nanosPerMicro != 0 {
		return "", fmt.Errorf(
			"%w: %d ticks is finer than microsecond precision",
			ErrUnrepresentable, d.Ticks(),
		)
	}

	secNs := d.SecondsOfMinute()*nanosPerSecond + d.SubsecondNanos()
	var b strings.Builder
	b.WriteByte('P')
	writeComponent(&b, d.Days(), 'D')
	if d.HoursOfDay() != 0 || d.MinutesOfHour() != 0 || secNs != 0 {
		b.WriteByte('T')
		writeComponent(&b, d.HoursOfDay(), 'H')
		writeComponent(&b, d.MinutesOfHour(), 'M')
		if secNs != 0 {
			b.WriteString(secondsField(secNs))
			b.WriteByte('S')
		}
	}
	return "INTERVAL '" + b.String() + "'", nil
}

// writeComponent writes a nonzero component value and its designator.
func writeComponent(b *strings.Builder, n int64, designator byte) {
	if n == 0 {
		return
	}
	b.WriteString(strconv.FormatInt(n, 10))
	b.WriteByte(designator)
}

// secondsField renders a nanosecond total as a decimal seconds field with
// trailing zeros trimmed to microsecond resolution.
func secondsField(totalNs int64) string {
	sign := ""
	if totalNs < 0 {
		sign = "-"
		totalNs = -totalNs
	}
	sec := totalNs / nanosPerSecond
	frac := totalNs % nanosPerSecond
	if frac == 0 {
		return sign + strconv.FormatInt(sec, 10)
	}
	digits := strings.TrimRight(fmt.Sprintf("%06d", frac/nanosPerMicro), "0")
	return fmt.Sprintf("%s%d.%s", sign, sec, digits)
}
