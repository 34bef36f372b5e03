package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOffsetString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		offset Offset
		str    string
	}{
		{"zero", OffsetFromSeconds(0), "Z"},
		{"whole_hours", OffsetFromHours(2), "+02"},
		{"negative_hours", OffsetFromHours(-7), "-07"},
		{"whole_minutes", OffsetFromHoursMinutes(5, 30), "+05:30"},
		{"negative_minutes", OffsetFromHoursMinutes(-2, -30), "-02:30"},
		{"raw_seconds", OffsetFromSeconds(-(2*60*60 + 30*60 + 5)), "-02:30:05"},
		{"small_positive", OffsetFromSeconds(59), "+00:00:59"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			a.Equal(tc.str, tc.offset.String())
		})
	}
}

func TestOffsetGranularity(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.True(OffsetFromHours(2).WholeHours())
	a.True(OffsetFromHours(2).WholeMinutes())
	a.False(OffsetFromHoursMinutes(2, 30).WholeHours())
	a.True(OffsetFromHoursMinutes(2, 30).WholeMinutes())
	a.False(OffsetFromSeconds(90).WholeMinutes())
	a.True(OffsetFromSeconds(0).IsZero())
	a.False(OffsetFromSeconds(1).IsZero())

	// The hour and minute constructors agree with the seconds constructor.
	a.Equal(OffsetFromSeconds(7200), OffsetFromHours(2))
	a.Equal(OffsetFromSeconds(-9000), OffsetFromHoursMinutes(-2, -30))
}

func TestOffsetTimeString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(
		"10:31:33-02:30",
		NewOffsetTime(NewLocalTime(10, 31, 33), OffsetFromHoursMinutes(-2, -30)).String(),
	)
	a.Equal(
		"10:31:33.666666Z",
		NewOffsetTime(
			NewLocalTime(10, 31, 33).PlusNanoseconds(666_666_000),
			OffsetFromSeconds(0),
		).String(),
	)
}

func TestOffsetDateTimeString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(
		"2018-04-20T10:31:33+02",
		NewOffsetDateTime(
			NewLocalDateTime(2018, time.April, 20, 10, 31, 33), OffsetFromHours(2),
		).String(),
	)
}
