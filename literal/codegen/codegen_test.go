package codegen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/pgtemporal/temporal"
)

func TestExpr(t *testing.T) {
	t.Parallel()

	zone := temporal.MustZone("UTC+02")
	for _, tc := range []struct {
		name  string
		value temporal.Value
		want  string
	}{
		{
			"local_date",
			temporal.NewLocalDate(2018, time.April, 20),
			`temporal.NewLocalDate(2018, time.April, 20)`,
		},
		{"min_local_date", temporal.MinLocalDate, `temporal.MinLocalDate`},
		{"max_local_date", temporal.MaxLocalDate, `temporal.MaxLocalDate`},
		{
			"local_time",
			temporal.NewLocalTime(10, 31, 33),
			`temporal.NewLocalTime(10, 31, 33)`,
		},
		{
			"local_time_millis",
			temporal.NewLocalTime(10, 31, 33).PlusMilliseconds(666),
			`temporal.NewLocalTime(10, 31, 33).PlusMilliseconds(666)`,
		},
		{
			"local_time_nanos",
			temporal.NewLocalTime(10, 31, 33).PlusNanoseconds(666_666_600),
			`temporal.NewLocalTime(10, 31, 33).PlusNanoseconds(666666600)`,
		},
		{
			"local_date_time",
			temporal.NewLocalDateTime(2018, time.April, 20, 10, 31, 33).
				PlusMilliseconds(666).PlusNanoseconds(666_000),
			`temporal.NewLocalDateTime(2018, time.April, 20, 10, 31, 33).PlusNanoseconds(666666000)`,
		},
		{
			"local_date_time_min",
			temporal.MinLocalDate.At(temporal.NewLocalTime(0, 0, 0)),
			`temporal.MinLocalDate.At(temporal.NewLocalTime(0, 0, 0))`,
		},
		{
			"offset_time",
			temporal.NewOffsetTime(
				temporal.NewLocalTime(10, 31, 33),
				temporal.OffsetFromHoursMinutes(-2, -30),
			),
			`temporal.NewOffsetTime(temporal.NewLocalTime(10, 31, 33), temporal.OffsetFromHoursMinutes(-2, -30))`,
		},
		{
			"offset_date_time",
			temporal.NewOffsetDateTime(
				temporal.NewLocalDateTime(2018, time.April, 20, 10, 31, 33),
				temporal.OffsetFromHours(2),
			),
			`temporal.NewOffsetDateTime(temporal.NewLocalDateTime(2018, time.April, 20, 10, 31, 33), temporal.OffsetFromHours(2))`,
		},
		{
			"offset_raw_seconds",
			temporal.NewOffsetTime(
				temporal.NewLocalTime(10, 31, 33), temporal.OffsetFromSeconds(59),
			),
			`temporal.NewOffsetTime(temporal.NewLocalTime(10, 31, 33), temporal.OffsetFromSeconds(59))`,
		},
		{
			"instant",
			temporal.InstantFromUTC(2018, time.April, 20, 8, 31, 33).
				PlusNanoseconds(666_666_000),
			`temporal.InstantFromUnixTicks(15242130936666660)`,
		},
		{"min_instant", temporal.MinInstant, `temporal.MinInstant`},
		{"max_instant", temporal.MaxInstant, `temporal.MaxInstant`},
		{
			"sub_tick_instant",
			temporal.InstantFromUTC(2018, time.April, 20, 8, 31, 33).
				PlusNanoseconds(666_666_650),
			`temporal.InstantFromUTC(2018, time.April, 20, 8, 31, 33).PlusNanoseconds(666666650)`,
		},
		{
			"zoned_date_time",
			temporal.InstantFromUTC(2018, time.April, 20, 8, 31, 33).
				PlusNanoseconds(666_666_000).InZone(zone),
			`temporal.InstantFromUnixTicks(15242130936666660).InZone(temporal.MustZone("UTC+02"))`,
		},
		{
			"period",
			temporal.PeriodOfHours(4).
				Plus(temporal.PeriodOfMinutes(3)).
				Plus(temporal.PeriodOfSeconds(2)).
				Plus(temporal.PeriodOfNanoseconds(666_000)),
			`temporal.PeriodOfHours(4).Plus(temporal.PeriodOfMinutes(3)).Plus(temporal.PeriodOfSeconds(2)).Plus(temporal.PeriodOfNanoseconds(666000))`,
		},
		{"zero_period", temporal.ZeroPeriod, `temporal.ZeroPeriod`},
		{
			"full_period",
			temporal.Period{
				Years: 1, Months: 2, Weeks: 3, Days: 4,
				Hours: 5, Minutes: 6, Seconds: 7,
				Milliseconds: 8, Nanoseconds: 9,
			},
			`temporal.PeriodOfYears(1).Plus(temporal.PeriodOfMonths(2)).Plus(temporal.PeriodOfWeeks(3)).Plus(temporal.PeriodOfDays(4)).Plus(temporal.PeriodOfHours(5)).Plus(temporal.PeriodOfMinutes(6)).Plus(temporal.PeriodOfSeconds(7)).Plus(temporal.PeriodOfMilliseconds(8)).Plus(temporal.PeriodOfNanoseconds(9))`,
		},
		{
			"duration",
			temporal.DurationOfDays(4).
				Plus(temporal.DurationOfHours(3)).
				Plus(temporal.DurationOfMinutes(2)).
				Plus(temporal.DurationOfSeconds(1)),
			`temporal.DurationOfDays(4).Plus(temporal.DurationOfHours(3)).Plus(temporal.DurationOfMinutes(2)).Plus(temporal.DurationOfSeconds(1))`,
		},
		{
			"duration_subsecond",
			temporal.DurationOfMilliseconds(666).Plus(temporal.DurationOfTicks(6660)),
			`temporal.DurationOfMilliseconds(666).Plus(temporal.DurationOfTicks(6660))`,
		},
		{"zero_duration", temporal.ZeroDuration, `temporal.ZeroDuration`},
		{
			"interval",
			temporal.NewInterval(
				temporal.InstantFromUTC(2020, time.January, 1, 12, 0, 0).Ptr(),
				temporal.InstantFromUTC(2020, time.January, 2, 12, 0, 0).Ptr(),
			),
			`temporal.NewInterval(temporal.InstantFromUnixTicks(15778800000000000).Ptr(), temporal.InstantFromUnixTicks(15779664000000000).Ptr())`,
		},
		{
			"interval_open_end",
			temporal.NewInterval(
				temporal.InstantFromUTC(2020, time.January, 1, 12, 0, 0).Ptr(), nil,
			),
			`temporal.NewInterval(temporal.InstantFromUnixTicks(15778800000000000).Ptr(), nil)`,
		},
		{
			"interval_open_start",
			temporal.NewInterval(
				nil, temporal.InstantFromUTC(2020, time.January, 2, 12, 0, 0).Ptr(),
			),
			`temporal.NewInterval(nil, temporal.InstantFromUnixTicks(15779664000000000).Ptr())`,
		},
		{
			"date_interval",
			temporal.NewDateInterval(
				temporal.NewLocalDate(2020, time.January, 1),
				temporal.NewLocalDate(2020, time.December, 25),
			),
			`temporal.NewDateInterval(temporal.NewLocalDate(2020, time.January, 1), temporal.NewLocalDate(2020, time.December, 25))`,
		},
		{
			"closed_range",
			temporal.NewRange(
				temporal.NewLocalDate(2020, time.January, 1),
				temporal.NewLocalDate(2020, time.December, 25),
			),
			`temporal.NewRange(temporal.NewLocalDate(2020, time.January, 1), temporal.NewLocalDate(2020, time.December, 25))`,
		},
		{
			"half_open_range",
			temporal.NewRangeBounds(
				temporal.NewLocalDate(2020, time.January, 1),
				temporal.NewLocalDate(2020, time.December, 25),
				temporal.Inclusive, temporal.Exclusive,
			),
			`temporal.NewRangeBounds(temporal.NewLocalDate(2020, time.January, 1), temporal.NewLocalDate(2020, time.December, 25), temporal.Inclusive, temporal.Exclusive)`,
		},
		{
			"instant_range",
			temporal.NewRange(
				temporal.InstantFromUTC(2020, time.January, 1, 12, 0, 0),
				temporal.InstantFromUTC(2020, time.January, 2, 12, 0, 0),
			),
			`temporal.NewRange(temporal.InstantFromUnixTicks(15778800000000000), temporal.InstantFromUnixTicks(15779664000000000))`,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			got, err := Expr(tc.value)
			r.NoError(err)
			a.Equal(tc.want, got)

			// Rendering is deterministic and idempotent.
			again, err := Expr(tc.value)
			r.NoError(err)
			a.Equal(got, again)
		})
	}
}

// bogusValue fakes a kind outside the closed set.
type bogusValue struct{}

func (bogusValue) Kind() temporal.Kind { return temporal.Kind(0) }

func TestExprUnsupported(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	_, err := Expr(bogusValue{})
	r.Error(err)
	r.ErrorIs(err, ErrGenerate)
}
