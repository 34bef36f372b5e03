package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/pgtemporal/temporal"
)

func TestPeriod(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		period temporal.Period
		want   string
	}{
		{
			"time_only",
			temporal.PeriodOfHours(4).
				Plus(temporal.PeriodOfMinutes(3)).
				Plus(temporal.PeriodOfSeconds(2)).
				Plus(temporal.PeriodOfNanoseconds(666_000)),
			"INTERVAL 'PT4H3M2.000666S'",
		},
		{
			"full",
			temporal.Period{
				Years: 2018, Months: 4, Days: 20,
				Hours: 4, Minutes: 3, Seconds: 2, Nanoseconds: 666_000,
			},
			"INTERVAL 'P2018Y4M20DT4H3M2.000666S'",
		},
		{
			"calendar_only",
			temporal.PeriodOfMonths(1).Plus(temporal.PeriodOfDays(30)),
			"INTERVAL 'P1M30D'",
		},
		{"weeks", temporal.PeriodOfWeeks(2), "INTERVAL 'P2W'"},
		{"zero", temporal.ZeroPeriod, "INTERVAL 'P0D'"},
		{
			"cancelled_to_zero",
			temporal.PeriodOfSeconds(1).Plus(temporal.PeriodOfMilliseconds(-1000)),
			"INTERVAL 'P0D'",
		},
		{
			"millis_merge_into_seconds",
			temporal.PeriodOfSeconds(2).Plus(temporal.PeriodOfMilliseconds(666)),
			"INTERVAL 'PT2.666S'",
		},
		{
			"fraction_without_seconds",
			temporal.PeriodOfMilliseconds(1),
			"INTERVAL 'PT0.001S'",
		},
		{"negative_hours", temporal.PeriodOfHours(-4), "INTERVAL 'PT-4H'"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			got, err := Period(tc.period)
			r.NoError(err)
			a.Equal(tc.want, got)
		})
	}
}

func TestPeriodSubMicrosecond(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	_, err := Period(temporal.PeriodOfNanoseconds(666_600))
	r.Error(err)
	r.ErrorIs(err, ErrUnrepresentable)
}

func TestDuration(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		dur  temporal.Duration
		want string
	}{
		{
			"full",
			temporal.DurationOfDays(4).
				Plus(temporal.DurationOfHours(3)).
				Plus(temporal.DurationOfMinutes(2)).
				Plus(temporal.DurationOfSeconds(1)),
			"INTERVAL 'P4DT3H2M1S'",
		},
		{"days_only", temporal.DurationOfDays(4), "INTERVAL 'P4D'"},
		{
			"time_only",
			temporal.DurationOfHours(4).
				Plus(temporal.DurationOfMinutes(3)).
				Plus(temporal.DurationOfSeconds(2)).
				Plus(temporal.DurationOfTicks(6660)),
			"INTERVAL 'PT4H3M2.000666S'",
		},
		{
			"hours_fold_into_days",
			temporal.DurationOfHours(25),
			"INTERVAL 'P1DT1H'",
		},
		{"millis", temporal.DurationOfMilliseconds(666), "INTERVAL 'PT0.666S'"},
		{"zero", temporal.ZeroDuration, "INTERVAL 'PT0S'"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			got, err := Duration(tc.dur)
			r.NoError(err)
			a.Equal(tc.want, got)
		})
	}
}

func TestDurationSubMicrosecond(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	_, err := Duration(temporal.DurationOfTicks(6666))
	r.Error(err)
	r.ErrorIs(err, ErrUnrepresentable)
}
