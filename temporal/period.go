package temporal

// Period represents a calendar-relative duration decomposed into independent
// components. Components do not normalize into each other: one month is not
// thirty days, and sixty minutes are not folded into an hour. The zero value
// is the distinguished zero period.
type Period struct {
	Years        int64
	Months       int64
	Weeks        int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Nanoseconds  int64
}

// ZeroPeriod is the distinguished all-zero period.
//
//nolint:gochecknoglobals
var ZeroPeriod = Period{}

// PeriodOfYears returns a Period of n years.
func PeriodOfYears(n int64) Period { return Period{Years: n} }

// PeriodOfMonths returns a Period of n months.
func PeriodOfMonths(n int64) Period { return Period{Months: n} }

// PeriodOfWeeks returns a Period of n weeks.
func PeriodOfWeeks(n int64) Period { return Period{Weeks: n} }

// PeriodOfDays returns a Period of n days.
func PeriodOfDays(n int64) Period { return Period{Days: n} }

// PeriodOfHours returns a Period of n hours.
func PeriodOfHours(n int64) Period { return Period{Hours: n} }

// PeriodOfMinutes returns a Period of n minutes.
func PeriodOfMinutes(n int64) Period { return Period{Minutes: n} }

// PeriodOfSeconds returns a Period of n seconds.
func PeriodOfSeconds(n int64) Period { return Period{Seconds: n} }

// PeriodOfMilliseconds returns a Period of n milliseconds.
func PeriodOfMilliseconds(n int64) Period { return Period{Milliseconds: n} }

// PeriodOfNanoseconds returns a Period of n nanoseconds.
func PeriodOfNanoseconds(n int64) Period { return Period{Nanoseconds: n} }

// Kind returns KindPeriod.
func (Period) Kind() Kind { return KindPeriod }

// Plus returns the component-wise sum of p and o.
func (p Period) Plus(o Period) Period {
	return Period{
		Years:        p.Years + o.Years,
		Months:       p.Months + o.Months,
		Weeks:        p.Weeks + o.Weeks,
		Days:         p.Days + o.Days,
		Hours:        p.Hours + o.Hours,
		Minutes:      p.Minutes + o.Minutes,
		Seconds:      p.Seconds + o.Seconds,
		Milliseconds: p.Milliseconds + o.Milliseconds,
		Nanoseconds:  p.Nanoseconds + o.Nanoseconds,
	}
}

// IsZero reports whether every component of p is zero.
func (p Period) IsZero() bool { return p == ZeroPeriod }
