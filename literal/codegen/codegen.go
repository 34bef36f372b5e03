// Package codegen renders temporal values as Go expressions that
// reconstruct an equal value, for use by code-generation tooling such as
// migration-script generators.
//
// Expressions are built with jennifer and rendered in their GoString form,
// so the output is a plain expression snippet, e.g.
// temporal.NewLocalDate(2018, time.April, 20).
package codegen

import (
	"errors"
	"fmt"
	"time"

	"github.com/dave/jennifer/jen"
	"github.com/samber/lo"

	"github.com/theory/pgtemporal/temporal"
)

// ErrGenerate wraps errors returned by the codegen package.
var ErrGenerate = errors.New("codegen")

// temporalPkg is the import path of the package whose constructors the
// generated expressions call.
const temporalPkg = "github.com/theory/pgtemporal/temporal"

const (
	nanosPerMilli = 1_000_000
	ticksPerMilli = 10_000
)

// Expr renders v as a Go expression reconstructing an equal value,
// dispatching over the closed set of temporal value kinds.
func Expr(v temporal.Value) (string, error) {
	st, err := expr(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%#v", st), nil
}

func expr(v temporal.Value) (*jen.Statement, error) {
	switch v := v.(type) {
	case temporal.LocalDate:
		return localDate(v), nil
	case temporal.LocalTime:
		return localTime(v), nil
	case temporal.LocalDateTime:
		return localDateTime(v), nil
	case temporal.OffsetTime:
		return qual("NewOffsetTime").Call(localTime(v.TimeOfDay()), offset(v.Offset())), nil
	case temporal.OffsetDateTime:
		return qual("NewOffsetDateTime").Call(localDateTime(v.LocalDateTime()), offset(v.Offset())), nil
	case temporal.Instant:
		return instant(v), nil
	case temporal.ZonedDateTime:
		return instant(v.Instant()).Dot("InZone").Call(
			qual("MustZone").Call(jen.Lit(v.Zone().ID())),
		), nil
	case temporal.Period:
		return period(v), nil
	case temporal.Duration:
		return duration(v), nil
	case temporal.Interval:
		return interval(v), nil
	case temporal.DateInterval:
		return qual("NewDateInterval").Call(localDate(v.Start()), localDate(v.End())), nil
	case temporal.Range[temporal.LocalDate]:
		return rangeExpr(v)
	case temporal.Range[temporal.LocalDateTime]:
		return rangeExpr(v)
	case temporal.Range[temporal.Instant]:
		return rangeExpr(v)
	case temporal.Range[temporal.ZonedDateTime]:
		return rangeExpr(v)
	case temporal.Range[temporal.OffsetDateTime]:
		return rangeExpr(v)
	default:
		return nil, fmt.Errorf(
			"%w: unsupported value kind %v", ErrGenerate, v.Kind(),
		)
	}
}

// qual returns a qualified reference into the temporal package.
func qual(name string) *jen.Statement {
	return jen.Qual(temporalPkg, name)
}

func localDate(d temporal.LocalDate) *jen.Statement {
	switch d.Inf() {
	case temporal.NegativeInfinity:
		return qual("MinLocalDate")
	case temporal.Infinity:
		return qual("MaxLocalDate")
	default:
		return qual("NewLocalDate").Call(
			jen.Lit(d.Year()), month(d.Month()), jen.Lit(d.Day()),
		)
	}
}

func localTime(t temporal.LocalTime) *jen.Statement {
	base := qual("NewLocalTime").Call(
		jen.Lit(t.Hour()), jen.Lit(t.Minute()), jen.Lit(t.Second()),
	)
	return subsecond(base, t.Nanosecond())
}

func localDateTime(dt temporal.LocalDateTime) *jen.Statement {
	switch dt.Inf() {
	case temporal.NegativeInfinity:
		return qual("MinLocalDate").Dot("At").Call(localTime(temporal.NewLocalTime(0, 0, 0)))
	case temporal.Infinity:
		return qual("MaxLocalDate").Dot("At").Call(localTime(temporal.NewLocalTime(0, 0, 0)))
	}
	gt := dt.GoTime()
	base := qual("NewLocalDateTime").Call(
		jen.Lit(gt.Year()), month(gt.Month()), jen.Lit(gt.Day()),
		jen.Lit(gt.Hour()), jen.Lit(gt.Minute()), jen.Lit(gt.Second()),
	)
	return subsecond(base, gt.Nanosecond())
}

// subsecond appends the most compact additive adjustment reproducing a
// sub-second remainder: nothing for zero, whole milliseconds when possible,
// else the raw nanosecond count.
func subsecond(base *jen.Statement, ns int) *jen.Statement {
	switch {
	case ns == 0:
		return base
	case ns%nanosPerMilli == 0:
		return base.Dot("PlusMilliseconds").Call(jen.Lit(ns / nanosPerMilli))
	default:
		return base.Dot("PlusNanoseconds").Call(jen.Lit(ns))
	}
}

// offset picks whichever offset constructor yields the simplest call:
// whole hours, then whole minutes, then raw seconds.
func offset(o temporal.Offset) *jen.Statement {
	sec := o.Seconds()
	switch {
	case o.WholeHours():
		return qual("OffsetFromHours").Call(jen.Lit(sec / (60 * 60)))
	case o.WholeMinutes():
		return qual("OffsetFromHoursMinutes").Call(
			jen.Lit(sec/(60*60)), jen.Lit((sec%(60*60))/60),
		)
	default:
		return qual("OffsetFromSeconds").Call(jen.Lit(sec))
	}
}

func instant(i temporal.Instant) *jen.Statement {
	switch i.Inf() {
	case temporal.NegativeInfinity:
		return qual("MinInstant")
	case temporal.Infinity:
		return qual("MaxInstant")
	}
	gt := i.GoTime()
	if gt.Nanosecond()%temporal.NanosPerTick == 0 {
		// Lit would render a typed int64 conversion, so pass an int to keep
		// the tick count a bare constant.
		return qual("InstantFromUnixTicks").Call(jen.Lit(int(i.UnixTicks())))
	}
	base := qual("InstantFromUTC").Call(
		jen.Lit(gt.Year()), month(gt.Month()), jen.Lit(gt.Day()),
		jen.Lit(gt.Hour()), jen.Lit(gt.Minute()), jen.Lit(gt.Second()),
	)
	return base.Dot("PlusNanoseconds").Call(jen.Lit(gt.Nanosecond()))
}

// periodTerm names one per-component Period constructor.
type periodTerm struct {
	n    int64
	ctor string
}

// period renders a left-to-right sum of one constructor term per nonzero
// component, in canonical component order. The zero period renders as the
// ZeroPeriod sentinel.
func period(p temporal.Period) *jen.Statement {
	terms := lo.Filter([]periodTerm{
		{p.Years, "PeriodOfYears"},
		{p.Months, "PeriodOfMonths"},
		{p.Weeks, "PeriodOfWeeks"},
		{p.Days, "PeriodOfDays"},
		{p.Hours, "PeriodOfHours"},
		{p.Minutes, "PeriodOfMinutes"},
		{p.Seconds, "PeriodOfSeconds"},
		{p.Milliseconds, "PeriodOfMilliseconds"},
		{p.Nanoseconds, "PeriodOfNanoseconds"},
	}, func(t periodTerm, _ int) bool { return t.n != 0 })
	if len(terms) == 0 {
		return qual("ZeroPeriod")
	}

	st := qual(terms[0].ctor).Call(jen.Lit(int(terms[0].n)))
	for _, t := range terms[1:] {
		st = st.Dot("Plus").Call(qual(t.ctor).Call(jen.Lit(int(t.n))))
	}
	return st
}

// duration renders a left-to-right sum over the canonical duration
// components {days, hours, minutes, seconds, milliseconds}, with any
// sub-millisecond remainder as a final ticks term. The zero duration
// renders as the ZeroDuration sentinel.
func duration(d temporal.Duration) *jen.Statement {
	subMs := d.SubsecondNanos() / nanosPerMilli
	remTicks := d.Ticks() % ticksPerMilli
	terms := lo.Filter([]periodTerm{
		{d.Days(), "DurationOfDays"},
		{d.HoursOfDay(), "DurationOfHours"},
		{d.MinutesOfHour(), "DurationOfMinutes"},
		{d.SecondsOfMinute(), "DurationOfSeconds"},
		{subMs, "DurationOfMilliseconds"},
		{remTicks, "DurationOfTicks"},
	}, func(t periodTerm, _ int) bool { return t.n != 0 })
	if len(terms) == 0 {
		return qual("ZeroDuration")
	}

	st := qual(terms[0].ctor).Call(jen.Lit(int(terms[0].n)))
	for _, t := range terms[1:] {
		st = st.Dot("Plus").Call(qual(t.ctor).Call(jen.Lit(int(t.n))))
	}
	return st
}

// interval renders each present bound as a typed pointer to its
// reconstructed instant and each absent bound as an explicit nil slot.
func interval(iv temporal.Interval) *jen.Statement {
	start := jen.Nil()
	if iv.HasStart() {
		start = instant(*iv.Start()).Dot("Ptr").Call()
	}
	end := jen.Nil()
	if iv.HasEnd() {
		end = instant(*iv.End()).Dot("Ptr").Call()
	}
	return qual("NewInterval").Call(start, end)
}

func rangeExpr[T temporal.RangeElement](r temporal.Range[T]) (*jen.Statement, error) {
	lower, err := expr(any(r.Lower).(temporal.Value))
	if err != nil {
		return nil, err
	}
	upper, err := expr(any(r.Upper).(temporal.Value))
	if err != nil {
		return nil, err
	}
	if r.LowerBound == temporal.Inclusive && r.UpperBound == temporal.Inclusive {
		return qual("NewRange").Call(lower, upper), nil
	}
	return qual("NewRangeBounds").Call(
		lower, upper, bound(r.LowerBound), bound(r.UpperBound),
	), nil
}

func bound(bt temporal.BoundType) *jen.Statement {
	switch bt {
	case temporal.Exclusive:
		return qual("Exclusive")
	case temporal.Unbounded:
		return qual("Unbounded")
	default:
		return qual("Inclusive")
	}
}

func month(m time.Month) *jen.Statement {
	return jen.Qual("time", m.String())
}
