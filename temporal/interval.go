package temporal

// Interval represents a half-open range [start, end) of instants. Either
// bound may be nil, leaving that side of the interval unbounded.
type Interval struct {
	start *Instant
	end   *Instant
}

// NewInterval returns the Interval [start, end). Pass nil to leave a bound
// open-ended.
func NewInterval(start, end *Instant) Interval {
	return Interval{start: start, end: end}
}

// Kind returns KindInterval.
func (Interval) Kind() Kind { return KindInterval }

// Start returns the inclusive start bound, or nil when unbounded.
func (iv Interval) Start() *Instant { return iv.start }

// End returns the exclusive end bound, or nil when unbounded.
func (iv Interval) End() *Instant { return iv.end }

// HasStart reports whether the start bound is present.
func (iv Interval) HasStart() bool { return iv.start != nil }

// HasEnd reports whether the end bound is present.
func (iv Interval) HasEnd() bool { return iv.end != nil }

// DateInterval represents a closed range [start, end] of calendar dates.
type DateInterval struct {
	start LocalDate
	end   LocalDate
}

// NewDateInterval returns the DateInterval [start, end].
func NewDateInterval(start, end LocalDate) DateInterval {
	return DateInterval{start: start, end: end}
}

// Kind returns KindDateInterval.
func (DateInterval) Kind() Kind { return KindDateInterval }

// Start returns the inclusive start date.
func (di DateInterval) Start() LocalDate { return di.start }

// End returns the inclusive end date.
func (di DateInterval) End() LocalDate { return di.end }
