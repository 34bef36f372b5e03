package temporal

// BoundType declares how one end of a Range treats its bound value. The
// model follows the PostgreSQL range types: each bound is independently
// inclusive, exclusive, or unbounded.
type BoundType byte

// The bound types.
const (
	Inclusive BoundType = 'i'
	Exclusive BoundType = 'e'
	Unbounded BoundType = 'U'
)

// RangeElement constrains the temporal kinds PostgreSQL range types are
// defined over.
type RangeElement interface {
	LocalDate | LocalDateTime | Instant | ZonedDateTime | OffsetDateTime
}

// Range represents a generic interval over an orderable temporal type,
// carrying its own bound inclusivity. A bound whose type is Unbounded
// ignores its value.
type Range[T RangeElement] struct {
	Lower      T
	Upper      T
	LowerBound BoundType
	UpperBound BoundType
}

// NewRange returns the closed-closed range [lower, upper].
func NewRange[T RangeElement](lower, upper T) Range[T] {
	return Range[T]{
		Lower:      lower,
		Upper:      upper,
		LowerBound: Inclusive,
		UpperBound: Inclusive,
	}
}

// NewRangeBounds returns a range over [lower, upper] with explicit bound
// types.
func NewRangeBounds[T RangeElement](lower, upper T, lb, ub BoundType) Range[T] {
	return Range[T]{Lower: lower, Upper: upper, LowerBound: lb, UpperBound: ub}
}

// Kind returns the range kind matching the element type of r.
func (r Range[T]) Kind() Kind {
	switch any(r.Lower).(type) {
	case LocalDate:
		return KindLocalDateRange
	case LocalDateTime:
		return KindLocalDateTimeRange
	case Instant:
		return KindInstantRange
	case ZonedDateTime:
		return KindZonedDateTimeRange
	default:
		return KindOffsetDateTimeRange
	}
}
