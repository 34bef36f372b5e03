package temporal

// OffsetTime represents a time of day with a fixed UTC offset.
type OffsetTime struct {
	t LocalTime
	o Offset
}

// NewOffsetTime returns the OffsetTime combining t and o.
func NewOffsetTime(t LocalTime, o Offset) OffsetTime {
	return OffsetTime{t: t, o: o}
}

// Kind returns KindOffsetTime.
func (OffsetTime) Kind() Kind { return KindOffsetTime }

// TimeOfDay returns the local time of day of t.
func (t OffsetTime) TimeOfDay() LocalTime { return t.t }

// Offset returns the UTC offset of t.
func (t OffsetTime) Offset() Offset { return t.o }

// String returns the string representation of t: the local time of day
// followed by the offset.
func (t OffsetTime) String() string {
	return t.t.String() + t.o.String()
}

// OffsetDateTime represents a date and time of day with a fixed UTC offset.
type OffsetDateTime struct {
	dt LocalDateTime
	o  Offset
}

// NewOffsetDateTime returns the OffsetDateTime combining dt and o.
func NewOffsetDateTime(dt LocalDateTime, o Offset) OffsetDateTime {
	return OffsetDateTime{dt: dt, o: o}
}

// Kind returns KindOffsetDateTime.
func (OffsetDateTime) Kind() Kind { return KindOffsetDateTime }

// LocalDateTime returns the local date and time of dt.
func (dt OffsetDateTime) LocalDateTime() LocalDateTime { return dt.dt }

// Offset returns the UTC offset of dt.
func (dt OffsetDateTime) Offset() Offset { return dt.o }

// Instant returns the absolute point in time dt identifies.
func (dt OffsetDateTime) Instant() Instant {
	if dt.dt.inf != Finite {
		return Instant{inf: dt.dt.inf}
	}
	return Instant{t: dt.dt.t.Add(-secondsToDuration(dt.o.seconds))}
}

// String returns the string representation of dt: the local date and time
// followed by the offset.
func (dt OffsetDateTime) String() string {
	if dt.dt.inf != Finite {
		return dt.dt.String()
	}
	return dt.dt.String() + dt.o.String()
}
