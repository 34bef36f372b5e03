package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Zone represents a named time zone resolved from the zone registry: either
// a fixed-offset "UTC±HH[:MM]" zone or an IANA zone loaded by name. The ID
// the zone was looked up by is preserved for literal rendering.
type Zone struct {
	id  string
	loc *time.Location
}

// UTC is the zero-offset zone.
//
//nolint:gochecknoglobals
var UTC = Zone{id: "UTC", loc: time.UTC}

// ZoneForID looks up a zone by its string identifier. IDs of the form
// "UTC±HH" and "UTC±HH:MM" resolve to fixed-offset zones; "UTC" resolves to
// the UTC zone; anything else is resolved as an IANA time zone name.
func ZoneForID(id string) (Zone, error) {
	if id == "UTC" {
		return UTC, nil
	}
	if len(id) > 4 && strings.HasPrefix(id, "UTC") && (id[3] == '+' || id[3] == '-') {
		off, err := parseZoneOffset(id[3:])
		if err != nil {
			return Zone{}, err
		}
		return Zone{id: id, loc: time.FixedZone(id, off)}, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return Zone{}, fmt.Errorf("%w: unknown time zone %q", ErrTemporal, id)
	}
	return Zone{id: id, loc: loc}, nil
}

// MustZone is like ZoneForID but panics when the ID cannot be resolved. It
// is intended for generated code and fixed zone identifiers.
func MustZone(id string) Zone {
	z, err := ZoneForID(id)
	if err != nil {
		panic(err)
	}
	return z
}

// parseZoneOffset parses the "±HH" or "±HH:MM" tail of a fixed-offset zone
// ID into seconds.
func parseZoneOffset(src string) (int, error) {
	sign := 1
	if src[0] == '-' {
		sign = -1
	}
	hh, mm, ok := strings.Cut(src[1:], ":")
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed zone offset %q", ErrTemporal, src)
	}
	minutes := 0
	if ok {
		minutes, err = strconv.Atoi(mm)
		if err != nil {
			return 0, fmt.Errorf("%w: malformed zone offset %q", ErrTemporal, src)
		}
	}
	return sign * (hours*secondsPerHour + minutes*secondsPerMinute), nil
}

// ID returns the identifier z was looked up by.
func (z Zone) ID() string { return z.id }

// Location returns the underlying time.Location.
func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

// String returns the zone identifier.
func (z Zone) String() string { return z.id }

// ZonedDateTime represents an Instant interpreted in a named time zone,
// carrying both the zone and the resulting local wall-clock reading.
type ZonedDateTime struct {
	i Instant
	z Zone
}

// NewZonedDateTime returns the ZonedDateTime pairing i with z.
func NewZonedDateTime(i Instant, z Zone) ZonedDateTime {
	return ZonedDateTime{i: i, z: z}
}

// Kind returns KindZonedDateTime.
func (ZonedDateTime) Kind() Kind { return KindZonedDateTime }

// Instant returns the absolute point in time of zdt.
func (zdt ZonedDateTime) Instant() Instant { return zdt.i }

// Zone returns the zone of zdt.
func (zdt ZonedDateTime) Zone() Zone { return zdt.z }

// Offset returns the UTC offset in effect in the zone of zdt at its instant.
func (zdt ZonedDateTime) Offset() Offset {
	_, off := zdt.i.t.In(zdt.z.Location()).Zone()
	return OffsetFromSeconds(off)
}

// LocalDateTime returns the wall-clock reading of zdt in its zone. Sentinel
// instants propagate to the result.
func (zdt ZonedDateTime) LocalDateTime() LocalDateTime {
	if zdt.i.inf != Finite {
		return LocalDateTime{inf: zdt.i.inf}
	}
	local := zdt.i.t.In(zdt.z.Location())
	return LocalDateTime{t: time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC,
	)}
}

// String returns the local wall-clock reading of zdt followed by its offset.
func (zdt ZonedDateTime) String() string {
	if zdt.i.inf != Finite {
		return zdt.i.String()
	}
	return zdt.LocalDateTime().String() + zdt.Offset().String()
}
