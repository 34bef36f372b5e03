// Package mapping resolves temporal value kinds against PostgreSQL store
// types.
//
// The compatibility rules form a static registry built once at package
// initialization and never mutated: an explicit table over the closed kind
// set, keyed by (kind, store type). Resolution is the entry point a
// type-mapping service calls before rendering literals; everything else
// (query translation, change tracking, drivers) stays with the caller.
package mapping

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps" // Switch to maps when go 1.22 dropped

	"github.com/theory/pgtemporal/literal"
	"github.com/theory/pgtemporal/temporal"
)

// ErrMapping wraps errors returned by the mapping package.
var ErrMapping = errors.New("mapping")

// ErrNoMapping is returned when no store type mapping exists for a
// requested kind and store type combination. Callers treat it as "not
// applicable" rather than a failure.
var ErrNoMapping = fmt.Errorf("%w: no mapping found", ErrMapping)

// Canonical store type names.
const (
	TypeDate        = "date"
	TypeTime        = "time without time zone"
	TypeTimeTZ      = "time with time zone"
	TypeTimestamp   = "timestamp without time zone"
	TypeTimestampTZ = "timestamp with time zone"
	TypeInterval    = "interval"
	TypeDateRange   = "daterange"
	TypeTsRange     = "tsrange"
	TypeTstzRange   = "tstzrange"
)

// compat classifies one (kind, store type) pair.
type compat uint8

const (
	allowed compat = iota + 1
	// legacyAllowed marks the Instant-into-timestamp resolution kept only so
	// that schema snapshots predating the timestamptz default continue to
	// resolve.
	legacyAllowed
)

//nolint:gochecknoglobals
var (
	// aliases maps the short store type tags onto the canonical names.
	aliases = map[string]string{
		"timestamptz": TypeTimestampTZ,
		"timestamp":   TypeTimestamp,
		"timetz":      TypeTimeTZ,
		"time":        TypeTime,
	}

	// kindDefaults holds the default store type per value kind.
	kindDefaults = map[temporal.Kind]string{
		temporal.KindLocalDate:           TypeDate,
		temporal.KindLocalTime:           TypeTime,
		temporal.KindOffsetTime:          TypeTimeTZ,
		temporal.KindLocalDateTime:       TypeTimestamp,
		temporal.KindInstant:             TypeTimestampTZ,
		temporal.KindZonedDateTime:       TypeTimestampTZ,
		temporal.KindOffsetDateTime:      TypeTimestampTZ,
		temporal.KindPeriod:              TypeInterval,
		temporal.KindDuration:            TypeInterval,
		temporal.KindInterval:            TypeTstzRange,
		temporal.KindDateInterval:        TypeDateRange,
		temporal.KindLocalDateRange:      TypeDateRange,
		temporal.KindLocalDateTimeRange:  TypeTsRange,
		temporal.KindInstantRange:        TypeTstzRange,
		temporal.KindZonedDateTimeRange:  TypeTstzRange,
		temporal.KindOffsetDateTimeRange: TypeTstzRange,
	}

	// storeDefaults holds the default value kind per store type.
	storeDefaults = map[string]temporal.Kind{
		TypeDate:        temporal.KindLocalDate,
		TypeTime:        temporal.KindLocalTime,
		TypeTimeTZ:      temporal.KindOffsetTime,
		TypeTimestamp:   temporal.KindLocalDateTime,
		TypeTimestampTZ: temporal.KindInstant,
		TypeInterval:    temporal.KindPeriod,
		TypeDateRange:   temporal.KindDateInterval,
		TypeTsRange:     temporal.KindLocalDateTimeRange,
		TypeTstzRange:   temporal.KindInterval,
	}

	// compatTable is the full (kind, store type) compatibility table. Local
	// (zone-less) kinds never map to zoned store types; the only extra entry
	// beyond the defaults is the legacy Instant-into-timestamp resolution.
	compatTable = buildCompat()
)

func buildCompat() map[temporal.Kind]map[string]compat {
	table := make(map[temporal.Kind]map[string]compat, len(kindDefaults))
	for kind, st := range kindDefaults {
		table[kind] = map[string]compat{st: allowed}
	}
	table[temporal.KindInstant][TypeTimestamp] = legacyAllowed
	return table
}

// Mapping pairs a value kind with the PostgreSQL store type it maps to.
type Mapping struct {
	Kind      temporal.Kind
	StoreType string
}

// Normalize returns the canonical form of a store type tag, resolving the
// short tags (timestamptz, timetz, ...) to the spelled-out names.
func Normalize(storeType string) string {
	st := strings.ToLower(strings.TrimSpace(storeType))
	if canonical, ok := aliases[st]; ok {
		return canonical
	}
	return st
}

// StoreTypes returns the canonical names of every store type the registry
// knows, sorted.
func StoreTypes() []string {
	types := maps.Keys(storeDefaults)
	sort.Strings(types)
	return types
}

// ForKind returns the default mapping for kind.
func ForKind(kind temporal.Kind) (Mapping, error) {
	st, ok := kindDefaults[kind]
	if !ok {
		return Mapping{}, fmt.Errorf("%w for kind %v", ErrNoMapping, kind)
	}
	return Mapping{Kind: kind, StoreType: st}, nil
}

// ForStoreType returns the default mapping for a store type tag.
func ForStoreType(storeType string) (Mapping, error) {
	st := Normalize(storeType)
	kind, ok := storeDefaults[st]
	if !ok {
		return Mapping{}, fmt.Errorf(
			"%w for store type %q (known store types: %s)",
			ErrNoMapping, storeType, strings.Join(StoreTypes(), ", "),
		)
	}
	return Mapping{Kind: kind, StoreType: st}, nil
}

// Resolve returns the mapping for the given kind and store type tag, or
// ErrNoMapping when the combination is not allowed. The legacy resolution
// of Instant against timestamp yields store type "timestamp without time
// zone" while keeping the Instant kind.
func Resolve(kind temporal.Kind, storeType string) (Mapping, error) {
	if storeType == "" {
		return ForKind(kind)
	}
	st := Normalize(storeType)
	if compatTable[kind][st] == 0 {
		return Mapping{}, fmt.Errorf(
			"%w for kind %v and store type %q", ErrNoMapping, kind, storeType,
		)
	}
	return Mapping{Kind: kind, StoreType: st}, nil
}

// Legacy reports whether m is the backward-compatibility resolution of
// Instant into a zone-less timestamp column.
func (m Mapping) Legacy() bool {
	return compatTable[m.Kind][m.StoreType] == legacyAllowed
}

// SQLLiteral renders v as a PostgreSQL literal for the store type of m. The
// kind of v must match the kind of m. Under the legacy Instant-to-timestamp
// mapping the literal carries the UTC wall clock with no zone suffix.
func (m Mapping) SQLLiteral(v temporal.Value) (string, error) {
	if v.Kind() != m.Kind {
		return "", fmt.Errorf(
			"%w: value kind %v does not match mapping kind %v",
			ErrMapping, v.Kind(), m.Kind,
		)
	}
	if m.Legacy() {
		i, ok := v.(temporal.Instant)
		if !ok {
			return "", fmt.Errorf(
				"%w: value kind %v does not match mapping kind %v",
				ErrMapping, v.Kind(), m.Kind,
			)
		}
		return literal.Timestamp(i.LocalDateTime())
	}
	return literal.SQL(v)
}
