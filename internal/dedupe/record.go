// Package dedupe decides whether two geographic entity records (street
// addresses or venues) refer to the same real-world entity, and
// generates the blocking keys that bucket likely duplicates so a corpus
// never needs full pairwise comparison.
//
// Decisions are three-valued: records missing required fields produce
// Indeterminate rather than a spurious non-match. All deduper methods
// are pure functions over immutable records and are safe for concurrent
// use; the only shared state is the read-only collaborator set wired at
// construction.
package dedupe

import "math"

// Component identifies which expansion grammar applies to a value.
// The expander treats a house number ("No 12") very differently from a
// street ("Main St") or a venue name ("St Mary's Cafe").
type Component int

const (
	ComponentName Component = iota
	ComponentHouseNumber
	ComponentStreet
	ComponentUnit
	ComponentLevel
)

// String returns the component key used in parsed-address output.
func (c Component) String() string {
	switch c {
	case ComponentName:
		return "name"
	case ComponentHouseNumber:
		return "house_number"
	case ComponentStreet:
		return "street"
	case ComponentUnit:
		return "unit"
	case ComponentLevel:
		return "level"
	default:
		return "unknown"
	}
}

// Record is a single address or venue as produced by an upstream
// ingestion/parsing layer. The engine only reads records; it never
// stores or mutates them.
//
// An empty string component means the value is unknown, not that the
// entity is known to have no such component. Coordinates are optional
// and nil when the source carried no usable location.
type Record struct {
	Name        string
	HouseNumber string
	Street      string
	Unit        string
	Floor       string

	Latitude  *float64
	Longitude *float64
}

// coordinate values within this distance of zero are treated as the
// null-island sentinel many sources use for "no geocode".
const zeroCoordEpsilon = 1e-9

// Location returns the record's coordinates when they are usable for
// blocking: both present, latitude strictly inside (-90, 90), and not
// the (0, 0) sentinel.
func (r Record) Location() (lat, lon float64, ok bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return 0, 0, false
	}
	lat, lon = *r.Latitude, *r.Longitude
	if lat >= 90.0 || lat <= -90.0 {
		return 0, 0, false
	}
	if math.Abs(lat) < zeroCoordEpsilon && math.Abs(lon) < zeroCoordEpsilon {
		return 0, 0, false
	}
	return lat, lon, true
}
