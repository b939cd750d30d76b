package dedupe

import (
	"iter"
	"strings"

	"github.com/geo-dedupe/internal/debug"
)

const (
	// DefaultGeohashPrecision is the cell size used for street-address
	// blocking. 7 characters is roughly a 150m x 150m cell.
	DefaultGeohashPrecision = 7

	// DefaultMaxBlockingKeys bounds the Cartesian product of geo cells
	// and component expansions for a single record. Pathological inputs
	// (very ambiguous abbreviations, number ranges) can otherwise
	// explode the candidate set; generation truncates at the cap.
	DefaultMaxBlockingKeys = 10000

	// KeyDelimiter joins the fields of a blocking key.
	KeyDelimiter = "|"
)

// Options configures a deduper. The zero value selects defaults.
type Options struct {
	// GeohashPrecision is the blocking cell precision in characters.
	// 0 selects the entity-type default (7 for addresses, 6 for venues).
	GeohashPrecision int

	// MaxBlockingKeys caps keys emitted per record. 0 selects
	// DefaultMaxBlockingKeys; negative disables the cap.
	MaxBlockingKeys int

	// Debug enables decision tracing to the standard logger.
	Debug bool
}

// AddressDeduper decides whether two address records refer to the same
// building, and generates the blocking keys used to bucket candidate
// pairs. All methods are safe for concurrent use.
type AddressDeduper struct {
	expander  Expander
	hasher    GeoHasher
	precision int
	maxKeys   int
	trace     bool
}

// NewAddressDeduper wires an address deduper with its collaborators.
func NewAddressDeduper(expander Expander, hasher GeoHasher, opts Options) *AddressDeduper {
	precision := opts.GeohashPrecision
	if precision <= 0 {
		precision = DefaultGeohashPrecision
	}
	maxKeys := opts.MaxBlockingKeys
	if maxKeys == 0 {
		maxKeys = DefaultMaxBlockingKeys
	}
	return &AddressDeduper{
		expander:  expander,
		hasher:    hasher,
		precision: precision,
		maxKeys:   maxKeys,
		trace:     opts.Debug,
	}
}

// ComponentEquals reports whether two component values share at least
// one normalized expansion. Expansion surfaces equivalent written forms
// ("St" vs "Street"); when normalizeWhitespace is set, all whitespace
// is stripped from each expansion first so "No 12" and "No12" cannot
// produce a false negative.
func (d *AddressDeduper) ComponentEquals(c1, c2 string, component Component, normalizeWhitespace bool) bool {
	set1 := d.expansionSet(c1, component, normalizeWhitespace)
	if len(set1) == 0 {
		return false
	}
	for _, e := range d.expander.Expand(c2, component) {
		if normalizeWhitespace {
			e = stripWhitespace(e)
		}
		if _, ok := set1[e]; ok {
			return true
		}
	}
	return false
}

func (d *AddressDeduper) expansionSet(value string, component Component, normalizeWhitespace bool) map[string]struct{} {
	expansions := d.expander.Expand(value, component)
	set := make(map[string]struct{}, len(expansions))
	for _, e := range expansions {
		if normalizeWhitespace {
			e = stripWhitespace(e)
		}
		set[e] = struct{}{}
	}
	return set
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// IsAddressDupe compares street and house number. It is Indeterminate
// unless both records carry both fields; with the required fields
// present the outcome is definitive either way.
func (d *AddressDeduper) IsAddressDupe(a1, a2 Record) Decision {
	if a1.Street == "" || a2.Street == "" || a1.HouseNumber == "" || a2.HouseNumber == "" {
		debug.Output(d.trace, "address dupe indeterminate: street=%q/%q house=%q/%q",
			a1.Street, a2.Street, a1.HouseNumber, a2.HouseNumber)
		return Indeterminate
	}

	sameStreet := d.ComponentEquals(a1.Street, a2.Street, ComponentStreet, true)
	sameHouseNumber := d.ComponentEquals(a1.HouseNumber, a2.HouseNumber, ComponentHouseNumber, true)
	debug.Output(d.trace, "address dupe: street=%v house=%v", sameStreet, sameHouseNumber)

	return DecisionFromBool(sameStreet && sameHouseNumber)
}

// subBuildingFields lists the sub-building components in comparison order.
var subBuildingFields = []struct {
	get       func(Record) string
	component Component
}{
	{func(r Record) string { return r.Unit }, ComponentUnit},
	{func(r Record) string { return r.Floor }, ComponentLevel},
}

// IsSubBuildingDupe compares unit and floor. Each field passes when both
// sides match via expansion or both sides are absent; a value on only
// one side disqualifies the pair.
func (d *AddressDeduper) IsSubBuildingDupe(a1, a2 Record) bool {
	for _, f := range subBuildingFields {
		v1, v2 := f.get(a1), f.get(a2)
		switch {
		case v1 != "" && v2 != "":
			if !d.ComponentEquals(v1, v2, f.component, true) {
				return false
			}
		case v1 != "" || v2 != "":
			return false
		}
	}
	return true
}

// IsDupe combines the address decision with, when withUnit is set, the
// sub-building check. A non-Dupe address decision is returned as is: an
// Indeterminate address stays Indeterminate regardless of the
// sub-building fields, which only ever demote a Dupe.
func (d *AddressDeduper) IsDupe(a1, a2 Record, withUnit bool) Decision {
	result := d.IsAddressDupe(a1, a2)
	if result != Dupe {
		return result
	}
	if withUnit {
		result = result.And(DecisionFromBool(d.IsSubBuildingDupe(a1, a2)))
	}
	return result
}

// ComponentExpansions returns the blocking dimensions for a street
// address: street expansions then house-number expansions. Nil when
// either component is missing.
func (d *AddressDeduper) ComponentExpansions(rec Record) [][]string {
	if rec.Street == "" || rec.HouseNumber == "" {
		return nil
	}
	return [][]string{
		d.expander.Expand(rec.Street, ComponentStreet),
		d.expander.Expand(rec.HouseNumber, ComponentHouseNumber),
	}
}

// NearDupeHashes returns a lazy, restartable sequence of blocking keys
// for the record. A precision <= 0 selects the configured default.
//
// Keys join one geo cell with one expansion per blocking dimension. The
// record's cell and all 8 neighbors are included so true duplicates
// geocoded just across a cell boundary still share a bucket; this
// over-generates on purpose and callers must deduplicate keys across
// records. No keys are produced for records without a usable location
// or without all blocking components.
func (d *AddressDeduper) NearDupeHashes(rec Record, precision int) iter.Seq[string] {
	return d.blockingKeys(rec, precision, d.ComponentExpansions(rec))
}

func (d *AddressDeduper) blockingKeys(rec Record, precision int, dims [][]string) iter.Seq[string] {
	if precision <= 0 {
		precision = d.precision
	}
	return func(yield func(string) bool) {
		if len(dims) == 0 {
			return
		}
		for _, dim := range dims {
			if len(dim) == 0 {
				return
			}
		}
		lat, lon, ok := rec.Location()
		if !ok {
			debug.Output(d.trace, "no usable location, no blocking keys")
			return
		}
		defer debug.Timing(d.trace, "blocking key generation")()

		cell := d.hasher.Encode(lat, lon, precision)
		cells := append([]string{cell}, d.hasher.Neighbors(cell)...)

		emitted := 0
		fields := make([]string, len(dims)+1)
		var product func(depth int) bool
		product = func(depth int) bool {
			if depth == len(dims) {
				if d.maxKeys > 0 && emitted >= d.maxKeys {
					return false
				}
				emitted++
				return yield(strings.Join(fields, KeyDelimiter))
			}
			for _, v := range dims[depth] {
				fields[depth+1] = v
				if !product(depth + 1) {
					return false
				}
			}
			return true
		}
		for _, c := range cells {
			fields[0] = c
			if !product(0) {
				return
			}
		}
	}
}
