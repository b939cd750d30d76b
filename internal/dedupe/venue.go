package dedupe

import (
	"iter"
	"sort"

	"github.com/geo-dedupe/internal/debug"
)

// DefaultVenueGeohashPrecision is the venue blocking cell size. Venues
// from different sources are geocoded less consistently than parcel
// addresses, so the cell is one level coarser than the address default;
// the wider geographic tolerance is compensated by name matching.
const DefaultVenueGeohashPrecision = 6

// VenueDeduper extends address deduplication with venue-name comparison
// and a phonetic name dimension in its blocking keys.
type VenueDeduper struct {
	*AddressDeduper
	names    *NameDeduper
	phonetic PhoneticEncoder
}

// NewVenueDeduper wires a venue deduper with its collaborators.
func NewVenueDeduper(expander Expander, hasher GeoHasher, phonetic PhoneticEncoder, nameCfg NameConfig, opts Options) *VenueDeduper {
	if opts.GeohashPrecision <= 0 {
		opts.GeohashPrecision = DefaultVenueGeohashPrecision
	}
	return &VenueDeduper{
		AddressDeduper: NewAddressDeduper(expander, hasher, opts),
		names:          NewNameDeduper(nameCfg),
		phonetic:       phonetic,
	}
}

// Names returns the underlying name deduper.
func (v *VenueDeduper) Names() *NameDeduper {
	return v.names
}

// VenueDupeOptions tunes a single venue comparison.
type VenueDupeOptions struct {
	// Scorer is the shared corpus TF-IDF model. When nil, only exact
	// expansion equality can establish a name match.
	Scorer Scorer

	// NameDupeThreshold overrides the configured soft-similarity cutoff
	// when positive.
	NameDupeThreshold float64

	// WithUnit additionally requires the sub-building fields to match.
	WithUnit bool
}

// IsDupe decides whether two venue records are the same venue.
//
// Missing names make the pair Indeterminate before anything else is
// considered. A non-Dupe address decision is returned as is: the name
// is irrelevant when the buildings differ or are unknown, and an
// Indeterminate address propagates even when the names match exactly.
func (v *VenueDeduper) IsDupe(a1, a2 Record, opts VenueDupeOptions) Decision {
	if a1.Name == "" || a2.Name == "" {
		debug.Output(v.trace, "venue dupe indeterminate: name=%q/%q", a1.Name, a2.Name)
		return Indeterminate
	}

	sameAddress := v.IsAddressDupe(a1, a2)
	if sameAddress != Dupe {
		return sameAddress
	}

	if opts.WithUnit && !v.IsSubBuildingDupe(a1, a2) {
		debug.Output(v.trace, "venue dupe rejected on sub-building fields")
		return NotDupe
	}

	return sameAddress.And(DecisionFromBool(v.sameName(a1.Name, a2.Name, opts)))
}

func (v *VenueDeduper) sameName(name1, name2 string, opts VenueDupeOptions) bool {
	if v.IsExactNameDupe(name1, name2) {
		return true
	}
	if opts.Scorer == nil {
		return false
	}

	tokens1 := v.names.ContentTokens(name1)
	tokens2 := v.names.ContentTokens(name2)
	if v.names.DiscriminativeMismatch(tokens1, tokens2) {
		debug.Output(v.trace, "name soft match blocked by discriminative word")
		return false
	}

	threshold := opts.NameDupeThreshold
	if threshold <= 0 {
		threshold = v.names.Config().DupeThreshold
	}
	sim := v.names.CompareInMemory(tokens1, tokens2, opts.Scorer)
	debug.Output(v.trace, "name soft similarity %.4f (threshold %.2f)", sim, threshold)
	return sim >= threshold
}

// IsExactNameDupe reports whether the two names share an expansion.
// This absorbs spelling and abbreviation variants of the name itself,
// e.g. "St." vs "Saint" or "&" vs "and".
func (v *VenueDeduper) IsExactNameDupe(name1, name2 string) bool {
	return v.ComponentEquals(name1, name2, ComponentName, true)
}

// NameWordHashes returns the phonetic blocking tokens for a venue name:
// for every token of every expansion, its phonetic codes, or the
// literal token when no code exists (numbers, single letters). Minor
// misspellings and phonetic variants ("Cafe" vs "Kafe") land in the
// same bucket. The result is sorted for deterministic key output.
func (v *VenueDeduper) NameWordHashes(name string) []string {
	set := make(map[string]struct{})
	for _, expansion := range v.expander.Expand(name, ComponentName) {
		for _, token := range v.names.Tokenize(expansion) {
			codes := v.phonetic.Encode(token)
			if len(codes) == 0 {
				set[token] = struct{}{}
				continue
			}
			for _, code := range codes {
				set[code] = struct{}{}
			}
		}
	}

	hashes := make([]string, 0, len(set))
	for h := range set {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)
	return hashes
}

// ComponentExpansions returns the venue blocking dimensions: phonetic
// name hashes, then street expansions, then house-number expansions.
// Nil unless name, street, and house number are all present.
func (v *VenueDeduper) ComponentExpansions(rec Record) [][]string {
	if rec.Name == "" {
		return nil
	}
	address := v.AddressDeduper.ComponentExpansions(rec)
	if address == nil {
		return nil
	}
	return append([][]string{v.NameWordHashes(rec.Name)}, address...)
}

// NearDupeHashes returns the lazy blocking-key sequence for a venue,
// spanning geo cell x name phonetic token x street expansion x
// house-number expansion. A precision <= 0 selects the venue default.
func (v *VenueDeduper) NearDupeHashes(rec Record, precision int) iter.Seq[string] {
	return v.blockingKeys(rec, precision, v.ComponentExpansions(rec))
}
