package dedupe

// Decision is the three-valued outcome of a pairwise dupe comparison.
//
// Indeterminate means the records did not carry enough data to decide
// either way. It is distinct from NotDupe: a record without a house
// number is not known to be a different building, it is simply unknown.
type Decision int

const (
	// Indeterminate means required fields were missing on one or both sides.
	Indeterminate Decision = iota

	// NotDupe means the records are known to refer to different entities.
	NotDupe

	// Dupe means the records are known to refer to the same entity.
	Dupe
)

// String returns a human-readable label for the decision.
func (d Decision) String() string {
	switch d {
	case Dupe:
		return "dupe"
	case NotDupe:
		return "not_dupe"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}

// And combines two decisions. NotDupe dominates: one definitive mismatch
// settles the pair regardless of missing data elsewhere. Otherwise
// Indeterminate absorbs, and only Dupe AND Dupe yields Dupe.
func (d Decision) And(other Decision) Decision {
	if d == NotDupe || other == NotDupe {
		return NotDupe
	}
	if d == Indeterminate || other == Indeterminate {
		return Indeterminate
	}
	return Dupe
}

// DecisionFromBool maps a definitive boolean check onto the decision scale.
func DecisionFromBool(b bool) Decision {
	if b {
		return Dupe
	}
	return NotDupe
}
