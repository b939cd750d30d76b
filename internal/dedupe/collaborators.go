package dedupe

// Collaborator capabilities the engine is wired with at construction
// time. All implementations must be deterministic, side-effect-free
// total functions over valid inputs; the engine does not retry or
// recover if one of them misbehaves.

// Expander produces the set of normalized written-form variants of an
// address component, e.g. "Main St" -> {"main street", "main saint"}.
// Implementations return at least the identity form when no rule
// applies, and nil for blank input.
type Expander interface {
	Expand(value string, component Component) []string
}

// PhoneticEncoder returns zero or more phonetic codes for a token.
// An empty result means the token has no phonetic representation
// (e.g. it is purely numeric).
type PhoneticEncoder interface {
	Encode(token string) []string
}

// GeoHasher encodes a coordinate to a fixed-precision cell id and
// enumerates the 8 adjacent cells at the same precision.
type GeoHasher interface {
	Encode(lat, lon float64, precision int) string
	Neighbors(cell string) []string
}

// Scorer computes name similarity using corpus-wide term statistics.
// A scorer is built once by the ingestion layer and shared read-only
// across any number of concurrent comparisons.
type Scorer interface {
	// TFIDFVector converts per-name term counts into TF-IDF weights.
	TFIDFVector(counts map[string]float64) map[string]float64

	// Normalize scales a weight vector to unit L2 length.
	Normalize(vec map[string]float64) map[string]float64

	// SoftSimilarity returns a cosine-like score in [0, 1] over two
	// normalized weight vectors, crediting near-matching tokens as
	// well as identical ones.
	SoftSimilarity(v1, v2 map[string]float64) float64

	// Jaccard returns set overlap over union for two token lists,
	// 0.0 when both are empty.
	Jaccard(tokens1, tokens2 []string) float64
}
