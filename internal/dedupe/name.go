package dedupe

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NameConfig tunes name comparison for a locale or domain. Values are
// read-only after construction; use the preset constructors and adjust
// fields on the returned copy before wiring it into a deduper.
type NameConfig struct {
	// Stopwords are tokens ignored during comparison, e.g. "the".
	Stopwords map[string]struct{}

	// DiscriminativeWords are tokens whose one-sided presence forces a
	// non-dupe, e.g. directional qualifiers: "North Cafe" and "Cafe"
	// should not soft-match however similar the rest is.
	DiscriminativeWords map[string]struct{}

	// Replacements maps lowercased tokens to a canonical form,
	// e.g. "saint" -> "st".
	Replacements map[string]string

	// DupeThreshold is the soft-TF-IDF similarity above which two names
	// are considered duplicates.
	DupeThreshold float64

	// IgnoreParentheticals strips "(...)" substrings before tokenizing,
	// e.g. "Kangaroo Point (NSW)".
	IgnoreParentheticals bool
}

// DefaultDupeThreshold is the name similarity cutoff used when a config
// does not override it.
const DefaultDupeThreshold = 0.9

// DefaultNameConfig returns the locale-neutral configuration.
func DefaultNameConfig() NameConfig {
	return NameConfig{
		Stopwords:           map[string]struct{}{},
		DiscriminativeWords: map[string]struct{}{},
		Replacements:        map[string]string{},
		DupeThreshold:       DefaultDupeThreshold,
	}
}

// EnglishVenueNameConfig returns a preset tuned for English venue names:
// articles are ignored, directional qualifiers discriminate, and common
// written variants collapse to one form.
func EnglishVenueNameConfig() NameConfig {
	return NameConfig{
		Stopwords: map[string]struct{}{
			"the": {}, "a": {}, "an": {},
		},
		DiscriminativeWords: map[string]struct{}{
			"north": {}, "south": {}, "east": {}, "west": {},
			"upper": {}, "lower": {}, "old": {}, "new": {},
		},
		Replacements: map[string]string{
			"saint": "st",
			"and":   "&",
			"mount": "mt",
		},
		DupeThreshold:        DefaultDupeThreshold,
		IgnoreParentheticals: true,
	}
}

// NameDeduper tokenizes and compares geographic entity names, e.g. for
// matching venues across databases. Non-ideographic names use
// soft-TF-IDF similarity through a shared corpus model; ideographic
// names use exact-concatenation and Jaccard comparison, since word
// boundary and frequency statistics are unreliable for those scripts.
type NameDeduper struct {
	cfg NameConfig
}

// NewNameDeduper returns a name deduper for the given configuration.
func NewNameDeduper(cfg NameConfig) *NameDeduper {
	if cfg.DupeThreshold <= 0 {
		cfg.DupeThreshold = DefaultDupeThreshold
	}
	return &NameDeduper{cfg: cfg}
}

// Config returns the deduper's configuration.
func (n *NameDeduper) Config() NameConfig {
	return n.cfg
}

var parenRegex = regexp.MustCompile(`\(.*?\)`)

// Tokenize splits a name on whitespace.
func (n *NameDeduper) Tokenize(s string) []string {
	return strings.Fields(s)
}

// ContentTokens returns the comparison tokens for a name: NFKC
// normalized, lowercased, parentheticals stripped when configured,
// replacements applied and stopwords removed.
func (n *NameDeduper) ContentTokens(s string) []string {
	s = norm.NFKC.String(s)
	if n.cfg.IgnoreParentheticals {
		s = parenRegex.ReplaceAllString(s, "")
	}
	raw := n.Tokenize(strings.ToLower(s))
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if replacement, ok := n.cfg.Replacements[t]; ok {
			t = replacement
		}
		if _, ok := n.cfg.Stopwords[t]; ok {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// CompareIdeographs compares two names from scripts where frequency
// statistics do not help. If the token streams are identical once
// rejoined without spaces the names are equal; otherwise the score is
// the scorer's Jaccard overlap of the token sets.
func (n *NameDeduper) CompareIdeographs(s1, s2 string, scorer Scorer) float64 {
	tokens1 := n.ContentTokens(s1)
	tokens2 := n.ContentTokens(s2)

	if strings.Join(tokens1, "") == strings.Join(tokens2, "") {
		return 1.0
	}
	return scorer.Jaccard(tokens1, tokens2)
}

// CompareInMemory scores two tokenized names against a shared TF-IDF
// model: per-name term counts become normalized weight vectors and the
// result is their soft-TF-IDF similarity, which credits near-matching
// tokens so "Cabbage Town" and "Cabbagetown" score close without being
// identical. The score is symmetric in its token arguments.
func (n *NameDeduper) CompareInMemory(tokens1, tokens2 []string, scorer Scorer) float64 {
	v1 := scorer.Normalize(scorer.TFIDFVector(termCounts(tokens1)))
	v2 := scorer.Normalize(scorer.TFIDFVector(termCounts(tokens2)))
	return scorer.SoftSimilarity(v1, v2)
}

// DiscriminativeMismatch reports whether a configured discriminative
// word appears on exactly one side. Such a mismatch blocks soft name
// matching: "East Cafe Luna" is not "Cafe Luna".
func (n *NameDeduper) DiscriminativeMismatch(tokens1, tokens2 []string) bool {
	return n.oneSidedDiscriminative(tokens1, tokens2) || n.oneSidedDiscriminative(tokens2, tokens1)
}

func (n *NameDeduper) oneSidedDiscriminative(tokens1, tokens2 []string) bool {
	set2 := make(map[string]struct{}, len(tokens2))
	for _, t := range tokens2 {
		set2[t] = struct{}{}
	}
	for _, t := range tokens1 {
		if _, discriminative := n.cfg.DiscriminativeWords[t]; !discriminative {
			continue
		}
		if _, ok := set2[t]; !ok {
			return true
		}
	}
	return false
}

func termCounts(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
