// Package similarity provides the term-weighting and string-similarity
// measures used for name comparison: a corpus TF-IDF model, L2 vector
// normalization, soft-TF-IDF scoring over Jaro-Winkler token matches,
// and Jaccard set overlap.
package similarity

import (
	"math"

	"github.com/xrash/smetrics"
)

// Jaro-Winkler parameters for token-level matching within soft-TF-IDF.
const (
	jaroWinklerBoostThreshold = 0.7
	jaroWinklerPrefixSize     = 4

	// softMatchThreshold is the minimum token similarity that counts as
	// a soft match. Below it, tokens contribute nothing to the score.
	softMatchThreshold = 0.9
)

// TFIDF holds corpus-wide document frequencies. Build it once over the
// tokenized corpus, then share it read-only across any number of
// concurrent comparisons; AddDoc must not be called after that.
type TFIDF struct {
	docFreq map[string]int
	docs    int
}

// NewTFIDF returns an empty model. With no corpus behind it, term
// weights degrade to plain term frequency.
func NewTFIDF() *TFIDF {
	return &TFIDF{docFreq: make(map[string]int)}
}

// BuildTFIDF constructs a model from a tokenized corpus, one token
// slice per document.
func BuildTFIDF(docs [][]string) *TFIDF {
	t := NewTFIDF()
	for _, tokens := range docs {
		t.AddDoc(tokens)
	}
	return t
}

// AddDoc counts one document's distinct terms into the model.
func (t *TFIDF) AddDoc(tokens []string) {
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		t.docFreq[token]++
	}
	t.docs++
}

// Docs returns the number of documents counted into the model.
func (t *TFIDF) Docs() int {
	return t.docs
}

// TFIDFVector converts per-name term counts into TF-IDF weights.
// Smoothed IDF keeps weights positive for terms absent from the corpus.
func (t *TFIDF) TFIDFVector(counts map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(counts))
	for term, count := range counts {
		vec[term] = count * t.idf(term)
	}
	return vec
}

func (t *TFIDF) idf(term string) float64 {
	if t.docs == 0 {
		return 1.0
	}
	return math.Log(float64(1+t.docs)/float64(1+t.docFreq[term])) + 1.0
}

// Normalize scales a weight vector to unit L2 length. A zero vector is
// returned unchanged.
func (t *TFIDF) Normalize(vec map[string]float64) map[string]float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	normalized := make(map[string]float64, len(vec))
	for term, w := range vec {
		normalized[term] = w / norm
	}
	return normalized
}

// SoftSimilarity returns a cosine-like score in [0, 1] over two
// normalized weight vectors. Each term is paired with its most similar
// counterpart by Jaro-Winkler, and pairs above the soft-match threshold
// contribute their similarity-weighted product. The directional sums
// are averaged so the score is symmetric in its arguments.
func (t *TFIDF) SoftSimilarity(v1, v2 map[string]float64) float64 {
	sim := (directionalSoftSimilarity(v1, v2) + directionalSoftSimilarity(v2, v1)) / 2.0
	if sim > 1.0 {
		return 1.0
	}
	return sim
}

func directionalSoftSimilarity(v1, v2 map[string]float64) float64 {
	var total float64
	for t1, w1 := range v1 {
		bestSim, bestWeight := 0.0, 0.0
		for t2, w2 := range v2 {
			sim := TokenSimilarity(t1, t2)
			// Tie-break on weight so map iteration order cannot
			// change the score.
			if sim > bestSim || (sim == bestSim && w2 > bestWeight) {
				bestSim, bestWeight = sim, w2
			}
		}
		if bestSim >= softMatchThreshold {
			total += bestSim * w1 * bestWeight
		}
	}
	return total
}

// TokenSimilarity returns Jaro-Winkler similarity between two tokens.
func TokenSimilarity(t1, t2 string) float64 {
	return smetrics.JaroWinkler(t1, t2, jaroWinklerBoostThreshold, jaroWinklerPrefixSize)
}

// Jaccard returns |intersection| / |union| over two token lists,
// defined as 0.0 when both are empty.
func (t *TFIDF) Jaccard(tokens1, tokens2 []string) float64 {
	return Jaccard(tokens1, tokens2)
}

// Jaccard returns set overlap over union for two token lists. Two empty
// sets score 0.0: with no evidence on either side, nothing supports a
// match.
func Jaccard(tokens1, tokens2 []string) float64 {
	set1 := make(map[string]struct{}, len(tokens1))
	for _, t := range tokens1 {
		set1[t] = struct{}{}
	}
	set2 := make(map[string]struct{}, len(tokens2))
	for _, t := range tokens2 {
		set2[t] = struct{}{}
	}

	union := len(set2)
	intersection := 0
	for t := range set1 {
		if _, ok := set2[t]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
