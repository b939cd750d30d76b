package dedupe

import (
	"fmt"
	"strings"
)

// expandFunc adapts a function to the Expander interface.
type expandFunc func(value string, component Component) []string

func (f expandFunc) Expand(value string, component Component) []string {
	return f(value, component)
}

var testStreetAbbrevs = map[string]string{
	"st":  "street",
	"rd":  "road",
	"ave": "avenue",
}

var testNameAbbrevs = map[string]string{
	"st": "saint",
	"&":  "and",
}

// testExpander lowercases its input and, for streets and names, adds a
// variant with common abbreviations written out, so "Main St" and
// "Main Street" share an expansion.
func testExpander() Expander {
	return expandFunc(func(value string, component Component) []string {
		v := strings.ToLower(strings.TrimSpace(value))
		if v == "" {
			return nil
		}

		var abbrevs map[string]string
		switch component {
		case ComponentStreet:
			abbrevs = testStreetAbbrevs
		case ComponentName:
			abbrevs = testNameAbbrevs
		}

		tokens := strings.Fields(v)
		expanded := make([]string, len(tokens))
		for i, tok := range tokens {
			if full, ok := abbrevs[tok]; ok {
				expanded[i] = full
			} else {
				expanded[i] = tok
			}
		}

		variant := strings.Join(expanded, " ")
		if variant == v {
			return []string{v}
		}
		return []string{v, variant}
	})
}

// gridHasher is a deterministic fake geo hasher. reversed flips the
// neighbor enumeration order to check order independence of key sets.
type gridHasher struct {
	reversed bool
}

func (g gridHasher) Encode(lat, lon float64, precision int) string {
	return fmt.Sprintf("g%d:%.1f:%.1f", precision, lat, lon)
}

func (g gridHasher) Neighbors(cell string) []string {
	neighbors := make([]string, 8)
	for i := range neighbors {
		neighbors[i] = fmt.Sprintf("%s:n%d", cell, i)
	}
	if g.reversed {
		for i, j := 0, len(neighbors)-1; i < j; i, j = i+1, j-1 {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		}
	}
	return neighbors
}

func ptr(f float64) *float64 {
	return &f
}

func collectKeys(seq func(yield func(string) bool)) []string {
	var keys []string
	seq(func(k string) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
