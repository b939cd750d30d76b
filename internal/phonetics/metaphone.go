// Package phonetics provides a double-metaphone-style encoder for venue
// name tokens. Codes capture how a token sounds so that near-homophones
// and minor misspellings ("Cafe" / "Kafe") share a blocking bucket.
package phonetics

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

const maxCodeLength = 6

// Digraph substitutions applied before single-letter rules. The second
// form is the alternate pronunciation; where it differs from the first,
// the encoder emits a secondary code.
var digraphs = map[string][2]string{
	"PH": {"F", "F"},
	"GH": {"F", "K"},
	"CK": {"K", "K"},
	"QU": {"KW", "KW"},
	"TH": {"0", "T"},
	"SH": {"X", "X"},
	"CH": {"X", "K"},
	"WH": {"W", "W"},
	"KN": {"N", "N"},
	"WR": {"R", "R"},
	"PS": {"S", "S"},
}

var singles = map[byte]string{
	'C': "K",
	'G': "J",
	'Z': "S",
}

// Encoder produces phonetic codes for name tokens. It is stateless and
// safe for concurrent use.
type Encoder struct{}

// NewEncoder returns a phonetic encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode returns the phonetic codes for a token: the primary code plus
// an alternate when a digraph pronounces two ways. Tokens with no
// letters (house numbers, "&") have no phonetic representation and
// yield nil, letting callers fall back to the literal token.
func (e *Encoder) Encode(token string) []string {
	primary, secondary := e.Codes(token)
	if primary == "" {
		return nil
	}
	if secondary != "" && secondary != primary {
		return []string{primary, secondary}
	}
	return []string{primary}
}

// Codes returns the primary and secondary phonetic codes for a token.
// Non-ASCII input is transliterated first, so "Café" and "Cafe" encode
// identically. Both codes are empty when the token has no letters.
func (e *Encoder) Codes(token string) (primary, secondary string) {
	s := letters(unidecode.Unidecode(token))
	if s == "" {
		return "", ""
	}

	var p, q strings.Builder
	for i := 0; i < len(s); i++ {
		if i+1 < len(s) {
			if forms, ok := digraphs[s[i:i+2]]; ok {
				p.WriteString(forms[0])
				q.WriteString(forms[1])
				i++
				continue
			}
		}
		c := s[i]
		if sub, ok := singles[c]; ok {
			p.WriteString(sub)
			q.WriteString(sub)
			continue
		}
		// Vowels only carry information at the start of a token.
		if isVowel(c) {
			if i == 0 {
				p.WriteByte(c)
				q.WriteByte(c)
			}
			continue
		}
		p.WriteByte(c)
		q.WriteByte(c)
	}

	return finishCode(p.String()), finishCode(q.String())
}

// Match reports whether two tokens share a phonetic code.
func (e *Encoder) Match(t1, t2 string) bool {
	for _, c1 := range e.Encode(t1) {
		for _, c2 := range e.Encode(t2) {
			if c1 == c2 {
				return true
			}
		}
	}
	return false
}

func letters(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Y behaves as a vowel here so spelling variants like Smith/Smyth
// encode identically.
func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}

func finishCode(code string) string {
	code = collapseRuns(code)
	if len(code) > maxCodeLength {
		code = code[:maxCodeLength]
	}
	return code
}

func collapseRuns(s string) string {
	if len(s) <= 1 {
		return s
	}
	var b strings.Builder
	b.WriteByte(s[0])
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
