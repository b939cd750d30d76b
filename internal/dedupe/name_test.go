package dedupe

import (
	"math"
	"testing"

	"github.com/geo-dedupe/internal/similarity"
)

func TestContentTokens(t *testing.T) {
	tests := []struct {
		name string
		cfg  NameConfig
		in   string
		want []string
	}{
		{
			name: "lowercases and splits",
			cfg:  DefaultNameConfig(),
			in:   "Cafe Luna",
			want: []string{"cafe", "luna"},
		},
		{
			name: "strips parentheticals when configured",
			cfg:  EnglishVenueNameConfig(),
			in:   "Kangaroo Point (NSW)",
			want: []string{"kangaroo", "point"},
		},
		{
			name: "keeps parentheticals by default",
			cfg:  DefaultNameConfig(),
			in:   "Kangaroo Point (NSW)",
			want: []string{"kangaroo", "point", "(nsw)"},
		},
		{
			name: "applies replacements",
			cfg:  EnglishVenueNameConfig(),
			in:   "Saint Mary",
			want: []string{"st", "mary"},
		},
		{
			name: "drops stopwords",
			cfg:  EnglishVenueNameConfig(),
			in:   "The Corner Cafe",
			want: []string{"corner", "cafe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNameDeduper(tt.cfg)
			got := n.ContentTokens(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("ContentTokens(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCompareIdeographs(t *testing.T) {
	n := NewNameDeduper(DefaultNameConfig())
	scorer := similarity.NewTFIDF()

	tests := []struct {
		name   string
		s1, s2 string
		want   float64
	}{
		{"identical", "東京タワー", "東京タワー", 1.0},
		{"spacing variant", "東京 タワー", "東京タワー", 1.0},
		{"latin identical", "cafe luna", "cafe luna", 1.0},
		{"disjoint tokens", "甲 乙", "丙 丁", 0.0},
		{"partial overlap", "甲 乙", "甲 丙", 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.CompareIdeographs(tt.s1, tt.s2, scorer)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CompareIdeographs(%q, %q) = %v, want %v", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

// fixedJaccardScorer returns a canned Jaccard score so tests can tell
// whether the comparison went through the injected scorer.
type fixedJaccardScorer struct {
	score float64
}

func (s fixedJaccardScorer) TFIDFVector(counts map[string]float64) map[string]float64 { return counts }
func (s fixedJaccardScorer) Normalize(vec map[string]float64) map[string]float64      { return vec }
func (s fixedJaccardScorer) SoftSimilarity(v1, v2 map[string]float64) float64         { return 0 }
func (s fixedJaccardScorer) Jaccard(tokens1, tokens2 []string) float64                { return s.score }

func TestCompareIdeographsUsesInjectedScorer(t *testing.T) {
	n := NewNameDeduper(DefaultNameConfig())

	got := n.CompareIdeographs("甲 乙", "甲 丙", fixedJaccardScorer{score: 0.25})
	if got != 0.25 {
		t.Errorf("CompareIdeographs = %v, want the scorer's 0.25", got)
	}

	// Equal concatenations short-circuit before the scorer is consulted.
	got = n.CompareIdeographs("東京 タワー", "東京タワー", fixedJaccardScorer{score: 0.25})
	if got != 1.0 {
		t.Errorf("CompareIdeographs on equal concatenations = %v, want 1.0", got)
	}
}

func TestCompareInMemorySymmetry(t *testing.T) {
	n := NewNameDeduper(DefaultNameConfig())
	model := similarity.BuildTFIDF([][]string{
		{"cabbage", "town"},
		{"cabbagetown"},
		{"luna", "bistro"},
		{"cafe", "luna"},
	})

	pairs := [][2][]string{
		{{"cabbage", "town"}, {"cabbagetown"}},
		{{"cafe", "luna"}, {"luna", "bistro"}},
		{{"cafe", "luna"}, {"cafe", "luna"}},
	}

	for _, p := range pairs {
		ab := n.CompareInMemory(p[0], p[1], model)
		ba := n.CompareInMemory(p[1], p[0], model)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("CompareInMemory(%v, %v) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestCompareInMemoryRanking(t *testing.T) {
	n := NewNameDeduper(DefaultNameConfig())
	model := similarity.NewTFIDF()

	exact := n.CompareInMemory([]string{"cafe", "luna"}, []string{"cafe", "luna"}, model)
	variant := n.CompareInMemory([]string{"cabbage", "town"}, []string{"cabbagetown"}, model)
	unrelated := n.CompareInMemory([]string{"cabbage", "town"}, []string{"luna", "bistro"}, model)

	if math.Abs(exact-1.0) > 1e-9 {
		t.Errorf("identical token lists scored %v, want 1.0", exact)
	}
	if variant >= exact {
		t.Errorf("variant spelling scored %v, should be below exact %v", variant, exact)
	}
	if unrelated >= variant {
		t.Errorf("unrelated names scored %v, should be below variant %v", unrelated, variant)
	}
}

func TestDiscriminativeMismatch(t *testing.T) {
	n := NewNameDeduper(EnglishVenueNameConfig())

	tests := []struct {
		name   string
		t1, t2 []string
		want   bool
	}{
		{"directional on one side", []string{"north", "cafe"}, []string{"cafe"}, true},
		{"directional on the other side", []string{"cafe"}, []string{"south", "cafe"}, true},
		{"directional on both sides", []string{"north", "cafe"}, []string{"north", "cafe"}, false},
		{"no discriminative words", []string{"corner", "cafe"}, []string{"cafe"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.DiscriminativeMismatch(tt.t1, tt.t2); got != tt.want {
				t.Errorf("DiscriminativeMismatch(%v, %v) = %v, want %v", tt.t1, tt.t2, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	n := NewNameDeduper(DefaultNameConfig())
	got := n.Tokenize("  Cafe   Luna ")
	if len(got) != 2 || got[0] != "Cafe" || got[1] != "Luna" {
		t.Errorf("Tokenize = %v, want [Cafe Luna]", got)
	}
}
