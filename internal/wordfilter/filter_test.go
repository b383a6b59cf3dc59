package wordfilter

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fruit = WordList{"apple", "abacus", "grape", "banana", "apricot", "plane"}

func TestFilterPrimary(t *testing.T) {
	tests := []struct {
		name     string
		criteria []Criterion
		length   int
		excluded string
		expected WordList
	}{
		{
			name:     "no constraints",
			expected: fruit,
		},
		{
			name:     "exact length",
			length:   5,
			expected: WordList{"apple", "grape", "plane"},
		},
		{
			name:     "non-positive length ignored",
			length:   -3,
			expected: fruit,
		},
		{
			name:     "excluded letter",
			excluded: "p",
			expected: WordList{"abacus", "banana"},
		},
		{
			name:     "exclusive criterion",
			criteria: []Criterion{{Letter: "a", Positions: []int{1}, ExclusivePositions: true}},
			expected: WordList{"apple", "apricot"},
		},
		{
			name: "criteria are combined",
			criteria: []Criterion{
				{Letter: "e", Positions: []int{5}},
				{Letter: "p", Positions: []int{1}},
			},
			length:   5,
			expected: WordList{"plane"},
		},
		{
			name:     "nothing matches",
			criteria: []Criterion{{Letter: "z", Positions: []int{1}}},
			expected: WordList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPrimary(fruit, tt.criteria, tt.length, ParseExcludedLetters(tt.excluded))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilterPrimary_Idempotent(t *testing.T) {
	criteria := []Criterion{{Letter: "a", Positions: []int{1}, ExclusivePositions: true}}
	excluded := ParseExcludedLetters("t")
	first := FilterPrimary(fruit, criteria, 0, excluded)
	second := FilterPrimary(fruit, criteria, 0, excluded)
	assert.Equal(t, first, second)
}

func TestFilterPrimary_ResultProperties(t *testing.T) {
	excluded := ParseExcludedLetters("rc")
	got := FilterPrimary(fruit, nil, 5, excluded)
	for _, w := range got {
		assert.Len(t, []rune(w), 5)
		assert.False(t, strings.ContainsAny(w, "rc"), "word %q contains an excluded letter", w)
	}
}

func TestFilterPrimary_DroppingCriterionOnlyWidens(t *testing.T) {
	criteria := []Criterion{
		{Letter: "a", Positions: []int{1}},
		{Letter: "p", Positions: []int{2, 3}, ExclusivePositions: true},
		{Letter: "e", Positions: []int{5}},
	}
	full := FilterPrimary(fruit, criteria, 0, nil)
	assert.Equal(t, WordList{"apple"}, full)
	for i := range criteria {
		fewer := slices.Delete(slices.Clone(criteria), i, i+1)
		wider := FilterPrimary(fruit, fewer, 0, nil)
		for _, w := range full {
			assert.Contains(t, wider, w)
		}
		assert.GreaterOrEqual(t, len(wider), len(full))
	}
}

func TestFilterPrimary_CountsCodePoints(t *testing.T) {
	words := WordList{"café", "cafe", "cafés"}
	got := FilterPrimary(words, []Criterion{{Letter: "c", Positions: []int{1}}}, 4, nil)
	assert.Equal(t, WordList{"café", "cafe"}, got)
}
