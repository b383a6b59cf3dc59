package wordfilter

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Criterion requires Letter at every one of Positions. With
// ExclusivePositions set, Letter must also appear nowhere else in the word.
type Criterion struct {
	Letter             string `json:"letter"`
	Positions          []int  `json:"positions"`
	ExclusivePositions bool   `json:"exclusivePositions"`
}

// NewCriterion validates raw user input and builds a Criterion. letter must
// be a single ASCII letter; positions is a comma-separated list of positive
// integers.
func NewCriterion(letter, positions string, exclusive bool) (Criterion, error) {
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return Criterion{}, ErrLetterRequired
	}
	if len(letter) != 1 || !isASCIILetter(letter[0]) {
		return Criterion{}, ErrLetterInvalid
	}
	parsed, err := ParsePositions(positions)
	if err != nil {
		return Criterion{}, err
	}
	return Criterion{
		Letter:             strings.ToLower(letter),
		Positions:          parsed,
		ExclusivePositions: exclusive,
	}, nil
}

// ParsePositions parses "1, 3,4" into [1 3 4]. Repeated positions collapse
// to one; order of first appearance is kept.
func ParsePositions(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrPositionsRequired
	}
	parts := strings.Split(s, ",")
	positions := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, ErrPositionsInvalid
		}
		positions = append(positions, n)
	}
	return lo.Uniq(positions), nil
}

// Validate checks a Criterion that did not come through NewCriterion, such as
// one decoded from a saved session.
func (c Criterion) Validate() error {
	if c.Letter == "" {
		return ErrLetterRequired
	}
	if len(c.Letter) != 1 || c.Letter[0] < 'a' || c.Letter[0] > 'z' {
		return ErrLetterInvalid
	}
	if len(c.Positions) == 0 {
		return ErrPositionsRequired
	}
	if lo.SomeBy(c.Positions, func(p int) bool { return p < 1 }) {
		return ErrPositionsInvalid
	}
	return nil
}

func (c Criterion) letterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Letter)
	return r
}

// Matches reports whether word satisfies c.
func (c Criterion) Matches(word string) bool {
	return c.matches([]rune(word))
}

func (c Criterion) matches(word []rune) bool {
	letter := c.letterRune()
	for _, p := range c.Positions {
		if p < 1 || p > len(word) || word[p-1] != letter {
			return false
		}
	}
	if !c.ExclusivePositions {
		return true
	}
	for i, r := range word {
		if r == letter && !slices.Contains(c.Positions, i+1) {
			return false
		}
	}
	return true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
