// Package state holds the search session as one immutable value. Every
// transition returns a new SearchState and leaves its receiver untouched.
package state

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"wordsearch/internal/wordfilter"
)

const (
	MsgCriterionIndex = "That criterion no longer exists."
	MsgNoMatches      = "No words found matching your criteria."
)

var ErrCriterionIndex = errors.New(MsgCriterionIndex)

// SearchState is the full snapshot a search runs against plus the results
// of the last accepted search.
type SearchState struct {
	Words           wordfilter.WordList      `json:"words"`
	Criteria        []wordfilter.Criterion   `json:"criteria"`
	ExactLength     int                      `json:"exactLength"`
	ExcludedLetters string                   `json:"excludedLetters"`
	ChainEnabled    bool                     `json:"chainEnabled"`
	Chain           wordfilter.ChainedConfig `json:"chain"`
	Results         []wordfilter.ResultPair  `json:"results"`
	Searched        bool                     `json:"searched"`
}

// New returns the default state: no words, no criteria, chaining off with a
// strict target position.
func New() SearchState {
	return SearchState{
		Criteria: []wordfilter.Criterion{},
		Chain:    wordfilter.ChainedConfig{ExclusiveTargetPosition: true},
	}
}

func (s SearchState) clone() SearchState {
	next := s
	next.Words = slices.Clone(s.Words)
	next.Criteria = lo.Map(s.Criteria, func(c wordfilter.Criterion, _ int) wordfilter.Criterion {
		c.Positions = slices.Clone(c.Positions)
		return c
	})
	next.Results = lo.Map(s.Results, func(p wordfilter.ResultPair, _ int) wordfilter.ResultPair {
		return slices.Clone(p)
	})
	return next
}

// WithWords replaces the word list. Criteria and results are kept.
func (s SearchState) WithWords(words wordfilter.WordList) SearchState {
	next := s.clone()
	next.Words = slices.Clone(words)
	return next
}

// WithPrimary sets the exact length (<= 0 means any) and the raw excluded
// letters text.
func (s SearchState) WithPrimary(exactLength int, excludedLetters string) SearchState {
	next := s.clone()
	next.ExactLength = max(exactLength, 0)
	next.ExcludedLetters = excludedLetters
	return next
}

// WithChain stores the chained settings. They are validated only when a
// search runs with chaining enabled.
func (s SearchState) WithChain(enabled bool, cfg wordfilter.ChainedConfig) SearchState {
	next := s.clone()
	next.ChainEnabled = enabled
	next.Chain = cfg
	return next
}

// AddCriterion validates the raw input and appends the criterion. On error
// the receiver is returned as is.
func (s SearchState) AddCriterion(letter, positions string, exclusive bool) (SearchState, error) {
	c, err := wordfilter.NewCriterion(letter, positions, exclusive)
	if err != nil {
		return s, err
	}
	next := s.clone()
	next.Criteria = append(next.Criteria, c)
	return next, nil
}

// RemoveCriterion drops the criterion at index.
func (s SearchState) RemoveCriterion(index int) (SearchState, error) {
	if index < 0 || index >= len(s.Criteria) {
		return s, ErrCriterionIndex
	}
	next := s.clone()
	next.Criteria = slices.Delete(next.Criteria, index, index+1)
	return next, nil
}

// Clear resets every primary and chained field and the results. The word
// list survives.
func (s SearchState) Clear() SearchState {
	next := New()
	next.Words = slices.Clone(s.Words)
	return next
}

// Query builds the engine input for the current snapshot.
func (s SearchState) Query() wordfilter.Query {
	q := wordfilter.Query{
		Criteria:        s.Criteria,
		ExactLength:     s.ExactLength,
		ExcludedLetters: wordfilter.ParseExcludedLetters(s.ExcludedLetters),
	}
	if s.ChainEnabled {
		cfg := s.Chain
		q.Chain = &cfg
	}
	return q
}

// RunSearch executes the search. On rejection the receiver, including its
// previous results, is returned unchanged together with the reason.
func (s SearchState) RunSearch() (SearchState, error) {
	results, err := wordfilter.Search(s.Words, s.Query())
	if err != nil {
		return s, err
	}
	next := s.clone()
	next.Results = results
	next.Searched = true
	return next, nil
}

// Message explains an empty result set after a search, or returns "".
func (s SearchState) Message() string {
	if s.Searched && len(s.Results) == 0 {
		return MsgNoMatches
	}
	return ""
}

// Validate checks a state decoded from outside the process.
func (s SearchState) Validate() error {
	for i, c := range s.Criteria {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("criterion %d: %w", i, err)
		}
	}
	if slices.Contains(s.Words, "") {
		return errors.New("word list contains an empty word")
	}
	for i, p := range s.Results {
		if len(p) == 0 || len(p) > 2 {
			return fmt.Errorf("result %d: want 1 or 2 words, got %d", i, len(p))
		}
	}
	return nil
}
