package types

import (
	"slices"

	"github.com/samber/lo"

	"wordsearch/internal/state"
	"wordsearch/internal/wordfilter"
)

type CriterionView struct {
	Index              int    `json:"index"`
	Letter             string `json:"letter"`
	Positions          []int  `json:"positions"`
	ExclusivePositions bool   `json:"exclusivePositions"`
}

type ChainView struct {
	Enabled                 bool `json:"enabled"`
	TargetPosition          int  `json:"targetPosition"`
	ExclusiveTargetPosition bool `json:"exclusiveTargetPosition"`
	SecondaryLength         int  `json:"secondaryLength"`
	SecondaryMatchPosition  int  `json:"secondaryMatchPosition"`
}

// StateResponse is what clients see of a search session. Results holds
// one-word entries when chaining is off and [primary, secondary] otherwise.
type StateResponse struct {
	WordCount       int             `json:"wordCount"`
	Criteria        []CriterionView `json:"criteria"`
	ExactLength     int             `json:"exactLength"`
	ExcludedLetters string          `json:"excludedLetters"`
	Chain           ChainView       `json:"chain"`
	Results         [][]string      `json:"results"`
	Searched        bool            `json:"searched"`
	Message         string          `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// FromState builds the response for s. An empty message falls back to the
// state's own explanation for an empty result set.
func FromState(s state.SearchState, message string) StateResponse {
	if message == "" {
		message = s.Message()
	}
	return StateResponse{
		WordCount: len(s.Words),
		Criteria: lo.Map(s.Criteria, func(c wordfilter.Criterion, i int) CriterionView {
			return CriterionView{
				Index:              i,
				Letter:             c.Letter,
				Positions:          slices.Clone(c.Positions),
				ExclusivePositions: c.ExclusivePositions,
			}
		}),
		ExactLength:     s.ExactLength,
		ExcludedLetters: s.ExcludedLetters,
		Chain: ChainView{
			Enabled:                 s.ChainEnabled,
			TargetPosition:          s.Chain.TargetPosition,
			ExclusiveTargetPosition: s.Chain.ExclusiveTargetPosition,
			SecondaryLength:         s.Chain.SecondaryLength,
			SecondaryMatchPosition:  s.Chain.SecondaryMatchPosition,
		},
		Results: lo.Map(s.Results, func(p wordfilter.ResultPair, _ int) []string {
			return slices.Clone([]string(p))
		}),
		Searched: s.Searched,
		Message:  message,
	}
}
