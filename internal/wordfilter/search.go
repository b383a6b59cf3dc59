package wordfilter

import "github.com/samber/lo"

// Query is one snapshot of the search inputs. A nil Chain disables the
// chained pass.
type Query struct {
	Criteria        []Criterion
	ExactLength     int
	ExcludedLetters LetterSet
	Chain           *ChainedConfig
}

// Search runs the primary filter and, when q.Chain is set, the chained pass,
// and returns the results in presentation order. Input problems are reported
// before any filtering happens.
func Search(words WordList, q Query) ([]ResultPair, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if q.Chain != nil {
		if err := q.Chain.Validate(); err != nil {
			return nil, err
		}
	}

	primary := FilterPrimary(words, q.Criteria, q.ExactLength, q.ExcludedLetters)
	if q.Chain == nil {
		pairs := lo.Map([]string(primary), func(word string, _ int) ResultPair {
			return SinglePair(word)
		})
		SortPrimary(pairs)
		return pairs, nil
	}

	pairs, err := ChainedSearch(words, primary, q.Criteria, q.ExcludedLetters, *q.Chain)
	if err != nil {
		return nil, err
	}
	SortChained(pairs)
	return pairs, nil
}
