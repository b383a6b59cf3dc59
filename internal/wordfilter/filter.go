package wordfilter

import "github.com/samber/lo"

// FilterPrimary returns the words that pass, in order: the exact length
// check (skipped when exactLength <= 0), the excluded-letter check, and every
// criterion. Input order is preserved.
func FilterPrimary(words WordList, criteria []Criterion, exactLength int, excluded LetterSet) WordList {
	return WordList(lo.Filter([]string(words), func(word string, _ int) bool {
		return matchesPrimary([]rune(word), criteria, exactLength, excluded)
	}))
}

func matchesPrimary(word []rune, criteria []Criterion, exactLength int, excluded LetterSet) bool {
	if exactLength > 0 && len(word) != exactLength {
		return false
	}
	if containsAny(word, excluded) {
		return false
	}
	return lo.EveryBy(criteria, func(c Criterion) bool {
		return c.matches(word)
	})
}
