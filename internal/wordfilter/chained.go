package wordfilter

import "github.com/samber/lo"

// ChainedConfig controls the second pass. TargetPosition selects the link
// letter in each primary word; secondary words of SecondaryLength must carry
// that letter at SecondaryMatchPosition.
type ChainedConfig struct {
	TargetPosition          int  `json:"targetPosition"`
	ExclusiveTargetPosition bool `json:"exclusiveTargetPosition"`
	SecondaryLength         int  `json:"secondaryLength"`
	SecondaryMatchPosition  int  `json:"secondaryMatchPosition"`
}

// Validate rejects missing or non-positive fields, reporting the first one.
func (c ChainedConfig) Validate() error {
	switch {
	case c.TargetPosition < 1:
		return ErrTargetPosition
	case c.SecondaryLength < 1:
		return ErrSecondaryLength
	case c.SecondaryMatchPosition < 1:
		return ErrSecondaryMatch
	}
	return nil
}

type linkedWord struct {
	word string
	link rune
}

// ChainedSearch pairs each word of primary with the secondary words drawn
// from the full words list. Secondary words never contain an excluded letter
// or any criterion letter. Pairs are returned in primary-major order; callers
// sort them with SortChained.
func ChainedSearch(words, primary WordList, criteria []Criterion, excluded LetterSet, cfg ChainedConfig) ([]ResultPair, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	target := cfg.TargetPosition - 1
	primaries := lo.FilterMap([]string(primary), func(word string, _ int) (linkedWord, bool) {
		runes := []rune(word)
		if len(runes) <= target {
			return linkedWord{}, false
		}
		link := runes[target]
		if cfg.ExclusiveTargetPosition && occursElsewhere(runes, link, target) {
			return linkedWord{}, false
		}
		return linkedWord{word: word, link: link}, true
	})

	links := make(LetterSet)
	for _, p := range primaries {
		links.Add(p.link)
	}
	if len(links) == 0 {
		return nil, ErrNoLinkLetters
	}

	secondaryExcluded := excluded.Clone()
	for _, c := range criteria {
		secondaryExcluded.Add(c.letterRune())
	}

	match := cfg.SecondaryMatchPosition - 1
	secondaries := lo.FilterMap([]string(words), func(word string, _ int) (linkedWord, bool) {
		runes := []rune(word)
		if len(runes) != cfg.SecondaryLength || containsAny(runes, secondaryExcluded) {
			return linkedWord{}, false
		}
		if len(runes) <= match || !links.Has(runes[match]) {
			return linkedWord{}, false
		}
		return linkedWord{word: word, link: runes[match]}, true
	})

	pairs := make([]ResultPair, 0)
	for _, p := range primaries {
		for _, s := range secondaries {
			if s.link == p.link {
				pairs = append(pairs, ChainedPair(p.word, s.word))
			}
		}
	}
	return pairs, nil
}

func occursElsewhere(word []rune, letter rune, index int) bool {
	for i, r := range word {
		if i != index && r == letter {
			return true
		}
	}
	return false
}
