package wordfilter

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ResultPair is either [primary] or [primary, secondary].
type ResultPair []string

// SinglePair wraps a primary word when chaining is off.
func SinglePair(primary string) ResultPair {
	return ResultPair{primary}
}

// ChainedPair pairs a primary word with a secondary word.
func ChainedPair(primary, secondary string) ResultPair {
	return ResultPair{primary, secondary}
}

// Primary returns the first word, or "" for an empty pair.
func (p ResultPair) Primary() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Secondary returns the paired word, or "" when chaining was off.
func (p ResultPair) Secondary() string {
	if len(p) < 2 {
		return ""
	}
	return p[1]
}

// String joins the words with a space.
func (p ResultPair) String() string {
	return strings.Join(p, " ")
}

// A Collator is not safe for concurrent use, so each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// compareWords orders by the collator and falls back to byte order so that
// distinct words never compare equal.
func compareWords(c *collate.Collator, a, b string) int {
	if r := c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// SortPrimary orders pairs by their primary word.
func SortPrimary(pairs []ResultPair) {
	c := newCollator()
	slices.SortStableFunc(pairs, func(a, b ResultPair) int {
		return compareWords(c, a.Primary(), b.Primary())
	})
}

// SortChained orders pairs by secondary word, then by primary word.
func SortChained(pairs []ResultPair) {
	c := newCollator()
	slices.SortStableFunc(pairs, func(a, b ResultPair) int {
		if r := compareWords(c, a.Secondary(), b.Secondary()); r != 0 {
			return r
		}
		return compareWords(c, a.Primary(), b.Primary())
	})
}
