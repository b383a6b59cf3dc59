// Package wordfilter narrows a word list by length, excluded letters and
// per-letter positional criteria, and optionally pairs the survivors with
// secondary words that share a letter at a chosen position.
//
// Every function here is pure. Positions are 1-indexed and count Unicode
// code points, not bytes.
package wordfilter

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// WordList is an ordered sequence of lowercase, trimmed, non-empty words.
// Duplicates are allowed.
type WordList []string

// ParseWordList splits raw text on newlines and commas, trims and lowercases
// each entry, and drops the empty ones.
func ParseWordList(raw string) WordList {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})
	return WordList(lo.FilterMap(fields, func(field string, _ int) (string, bool) {
		word := strings.ToLower(strings.TrimSpace(field))
		return word, word != ""
	}))
}

// ReadWordList reads UTF-8 text from r and parses it with ParseWordList.
// A leading byte order mark is ignored.
func ReadWordList(r io.Reader) (WordList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	return ParseWordList(strings.TrimPrefix(string(data), "\ufeff")), nil
}

// LetterSet is a set of lowercase letters.
type LetterSet map[rune]struct{}

// ParseExcludedLetters keeps the a-z letters of s, case-insensitively.
// Anything else (spaces, commas, digits) is ignored.
func ParseExcludedLetters(s string) LetterSet {
	set := make(LetterSet)
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			set[r] = struct{}{}
		}
	}
	return set
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Add inserts r.
func (s LetterSet) Add(r rune) {
	s[r] = struct{}{}
}

// Clone returns an independent copy of s.
func (s LetterSet) Clone() LetterSet {
	out := make(LetterSet, len(s))
	for r := range s {
		out[r] = struct{}{}
	}
	return out
}

// String returns the letters in ascending order.
func (s LetterSet) String() string {
	letters := lo.Keys(s)
	slices.Sort(letters)
	return string(letters)
}

func containsAny(word []rune, set LetterSet) bool {
	return lo.SomeBy(word, set.Has)
}
