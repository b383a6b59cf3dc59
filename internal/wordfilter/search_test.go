package wordfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_EmptyWordList(t *testing.T) {
	_, err := Search(nil, Query{})
	assert.ErrorIs(t, err, ErrNoWords)
	assert.EqualError(t, err, MsgNoWords)
}

func TestSearch_PrimaryOnlySorted(t *testing.T) {
	pairs, err := Search(WordList{"pear", "apple", "fig"}, Query{})
	require.NoError(t, err)
	assert.Equal(t, []ResultPair{{"apple"}, {"fig"}, {"pear"}}, pairs)

	t.Run("accents and punctuation follow English collation", func(t *testing.T) {
		words := WordList{"zebra", "fig", "éclair", "coop", "eclair", "co-op", "apple"}
		pairs, err := Search(words, Query{})
		require.NoError(t, err)
		expected := []ResultPair{{"apple"}, {"co-op"}, {"coop"}, {"eclair"}, {"éclair"}, {"fig"}, {"zebra"}}
		assert.Equal(t, expected, pairs)
	})
}

func TestSearch_Chained(t *testing.T) {
	words := WordList{"xy", "ba", "ac", "ab"}
	q := Query{
		ExactLength: 2,
		Chain:       &ChainedConfig{TargetPosition: 1, SecondaryLength: 2, SecondaryMatchPosition: 1},
	}
	pairs, err := Search(words, q)
	require.NoError(t, err)
	expected := []ResultPair{
		{"ab", "ab"},
		{"ac", "ab"},
		{"ab", "ac"},
		{"ac", "ac"},
		{"ba", "ba"},
		{"xy", "xy"},
	}
	assert.Equal(t, expected, pairs)
}

func TestSearch_RejectsBadChainBeforeFiltering(t *testing.T) {
	q := Query{Chain: &ChainedConfig{TargetPosition: 1, SecondaryLength: 0, SecondaryMatchPosition: 1}}
	pairs, err := Search(WordList{"ab"}, q)
	assert.ErrorIs(t, err, ErrSecondaryLength)
	assert.Nil(t, pairs)
}

func TestSearch_NoMatchesIsNotAnError(t *testing.T) {
	pairs, err := Search(WordList{"ab"}, Query{ExactLength: 7})
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestResultPair(t *testing.T) {
	single := SinglePair("apple")
	assert.Equal(t, "apple", single.Primary())
	assert.Equal(t, "", single.Secondary())
	assert.Equal(t, "apple", single.String())

	chained := ChainedPair("apple", "at")
	assert.Equal(t, "at", chained.Secondary())
	assert.Equal(t, "apple at", chained.String())

	assert.Equal(t, "", ResultPair(nil).Primary())
}
