package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterCorpus = []string{
	"aaaaa", "aaabb", "ababa", "abbey", "abide",
	"banal", "keeps", "sissy", "solar", "taser",
	"cling", "crane", "slate", "queue", "fuzzy",
}

func corpusWords(t *testing.T) []Word {
	t.Helper()
	ws, err := ParseWords(filterCorpus)
	require.NoError(t, err)
	return ws
}

// The filter must produce the identical verdict the scorer would, for
// every (answer, guess, candidate) triple: soundness (the true answer
// always survives) and completeness (every survivor rescores to the same
// feedback) follow from the equivalence.
func TestFilterMatchesScorer(t *testing.T) {
	words := corpusWords(t)
	cands := NewCandidates(words)
	for _, answer := range words {
		for _, guess := range words {
			fb := Score(answer, guess)
			want := make(map[Word]bool)
			for _, w := range words {
				if Score(w, guess) == fb {
					want[w] = true
				}
			}
			require.True(t, want[answer]) // scorer is self-consistent

			pruned := cands.Prune(guess, fb)
			assert.Equal(t, len(want), pruned.Len(),
				"answer %s guess %s", answer, guess)
			for _, w := range pruned.Words() {
				assert.True(t, want[w], "answer %s guess %s kept %s", answer, guess, w)
			}
			assert.True(t, pruned.Contains(answer),
				"soundness: answer %s pruned away by guess %s", answer, guess)
		}
	}
}

func TestMatchesPreservesOrder(t *testing.T) {
	words := corpusWords(t)
	cands := NewCandidates(words)
	fb := Score(MustWord("solar"), MustWord("taser"))

	var got []Word
	for w := range cands.Matches(MustWord("taser"), fb) {
		got = append(got, w)
	}
	// yielded subsequence keeps original corpus order
	last := -1
	for _, w := range got {
		at := -1
		for i, cw := range words {
			if cw == w {
				at = i
			}
		}
		require.NotEqual(t, -1, at)
		assert.Greater(t, at, last)
		last = at
	}
	assert.Contains(t, got, MustWord("solar"))
}

func TestPruneOrderIndependent(t *testing.T) {
	words := corpusWords(t)
	answer := MustWord("solar")
	g1, g2 := MustWord("crane"), MustWord("abide")
	fb1, fb2 := Score(answer, g1), Score(answer, g2)

	a := NewCandidates(words).Prune(g1, fb1).Prune(g2, fb2)
	b := NewCandidates(words).Prune(g2, fb2).Prune(g1, fb1)
	assert.Equal(t, a.Words(), b.Words())
	assert.True(t, a.Contains(answer))
}

func TestCountMatches(t *testing.T) {
	cands := NewCandidates(corpusWords(t))
	fb := Score(MustWord("solar"), MustWord("cling"))
	n := 0
	for range cands.Matches(MustWord("cling"), fb) {
		n++
	}
	assert.Equal(t, n, cands.CountMatches(MustWord("cling"), fb))
}

func TestPruneEmptyResult(t *testing.T) {
	cands := NewCandidates([]Word{MustWord("aaaaa")})
	// all-yellow feedback for a guess sharing no letters: nothing fits
	pruned := cands.Prune(MustWord("zzzzz"), Feedback{Yellow, Yellow, Yellow, Yellow, Yellow})
	assert.Zero(t, pruned.Len())
}
