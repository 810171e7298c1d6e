package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogramOf(t *testing.T) {
	h := HistogramOf(MustWord("sissy"))
	assert.Equal(t, int8(3), h['s'-'a'])
	assert.Equal(t, int8(1), h['i'-'a'])
	assert.Equal(t, int8(1), h['y'-'a'])
	// absent letters hold the -1 sentinel, not 0
	assert.Equal(t, int8(-1), h['a'-'a'])
	assert.Equal(t, int8(-1), h['z'-'a'])
}

func TestScoreDuplicateLetters(t *testing.T) {
	assert.Equal(t,
		Feedback{Grey, Yellow, Yellow, Grey, Green},
		Score(MustWord("solar"), MustWord("taser")))
	assert.Equal(t,
		Feedback{Grey, Yellow, Grey, Grey, Grey},
		Score(MustWord("solar"), MustWord("cling")))
}

func TestScoreGreenConsumesBeforeYellow(t *testing.T) {
	// answer has one 'a'; the green at position 0 consumes it, so the
	// repeated 'a's in the guess all come back grey, not yellow.
	assert.Equal(t,
		Feedback{Green, Grey, Grey, Grey, Grey},
		Score(MustWord("abide"), MustWord("aaaaa")))

	// two 'e's in the answer: the green consumes one, the first
	// remaining guess 'e' goes yellow, the last is over-counted grey.
	assert.Equal(t,
		Feedback{Yellow, Green, Grey, Grey, Grey},
		Score(MustWord("keeps"), MustWord("eexxe")))
}

func TestScoreSelfMatch(t *testing.T) {
	for _, s := range []string{"solar", "sissy", "abbey", "fuzzy", "queue"} {
		w := MustWord(s)
		assert.Equal(t, AllGreen, Score(w, w), "word %q", s)
	}
}
