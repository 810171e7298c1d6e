package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLexicon(t *testing.T) *Lexicon {
	t.Helper()
	answers, err := ParseWords([]string{"solar", "crane", "slate", "abide", "sissy"})
	require.NoError(t, err)
	guesses, err := ParseWords([]string{"salet", "taser", "crane"})
	require.NoError(t, err)
	lex, err := NewLexicon(answers, guesses)
	require.NoError(t, err)
	return lex
}

func TestGuessListOrder(t *testing.T) {
	lex := testLexicon(t)
	// guess corpus first, then answers not already present; "crane"
	// appears once, at its guess-corpus position
	assert.Equal(t,
		[]string{"salet", "taser", "crane", "solar", "slate", "abide", "sissy"},
		WordStrings(lex.GuessList()))
}

func TestAnswerIndex(t *testing.T) {
	lex := testLexicon(t)
	i, ok := lex.AnswerIndex(MustWord("slate"))
	require.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = lex.AnswerIndex(MustWord("salet"))
	assert.False(t, ok)
}

func TestIsGuessable(t *testing.T) {
	lex := testLexicon(t)
	assert.True(t, lex.IsGuessable(MustWord("salet")))
	assert.True(t, lex.IsGuessable(MustWord("sissy")))
	assert.False(t, lex.IsGuessable(MustWord("zzzzz")))
}

func TestNewLexiconRejectsBadCorpora(t *testing.T) {
	_, err := NewLexicon(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	dup := []Word{MustWord("solar"), MustWord("solar")}
	_, err = NewLexicon(dup, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewLexicon([]Word{MustWord("solar")}, dup)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
