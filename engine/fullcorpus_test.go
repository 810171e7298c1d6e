package engine_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvo/solvo/engine"
	"github.com/solvo/solvo/words"
)

// Reference point for the canonical corpus: the best opening guess is
// "salet" with a worst case of 168 remaining candidates. The canonical
// lists are not shipped in the repo, so this runs only when they are
// supplied. Expect it to take a while.
func TestCanonicalOpeningGuess(t *testing.T) {
	answersPath := os.Getenv("SOLVO_ANSWERS_FILE")
	guessesPath := os.Getenv("SOLVO_GUESSES_FILE")
	if answersPath == "" || guessesPath == "" {
		t.Skip("set SOLVO_ANSWERS_FILE and SOLVO_GUESSES_FILE to run the full-corpus check")
	}

	answers, guesses, err := words.Load(answersPath, guessesPath)
	require.NoError(t, err)
	lex, err := engine.NewLexicon(answers, guesses)
	require.NoError(t, err)
	require.Equal(t, 2309, lex.AnswerCount())

	board := engine.NewCandidates(lex.Answers())
	guess, worst, err := engine.BestGuess([]*engine.Candidates{board}, lex.GuessList(), 0)
	require.NoError(t, err)
	assert.Equal(t, "salet", guess.String())
	assert.Equal(t, 168, worst)
}
