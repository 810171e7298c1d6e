package engine

import "fmt"

// Lexicon holds the two fixed corpora for a game and the derived guess
// list. It is built once at startup from injected, pre-validated word
// lists and never mutated; every solver operation takes its word data from
// here rather than from package globals.
type Lexicon struct {
	answers     []Word
	guessList   []Word
	guessSet    map[Word]bool
	answerIndex map[Word]int
}

// NewLexicon derives the guess list as the guess corpus followed by any
// answer-corpus words not already in it. That ordering is load-bearing:
// minimax ties are broken by earliest guess-list position.
func NewLexicon(answers, guesses []Word) (*Lexicon, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: empty answer corpus", ErrInvalidInput)
	}
	lex := &Lexicon{
		answers:     answers,
		answerIndex: make(map[Word]int, len(answers)),
	}
	for i, w := range answers {
		if _, dup := lex.answerIndex[w]; dup {
			return nil, fmt.Errorf("%w: duplicate answer %q", ErrInvalidInput, w)
		}
		lex.answerIndex[w] = i
	}

	lex.guessSet = make(map[Word]bool, len(guesses)+len(answers))
	lex.guessList = make([]Word, 0, len(guesses)+len(answers))
	for _, w := range guesses {
		if lex.guessSet[w] {
			return nil, fmt.Errorf("%w: duplicate guess %q", ErrInvalidInput, w)
		}
		lex.guessSet[w] = true
		lex.guessList = append(lex.guessList, w)
	}
	for _, w := range answers {
		if !lex.guessSet[w] {
			lex.guessSet[w] = true
			lex.guessList = append(lex.guessList, w)
		}
	}
	return lex, nil
}

// Answers returns the answer corpus in its fixed order. Read-only.
func (l *Lexicon) Answers() []Word {
	return l.answers
}

// GuessList returns every allowed guess (guess corpus then answers).
// Read-only.
func (l *Lexicon) GuessList() []Word {
	return l.guessList
}

func (l *Lexicon) AnswerCount() int {
	return len(l.answers)
}

// AnswerIndex maps a word to its position in the answer corpus.
func (l *Lexicon) AnswerIndex(w Word) (int, bool) {
	i, ok := l.answerIndex[w]
	return i, ok
}

// IsGuessable reports whether w may be submitted as a guess.
func (l *Lexicon) IsGuessable(w Word) bool {
	return l.guessSet[w]
}
