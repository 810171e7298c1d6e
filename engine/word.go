// Package engine solves Wordle-family puzzles: it scores guesses against
// hidden answers, prunes candidate answers consistent with observed
// feedback, and picks the guess that minimizes the worst-case number of
// remaining candidates across one or more simultaneous boards.
package engine

import (
	"errors"
	"fmt"
)

// WordLen is the only word length the engine supports.
const WordLen = 5

// ErrInvalidInput reports a malformed word or feedback string from the
// caller. Board state is never altered when it is returned.
var ErrInvalidInput = errors.New("engine: invalid input")

// Color is the per-position result of comparing a guess letter to the
// hidden answer.
type Color uint8

const (
	Grey   Color = iota // letter absent or over-counted
	Yellow              // letter present elsewhere
	Green               // correct position
)

// Feedback is the five-color pattern a player sees after a guess.
type Feedback [WordLen]Color

// AllGreen is the feedback for a correct guess.
var AllGreen = Feedback{Green, Green, Green, Green, Green}

// ParseFeedback decodes a digit string: 0 grey, 1 yellow, 2 green.
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	if len(s) != WordLen {
		return fb, fmt.Errorf("%w: feedback %q must be %d digits", ErrInvalidInput, s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case '0':
			fb[i] = Grey
		case '1':
			fb[i] = Yellow
		case '2':
			fb[i] = Green
		default:
			return Feedback{}, fmt.Errorf("%w: feedback %q has non-012 digit", ErrInvalidInput, s)
		}
	}
	return fb, nil
}

func (f Feedback) String() string {
	b := make([]byte, WordLen)
	for i, c := range f {
		b[i] = '0' + byte(c)
	}
	return string(b)
}

// Word is exactly five lowercase ASCII letters. Using a fixed-size value
// type means a wrong-length word cannot reach the scorer or filter at all;
// validation happens once in ParseWord.
type Word [WordLen]byte

// ParseWord validates and converts a string.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLen {
		return w, fmt.Errorf("%w: word %q must be %d letters", ErrInvalidInput, s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return Word{}, fmt.Errorf("%w: word %q must be lowercase a-z", ErrInvalidInput, s)
		}
		w[i] = c
	}
	return w, nil
}

// MustWord is ParseWord for literals known to be valid.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseWords converts a list of strings, stopping at the first bad entry.
func ParseWords(ss []string) ([]Word, error) {
	words := make([]Word, 0, len(ss))
	for _, s := range ss {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

func (w Word) String() string {
	return string(w[:])
}

// WordStrings converts back for display.
func WordStrings(words []Word) []string {
	ss := make([]string, len(words))
	for i, w := range words {
		ss[i] = w.String()
	}
	return ss
}
