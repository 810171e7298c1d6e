// Package words supplies the static corpora the solver consumes: the
// answer corpus (words that can be the secret) and the guess corpus
// (additional words that are valid guesses but never secrets). Small real
// default lists are embedded so the binary runs standalone; full canonical
// lists load from files. The corpora are returned as plain data for the
// caller to inject — nothing here is a package-level game state.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/solvo/solvo/engine"
)

//go:embed answers.txt
var defaultAnswers string

//go:embed guesses.txt
var defaultGuesses string

// Default returns the embedded corpora. The embedded lists are validated
// by the package tests, so parse failures cannot happen at runtime.
func Default() (answers, guesses []engine.Word) {
	answers, err := parseList(strings.NewReader(defaultAnswers))
	if err != nil {
		panic(err)
	}
	guesses, err = parseList(strings.NewReader(defaultGuesses))
	if err != nil {
		panic(err)
	}
	return answers, guesses
}

// Load reads both corpora from files, one word per line. Either path may
// be empty to fall back to the embedded default for that corpus.
func Load(answersPath, guessesPath string) (answers, guesses []engine.Word, err error) {
	defAnswers, defGuesses := Default()

	answers = defAnswers
	if answersPath != "" {
		answers, err = loadFile(answersPath)
		if err != nil {
			return nil, nil, fmt.Errorf("answer corpus: %w", err)
		}
	}
	guesses = defGuesses
	if guessesPath != "" {
		guesses, err = loadFile(guessesPath)
		if err != nil {
			return nil, nil, fmt.Errorf("guess corpus: %w", err)
		}
	}
	return answers, guesses, nil
}

func loadFile(path string) ([]engine.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := parseList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// parseList reads one word per line, lowercasing and trimming whitespace.
// Blank lines are skipped; anything else must be exactly five letters.
// Duplicates are rejected — the corpora are contracts, not suggestions.
func parseList(r io.Reader) ([]engine.Word, error) {
	var words []engine.Word
	seen := make(map[engine.Word]bool)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(strings.ToLower(sc.Text()))
		if s == "" {
			continue
		}
		w, err := engine.ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if seen[w] {
			return nil, fmt.Errorf("line %d: duplicate word %q", line, w)
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
