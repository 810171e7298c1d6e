package engine

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// DefaultOpening is the fixed first guess used by the simulation harness
// and the interactive opening book.
var DefaultOpening = MustWord("salet")

// maxSimRounds bounds a single simulated game. A sound solver finishes in
// single digits; hitting the cap means the selector regressed.
const maxSimRounds = 32

// ErrRoundLimit reports a simulated game that failed to terminate.
var ErrRoundLimit = errors.New("engine: simulation exceeded round limit")

// SimulateOne auto-plays one case: len(answers) boards, each starting from
// the full answer corpus, solved with a shared guess sequence beginning at
// opening. Returns the number of guesses issued. A board whose answer has
// been guessed is dropped from subsequent guess selection.
func SimulateOne(lex *Lexicon, opening Word, workers int, answers ...Word) (int, error) {
	if len(answers) == 0 {
		return 0, fmt.Errorf("%w: no answers to simulate", ErrInvalidInput)
	}
	boards := make([]*Candidates, len(answers))
	solved := make([]bool, len(answers))
	for i := range boards {
		boards[i] = NewCandidates(lex.Answers())
	}

	rounds := 0
	guess := opening
	for {
		rounds++
		if rounds > maxSimRounds {
			return rounds, ErrRoundLimit
		}
		var live []*Candidates
		for i, answer := range answers {
			if solved[i] {
				continue
			}
			if answer == guess {
				solved[i] = true
				continue
			}
			boards[i] = boards[i].Prune(guess, Score(answer, guess))
			live = append(live, boards[i])
		}
		if len(live) == 0 {
			return rounds, nil
		}
		next, _, err := BestGuess(live, lex.GuessList(), workers)
		if err != nil {
			return rounds, err
		}
		guess = next
	}
}

// CaseResult is one simulated game.
type CaseResult struct {
	Answers []Word
	Rounds  int
}

// SimStats aggregates a full-corpus simulation run.
type SimStats struct {
	Cases   []CaseResult
	Average float64
	Worst   int
	Rounds  map[int]int // round count -> number of cases
}

// RoundKeys returns the histogram's round counts in ascending order.
func (s *SimStats) RoundKeys() []int {
	keys := maps.Keys(s.Rounds)
	slices.Sort(keys)
	return keys
}

// SimConfig controls Simulate. Zero values pick the defaults noted.
type SimConfig struct {
	Opening      Word   // default DefaultOpening
	Boards       int    // boards per case; default 1
	Workers      int    // workers inside each BestGuess call; default 1
	CaseParallel int    // concurrent cases; default GOMAXPROCS
	OnCase       func() // called once per finished case (progress)
}

// CaseCount is the number of cases Simulate will run for n answers and k
// boards: C(n, k), each case an unordered set of k distinct answers.
func CaseCount(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	c := 1
	for i := 0; i < k; i++ {
		c = c * (n - i) / (i + 1)
	}
	return c
}

// combinations yields every k-subset of words in lexicographic index
// order. The yielded slice is reused; callers copy if they keep it.
func combinations(words []Word, k int, yield func([]Word)) {
	pick := make([]Word, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			yield(pick)
			return
		}
		for i := start; i <= len(words)-(k-depth); i++ {
			pick[depth] = words[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}

// Simulate auto-plays every answer (one board) or every unordered tuple of
// distinct answers (k boards) and reports per-case round counts plus
// aggregate statistics. This is the validation harness: any change to the
// selector's scoring or tie-breaks should be judged by rerunning it.
func Simulate(lex *Lexicon, cfg SimConfig) (*SimStats, error) {
	opening := cfg.Opening
	if opening == (Word{}) {
		opening = DefaultOpening
	}
	boards := cfg.Boards
	if boards <= 0 {
		boards = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	parallel := cfg.CaseParallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	var cases [][]Word
	combinations(lex.Answers(), boards, func(pick []Word) {
		cases = append(cases, slices.Clone(pick))
	})
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: %d answers cannot fill %d boards", ErrInvalidInput, lex.AnswerCount(), boards)
	}

	results := make([]CaseResult, len(cases))
	var g errgroup.Group
	g.SetLimit(parallel)
	for ci, answers := range cases {
		g.Go(func() error {
			rounds, err := SimulateOne(lex, opening, workers, answers...)
			if err != nil {
				return fmt.Errorf("case %v: %w", WordStrings(answers), err)
			}
			results[ci] = CaseResult{Answers: answers, Rounds: rounds}
			if cfg.OnCase != nil {
				cfg.OnCase()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &SimStats{Cases: results, Rounds: make(map[int]int)}
	total := 0
	for _, r := range results {
		total += r.Rounds
		stats.Rounds[r.Rounds]++
		if r.Rounds > stats.Worst {
			stats.Worst = r.Rounds
		}
	}
	stats.Average = float64(total) / float64(len(results))
	return stats, nil
}
