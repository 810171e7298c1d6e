package engine

import (
	"errors"
	"math"
	"runtime"

	mapset "github.com/deckarep/golang-set"
	"golang.org/x/sync/errgroup"
)

// ErrNoMoves reports a degenerate position: no allowed guesses, or no
// candidate remains on any board. It is a normal outcome, not an input
// error; callers should stop asking for guesses.
var ErrNoMoves = errors.New("engine: no moves remain")

// BestGuess evaluates every allowed guess against every answer the
// adversary could still pick and returns the guess minimizing the
// worst-case total of remaining candidates, plus that worst-case count.
//
// The adversary's choice set is the union of the boards' candidates (not
// the whole corpus): with two boards the hidden pair must contain a word
// still consistent with at least one board, and the original solver scores
// against exactly that union. Preserved as-is; see DESIGN.md. For each
// hypothetical answer, every board is pruned with its own feedback for the
// shared guess and the per-board counts are summed, so the score models
// whichever answer is adversarial for the combined position. A single
// board reduces to the plain worst-case candidate count.
//
// Ties are broken by preferring a guess inside the union (it could end a
// game immediately), then by earliest guess-list position. Both are folded
// into one key the way the original does it: doubled score, minus one for
// member guesses, strict-less reduction in list order.
func BestGuess(boards []*Candidates, guesses []Word, workers int) (Word, int, error) {
	if len(boards) == 0 || len(guesses) == 0 {
		return Word{}, 0, ErrNoMoves
	}
	for _, b := range boards {
		if b.Len() == 0 {
			return Word{}, 0, ErrNoMoves
		}
	}

	union := mapset.NewThreadUnsafeSet()
	var adversaries []Word
	for _, b := range boards {
		for _, w := range b.Words() {
			if union.Add(w) {
				adversaries = append(adversaries, w)
			}
		}
	}

	// Guess evaluation only reads shared state (candidate lists and their
	// histograms), so it is split across a bounded pool; scores land in a
	// slot per guess and the reduction below walks them in list order,
	// keeping the tie-break deterministic for any worker count.
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	scores := make([]int, len(guesses))
	var g errgroup.Group
	chunk := (len(guesses) + workers - 1) / workers
	for start := 0; start < len(guesses); start += chunk {
		lo, hi := start, min(start+chunk, len(guesses))
		g.Go(func() error {
			for gi := lo; gi < hi; gi++ {
				guess := guesses[gi]
				worst := 0
				for _, answer := range adversaries {
					fb := Score(answer, guess)
					total := 0
					for _, b := range boards {
						total += b.CountMatches(guess, fb)
					}
					if total > worst {
						worst = total
					}
				}
				scores[gi] = worst
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Word{}, 0, err
	}

	bestAt := -1
	bestSco := math.MaxInt
	for gi, guess := range guesses {
		sco := scores[gi] * 2
		if union.Contains(guess) {
			sco--
		}
		if sco < bestSco {
			bestSco = sco
			bestAt = gi
		}
	}
	return guesses[bestAt], (bestSco + 1) / 2, nil
}
