package engine

import (
	"github.com/bits-and-blooms/bitset"
)

// Board is one puzzle's mutable remaining-candidate set, a bitset keyed by
// answer-corpus index. It only ever shrinks; Reset is the one way back to
// the full corpus. Once an all-green feedback is applied the board latches
// solved and should be left out of further guess selection.
type Board struct {
	lex    *Lexicon
	set    *bitset.BitSet
	solved bool
}

// NewBoard starts with every answer still possible.
func (l *Lexicon) NewBoard() *Board {
	b := &Board{lex: l}
	b.Reset()
	return b
}

func (b *Board) Reset() {
	n := uint(len(b.lex.answers))
	b.set = bitset.New(n)
	for i := uint(0); i < n; i++ {
		b.set.Set(i)
	}
	b.solved = false
}

func (b *Board) Len() int {
	return int(b.set.Count())
}

func (b *Board) Solved() bool {
	return b.solved
}

func (b *Board) Contains(w Word) bool {
	i, ok := b.lex.AnswerIndex(w)
	return ok && b.set.Test(uint(i))
}

// Range iterates remaining candidates in answer-corpus order.
func (b *Board) Range(yield func(i int, w Word) bool) {
	n := 0
	for i, ok := b.set.NextSet(0); ok; i, ok = b.set.NextSet(i + 1) {
		if !yield(n, b.lex.answers[i]) {
			return
		}
		n++
	}
}

// Words materializes the remaining candidates in corpus order.
func (b *Board) Words() []Word {
	words := make([]Word, 0, b.Len())
	for _, w := range b.Range {
		words = append(words, w)
	}
	return words
}

// Candidates snapshots the board for the selector, histograms included.
func (b *Board) Candidates() *Candidates {
	return NewCandidates(b.Words())
}

// Apply prunes every candidate inconsistent with the observed feedback for
// guess. The true answer always survives a correct application.
func (b *Board) Apply(guess Word, fb Feedback) {
	for i, ok := b.set.NextSet(0); ok; i, ok = b.set.NextSet(i + 1) {
		w := b.lex.answers[i]
		if !consistent(w, HistogramOf(w), guess, fb) {
			b.set.Clear(i)
		}
	}
	if fb == AllGreen {
		b.solved = true
	}
}
