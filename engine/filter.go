package engine

import "iter"

// consistent reports whether Score(word, guess) would equal fb, using the
// word's precomputed histogram instead of re-running the scorer. hist is
// received by value; the two passes below mutate the local copy.
//
// Pass one consumes one histogram occurrence of guess[i] for every green
// and yellow position (greens additionally demand a positional match).
// Pass two checks the non-green positions: a positional match there would
// have been green; a yellow needs an unconsumed occurrence left (negative
// means the word never had enough); a grey forbids any unconsumed
// occurrence (positive means the word has more than the feedback allows).
func consistent(word Word, hist Histogram, guess Word, fb Feedback) bool {
	for i := 0; i < WordLen; i++ {
		switch fb[i] {
		case Green:
			if word[i] != guess[i] {
				return false
			}
			hist[guess[i]-'a']--
		case Yellow:
			hist[guess[i]-'a']--
		}
	}

	for i := 0; i < WordLen; i++ {
		if fb[i] == Green {
			continue
		}
		if word[i] == guess[i] {
			return false
		}
		left := hist[guess[i]-'a']
		if fb[i] == Yellow && left < 0 {
			return false
		}
		if fb[i] == Grey && left > 0 {
			return false
		}
	}
	return true
}

// Candidates is a read-only list of still-possible answers with their
// histograms computed once, so repeated filtering against the same list
// never recomputes a signature.
type Candidates struct {
	words  []Word
	histos []Histogram
}

// NewCandidates builds signatures for words. The slice is retained, not
// copied; callers must not mutate it afterwards.
func NewCandidates(words []Word) *Candidates {
	histos := make([]Histogram, len(words))
	for i, w := range words {
		histos[i] = HistogramOf(w)
	}
	return &Candidates{words: words, histos: histos}
}

func (c *Candidates) Len() int {
	return len(c.words)
}

// Words returns the backing slice. Treat it as read-only.
func (c *Candidates) Words() []Word {
	return c.words
}

// Contains does a linear scan; fine for the small lists it is used on.
func (c *Candidates) Contains(w Word) bool {
	for _, cw := range c.words {
		if cw == w {
			return true
		}
	}
	return false
}

// Matches yields, in original order, the candidates for which guessing
// guess would reproduce fb. Single pass, not restartable.
func (c *Candidates) Matches(guess Word, fb Feedback) iter.Seq[Word] {
	return func(yield func(Word) bool) {
		for i, w := range c.words {
			if consistent(w, c.histos[i], guess, fb) {
				if !yield(w) {
					return
				}
			}
		}
	}
}

// CountMatches is the allocation-free form used in the selector's hot loop.
func (c *Candidates) CountMatches(guess Word, fb Feedback) int {
	n := 0
	for i, w := range c.words {
		if consistent(w, c.histos[i], guess, fb) {
			n++
		}
	}
	return n
}

// Prune materializes the filtered list and rebuilds histograms for the new
// (usually much smaller) set, keeping subsequent filtering cheap.
func (c *Candidates) Prune(guess Word, fb Feedback) *Candidates {
	var kept []Word
	for w := range c.Matches(guess, fb) {
		kept = append(kept, w)
	}
	return NewCandidates(kept)
}
