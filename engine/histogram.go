package engine

// Histogram is a word's letter-frequency signature: entry c-'a' is -1 when
// the word has no c, otherwise the number of times c occurs. The signed
// encoding lets the candidate filter tell "never present" (negative) from
// "present but already accounted for" (zero) with a single comparison.
type Histogram [26]int8

// HistogramOf computes the signature in one left-to-right scan. A letter's
// first occurrence bumps the -1 sentinel by 2 (to +1); repeats add 1.
func HistogramOf(w Word) Histogram {
	var h Histogram
	for i := range h {
		h[i] = -1
	}
	for _, c := range w {
		i := c - 'a'
		if h[i] > 0 {
			h[i]++
		} else {
			h[i] += 2
		}
	}
	return h
}

// Score returns the feedback a player would see after guessing against the
// hidden answer. Greens are marked first, each consuming one occurrence
// from a working copy of the answer's histogram; remaining positions go
// yellow while unconsumed occurrences are left, otherwise grey. A repeated
// guess letter therefore earns at most as many marks as the answer has
// occurrences, with green consumption taking priority.
func Score(answer, guess Word) Feedback {
	var fb Feedback
	hist := HistogramOf(answer)

	for i := 0; i < WordLen; i++ {
		if answer[i] == guess[i] {
			fb[i] = Green
			hist[answer[i]-'a']--
		}
	}
	for i := 0; i < WordLen; i++ {
		if answer[i] != guess[i] && hist[guess[i]-'a'] > 0 {
			fb[i] = Yellow
			hist[guess[i]-'a']--
		}
	}
	return fb
}
