package seq

import "slices"

// Clumps returns the k-mers that occur at least threshold times inside
// some stretch of windowSize consecutive nucleotides, sorted in alphabet
// order. A k-mer qualifies as soon as one of its runs of threshold
// consecutive occurrences fits the window; how many such runs exist is not
// counted.
func (s Seq) Clumps(windowSize, k, threshold int) []Seq {
	if k <= 0 || threshold <= 0 {
		return nil
	}
	var out []Seq
	for w, positions := range s.KMers(k, 0, false) {
		if len(positions) < threshold {
			continue
		}
		for i := 0; i+threshold <= len(positions); i++ {
			if positions[i+threshold-1]-positions[i]+1 <= windowSize-k {
				out = append(out, w)
				break
			}
		}
	}
	slices.SortFunc(out, Compare)
	return out
}
