package motif

import (
	"fmt"

	"github.com/valentinburk/dnalab/internal/seq"
)

// Search greedily looks for the most conserved set of k-mers, one per
// row, and returns it as a new matrix.
//
// Each starting offset in the first row seeds a candidate set with the
// window at that offset. The remaining rows are then visited in order,
// each contributing the k-mer the profile of the set so far considers
// most probable. The candidate set with the lowest conservation score
// wins; the running best starts as every row's leading window, so a
// degenerate input still yields a valid answer. A heuristic, not an
// exhaustive search: only sets reachable this way are considered.
//
// Results are deterministic: ties between candidate k-mers go to the
// earliest occurrence in the row, and ties between candidate sets go to
// the earliest starting offset.
func (m *Matrix) Search(k int) (*Matrix, error) {
	if k <= 0 || k > m.Width() {
		return nil, fmt.Errorf("%w: motif length %d with %d nt rows", seq.ErrIndexOutOfRange, k, m.Width())
	}

	motifs := make([]seq.Seq, m.NumSeqs())
	for i, row := range m.rows {
		w, err := row.Part(0, k)
		if err != nil {
			return nil, err
		}
		motifs[i] = w
	}
	best, err := New(motifs)
	if err != nil {
		return nil, err
	}

	for offset := 0; offset+k <= m.Width(); offset++ {
		seed, err := m.rows[0].Part(offset, k)
		if err != nil {
			return nil, err
		}
		motifs := append(make([]seq.Seq, 0, m.NumSeqs()), seed)
		for _, row := range m.rows[1:] {
			sofar, err := New(motifs)
			if err != nil {
				return nil, err
			}
			motifs = append(motifs, sofar.mostProbableKMer(row, k))
		}
		candidate, err := New(motifs)
		if err != nil {
			return nil, err
		}
		if candidate.Score() < best.Score() {
			best = candidate
		}
	}
	return best, nil
}

// mostProbableKMer picks the distinct k-mer of row with the highest
// probability under the matrix columns. Candidates are scanned in
// first-occurrence order and a later one has to strictly beat the
// current best, so ties resolve the same way on every run.
func (m *Matrix) mostProbableKMer(row seq.Seq, k int) seq.Seq {
	seen := make(map[seq.Seq]bool)
	var best seq.Seq
	bestProb := -1.0
	for i := 0; i+k <= row.Len(); i++ {
		w, _ := row.Part(i, k) // in range by the loop bound
		if seen[w] {
			continue
		}
		seen[w] = true
		p, _ := m.Prob(w) // w spans k nt, matching the matrix width
		if p > bestProb {
			best, bestProb = w, p
		}
	}
	return best
}
