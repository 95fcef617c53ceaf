// Package motif scores alignments of equal-length nucleotide sequences.
// A Matrix derives per-column counts, smoothed probability profiles, a
// conservation score, entropy, and a consensus sequence, and drives a
// greedy profile-guided motif search across its rows.
package motif

import (
	"errors"
	"fmt"

	"github.com/valentinburk/dnalab/internal/seq"
)

// ErrNoSequences reports an attempt to build a matrix from no rows.
var ErrNoSequences = errors.New("no sequences")

// Matrix is an immutable alignment of equal-length sequences together
// with the statistics of its columns. Everything is derived once at
// construction; accessors are plain reads.
type Matrix struct {
	rows      []seq.Seq
	profiles  []Profile
	score     int
	entropy   float64
	consensus seq.Seq
}

// New builds a Matrix from rows, which must be non-empty and share one
// length.
func New(rows []seq.Seq) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrNoSequences
	}
	width := rows[0].Len()
	for i, row := range rows[1:] {
		if row.Len() != width {
			return nil, fmt.Errorf("%w: row %d is %d nt, row 0 is %d nt", seq.ErrLengthMismatch, i+1, row.Len(), width)
		}
	}

	m := &Matrix{
		rows:     append([]seq.Seq(nil), rows...),
		profiles: make([]Profile, width),
	}
	column := make([]seq.Nt, len(rows))
	consensus := make([]seq.Nt, width)
	for j := 0; j < width; j++ {
		for i, row := range m.rows {
			column[i] = row.At(j)
		}
		count := CountNts(column)
		m.profiles[j] = NewProfile(count, count.Total())
		m.score += count.Total() - count.MaxCount()
		m.entropy += m.profiles[j].Entropy()
		consensus[j] = m.profiles[j].Max()[0]
	}
	m.consensus = seq.FromNts(consensus)
	return m, nil
}

// NumSeqs returns how many sequences are aligned.
func (m *Matrix) NumSeqs() int {
	return len(m.rows)
}

// Width returns the shared length of the aligned sequences.
func (m *Matrix) Width() int {
	return len(m.profiles)
}

// Rows returns a copy of the aligned sequences in their original order.
func (m *Matrix) Rows() []seq.Seq {
	return append([]seq.Seq(nil), m.rows...)
}

// Column returns the smoothed profile of column j. It panics when j is
// out of range, like a slice index.
func (m *Matrix) Column(j int) Profile {
	return m.profiles[j]
}

// Score sums, over all columns, the number of nucleotides that disagree
// with the column's most frequent one. Zero means every column is
// unanimous; lower is more conserved.
func (m *Matrix) Score() int {
	return m.score
}

// Entropy sums the column entropies, in bits.
func (m *Matrix) Entropy() float64 {
	return m.entropy
}

// Consensus returns the column winners as one sequence; ties go to the
// first nucleotide in alphabet order.
func (m *Matrix) Consensus() seq.Seq {
	return m.consensus
}

// Prob returns the probability the columns assign to s: the product of
// each column's smoothed probability of the matching nucleotide.
func (m *Matrix) Prob(s seq.Seq) (float64, error) {
	if s.Len() != m.Width() {
		return 0, fmt.Errorf("%w: %d nt against %d columns", seq.ErrLengthMismatch, s.Len(), m.Width())
	}
	p := 1.0
	for j := 0; j < s.Len(); j++ {
		p *= m.profiles[j].Prob(s.At(j))
	}
	return p, nil
}
