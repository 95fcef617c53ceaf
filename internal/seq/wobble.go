package seq

// Wobbles returns every sequence of the same length within maxMismatches
// Hamming distance of s: the full mismatch neighborhood, s included, with
// no duplicates. A budget of zero (or less) yields s alone.
//
// The neighborhood size is NeighborhoodSize(s.Len(), maxMismatches) and
// grows exponentially with the budget; callers are expected to keep
// maxMismatches small and check the size before generating.
func Wobbles(s Seq, maxMismatches int) []Seq {
	if maxMismatches <= 0 || s.Len() == 0 {
		return []Seq{s}
	}

	// One suffix neighbor and its distance from the original suffix.
	type wobble struct {
		letters []byte
		dist    int
	}

	// Seed with the last position: every single-nucleotide sequence is a
	// neighbor of a single nucleotide once any budget is available.
	cur := make([]wobble, 0, 4)
	last := s.letters[s.Len()-1]
	for _, n := range Alphabet {
		d := 0
		if byte(n) != last {
			d = 1
		}
		cur = append(cur, wobble{[]byte{byte(n)}, d})
	}

	// Fold the remaining positions on right to left. A suffix neighbor
	// that has budget left over takes all four nucleotides in front of it;
	// one that has spent the whole budget must keep the original
	// nucleotide. The distance bookkeeping makes the two cases exact, so
	// the result is the whole Hamming ball and nothing else.
	for i := s.Len() - 2; i >= 0; i-- {
		next := make([]wobble, 0, len(cur))
		for _, w := range cur {
			if w.dist < maxMismatches {
				for _, n := range Alphabet {
					d := w.dist
					if byte(n) != s.letters[i] {
						d++
					}
					ext := make([]byte, 0, len(w.letters)+1)
					ext = append(ext, byte(n))
					ext = append(ext, w.letters...)
					next = append(next, wobble{ext, d})
				}
			} else {
				ext := make([]byte, 0, len(w.letters)+1)
				ext = append(ext, s.letters[i])
				ext = append(ext, w.letters...)
				next = append(next, wobble{ext, w.dist})
			}
		}
		cur = next
	}

	out := make([]Seq, len(cur))
	for i, w := range cur {
		out[i] = Seq{string(w.letters)}
	}
	return out
}

// NeighborhoodSize returns how many sequences of length l lie within d
// mismatches of any fixed sequence: the sum over i = 0..d of C(l,i)*3^i.
// It lets callers judge the cost of Wobbles before paying it. The count
// overflows int for parameters far beyond anything Wobbles could generate
// anyway.
func NeighborhoodSize(l, d int) int {
	if d < 0 {
		d = 0
	}
	if d > l {
		d = l
	}
	total := 0
	for i := 0; i <= d; i++ {
		choose := 1
		for j := 0; j < i; j++ {
			choose = choose * (l - j) / (j + 1)
		}
		pow := 1
		for j := 0; j < i; j++ {
			pow *= 3
		}
		total += choose * pow
	}
	return total
}
