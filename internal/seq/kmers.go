package seq

// KMers slides a k-length window across the sequence and maps every k-mer
// to its ascending start positions.
//
// With foldRevComp set, a k-mer and its reverse complement count as the
// same word: the positions of each land on both keys, so either strand's
// spelling looks the occurrences up. With maxMismatches > 0, every k-mer's
// positions additionally land on each member of its mismatch neighborhood,
// so near-miss occurrences count toward a word's tally. Reverse-complement
// folding happens before mismatch folding when both are requested.
//
// Position lists from different source k-mers that meet on one key are
// merged: ascending, without duplicates. Folding with a large mismatch
// budget inherits the exponential neighborhood cost of Wobbles.
//
// A k of zero or less, or beyond the sequence length, yields an empty map.
func (s Seq) KMers(k, maxMismatches int, foldRevComp bool) map[Seq][]int {
	kmers := make(map[Seq][]int)
	if k <= 0 || k > s.Len() {
		return kmers
	}
	for i := 0; i+k <= len(s.letters); i++ {
		w := Seq{s.letters[i : i+k]}
		kmers[w] = append(kmers[w], i)
	}
	if foldRevComp {
		kmers = foldReverseComplements(kmers)
	}
	if maxMismatches > 0 {
		kmers = foldWobbles(kmers, maxMismatches)
	}
	return kmers
}

// foldReverseComplements spreads every k-mer's positions onto the k-mer
// and its reverse complement. Merging keeps the result independent of map
// iteration order.
func foldReverseComplements(kmers map[Seq][]int) map[Seq][]int {
	out := make(map[Seq][]int, len(kmers))
	for w, positions := range kmers {
		out[w] = mergePositions(out[w], positions)
		rc := w.ReverseComplement()
		out[rc] = mergePositions(out[rc], positions)
	}
	return out
}

// foldWobbles spreads every k-mer's positions onto its whole mismatch
// neighborhood.
func foldWobbles(kmers map[Seq][]int, maxMismatches int) map[Seq][]int {
	out := make(map[Seq][]int, len(kmers))
	for w, positions := range kmers {
		for _, neighbor := range Wobbles(w, maxMismatches) {
			out[neighbor] = mergePositions(out[neighbor], positions)
		}
	}
	return out
}

// mergePositions unions two ascending position lists into a fresh
// ascending list without duplicates.
func mergePositions(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b):
			out = append(out, a[i])
			i++
		case i >= len(a):
			out = append(out, b[j])
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
