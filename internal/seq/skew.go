package seq

// Skew returns the running G-C balance of the sequence: element 0 is 0 and
// every step adds +1 for a G, -1 for a C and 0 otherwise, so the result
// holds Len()+1 elements. The balance flips direction where DNA
// replication switches strands, which makes its minimum a proxy for the
// replication origin.
func (s Seq) Skew() []int {
	skew := make([]int, len(s.letters)+1)
	for i := 0; i < len(s.letters); i++ {
		step := 0
		switch Nt(s.letters[i]) {
		case G:
			step = 1
		case C:
			step = -1
		}
		skew[i+1] = skew[i] + step
	}
	return skew
}

// MinSkew returns every index of the skew array that holds its global
// minimum, ascending; ties are all reported.
func (s Seq) MinSkew() []int {
	skew := s.Skew()
	min := skew[0]
	for _, v := range skew[1:] {
		if v < min {
			min = v
		}
	}
	var positions []int
	for i, v := range skew {
		if v == min {
			positions = append(positions, i)
		}
	}
	return positions
}
