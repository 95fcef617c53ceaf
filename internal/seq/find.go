package seq

// Find returns the ascending start positions where pattern occurs in s
// with at most maxMismatches mismatching positions. A pattern longer than
// the sequence, or a negative budget, matches nowhere.
func (s Seq) Find(pattern Seq, maxMismatches int) []int {
	k := pattern.Len()
	if k > s.Len() || maxMismatches < 0 {
		return nil
	}
	var locations []int
	for i := 0; i+k <= len(s.letters); i++ {
		d := 0
		for j := 0; j < k && d <= maxMismatches; j++ {
			if s.letters[i+j] != pattern.letters[j] {
				d++
			}
		}
		if d <= maxMismatches {
			locations = append(locations, i)
		}
	}
	return locations
}
