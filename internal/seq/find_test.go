package seq

import (
	"reflect"
	"testing"
)

func TestFind(t *testing.T) {
	type args struct {
		letters       string
		pattern       string
		maxMismatches int
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"exact occurrences", args{"GATATATGCATATACTT", "ATAT", 0}, []int{1, 3, 9}},
		{"overlapping occurrences", args{"AAAA", "AA", 0}, []int{0, 1, 2}},
		{"no occurrence", args{"ACGT", "TTT", 0}, nil},
		{"pattern longer than sequence", args{"AC", "ACGT", 0}, nil},
		{"negative budget", args{"ACGT", "AC", -1}, nil},
		{"exact within mismatch budget", args{"AATAAACT", "AAA", 0}, []int{3}},
		{"one mismatch widens the net", args{"AATAAACT", "AAA", 1}, []int{0, 1, 2, 3, 4}},
		{"budget covers the whole pattern", args{"ACG", "TTT", 3}, []int{0}},
		{"empty pattern matches every offset", args{"ACG", "", 0}, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, tt.args.letters)
			p := mustNew(t, tt.args.pattern)
			if got := s.Find(p, tt.args.maxMismatches); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find(%v, %d) = %v, want %v", p, tt.args.maxMismatches, got, tt.want)
			}
		})
	}
}

// Fuzzy Find and the wobble neighborhood describe the same relation from
// opposite ends: a window matches within the budget exactly when the
// pattern's neighborhood contains it.
func TestFindAgreesWithWobbles(t *testing.T) {
	s := mustNew(t, "CGTACGTACCCGGTAC")
	pattern := mustNew(t, "CGTA")

	for d := 0; d <= 2; d++ {
		neighborhood := make(map[Seq]bool)
		for _, w := range Wobbles(pattern, d) {
			neighborhood[w] = true
		}
		var want []int
		for i := 0; i+pattern.Len() <= s.Len(); i++ {
			w, err := s.Part(i, pattern.Len())
			if err != nil {
				t.Fatalf("Part(%d, %d) error = %v", i, pattern.Len(), err)
			}
			if neighborhood[w] {
				want = append(want, i)
			}
		}
		if got := s.Find(pattern, d); !reflect.DeepEqual(got, want) {
			t.Errorf("Find(%v, %d) = %v, want %v", pattern, d, got, want)
		}
	}
}
