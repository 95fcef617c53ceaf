package seq

import (
	"reflect"
	"testing"
)

// census is a readable literal form for expected KMers output.
type census map[string][]int

func (c census) toSeqs(t *testing.T) map[Seq][]int {
	t.Helper()
	out := make(map[Seq][]int, len(c))
	for letters, positions := range c {
		out[mustNew(t, letters)] = positions
	}
	return out
}

func TestKMers(t *testing.T) {
	type args struct {
		letters       string
		k             int
		maxMismatches int
		foldRevComp   bool
	}
	tests := []struct {
		name string
		args args
		want census
	}{
		{
			"positions in scan order",
			args{"ACGTACG", 3, 0, false},
			census{"ACG": {0, 4}, "CGT": {1}, "GTA": {2}, "TAC": {3}},
		},
		{
			"single nucleotide words",
			args{"GGC", 1, 0, false},
			census{"G": {0, 1}, "C": {2}},
		},
		{
			"k equals length",
			args{"ACGT", 4, 0, false},
			census{"ACGT": {0}},
		},
		{
			"k too large",
			args{"ACG", 4, 0, false},
			census{},
		},
		{
			"k zero",
			args{"ACG", 0, 0, false},
			census{},
		},
		{
			"reverse complement folding unions colliding words",
			args{"ACGT", 2, 0, true},
			// AC@0 and GT@2 are each other's reverse complement, so both
			// keys carry both positions; CG pairs with itself.
			census{"AC": {0, 2}, "GT": {0, 2}, "CG": {1}},
		},
		{
			"reverse complement folding keeps palindromes single",
			args{"AAT", 2, 0, true},
			census{"AA": {0}, "TT": {0}, "AT": {1}},
		},
		{
			"mismatch folding unions overlapping neighborhoods",
			args{"AAT", 2, 1, false},
			census{
				"AA": {0, 1}, "AT": {0, 1}, "AC": {0, 1}, "AG": {0, 1},
				"CA": {0}, "GA": {0}, "TA": {0},
				"CT": {1}, "GT": {1}, "TT": {1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, tt.args.letters)
			got := s.KMers(tt.args.k, tt.args.maxMismatches, tt.args.foldRevComp)
			if want := tt.want.toSeqs(t); !reflect.DeepEqual(got, want) {
				t.Errorf("KMers(%d, %d, %v) = %v, want %v", tt.args.k, tt.args.maxMismatches, tt.args.foldRevComp, got, want)
			}
		})
	}
}

// Folding both ways applies the reverse complement pass first, so the
// mismatch neighborhoods expand the already-folded census.
func TestKMersBothFolds(t *testing.T) {
	s := mustNew(t, "ACGT")
	got := s.KMers(2, 1, true)

	// After reverse-complement folding AC and GT each sit at {0,2}. Their
	// shared neighbors must union those positions with CG's {1}.
	ac := mustNew(t, "AC")
	if !reflect.DeepEqual(got[ac], []int{0, 2}) {
		t.Errorf("positions of AC = %v, want [0 2]", got[ac])
	}
	// CC neighbors AC (one mismatch) and CG (one mismatch): all three
	// positions show up.
	cc := mustNew(t, "CC")
	if !reflect.DeepEqual(got[cc], []int{0, 1, 2}) {
		t.Errorf("positions of CC = %v, want [0 1 2]", got[cc])
	}
}

func TestMergePositions(t *testing.T) {
	type args struct {
		a []int
		b []int
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"disjoint", args{[]int{1, 5}, []int{2, 9}}, []int{1, 2, 5, 9}},
		{"overlapping", args{[]int{1, 3, 5}, []int{3, 5, 7}}, []int{1, 3, 5, 7}},
		{"first empty", args{nil, []int{4, 6}}, []int{4, 6}},
		{"second empty", args{[]int{4, 6}, nil}, []int{4, 6}},
		{"both empty", args{nil, nil}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergePositions(tt.args.a, tt.args.b); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mergePositions(%v, %v) = %v, want %v", tt.args.a, tt.args.b, got, tt.want)
			}
		})
	}
}
