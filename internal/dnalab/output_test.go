package dnalab

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func Test_writeFasta(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.fasta")

	long := strings.Repeat("ACGTA", 26) // 130 nt, wraps at 60
	records := []record{
		{id: "first", seq: mustSeq(t, "ACGT")},
		{id: "second", seq: mustSeq(t, long)},
	}
	if err := writeFasta(out, records); err != nil {
		t.Fatalf("writeFasta() error = %v", err)
	}

	dat, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := ">first\nACGT\n>second\n" +
		long[:60] + "\n" + long[60:120] + "\n" + long[120:] + "\n"
	if string(dat) != want {
		t.Errorf("writeFasta() wrote %q, want %q", dat, want)
	}
}

func Test_writeReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	report := SkewReport{
		Skews: []SkewResult{
			{ID: "seq1", Min: -1, MinPositions: []int{5}},
		},
	}
	report.header = newHeader("skew", time.Now())

	if err := writeReport(out, report); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}

	dat, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got SkewReport
	if err := json.Unmarshal(dat, &got); err != nil {
		t.Fatalf("failed to parse the report back: %v", err)
	}

	if got.Command != "skew" {
		t.Errorf("report command = %q, want %q", got.Command, "skew")
	}
	if got.Time == "" {
		t.Error("report has no timestamp")
	}
	if !reflect.DeepEqual(got.Skews, report.Skews) {
		t.Errorf("report skews = %v, want %v", got.Skews, report.Skews)
	}
}
