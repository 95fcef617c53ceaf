package dnalab

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// header carries the report fields every command shares.
type header struct {
	// Command is the verb that produced the report
	Command string `json:"command"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`
}

// newHeader stamps a header for a command started at start.
func newHeader(command string, start time.Time) header {
	t := time.Now()
	return header{
		Command: command,
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Execution: time.Since(start).Seconds(),
	}
}

// writeReport writes the report as indented JSON to the filename
// requested, or to stdout when the filename is empty.
func writeReport(filename string, report interface{}) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %v", err)
	}
	output = append(output, '\n')

	if filename == "" {
		_, err = os.Stdout.Write(output)
		return err
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return fmt.Errorf("failed to write the report: %v", err)
	}
	return nil
}

// writeFasta writes records as FASTA to the filename requested, or to
// stdout when the filename is empty. Sequences wrap at 60 characters
// per line.
func writeFasta(filename string, records []record) error {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, ">%s\n", r.id)

		letters := r.seq.String()
		for i := 0; i < len(letters); i += 60 {
			end := i + 60
			if end > len(letters) {
				end = len(letters)
			}
			b.WriteString(letters[i:end])
			b.WriteByte('\n')
		}
	}

	if filename == "" {
		_, err := os.Stdout.WriteString(b.String())
		return err
	}

	if err := os.WriteFile(filename, []byte(b.String()), 0666); err != nil {
		return fmt.Errorf("failed to write fasta: %v", err)
	}
	return nil
}
