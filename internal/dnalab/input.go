// Package dnalab ties the command line verbs to the sequence and motif
// engines: it parses input sequences, checks settings, runs the
// analysis, and writes reports.
package dnalab

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/config"
	"github.com/valentinburk/dnalab/internal/seq"
)

// record is one named input sequence.
type record struct {
	// the sequence's name, from a FASTA header or its input position
	id string

	// the sequence itself
	seq seq.Seq
}

// Flags contains parsed cobra flags like "in" and "out" that are used
// by multiple commands.
type Flags struct {
	// the named sequences under analysis
	records []record

	// the name of the file to write the report to; stdout when empty
	out string
}

// inputParser contains methods for parsing sequences from arguments
// and input files.
type inputParser struct{}

// parseCmdFlags gathers the input sequences and the out path from a
// cobra cmd object. Returns Flags and a Config struct for the verb.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, config.Config) {
	c, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	fs := &Flags{}
	p := inputParser{}

	fs.out, _ = cmd.Flags().GetString("out")

	// sequences passed directly win over input files
	if len(args) > 0 {
		if fs.records, err = p.parseArgs(args); err != nil {
			log.Fatal(err)
		}
		return fs, c
	}

	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		if in, err = p.guessInput(); err != nil {
			cmd.Help()
			log.Fatal(err)
		}
	}
	log.Debugf("reading sequences from %s", in)

	if fs.records, err = p.readIn(in); err != nil {
		log.Fatal(err)
	}
	return fs, c
}

// parseArgs reads each positional argument as one sequence.
func (p *inputParser) parseArgs(args []string) (records []record, err error) {
	for i, arg := range args {
		s, err := p.parseSequence(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %v", i+1, err)
		}
		records = append(records, record{id: fmt.Sprintf("seq%d", i+1), seq: s})
	}
	return records, nil
}

// parseSequence builds a sequence from raw text, ignoring surrounding
// whitespace.
func (p *inputParser) parseSequence(raw string) (seq.Seq, error) {
	return seq.New(strings.TrimSpace(raw))
}

// guessInput returns the first fasta file in the current directory. Is
// used if the user hasn't passed sequences or an input file.
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext == ".fa" || ext == ".fasta" {
			return file.Name(), nil
		}
	}

	return "", fmt.Errorf("no sequences passed and no fasta file found in %s", dir)
}

// readIn reads records from the file at path: FASTA when the file
// looks like FASTA, one sequence per line otherwise.
func (p *inputParser) readIn(path string) ([]record, error) {
	if !filepath.IsAbs(path) {
		var err error
		if path, err = filepath.Abs(path); err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %v", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	contents := string(dat)

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".fa") ||
		strings.HasSuffix(lower, ".fasta") ||
		strings.HasPrefix(contents, ">") {
		return p.parseFasta(path, contents)
	}

	return p.parseLines(path, contents)
}

// parseFasta parses a multi-FASTA file to records. Whitespace inside a
// record is dropped; any other foreign character fails the record
// rather than being silently stripped.
func (p *inputParser) parseFasta(path, contents string) (records []record, err error) {
	lines := strings.Split(contents, "\n")

	// find the headers
	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.TrimSpace(line[1:]))
		}
	}

	if len(headerIndices) < 1 {
		return nil, fmt.Errorf("failed to parse any records from %s", path)
	}

	// accumulate the sequences from between the headers
	whitespace := regexp.MustCompile(`\s`)
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]
		joined := whitespace.ReplaceAllString(strings.Join(seqLines, ""), "")

		s, err := seq.New(joined)
		if err != nil {
			return nil, fmt.Errorf("record %q in %s: %v", ids[i], path, err)
		}
		records = append(records, record{id: ids[i], seq: s})
	}

	return records, nil
}

// parseLines reads one sequence per line. Blank lines and lines
// starting with # are skipped.
func (p *inputParser) parseLines(path, contents string) (records []record, err error) {
	for i, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s, err := seq.New(line)
		if err != nil {
			return nil, fmt.Errorf("line %d of %s: %v", i+1, path, err)
		}
		records = append(records, record{id: fmt.Sprintf("line%d", i+1), seq: s})
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse any sequences from %s", path)
	}

	return records, nil
}

// intSetting returns the flag's value when it was changed on the
// command line and fallback, the configured value, otherwise.
func intSetting(cmd *cobra.Command, name string, fallback int) int {
	if cmd.Flags().Changed(name) {
		if v, err := cmd.Flags().GetInt(name); err == nil {
			return v
		}
	}
	return fallback
}
