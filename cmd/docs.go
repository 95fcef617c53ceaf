package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"dnalab":           {"dnalab", 0},
	"dnalab_find":      {"find", 0},
	"dnalab_kmers":     {"kmers", 1},
	"dnalab_clumps":    {"clumps", 2},
	"dnalab_skew":      {"skew", 3},
	"dnalab_neighbors": {"neighbors", 4},
	"dnalab_motifs":    {"motifs", 5},
	"dnalab_random":    {"random", 6},
}

// docsCmd regenerates the Markdown documentation pages.
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown docs for every command",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal(err)
		}
		if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
			log.Fatal(err)
		}
	},
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metaMap[base]
	if !ok {
		return ""
	}

	if base == "dnalab" {
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	}
	return fmt.Sprintf(childDoc, m.title, "dnalab", m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "dnalab" {
		return "/"
	}
	return base
}

// set flags
func init() {
	docsCmd.Flags().StringP("dir", "d", "./docs", "directory to write the docs to")

	rootCmd.AddCommand(docsCmd)
}
