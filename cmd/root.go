// Package cmd is for command line interactions with the dnalab application
package cmd

import (
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// profiler is the active profile run, when --profile is set.
var profiler interface{ Stop() }

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "dnalab",
	Short: `Analyze DNA sequences: count k-mers, find patterns with mismatches,
locate clumps and skew minima, and hunt conserved motifs`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}

		switch mode, _ := cmd.Flags().GetString("profile"); mode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."))
		case "block":
			profiler = profile.Start(profile.BlockProfile, profile.ProfilePath("."))
		default:
			log.Fatalf("unknown profile mode %q: use cpu, mem or block", mode)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug detail to stderr")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu, mem or block profile")
	rootCmd.PersistentFlags().MarkHidden("profile")
}
