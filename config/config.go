// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SettingsFile is the base name of the optional settings file read
// from the working directory (settings.yaml).
const SettingsFile = "settings"

// CensusConfig is settings for k-mer counting and clump detection
type CensusConfig struct {
	// the k-mer length to count
	K int `mapstructure:"k"`

	// the window length scanned for clumping k-mers
	Window int `mapstructure:"window"`

	// the occurrence count a k-mer needs inside a window to clump
	Threshold int `mapstructure:"threshold"`
}

// SearchConfig is settings for fuzzy matching
type SearchConfig struct {
	// the largest mismatch budget a command accepts; the mismatch
	// neighborhood grows exponentially with the budget, so budgets
	// above this are refused instead of left to run
	MismatchLimit int `mapstructure:"mismatch-limit"`
}

// RandomConfig is settings for generated sequences
type RandomConfig struct {
	// the length of each generated sequence
	Length int `mapstructure:"length"`

	// how many sequences to generate
	Count int `mapstructure:"count"`

	// the generator seed; fixed, so runs are reproducible by default
	Seed int64 `mapstructure:"seed"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml, DNALAB_* environment variables, and
// those available from the command line
type Config struct {
	// k-mer census and clump settings
	Census CensusConfig `mapstructure:"census"`

	// fuzzy matching settings
	Search SearchConfig `mapstructure:"search"`

	// generated sequence settings
	Random RandomConfig `mapstructure:"random"`
}

// Load returns a new Config struct populated by Viper: defaults first,
// then an optional settings.yaml in the working directory, then
// environment variables, then any command line flags bound by /cmd.
func Load() (Config, error) {
	setDefaults()

	viper.SetConfigName(SettingsFile)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("DNALAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// a missing settings file just means defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read %s.yaml: %v", SettingsFile, err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode settings: %v", err)
	}

	return c, nil
}

// setDefaults registers the default for every setting. The census
// defaults are the usual replication-origin hunt: 9-mers clumping 3+
// times inside a 500 nt window.
func setDefaults() {
	viper.SetDefault("census.k", 9)
	viper.SetDefault("census.window", 500)
	viper.SetDefault("census.threshold", 3)
	viper.SetDefault("search.mismatch-limit", 3)
	viper.SetDefault("random.length", 100)
	viper.SetDefault("random.count", 1)
	viper.SetDefault("random.seed", 1)
}

// CheckMismatches refuses mismatch budgets outside 0..limit. A budget
// of d mismatches multiplies work by roughly C(k,d)*3^d, so it is
// capped instead of trusted.
func (c Config) CheckMismatches(d int) error {
	if d < 0 {
		return fmt.Errorf("mismatch budget %d is negative", d)
	}
	if d > c.Search.MismatchLimit {
		return fmt.Errorf(
			"mismatch budget %d is above the limit %d: raise search.mismatch-limit in %s.yaml to run anyway",
			d, c.Search.MismatchLimit, SettingsFile,
		)
	}
	return nil
}
