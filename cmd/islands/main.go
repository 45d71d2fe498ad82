// islands generates island maps and plays the highest-island guessing game.
//
// Usage:
//
//	islands generate             - Generate a map and print its matrix
//	islands analyze <file>       - Find the islands and target of a matrix file
//	islands guess <x,y>...       - Play guesses against a round
//	islands difficulties         - List generation difficulties
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible maps
//	--config <path>      - Use a custom islands.yaml
//	--log-level <level>  - debug, info, warn, error (default: warn)
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/islands/internal/config"
	"github.com/vovakirdan/islands/internal/round"
	"github.com/vovakirdan/islands/internal/terrain"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "islands",
	Short: "Islands - find the highest island",
	Long: `Islands generates square maps of land and water, groups land into
islands and asks you to find the one with the highest average elevation.

Available commands:
  generate      - Generate a map and print its elevation matrix
  analyze       - Analyze a matrix file
  guess         - Play guesses against a round
  difficulties  - List generation difficulties

Examples:
  islands generate --difficulty hard --seed 42
  islands analyze ./map.txt
  islands guess 3,4 10,12 --seed 42
  islands difficulties`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom islands config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

// newLogger builds the stderr logger at the requested level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "islands",
		Level:           level,
	})
	return logger, nil
}

// seed returns the --seed value, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newSession loads the config, applies command overrides and opens a session.
func newSession(difficulty string, size int) (*round.Session, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadIslands(flagConfig)
	if err != nil {
		return nil, err
	}

	d, err := resolveDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyDifficulty(&cfg, string(d))
	if size > 0 {
		cfg.Grid.Size = size
	}

	s := seed()
	logger.Debug("session", "seed", s, "difficulty", cfg.Generation.Difficulty, "size", cfg.Grid.Size)

	session, err := round.NewSession(round.OptionsFromConfig(cfg), terrain.NewRand(s), logger)
	if err != nil {
		return nil, err
	}
	return session, nil
}
