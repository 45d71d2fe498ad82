package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/islands/internal/matrix"
	"github.com/vovakirdan/islands/internal/terrain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a matrix file",
	Long: `Load a square elevation matrix and list its islands.
The island with the highest average elevation is marked with '*'.

Supported formats: .txt (or no extension), .yaml, .yml

Examples:
  islands analyze ./map.txt
  islands generate --seed 3 > map.txt && islands analyze map.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	m, err := matrix.LoadFile(args[0])
	if err != nil {
		return err
	}
	g, err := terrain.FromMatrix(len(m), m)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	part := terrain.FindIslands(g)
	target, ok := terrain.SelectTarget(part.Islands())
	logger.Debug("analyzed", "file", args[0], "size", g.Size(), "islands", part.Len())

	out := cmd.OutOrStdout()
	printIslands(out, part, target)
	if !ok {
		return fmt.Errorf("%s: %w", args[0], terrain.ErrDegenerateMap)
	}
	fmt.Fprintf(out, "\nTarget: island %d at %s, average %.2f\n",
		target.ID(), target.Anchor(), target.AverageElevation())
	return nil
}
