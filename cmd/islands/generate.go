package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/islands/internal/matrix"
)

var (
	flagGenDifficulty string
	flagGenSize       int
	flagGenFormat     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a map and print its matrix",
	Long: `Generate a map and print its elevation matrix, one row per line.
When stdout is a terminal an island summary follows the matrix.

Difficulty options:
  easy  - The largest island is raised to the peak elevation
  hard  - One of the tallest islands is nudged ahead of close rivals

Examples:
  islands generate
  islands generate --difficulty hard --seed 7
  islands generate --size 12 --format yaml > map.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagGenDifficulty, "difficulty", "", "Difficulty: easy, hard (default from config)")
	generateCmd.Flags().IntVar(&flagGenSize, "size", 0, "Grid side length (default from config)")
	generateCmd.Flags().StringVar(&flagGenFormat, "format", "text", "Output format: text, yaml")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	session, err := newSession(flagGenDifficulty, flagGenSize)
	if err != nil {
		return err
	}
	r, err := session.NewRound()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	m := r.Grid().Matrix()

	switch flagGenFormat {
	case "text":
		if err := matrix.WriteText(out, m); err != nil {
			return err
		}
	case "yaml":
		data, err := matrix.MarshalYAML(string(r.Difficulty())+"-"+r.ID(), m)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", flagGenFormat)
	}

	if isTerminal(out) {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Difficulty: %s\n", r.Difficulty())
		printIslands(out, r.Partition(), r.Target())
	}
	return nil
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
