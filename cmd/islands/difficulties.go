package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/islands/internal/terrain"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List generation difficulties",
	Long:  `Shows the boost policies registered for map generation.`,
	Run:   runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) {
	infos := terrain.Difficulties()

	// Calculate column widths
	maxLen := len("Difficulty")
	for _, info := range infos {
		if len(info.Difficulty) > maxLen {
			maxLen = len(info.Difficulty)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Difficulty", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----------", "-----------")
	for _, info := range infos {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, info.Difficulty, info.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'islands generate --difficulty <name>' to use one.")
}
