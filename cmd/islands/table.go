package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/islands/internal/terrain"
)

// printIslands writes one line per island, marking the target with '*'.
func printIslands(w io.Writer, part *terrain.Partition, target *terrain.Island) {
	fmt.Fprintf(w, "%s across %s land cells\n",
		plural(part.Len(), "island"), humanize.Comma(int64(part.LandCount())))
	if part.Len() == 0 {
		return
	}

	fmt.Fprintf(w, "  %4s  %-9s  %5s  %7s  %3s  %3s\n", "ID", "Anchor", "Size", "Average", "Min", "Max")
	for _, isl := range part.Islands() {
		mark := " "
		if isl == target {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %4d  %-9s  %5d  %7s  %3d  %3d\n",
			mark, isl.ID(), isl.Anchor(), isl.Size(),
			humanize.FormatFloat("#,###.##", isl.AverageElevation()),
			isl.MinElevation(), isl.MaxElevation())
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}
