package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/islands/internal/matrix"
	"github.com/vovakirdan/islands/internal/round"
	"github.com/vovakirdan/islands/internal/terrain"
)

var (
	flagGuessMatrix     string
	flagGuessDifficulty string
	flagGuessHints      bool
)

var guessCmd = &cobra.Command{
	Use:   "guess <x,y>...",
	Short: "Play guesses against a round",
	Long: `Build a round and guess cells, in order, until the round is won or
the attempts run out. x is the column and y the row, both from 0.

Use the same --seed to replay a generated map. With --matrix the round is
played on a file; a file with the wrong shape falls back to a generated map.

Examples:
  islands guess 4,7 --seed 42
  islands guess 4,7 12,3 20,20 --seed 42 --difficulty hard
  islands guess 0,0 --matrix ./map.txt --hints`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGuess,
}

func init() {
	guessCmd.Flags().StringVar(&flagGuessMatrix, "matrix", "", "Play on a matrix file instead of a generated map")
	guessCmd.Flags().StringVar(&flagGuessDifficulty, "difficulty", "", "Difficulty: easy, hard (default from config)")
	guessCmd.Flags().BoolVar(&flagGuessHints, "hints", false, "Show the average height of each guessed island")
}

func runGuess(cmd *cobra.Command, args []string) error {
	coords := make([]terrain.Coord, 0, len(args))
	for _, arg := range args {
		c, err := parseCoord(arg)
		if err != nil {
			return err
		}
		coords = append(coords, c)
	}

	session, err := newSession(flagGuessDifficulty, 0)
	if err != nil {
		return err
	}
	if flagGuessMatrix != "" {
		m, err := matrix.LoadFile(flagGuessMatrix)
		if err != nil {
			return err
		}
		session.WithMatrix(m)
	}

	r, err := session.NewRound()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Round %s (%s, %d attempts)\n", r.ID(), r.Difficulty(), r.AttemptsLeft())

	for _, c := range coords {
		res, err := r.Guess(c.X, c.Y)
		if errors.Is(err, round.ErrOutOfBounds) {
			fmt.Fprintf(out, "%s: outside the map, try again\n", c)
			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s: %s\n", c, res.Message)
		if flagGuessHints {
			if hint := r.Hint(c.X, c.Y); hint != "" {
				fmt.Fprintf(out, "  %s\n", hint)
			}
		}
		if res.Outcome != round.OutcomePlaying {
			break
		}
	}

	if r.Outcome() == round.OutcomePlaying {
		fmt.Fprintf(out, "Out of guesses to try; %d attempts left.\n", r.AttemptsLeft())
	}
	return nil
}

// parseCoord parses "x,y".
func parseCoord(s string) (terrain.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return terrain.Coord{}, fmt.Errorf("invalid guess %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return terrain.Coord{}, fmt.Errorf("invalid guess %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return terrain.Coord{}, fmt.Errorf("invalid guess %q: %w", s, err)
	}
	return terrain.C(x, y), nil
}
