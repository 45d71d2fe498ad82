package round

import "errors"

var (
	// ErrOutOfBounds is returned for guesses outside the grid. No attempt is consumed.
	ErrOutOfBounds = errors.New("round: coordinate out of bounds")

	// ErrRoundOver is returned for guesses after the round was won or lost.
	ErrRoundOver = errors.New("round: round is over")

	// ErrNoTarget is returned when a map has no island to guess.
	ErrNoTarget = errors.New("round: map has no target island")
)
