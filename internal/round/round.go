package round

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/vovakirdan/islands/internal/terrain"
)

// Outcome is the state of a round.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Player-facing messages.
const (
	msgStart = "Pick an island to guess!"
	msgWon   = "Congratulations! You found the highest island!"
	msgWrong = "Wrong guess! Attempts left: %d"
	msgLost  = "Game over! The highest island was at %s."
)

// GuessResult reports the effect of one guess.
type GuessResult struct {
	Correct      bool
	Island       *terrain.Island // nil when the guess hit water
	AttemptsLeft int
	Outcome      Outcome
	Message      string
}

// Round is one game on one map. It owns its grid, the island partition
// and the target; none of them change after construction.
type Round struct {
	id         uuid.UUID
	difficulty terrain.Difficulty
	grid       *terrain.Grid
	partition  *terrain.Partition
	target     *terrain.Island
	result     *terrain.Result

	attempts int
	outcome  Outcome
	message  string
	guesses  []terrain.Coord
}

func newRound(g *terrain.Grid, d terrain.Difficulty, part *terrain.Partition, target *terrain.Island, res *terrain.Result, attempts int) *Round {
	return &Round{
		id:         uuid.New(),
		difficulty: d,
		grid:       g,
		partition:  part,
		target:     target,
		result:     res,
		attempts:   attempts,
		outcome:    OutcomePlaying,
		message:    msgStart,
	}
}

// ID returns the round's unique identifier.
func (r *Round) ID() string {
	return r.id.String()
}

// Difficulty returns the policy the map was generated with, or
// DifficultyExternal for supplied matrices.
func (r *Round) Difficulty() terrain.Difficulty {
	return r.difficulty
}

// Grid returns a copy of the round's map.
func (r *Round) Grid() *terrain.Grid {
	return r.grid.Clone()
}

// Partition returns the islands of the round's map.
func (r *Round) Partition() *terrain.Partition {
	return r.partition
}

// Result returns the generation result; false for supplied matrices.
func (r *Round) Result() (terrain.Result, bool) {
	if r.result == nil {
		return terrain.Result{}, false
	}
	return *r.result, true
}

// IslandContaining returns the island holding (x, y).
func (r *Round) IslandContaining(x, y int) (*terrain.Island, bool) {
	return r.partition.IslandContaining(x, y)
}

// Target returns the island with the highest average elevation.
func (r *Round) Target() *terrain.Island {
	return r.target
}

// AttemptsLeft returns the remaining wrong guesses allowed.
func (r *Round) AttemptsLeft() int {
	return r.attempts
}

// Outcome returns the current state of the round.
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Message returns the latest player-facing message.
func (r *Round) Message() string {
	return r.message
}

// Guesses returns the in-bounds cells guessed so far.
func (r *Round) Guesses() []terrain.Coord {
	return append([]terrain.Coord(nil), r.guesses...)
}

// Guess checks whether (x, y) lies on the target island. Any other cell,
// water included, costs one attempt.
func (r *Round) Guess(x, y int) (GuessResult, error) {
	if r.outcome != OutcomePlaying {
		return r.resultFor(nil, false), ErrRoundOver
	}
	c := terrain.C(x, y)
	if !r.grid.InBounds(c) {
		return GuessResult{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	r.guesses = append(r.guesses, c)

	isl, _ := r.partition.IslandAt(c)
	if isl == r.target {
		r.outcome = OutcomeWon
		r.message = msgWon
		return r.resultFor(isl, true), nil
	}

	r.attempts--
	if r.attempts > 0 {
		r.message = fmt.Sprintf(msgWrong, r.attempts)
	} else {
		r.outcome = OutcomeLost
		r.message = fmt.Sprintf(msgLost, r.target.Anchor())
	}
	return r.resultFor(isl, false), nil
}

func (r *Round) resultFor(isl *terrain.Island, correct bool) GuessResult {
	return GuessResult{
		Correct:      correct,
		Island:       isl,
		AttemptsLeft: r.attempts,
		Outcome:      r.outcome,
		Message:      r.message,
	}
}

// Hint describes the island under (x, y), or returns "" for water and
// out-of-bounds cells.
func (r *Round) Hint(x, y int) string {
	isl, ok := r.partition.IslandContaining(x, y)
	if !ok {
		return ""
	}
	return "Island Average Height: " + humanize.FormatFloat("#,###.##", isl.AverageElevation())
}
