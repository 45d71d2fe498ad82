package round

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/islands/internal/terrain"
)

// Session builds rounds from one random source. Restarting a game is
// calling NewRound again; the previous Round is simply dropped.
type Session struct {
	opts   Options
	gen    *terrain.Generator
	logger *log.Logger
	matrix [][]int
	rounds int
}

// NewSession validates opts and prepares a generator. A nil logger discards output.
func NewSession(opts Options, rng terrain.Rand, logger *log.Logger) (*Session, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("round: size must be positive, got %d", opts.Size)
	}
	if opts.Attempts <= 0 {
		return nil, fmt.Errorf("round: attempts must be positive, got %d", opts.Attempts)
	}
	if opts.MaxRegenerations < 0 {
		opts.MaxRegenerations = 0
	}
	if opts.Fallback == "" {
		opts.Fallback = terrain.DifficultyEasy
	}

	gen, err := terrain.NewGenerator(opts.Params, opts.Seeder, rng)
	if err != nil {
		return nil, fmt.Errorf("round: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		opts:   opts,
		gen:    gen,
		logger: logger,
	}, nil
}

// WithMatrix makes every following round use m instead of generating.
// The matrix is validated when a round is built.
func (s *Session) WithMatrix(m [][]int) *Session {
	s.matrix = m
	return s
}

// Options returns the session configuration.
func (s *Session) Options() Options {
	return s.opts
}

// NewRound builds a fresh round.
//
// A supplied matrix with the wrong shape is logged and replaced by a
// generated map using the fallback difficulty. A well-formed matrix without
// land fails with ErrNoTarget wrapping terrain.ErrDegenerateMap.
func (s *Session) NewRound() (*Round, error) {
	if s.matrix != nil {
		r, err := s.matrixRound()
		if err == nil || !errors.Is(err, terrain.ErrShapeMismatch) {
			return r, err
		}
		s.logger.Warn("external matrix rejected, generating instead",
			"err", err,
			"difficulty", s.opts.Fallback,
		)
		return s.generatedRound(s.opts.Fallback)
	}

	r, err := s.generatedRound(s.opts.Difficulty)
	if err == nil || !errors.Is(err, terrain.ErrDegenerateMap) || s.opts.Difficulty == s.opts.Fallback {
		return r, err
	}
	s.logger.Warn("generation kept failing, falling back",
		"difficulty", s.opts.Difficulty,
		"fallback", s.opts.Fallback,
	)
	return s.generatedRound(s.opts.Fallback)
}

func (s *Session) matrixRound() (*Round, error) {
	g, err := terrain.FromMatrix(s.opts.Size, s.matrix)
	if err != nil {
		return nil, fmt.Errorf("round: external matrix: %w", err)
	}
	return s.newRound(g, DifficultyExternal, nil)
}

// generatedRound regenerates up to MaxRegenerations times after a map with no land.
func (s *Session) generatedRound(d terrain.Difficulty) (*Round, error) {
	tries := s.opts.MaxRegenerations + 1
	for i := 0; i < tries; i++ {
		g, err := terrain.NewGrid(s.opts.Size)
		if err != nil {
			return nil, fmt.Errorf("round: %w", err)
		}

		res, err := s.gen.Generate(g, d)
		if errors.Is(err, terrain.ErrDegenerateMap) {
			s.logger.Debug("map has no land, regenerating", "attempt", humanize.Ordinal(i+1))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("round: %w", err)
		}
		return s.newRound(g, d, &res)
	}
	return nil, fmt.Errorf("round: %d maps without land: %w", tries, terrain.ErrDegenerateMap)
}

func (s *Session) newRound(g *terrain.Grid, d terrain.Difficulty, res *terrain.Result) (*Round, error) {
	part := terrain.FindIslands(g)
	target, ok := terrain.Target(part, res)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrNoTarget, terrain.ErrDegenerateMap)
	}

	s.rounds++
	r := newRound(g, d, part, target, res, s.opts.Attempts)
	s.logger.Info("round ready",
		"id", r.ID(),
		"round", s.rounds,
		"difficulty", d,
		"islands", part.Len(),
		"land", humanize.Comma(int64(part.LandCount())),
	)
	return r, nil
}
