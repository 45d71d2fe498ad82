package round_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/islands/internal/config"
	"github.com/vovakirdan/islands/internal/round"
	"github.com/vovakirdan/islands/internal/terrain"
)

func newSession(t *testing.T, opts round.Options, seed int64) (*round.Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	s, err := round.NewSession(opts, terrain.NewRand(seed), logger)
	require.NoError(t, err)
	return s, &buf
}

func TestNewRoundGenerated(t *testing.T) {
	for _, d := range []terrain.Difficulty{terrain.DifficultyEasy, terrain.DifficultyHard} {
		opts := round.DefaultOptions()
		opts.Difficulty = d
		s, buf := newSession(t, opts, 42)

		r, err := s.NewRound()
		require.NoError(t, err)
		assert.Equal(t, d, r.Difficulty())
		assert.Equal(t, 30, r.Grid().Size())
		assert.Contains(t, buf.String(), "round ready")

		res, ok := r.Result()
		require.True(t, ok)
		assert.Equal(t, r.Partition().Len(), res.Islands)

		want, ok := terrain.SelectTarget(r.Partition().Islands())
		require.True(t, ok)
		assert.Same(t, want, r.Target(), "%s", d)
	}
}

func TestNewRoundRestartsFresh(t *testing.T) {
	s, _ := newSession(t, round.DefaultOptions(), 3)

	first, err := s.NewRound()
	require.NoError(t, err)
	_, err = first.Guess(first.Target().Anchor().X, first.Target().Anchor().Y)
	require.NoError(t, err)

	second, err := s.NewRound()
	require.NoError(t, err)
	assert.Equal(t, round.OutcomePlaying, second.Outcome())
	assert.Equal(t, 3, second.AttemptsLeft())
	assert.NotEqual(t, first.ID(), second.ID())
	assert.False(t, first.Grid().Equal(second.Grid()))
}

func TestNewRoundIsReproducible(t *testing.T) {
	a, _ := newSession(t, round.DefaultOptions(), 99)
	b, _ := newSession(t, round.DefaultOptions(), 99)

	ra, err := a.NewRound()
	require.NoError(t, err)
	rb, err := b.NewRound()
	require.NoError(t, err)

	assert.True(t, ra.Grid().Equal(rb.Grid()))
	assert.Equal(t, ra.Target().Anchor(), rb.Target().Anchor())
}

func TestNewRoundShapeMismatchFallsBack(t *testing.T) {
	opts := round.DefaultOptions()
	opts.Difficulty = terrain.DifficultyHard
	s, buf := newSession(t, opts, 5)

	r, err := s.WithMatrix([][]int{{1, 2}, {3}}).NewRound()
	require.NoError(t, err)
	assert.Equal(t, terrain.DifficultyEasy, r.Difficulty())
	assert.Equal(t, 30, r.Grid().Size())
	assert.Contains(t, buf.String(), "external matrix rejected")
}

func TestNewRoundMatrixWithoutLand(t *testing.T) {
	opts := round.DefaultOptions()
	opts.Size = 3
	s, _ := newSession(t, opts, 1)

	_, err := s.WithMatrix([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}).NewRound()
	assert.ErrorIs(t, err, round.ErrNoTarget)
	assert.ErrorIs(t, err, terrain.ErrDegenerateMap)
}

func TestNewRoundDegenerateGeneration(t *testing.T) {
	opts := round.DefaultOptions()
	opts.Difficulty = terrain.DifficultyHard
	opts.MaxRegenerations = 2
	opts.Params.WaterProbability = 1
	s, buf := newSession(t, opts, 1)

	_, err := s.NewRound()
	assert.ErrorIs(t, err, terrain.ErrDegenerateMap)

	out := buf.String()
	assert.Contains(t, out, "3rd")
	assert.Contains(t, out, "falling back")
}

func TestNewRoundUnknownDifficulty(t *testing.T) {
	opts := round.DefaultOptions()
	opts.Difficulty = "nightmare"
	s, _ := newSession(t, opts, 1)

	_, err := s.NewRound()
	assert.ErrorIs(t, err, terrain.ErrUnknownDifficulty)
}

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *round.Options)
	}{
		{"zero size", func(o *round.Options) { o.Size = 0 }},
		{"no attempts", func(o *round.Options) { o.Attempts = 0 }},
		{"bad params", func(o *round.Options) { o.Params.SeedMin = 9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := round.DefaultOptions()
			tt.mutate(&opts)
			_, err := round.NewSession(opts, terrain.NewRand(1), nil)
			assert.Error(t, err)
		})
	}

	_, err := round.NewSession(round.DefaultOptions(), nil, nil)
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultIslandsConfig()
	opts := round.OptionsFromConfig(cfg)

	assert.Equal(t, round.DefaultOptions(), opts)

	cfg.Generation.Seeder = config.SeederNoise
	cfg.Generation.Difficulty = "hard"
	cfg.Round.Attempts = 5
	opts = round.OptionsFromConfig(cfg)
	assert.Equal(t, terrain.DifficultyHard, opts.Difficulty)
	assert.Equal(t, 5, opts.Attempts)
	assert.Equal(t, terrain.DefaultNoiseSeeder(), opts.Seeder)
}
