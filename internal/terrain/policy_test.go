package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed IntN results so policy draws can be asserted exactly.
type scriptedRand struct {
	ints []int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Int64() int64     { return 1 }
func (r *scriptedRand) Float64() float64 { return 0 }

func surveyOf(t *testing.T, m [][]int) Survey {
	t.Helper()
	g, err := FromMatrix(len(m), m)
	require.NoError(t, err)
	return survey(g, FindIslands(g))
}

var policyFixture = [][]int{
	{2, 2, 0, 0, 3},
	{2, 0, 0, 0, 0},
	{0, 0, 4, 0, 0},
	{0, 0, 0, 0, 1},
	{3, 3, 3, 0, 1},
}

func TestSurvey(t *testing.T) {
	s := surveyOf(t, policyFixture)

	require.Equal(t, 5, s.Partition.Len())
	// Two islands of size 3: the first discovered wins.
	assert.Equal(t, C(0, 0), s.Primary.Anchor())
	assert.Equal(t, 4.0, s.MaxAverage)
	require.Len(t, s.Tallest, 1)
	assert.Equal(t, C(2, 2), s.Tallest[0].Anchor())
}

func TestEasyPolicy(t *testing.T) {
	s := surveyOf(t, policyFixture)
	boost := easyPolicy(s, &scriptedRand{}, DefaultParams())

	assert.Same(t, s.Primary, boost.Designated)
	assert.True(t, boost.Decisive)
	assert.Equal(t, [][]int{
		{10, 10, 0, 0, 3},
		{10, 0, 0, 0, 0},
		{0, 0, 4, 0, 0},
		{0, 0, 0, 0, 1},
		{3, 3, 3, 0, 1},
	}, s.Grid.Matrix())
}

func TestEasyPolicyNotDecisiveWhenSeedsCanReachPeak(t *testing.T) {
	p := DefaultParams()
	p.SeedMax = 12
	boost := easyPolicy(surveyOf(t, policyFixture), &scriptedRand{}, p)
	assert.False(t, boost.Decisive)
}

func TestHardPolicy(t *testing.T) {
	s := surveyOf(t, policyFixture)
	rng := &scriptedRand{ints: []int{
		0,       // pick from the tallest group
		3,       // boost (2,2) -> 10
		1,       // re-roll the single cell at (4,0) -> 2
		0, 2,    // bump (4,3) by 3 and (4,4) by 5
		2, 2, 2, // bump the bottom row by 5
	}}

	boost := hardPolicy(s, rng, DefaultParams())

	assert.Equal(t, C(2, 2), boost.Designated.Anchor())
	assert.False(t, boost.Decisive)
	assert.Empty(t, rng.ints, "unexpected number of draws")
	assert.Equal(t, [][]int{
		{2, 2, 0, 0, 2},
		{2, 0, 0, 0, 0},
		{0, 0, 10, 0, 0},
		{0, 0, 0, 0, 4},
		{8, 8, 8, 0, 6},
	}, s.Grid.Matrix())

	target, ok := SelectTarget(FindIslands(s.Grid).Islands())
	require.True(t, ok)
	assert.Equal(t, C(2, 2), target.Anchor())
}

func TestHardPolicyBumpIsCapped(t *testing.T) {
	s := surveyOf(t, [][]int{
		{1, 1, 1},
		{0, 0, 0},
		{5, 5, 0},
	})
	// Primary is the top row; the bottom pair is the tallest group.
	require.Equal(t, C(0, 0), s.Primary.Anchor())
	require.Len(t, s.Tallest, 1)

	// With a single tallest island that is not primary there are no bumps left,
	// so add a third island to observe the cap.
	s = surveyOf(t, [][]int{
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{5, 5, 0, 6},
		{0, 0, 0, 0},
	})
	rng := &scriptedRand{ints: []int{
		0,    // tallest group is the single 6
		0,    // boost it to 7
		2, 2, // 5+5 capped at 9
	}}
	hardPolicy(s, rng, DefaultParams())

	assert.Equal(t, [][]int{
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{9, 9, 0, 7},
		{0, 0, 0, 0},
	}, s.Grid.Matrix())
}

func TestHardPolicySingleTallestIsStillBoosted(t *testing.T) {
	s := surveyOf(t, [][]int{
		{1, 1, 0},
		{0, 0, 0},
		{0, 0, 4},
	})
	require.Len(t, s.Tallest, 1)
	require.Equal(t, C(0, 0), s.Primary.Anchor())

	rng := &scriptedRand{ints: []int{
		0, // the only member of the tallest group
		3, // boost (2,2) -> 10
	}}
	boost := hardPolicy(s, rng, DefaultParams())

	assert.Empty(t, rng.ints, "unexpected number of draws")
	assert.Equal(t, C(2, 2), boost.Designated.Anchor())
	assert.Equal(t, [][]int{
		{1, 1, 0},
		{0, 0, 0},
		{0, 0, 10},
	}, s.Grid.Matrix())
}

func TestHardPolicyBoostsPrimaryWhenItIsTallest(t *testing.T) {
	s := surveyOf(t, [][]int{
		{2, 2},
		{0, 0},
	})
	require.Len(t, s.Tallest, 1)
	require.Same(t, s.Primary, s.Tallest[0])

	rng := &scriptedRand{ints: []int{0, 1, 2}}
	boost := hardPolicy(s, rng, DefaultParams())

	assert.Same(t, s.Primary, boost.Designated)
	assert.Equal(t, [][]int{
		{8, 9},
		{0, 0},
	}, s.Grid.Matrix())
}

func TestHardPolicyPicksAmongTies(t *testing.T) {
	fixture := [][]int{
		{3, 0, 3},
		{0, 0, 0},
		{1, 0, 3},
	}
	s := surveyOf(t, fixture)
	require.Len(t, s.Tallest, 3)

	// Index 2 picks the third tallest island, the single 3 at (2,2).
	rng := &scriptedRand{ints: []int{2, 0, 0, 0, 0}}
	boost := hardPolicy(s, rng, DefaultParams())
	assert.Equal(t, C(2, 2), boost.Designated.Anchor())
	assert.Equal(t, 7, s.Grid.Elevation(C(2, 2)))
	// Primary (0,0) untouched; the other singles are re-rolled into [1,7].
	assert.Equal(t, 3, s.Grid.Elevation(C(0, 0)))
	assert.Equal(t, 1, s.Grid.Elevation(C(2, 0)))
	assert.Equal(t, 1, s.Grid.Elevation(C(0, 2)))
}

func TestSurveyFloatTies(t *testing.T) {
	// Averages of 4/3 reached through different sums and sizes.
	s := surveyOf(t, [][]int{
		{1, 1, 2, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 2, 2},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1},
	})
	require.Equal(t, 3, s.Partition.Len())
	require.Len(t, s.Tallest, 2)
	assert.Equal(t, C(0, 0), s.Tallest[0].Anchor())
	assert.Equal(t, C(0, 2), s.Tallest[1].Anchor())
	assert.Equal(t, s.Tallest[0].AverageElevation(), s.Tallest[1].AverageElevation())

	target, ok := SelectTarget(s.Partition.Islands())
	require.True(t, ok)
	assert.Same(t, s.Tallest[0], target, "ties go to the first discovered island")
}

func TestPolicyRegistry(t *testing.T) {
	infos := Difficulties()
	require.Len(t, infos, 2)
	assert.Equal(t, DifficultyEasy, infos[0].Difficulty)
	assert.Equal(t, DifficultyHard, infos[1].Difficulty)
	assert.NotEmpty(t, infos[0].Title)

	_, ok := LookupPolicy(DifficultyHard)
	assert.True(t, ok)
	_, ok = LookupPolicy("nightmare")
	assert.False(t, ok)

	assert.Panics(t, func() {
		RegisterPolicy(DifficultyEasy, "again", easyPolicy)
	})
}
