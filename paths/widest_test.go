package paths_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schulze/paths"
)

// wikipediaStrengths is the strongest-path matrix p[i][j] of the Wikipedia example.
var wikipediaStrengths = [5][5]uint32{
	{0, 28, 28, 30, 24},
	{25, 0, 28, 33, 24},
	{25, 29, 0, 29, 24},
	{25, 28, 28, 0, 24},
	{25, 28, 28, 31, 0},
}

func TestSolve_Wikipedia(t *testing.T) {
	t.Parallel()

	p := solved(t, 5, wikipediaBallots())
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				continue
			}
			assert.Equal(t, wikipediaStrengths[i][j], mustAt(t, p, i, j), "path(%d,%d)", i, j)
		}
	}
}

// TestSolve_Chain: a→b (5), b→c (3) yields a→c = min(5,3) = 3, nothing backwards.
func TestSolve_Chain(t *testing.T) {
	t.Parallel()

	p := mustPaths(t, 3)
	mustSet(t, p, 0, 1, 5)
	mustSet(t, p, 1, 2, 3)
	require.NoError(t, paths.Solve(p))

	assert.Equal(t, uint32(3), mustAt(t, p, 0, 2))
	assert.Equal(t, uint32(0), mustAt(t, p, 2, 0))
	assert.Equal(t, uint32(0), mustAt(t, p, 1, 0))
}

// TestSolve_WidestBeatsShortest: the two-hop path 0→1→2 (9,8) beats the
// direct link 0→2 (4).
func TestSolve_WidestBeatsShortest(t *testing.T) {
	t.Parallel()

	p := mustPaths(t, 3)
	mustSet(t, p, 0, 1, 9)
	mustSet(t, p, 1, 2, 8)
	mustSet(t, p, 0, 2, 4)
	require.NoError(t, paths.Solve(p))

	assert.Equal(t, uint32(8), mustAt(t, p, 0, 2))
}

// TestSolve_Idempotent: solving a solved matrix changes nothing.
func TestSolve_Idempotent(t *testing.T) {
	t.Parallel()

	const n = 12
	p := solved(t, n, randomBallots(n, 400, 11))
	before := p.Clone()
	require.NoError(t, paths.Solve(p))
	assert.True(t, before.Equal(p))
}

// TestSolve_ParallelMatchesSequential: the worker count never changes the result.
func TestSolve_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	const n = 17
	pref, err := paths.Tally(n, randomBallots(n, 500, 5))
	require.NoError(t, err)
	direct, err := paths.DirectWins(pref)
	require.NoError(t, err)

	seq := direct.Clone()
	require.NoError(t, paths.Solve(seq))

	for _, w := range []int{0, 2, 4, 16, 64} {
		par := direct.Clone()
		require.NoError(t, paths.Solve(par, paths.WithWorkers(w)))
		assert.True(t, seq.Equal(par), "workers=%d", w)
	}
}

func TestSolve_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := mustPaths(t, 4)
	err := paths.Solve(p, paths.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_Nil(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, paths.Solve(nil), paths.ErrNilPaths)
}

func TestWithWorkers_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { paths.WithWorkers(-1) })
	assert.Equal(t, 1, paths.Workers())
	assert.Equal(t, 3, paths.Workers(paths.WithWorkers(3)))
	assert.GreaterOrEqual(t, paths.Workers(paths.WithWorkers(0)), 1)
}
