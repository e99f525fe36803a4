// Package paths_test contains test helpers
//
// Purpose:
//   • Small, deterministic fixtures: seeded random ballots and hand-filled matrices.

package paths_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/schulze/paths"
	"github.com/katalvlaran/schulze/rank"
)

// mustPaths allocates an n-candidate matrix or fails the test.
func mustPaths(tb testing.TB, n int) *paths.Paths {
	tb.Helper()
	p, err := paths.New(n)
	if err != nil {
		tb.Fatalf("paths.New(%d): %v", n, err)
	}

	return p
}

// mustSet writes v at (to, from) or fails the test.
func mustSet(tb testing.TB, p *paths.Paths, to, from int, v uint32) {
	tb.Helper()
	if err := p.Set(to, from, v); err != nil {
		tb.Fatalf("Set(%d,%d,%d): %v", to, from, v, err)
	}
}

// mustAt reads (to, from) or fails the test.
func mustAt(tb testing.TB, p *paths.Paths, to, from int) uint32 {
	tb.Helper()
	v, err := p.At(to, from)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", to, from, err)
	}

	return v
}

// withStrengths builds a 3-candidate matrix from the six off-diagonal cells
// in iteration order: (0,1) (0,2) (1,0) (1,2) (2,0) (2,1).
func withStrengths(tb testing.TB, s [6]uint32) *paths.Paths {
	tb.Helper()
	p := mustPaths(tb, 3)
	mustSet(tb, p, 0, 1, s[0])
	mustSet(tb, p, 0, 2, s[1])
	mustSet(tb, p, 1, 0, s[2])
	mustSet(tb, p, 1, 2, s[3])
	mustSet(tb, p, 2, 0, s[4])
	mustSet(tb, p, 2, 1, s[5])

	return p
}

// randomBallots generates b ballots over n candidates with a fixed seed.
// Roughly one rank in eight is left unranked and values are drawn from a
// small scale so that ties occur.
func randomBallots(n, b int, seed int64) [][]rank.Simple {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]rank.Simple, b)
	for i := range out {
		ranks := make([]rank.Simple, n)
		for j := range ranks {
			if rng.Intn(8) == 0 {
				continue
			}
			ranks[j] = rank.Ranked(uint8(rng.Intn(n)))
		}
		out[i] = ranks
	}

	return out
}

// solved runs Tally → DirectWins → Solve sequentially.
func solved(tb testing.TB, n int, ballots [][]rank.Simple) *paths.Paths {
	tb.Helper()
	pref, err := paths.Tally(n, ballots)
	if err != nil {
		tb.Fatalf("Tally: %v", err)
	}
	p, err := paths.DirectWins(pref)
	if err != nil {
		tb.Fatalf("DirectWins: %v", err)
	}
	if err = paths.Solve(p); err != nil {
		tb.Fatalf("Solve: %v", err)
	}

	return p
}
