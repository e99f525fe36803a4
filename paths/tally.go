// SPDX-License-Identifier: MIT
// Package: paths
//
// Purpose:
//   - Pairwise preference counting (the tally) and the direct-win reduction.
//
// Contract:
//   - pref(i,j) counts ballots where rank(i) is strictly preferred over rank(j);
//     ties count toward neither direction, so pref(i,j)+pref(j,i) <= B.

package paths

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/schulze/rank"
)

const (
	opTally      = "Tally"
	opDirectWins = "DirectWins"
)

// Tally counts pairwise preferences over ballots for n candidates.
// Every ballot must carry exactly n ranks, otherwise ErrDimensionMismatch.
//
// Each unordered pair is compared once per ballot and the winner's cell is
// incremented, so the work is B·N·(N−1)/2 comparisons in a single pass.
// With WithWorkers(k>1) the ballots are split into k contiguous partitions,
// each counted into a private buffer, and the buffers are summed after join.
//
// Complexity: Time O(B·N²), Space O(k·N²).
func Tally[R rank.Rank[R]](n int, ballots [][]R, opts ...Option) (*Paths, error) {
	p, err := New(n)
	if err != nil {
		return nil, opErrorf(opTally, err)
	}
	if err = validateBallots(n, ballots); err != nil {
		return nil, opErrorf(opTally, err)
	}

	o := gatherOptions(opts...)
	workers := min(o.workers, len(ballots))
	if workers <= 1 {
		if err = countInto(o, p.data, n, ballots); err != nil {
			return nil, opErrorf(opTally, err)
		}

		return p, nil
	}

	// Partitioned accumulators: no shared writes while workers run.
	parts := make([][]uint32, workers)
	chunk := (len(ballots) + workers - 1) / workers
	g, ctx := errgroup.WithContext(o.ctx)
	o.ctx = ctx
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(ballots))
		if lo >= hi {
			continue
		}
		buf := make([]uint32, n*n)
		parts[w] = buf
		g.Go(func() error {
			return countInto(o, buf, n, ballots[lo:hi])
		})
	}
	if err = g.Wait(); err != nil {
		return nil, opErrorf(opTally, err)
	}

	// Merge in worker order; addition is commutative, so the result is
	// identical to the sequential tally.
	for _, buf := range parts {
		for i, v := range buf {
			p.data[i] += v
		}
	}

	return p, nil
}

// countInto accumulates pairwise preferences of ballots into data (row-major n×n).
func countInto[R rank.Rank[R]](o Options, data []uint32, n int, ballots [][]R) error {
	var (
		i, j int
		c    int
	)
	for b, ranks := range ballots {
		// Cheap cancellation probe every 256 ballots.
		if b&0xff == 0 {
			if err := o.ctx.Err(); err != nil {
				return err
			}
		}
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				c = ranks[i].Compare(ranks[j])
				switch {
				case c > 0:
					data[i*n+j]++
				case c < 0:
					data[j*n+i]++
				}
			}
		}
	}

	return nil
}

// DirectWins derives the direct-win matrix from a preference matrix:
// path(i,j) = pref(i,j) when pref(i,j) > pref(j,i), else 0.
// The input is not modified. Returns ErrNilPaths on nil input.
//
// Complexity: O(N²).
func DirectWins(pref *Paths) (*Paths, error) {
	if err := ValidateNotNil(pref); err != nil {
		return nil, opErrorf(opDirectWins, err)
	}

	n := pref.n
	out := &Paths{n: n, data: make([]uint32, n*n)}
	var i, j int
	var ij uint32
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			ij = pref.at(i, j)
			if ij > pref.at(j, i) {
				out.data[i*n+j] = ij
			}
		}
	}

	return out, nil
}
