// SPDX-License-Identifier: MIT
// Package: paths
//
// Purpose:
//   - All-pairs widest path (strongest beatpath) on a dense *Paths, in place.
//   - Floyd–Warshall structure with max replacing min and min replacing +.
//
// Contract:
//   - Input is a direct-win matrix (0 = no direct win); the diagonal is ignored.
//   - Loop order is fixed (i → j → k) with i the intermediate candidate.

package paths

import (
	"golang.org/x/sync/errgroup"
)

const opSolve = "Solve"

// Solve replaces every path(j,k) by the strength of the strongest path from j
// to k, where a path's strength is its weakest link:
//
//	for i in 0..N:                  // intermediate, strictly sequential
//	  for j != i:
//	    for k != i, j:
//	      path(j,k) = max(path(j,k), min(path(j,i), path(i,k)))
//
// Self-pairs are never read or written. Solving an already solved matrix is a
// no-op (idempotent).
//
// Concurrency:
//   - WithWorkers(k>1) splits the j rows of each i iteration into k blocks.
//     During iteration i only rows j != i are written, and only at columns
//     k != i, so row i and column i are stable and the blocks are independent.
//   - WithContext(ctx) is checked before each intermediate iteration; a
//     cancelled solve returns ctx.Err() and leaves p partially relaxed.
//
// Complexity: Time O(N³), Extra space O(1) sequential.
func Solve(p *Paths, opts ...Option) error {
	if err := ValidateNotNil(p); err != nil {
		return opErrorf(opSolve, err)
	}

	o := gatherOptions(opts...)
	n := p.n
	workers := min(o.workers, n)

	var i int
	for i = 0; i < n; i++ {
		if err := o.ctx.Err(); err != nil {
			return opErrorf(opSolve, err)
		}
		if workers <= 1 {
			relaxRows(p.data, n, i, 0, n)
			continue
		}
		if err := relaxParallel(p.data, n, i, workers); err != nil {
			return opErrorf(opSolve, err)
		}
	}

	return nil
}

// relaxParallel runs relaxRows for intermediate i over [0, n) in worker blocks.
func relaxParallel(data []uint32, n, i, workers int) error {
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			relaxRows(data, n, i, lo, hi)
			return nil
		})
	}

	return g.Wait()
}

// relaxRows relaxes rows j ∈ [lo, hi) through intermediate candidate i.
// No allocations inside the loops.
func relaxRows(data []uint32, n, i, lo, hi int) {
	var (
		j, k         int
		baseI, baseJ int
		ji, ik, via  uint32
	)
	baseI = i * n
	for j = lo; j < hi; j++ {
		if j == i {
			continue
		}
		baseJ = j * n
		ji = data[baseJ+i]
		if ji == 0 { // min(0, x) == 0 never improves a cell
			continue
		}
		for k = 0; k < n; k++ {
			if k == i || k == j {
				continue
			}
			ik = data[baseI+k]
			via = min(ji, ik)
			if via > data[baseJ+k] {
				data[baseJ+k] = via
			}
		}
	}
}
