// Package paths implements the numeric core of the Schulze method.
//
// 🚀 What lives here?
//
//	A dense N×N strength matrix (Paths) and the three steps that fill it:
//	  • Tally      — count, for every ordered pair (i, j), the ballots that
//	                 strictly prefer i over j.
//	  • DirectWins — keep pref(i,j) only where i beats j head-to-head.
//	  • Solve      — all-pairs widest path (Floyd–Warshall with max-of-mins).
//	Plus the ranking helpers that turn a solved matrix into an order:
//	  • Tiers / Order / Winners — canonical ranking, ties broken by index.
//	  • SortByStrength          — plain comparator sort.
//
// ⚙️ Usage:
//
//	pref, err := paths.Tally(n, ballots)
//	p, err := paths.DirectWins(pref)
//	err = paths.Solve(p, paths.WithWorkers(4))
//	order := p.Order()
//
// Layout:
//
//	Row-major uint32 buffer; cell (to, from) lives at to*N + from. The diagonal
//	is allocated but never read or written; public accessors reject it with
//	ErrSelfPair.
//
// Performance:
//
//   - Tally: O(B·N²) time, one pass over the ballots.
//   - Solve: O(N³) time, O(1) extra space; the intermediate loop is sequential,
//     the row loop may be split across workers.
package paths
