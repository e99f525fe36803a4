// Package schulze is a ranked-ballot election library implementing the
// Schulze (beatpath) method: voters rank candidates, the library finds the
// strongest path between every pair and orders candidates by it.
//
// 🚀 What is inside?
//
//	• Ranks: a 0..255 scale with an "unranked" state, or your own type
//	• Ballots: one rank per candidate, ties and blanks allowed
//	• Tally: pairwise preference counting, optionally across workers
//	• Solver: widest-path Floyd–Warshall over the direct-win matrix
//	• Ranking: tiers of unbeaten candidates, ties kept together
//	• Ballot files: YAML input with validation, plus a small CLI
//
// ✨ Guarantees
//
//   - Deterministic – ties are listed in nomination order
//   - Snapshots – a Result never changes after it was computed
//   - Safe ballot intake – NewBallot and Result may run concurrently
//
// Packages:
//
//	rank/       — the Rank capability and the Simple rank
//	ballot/     — Ballot: ranks indexed by candidate position
//	paths/      — Paths matrix, Tally, DirectWins, Solve, Tiers
//	election/   — Nomination, Election, Result
//	ballotfile/ — YAML ballot files
//	cliparse/   — flags and environment for cmd/schulze
//
// Quick example (Wikipedia, 45 voters):
//
//	A B C D E  →  E > A > C > B > D
//
//	go get github.com/katalvlaran/schulze
package schulze
