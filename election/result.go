// SPDX-License-Identifier: MIT

package election

import (
	"github.com/katalvlaran/schulze/paths"
)

// Result is an immutable snapshot of an election: the solved strength
// matrix, the raw preference counts and the ranking derived from them.
//
// Ranking: candidates are grouped into tiers; a tier holds every remaining
// candidate not beaten by another remaining one. Tied candidates share a tier
// and are listed in nomination order, so the ranking is deterministic.
type Result struct {
	ranked      []Candidate
	tiers       [][]Candidate
	preferences *paths.Paths
	strengths   *paths.Paths
	ballots     int
}

func newResult(candidates []Candidate, ballots int, pref, strengths *paths.Paths) *Result {
	idTiers := strengths.Tiers()
	tiers := make([][]Candidate, len(idTiers))
	ranked := make([]Candidate, 0, len(candidates))
	for t, ids := range idTiers {
		tier := make([]Candidate, len(ids))
		for k, id := range ids {
			tier[k] = candidates[id]
		}
		tiers[t] = tier
		ranked = append(ranked, tier...)
	}

	return &Result{
		ranked:      ranked,
		tiers:       tiers,
		preferences: pref,
		strengths:   strengths,
		ballots:     ballots,
	}
}

// RankedCandidates returns all candidates, winner first.
func (r *Result) RankedCandidates() []Candidate {
	out := make([]Candidate, len(r.ranked))
	copy(out, r.ranked)

	return out
}

// Tiers returns the ranking grouped by ties, winners first.
func (r *Result) Tiers() [][]Candidate {
	out := make([][]Candidate, len(r.tiers))
	for i, tier := range r.tiers {
		out[i] = append([]Candidate(nil), tier...)
	}

	return out
}

// Winners returns the first tier.
func (r *Result) Winners() []Candidate {
	return append([]Candidate(nil), r.tiers[0]...)
}

// Paths returns a copy of the strongest-path matrix.
func (r *Result) Paths() *paths.Paths {
	return r.strengths.Clone()
}

// Preferences returns a copy of the pairwise preference counts the paths were
// computed from.
func (r *Result) Preferences() *paths.Paths {
	return r.preferences.Clone()
}

// Strength returns the strongest-path strength of candidate to over from.
func (r *Result) Strength(to, from int) (uint32, error) {
	return r.strengths.At(to, from)
}

// Ballots returns how many ballots the snapshot was computed from.
func (r *Result) Ballots() int {
	return r.ballots
}
