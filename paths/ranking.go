// SPDX-License-Identifier: MIT
// Package: paths
//
// Purpose:
//   - Turn a solved strength matrix into an order over candidate indices.
//
// Rule:
//   - s beats o iff path(s,o) > path(o,s). On a solved matrix this relation is
//     transitive, so it is a strict partial order; candidates neither beating
//     nor beaten by each other are tied.
//
// Two orderings are offered:
//   - Tiers/Order: canonical. Peel off, round by round, every candidate not
//     beaten by any remaining candidate; each round is a tier, listed in
//     ascending index (nomination) order.
//   - SortByStrength: the comparator cmp(path(o,s), path(s,o)) fed to a stable
//     sort. Valid when there are no ties; with cyclic ties among three or
//     more candidates the result depends on the starting order.

package paths

import (
	"cmp"
	"slices"
)

// Beats reports whether candidate s beats candidate o.
func (p *Paths) Beats(s, o int) (bool, error) {
	so, err := p.At(s, o)
	if err != nil {
		return false, err
	}
	rev, err := p.At(o, s)
	if err != nil {
		return false, err
	}

	return so > rev, nil
}

// Compare is the strength comparator: negative when s ranks above o,
// positive when o ranks above s, zero on a tie. Unchecked indices; s != o.
func (p *Paths) Compare(s, o int) int {
	if s == o {
		return 0
	}

	return cmp.Compare(p.at(o, s), p.at(s, o))
}

// SortByStrength sorts candidate indices with Compare, stable on index order.
func (p *Paths) SortByStrength() []int {
	order := identity(p.n)
	slices.SortStableFunc(order, p.Compare)

	return order
}

// Tiers groups candidates into ranking tiers, winners first.
// Within a tier indices ascend. Every candidate appears exactly once.
//
// If the matrix is not a solved one and contains a beat cycle, the remaining
// candidates of that round are emitted together as a final tier.
//
// Complexity: O(N³) worst case.
func (p *Paths) Tiers() [][]int {
	remaining := identity(p.n)
	tiers := make([][]int, 0, p.n)

	for len(remaining) > 0 {
		var tier, rest []int
		for _, s := range remaining {
			beaten := false
			for _, o := range remaining {
				if o != s && p.at(o, s) > p.at(s, o) {
					beaten = true
					break
				}
			}
			if beaten {
				rest = append(rest, s)
			} else {
				tier = append(tier, s)
			}
		}
		if len(tier) == 0 { // cycle: cannot separate further
			tiers = append(tiers, rest)
			break
		}
		tiers = append(tiers, tier)
		remaining = rest
	}

	return tiers
}

// Order flattens Tiers into a single ranking, winner first.
func (p *Paths) Order() []int {
	order := make([]int, 0, p.n)
	for _, tier := range p.Tiers() {
		order = append(order, tier...)
	}

	return order
}

// Winners returns the first tier: every candidate not beaten by anyone.
func (p *Paths) Winners() []int {
	tiers := p.Tiers()
	if len(tiers) == 0 {
		return nil
	}

	return tiers[0]
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
