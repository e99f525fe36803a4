// SPDX-License-Identifier: MIT
// Package: paths
//
// Purpose:
//   - Single source of truth for nil / shape checks shared by Tally, Solve and ranking.
//   - Return sentinel errors tagged with the validator name; call sites wrap further.

package paths

import "fmt"

// validatorErrorf tags a sentinel with the validator that raised it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures p is non-nil and has a consistent backing buffer.
// Complexity: O(1).
func ValidateNotNil(p *Paths) error {
	if p == nil || p.n <= 0 || len(p.data) != p.n*p.n {
		return validatorErrorf("ValidateNotNil", ErrNilPaths)
	}

	return nil
}

// ValidateSameOrder ensures both matrices describe the same candidate count.
// Assumes neither argument is nil.
// Complexity: O(1).
func ValidateSameOrder(a, b *Paths) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameOrder", ErrDimensionMismatch)
	}

	return nil
}

// validateBallots ensures every ballot carries exactly n ranks.
// Complexity: O(B).
func validateBallots[R any](n int, ballots [][]R) error {
	for b, ranks := range ballots {
		if len(ranks) != n {
			return validatorErrorf(
				fmt.Sprintf("validateBallots: ballot %d has %d ranks, want %d", b, len(ranks), n),
				ErrDimensionMismatch,
			)
		}
	}

	return nil
}
