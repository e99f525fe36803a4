// SPDX-License-Identifier: MIT

// Package ballot holds one voter's ranks, one per candidate.
//
// A Ballot is a fixed-size, index-aligned vector: position i carries the rank
// of the candidate nominated i-th. Positions never set stay at the zero value
// of the rank type (unranked for rank.Simple).
//
// Errors:
//
//	ErrOutOfRange     - candidate id outside [0, Len()).
//	ErrLengthMismatch - SetAll called with len(ranks) != Len().
package ballot

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/schulze/rank"
)

// Sentinel errors for ballot operations.
var (
	// ErrOutOfRange indicates a candidate id outside the ballot.
	ErrOutOfRange = errors.New("ballot: candidate id out of range")

	// ErrLengthMismatch indicates a bulk assignment with the wrong number of ranks.
	ErrLengthMismatch = errors.New("ballot: rank count does not match candidate count")
)

// ballotErrorf wraps err with the method name and the offending value.
func ballotErrorf(method string, v int, err error) error {
	return fmt.Errorf("Ballot.%s(%d): %w", method, v, err)
}

// Ballot is one voter's complete set of per-candidate ranks.
type Ballot[R rank.Rank[R]] struct {
	id    uuid.UUID
	name  string
	named bool
	ranks []R
}

// New allocates a ballot for n candidates with every position at the zero rank.
// An empty name leaves the ballot anonymous.
func New[R rank.Rank[R]](n int, name string) *Ballot[R] {
	if n < 0 {
		n = 0
	}

	return &Ballot[R]{
		id:    uuid.New(),
		name:  name,
		named: name != "",
		ranks: make([]R, n),
	}
}

// ID returns the random identifier assigned at creation.
func (b *Ballot[R]) ID() uuid.UUID {
	return b.id
}

// Name returns the voter name and whether one was given.
func (b *Ballot[R]) Name() (string, bool) {
	return b.name, b.named
}

// SetName attaches a voter name. It has no effect on tallying.
func (b *Ballot[R]) SetName(name string) *Ballot[R] {
	b.name, b.named = name, true

	return b
}

// Len returns the number of candidates the ballot covers.
func (b *Ballot[R]) Len() int {
	return len(b.ranks)
}

// Set replaces the rank of candidate id.
func (b *Ballot[R]) Set(id int, r R) error {
	if id < 0 || id >= len(b.ranks) {
		return ballotErrorf("Set", id, ErrOutOfRange)
	}
	b.ranks[id] = r

	return nil
}

// SetAll replaces every rank at once. The ballot is left untouched when
// len(ranks) does not equal Len().
func (b *Ballot[R]) SetAll(ranks []R) error {
	if len(ranks) != len(b.ranks) {
		return ballotErrorf("SetAll", len(ranks), ErrLengthMismatch)
	}
	copy(b.ranks, ranks)

	return nil
}

// Get returns the rank of candidate id.
func (b *Ballot[R]) Get(id int) (R, error) {
	if id < 0 || id >= len(b.ranks) {
		var zero R
		return zero, ballotErrorf("Get", id, ErrOutOfRange)
	}

	return b.ranks[id], nil
}

// Ranks returns a copy of all ranks, index-aligned with candidate positions.
func (b *Ballot[R]) Ranks() []R {
	out := make([]R, len(b.ranks))
	copy(out, b.ranks)

	return out
}

// Prefers reports whether the ballot strictly prefers candidate i over j.
// It is the checked, single-ballot form of the comparison paths.Tally runs
// on every pair.
func (b *Ballot[R]) Prefers(i, j int) (bool, error) {
	if i < 0 || i >= len(b.ranks) {
		return false, ballotErrorf("Prefers", i, ErrOutOfRange)
	}
	if j < 0 || j >= len(b.ranks) {
		return false, ballotErrorf("Prefers", j, ErrOutOfRange)
	}

	return b.ranks[i].Compare(b.ranks[j]) > 0, nil
}

// View exposes the backing slice without copying. Callers must treat it as
// read-only; it is used by the tally to avoid one allocation per ballot.
func (b *Ballot[R]) View() []R {
	return b.ranks
}
