// SPDX-License-Identifier: MIT

// Package rank - per-candidate preference values placed on ballots.
//
// Purpose:
//   - Define the ordering contract every rank type must satisfy (Rank).
//   - Provide Simple, the default 0..255 scale with an "unranked" state.
//
// Ordering:
//   - Compare returns >0 when the receiver is preferred over the argument,
//     0 on a tie and <0 when the argument is preferred.
//   - Lower Simple values are MORE preferred; unranked sorts below everything.
package rank

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrOutOfScale is returned when a raw integer cannot be represented by Simple.
var ErrOutOfScale = errors.New("rank: value outside 0..255")

// Rank is the capability the tally relies on. Any type whose values can be
// compared by strict preference can be placed on a ballot.
//
// The zero value of R is the state a fresh ballot is filled with, so custom
// implementations should make their zero value mean "no preference".
type Rank[R any] interface {
	// Compare reports how the receiver relates to other:
	// >0 preferred, 0 tie, <0 less preferred.
	Compare(other R) int
}

// Prefers reports whether a is strictly preferred over b.
func Prefers[R Rank[R]](a, b R) bool {
	return a.Compare(b) > 0
}

// Simple is the default rank: Ranked(0) is the best value, Ranked(255) the
// worst concrete one and Unranked() is below all of them.
// The zero value is Unranked.
type Simple struct {
	value  uint8
	ranked bool
}

// Compile-time assertions.
var (
	_ Rank[Simple] = Simple{}
	_ fmt.Stringer = Simple{}
)

// Ranked returns a concrete rank with value v.
func Ranked(v uint8) Simple {
	return Simple{value: v, ranked: true}
}

// Unranked returns the absent rank.
func Unranked() Simple {
	return Simple{}
}

// FromPtr converts an optional value: nil maps to Unranked.
func FromPtr(v *uint8) Simple {
	if v == nil {
		return Unranked()
	}

	return Ranked(*v)
}

// Of converts a raw integer into a concrete rank.
// Returns ErrOutOfScale for negative values or values above 255.
func Of(v int) (Simple, error) {
	if v < 0 || v > math.MaxUint8 {
		return Simple{}, fmt.Errorf("Of(%d): %w", v, ErrOutOfScale)
	}

	return Ranked(uint8(v)), nil
}

// Value returns the concrete value and true, or (0, false) when unranked.
func (s Simple) Value() (uint8, bool) {
	return s.value, s.ranked
}

// IsRanked reports whether s carries a concrete value.
func (s Simple) IsRanked() bool {
	return s.ranked
}

// Compare implements Rank. The numeric order is inverted: a lower value wins.
func (s Simple) Compare(other Simple) int {
	switch {
	case s.ranked && other.ranked:
		switch {
		case s.value < other.value:
			return 1
		case s.value > other.value:
			return -1
		default:
			return 0
		}
	case s.ranked:
		return 1
	case other.ranked:
		return -1
	default:
		return 0 // both unranked
	}
}

// Prefers reports whether s is strictly preferred over other.
func (s Simple) Prefers(other Simple) bool {
	return s.Compare(other) > 0
}

// String renders the value, or "-" when unranked.
func (s Simple) String() string {
	if !s.ranked {
		return "-"
	}

	return strconv.Itoa(int(s.value))
}
