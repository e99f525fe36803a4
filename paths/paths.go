// SPDX-License-Identifier: MIT

// Package paths - dense strength storage (row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly row-major buffer with the explicit index formula to*N + from.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Deterministic iteration (ascending to, then from) for diffing and export.
//
// Complexity quicksheet:
//   - New: O(N²) zero-init; At/Set: O(1); Clone: O(N²); All: O(N²).

package paths

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// pathsErrorf wraps an error with the accessor name and the queried pair.
func pathsErrorf(method string, to, from int, err error) error {
	return fmt.Errorf("Paths.%s(%d,%d): %w", method, to, from, err)
}

// opErrorf wraps an error with an operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Path is one cell of the matrix: Strength is the number of voters (or the
// beatpath strength, once solved) preferring candidate To over candidate From.
type Path struct {
	To       int
	From     int
	Strength uint32
}

// Paths is a square matrix of pairwise strengths for N candidates.
//   - n is the candidate count.
//   - data holds n*n cells in row-major order; the diagonal is unused.
type Paths struct {
	n    int
	data []uint32
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Paths)(nil)

// New allocates a zero matrix for n candidates.
// Returns ErrInvalidDimensions when n <= 0.
func New(n int) (*Paths, error) {
	if n <= 0 {
		return nil, opErrorf("New", ErrInvalidDimensions)
	}

	return &Paths{n: n, data: make([]uint32, n*n)}, nil
}

// N returns the number of candidates.
func (p *Paths) N() int {
	return p.n
}

// Len returns the number of off-diagonal cells, N·(N−1).
func (p *Paths) Len() int {
	return p.n * (p.n - 1)
}

// indexOf validates (to, from) and returns the flat offset.
// Range is checked before the self-pair rule so callers see the more basic error first.
func (p *Paths) indexOf(method string, to, from int) (int, error) {
	if to < 0 || to >= p.n || from < 0 || from >= p.n {
		return 0, pathsErrorf(method, to, from, ErrOutOfRange)
	}
	if to == from {
		return 0, pathsErrorf(method, to, from, ErrSelfPair)
	}

	return to*p.n + from, nil
}

// At returns the strength of candidate to over candidate from.
func (p *Paths) At(to, from int) (uint32, error) {
	idx, err := p.indexOf(ctxAt, to, from)
	if err != nil {
		return 0, err
	}

	return p.data[idx], nil
}

// Set assigns the strength of candidate to over candidate from.
func (p *Paths) Set(to, from int, v uint32) error {
	idx, err := p.indexOf(ctxSet, to, from)
	if err != nil {
		return err
	}
	p.data[idx] = v

	return nil
}

// at is the unchecked accessor used inside hot loops after validation.
func (p *Paths) at(to, from int) uint32 {
	return p.data[to*p.n+from]
}

// Clone returns an independent deep copy.
func (p *Paths) Clone() *Paths {
	data := make([]uint32, len(p.data))
	copy(data, p.data)

	return &Paths{n: p.n, data: data}
}

// Equal reports whether both matrices have the same order and off-diagonal cells.
func (p *Paths) Equal(other *Paths) bool {
	if p == nil || other == nil {
		return p == other
	}
	if ValidateSameOrder(p, other) != nil {
		return false
	}
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			if i != j && p.at(i, j) != other.at(i, j) {
				return false
			}
		}
	}

	return true
}

// All yields every off-diagonal cell, ascending by To then From.
// For three candidates: (0,1) (0,2) (1,0) (1,2) (2,0) (2,1).
func (p *Paths) All() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		var to, from int
		for to = 0; to < p.n; to++ {
			for from = 0; from < p.n; from++ {
				if to == from {
					continue
				}
				if !yield(Path{To: to, From: from, Strength: p.data[to*p.n+from]}) {
					return
				}
			}
		}
	}
}

// Triples collects All into a slice of length Len().
func (p *Paths) Triples() []Path {
	out := make([]Path, 0, p.Len())
	for path := range p.All() {
		out = append(out, path)
	}

	return out
}

// String renders the matrix row by row; diagonal cells print as "-".
func (p *Paths) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < p.n; i++ {
		sb.WriteString("[")
		for j = 0; j < p.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if i == j {
				sb.WriteString("-")
				continue
			}
			sb.WriteString(strconv.FormatUint(uint64(p.data[i*p.n+j]), 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
