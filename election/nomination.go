// SPDX-License-Identifier: MIT

package election

import (
	"fmt"

	"github.com/katalvlaran/schulze/rank"
)

// Candidate is a nominee: a stable position assigned at nomination plus a
// display name. The position is the index used by ballots and paths.
type Candidate struct {
	id   int
	name string
}

// ID returns the nomination position.
func (c Candidate) ID() int {
	return c.id
}

// Name returns the display name.
func (c Candidate) Name() string {
	return c.name
}

// String implements fmt.Stringer.
func (c Candidate) String() string {
	return c.name
}

// Nomination collects uniquely named candidates before an election is built.
// The zero value is not usable; call NewNomination.
type Nomination struct {
	candidates []Candidate
	index      map[string]int
}

// NewNomination returns an empty nomination.
func NewNomination() *Nomination {
	return &Nomination{index: make(map[string]int)}
}

// Nominate adds a candidate. Names are compared case-sensitively; a repeated
// name returns ErrDuplicateCandidate and leaves the nomination unchanged.
func (n *Nomination) Nominate(name string) error {
	if _, dup := n.index[name]; dup {
		return fmt.Errorf("Nominate(%q): %w", name, ErrDuplicateCandidate)
	}
	c := Candidate{id: len(n.candidates), name: name}
	n.index[name] = c.id
	n.candidates = append(n.candidates, c)

	return nil
}

// MustNominate is Nominate for literals; it panics on a duplicate name.
func (n *Nomination) MustNominate(name string) *Nomination {
	if err := n.Nominate(name); err != nil {
		panic(err)
	}

	return n
}

// Len returns the number of nominated candidates.
func (n *Nomination) Len() int {
	return len(n.candidates)
}

// Build closes the nomination into an election using rank.Simple.
func (n *Nomination) Build() (*Election[rank.Simple], error) {
	return Build[rank.Simple](n)
}

// Build closes the nomination into an election whose ballots carry ranks of type R.
// Returns ErrNoCandidates when nobody was nominated.
func Build[R rank.Rank[R]](n *Nomination) (*Election[R], error) {
	if n == nil || len(n.candidates) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrNoCandidates)
	}
	candidates := make([]Candidate, len(n.candidates))
	copy(candidates, n.candidates)
	index := make(map[string]int, len(n.index))
	for k, v := range n.index {
		index[k] = v
	}

	return &Election[R]{candidates: candidates, index: index}, nil
}

// New nominates names in order and builds a rank.Simple election.
func New(names ...string) (*Election[rank.Simple], error) {
	return NewWithRank[rank.Simple](names...)
}

// NewWithRank nominates names in order and builds an election over R.
// Fails with ErrDuplicateCandidate before any ballot can exist.
func NewWithRank[R rank.Rank[R]](names ...string) (*Election[R], error) {
	nom := NewNomination()
	for _, name := range names {
		if err := nom.Nominate(name); err != nil {
			return nil, err
		}
	}

	return Build[R](nom)
}
