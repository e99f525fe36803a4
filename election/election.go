// SPDX-License-Identifier: MIT

// Package election ties candidates and ballots together and computes Schulze
// results.
//
// An Election is created from a Nomination (or New), hands out ballots that
// are appended to its collection, and on Result runs the full pipeline:
// tally → direct wins → widest paths → tiers.
//
// The ballot list is guarded by a sync.RWMutex, so NewBallot and Result may be
// called from different goroutines. Individual ballots are plain values and
// must not be modified while Result is running.
//
// Errors:
//
//	ErrDuplicateCandidate - a name was nominated twice.
//	ErrNoCandidates       - an election needs at least one candidate.
//	ErrUnknownCandidate   - lookup by id or name failed.
//	ErrUnknownBallot      - no ballot with that ID was cast here.
package election

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/schulze/ballot"
	"github.com/katalvlaran/schulze/paths"
	"github.com/katalvlaran/schulze/rank"
)

// Sentinel errors for election operations.
var (
	// ErrDuplicateCandidate indicates a repeated candidate name.
	ErrDuplicateCandidate = errors.New("election: candidate already nominated")

	// ErrNoCandidates indicates an election without candidates.
	ErrNoCandidates = errors.New("election: no candidates nominated")

	// ErrUnknownCandidate indicates a candidate lookup miss.
	ErrUnknownCandidate = errors.New("election: unknown candidate")

	// ErrUnknownBallot indicates a ballot lookup miss.
	ErrUnknownBallot = errors.New("election: unknown ballot")
)

// Election owns a fixed candidate list and a growing, append-only ballot list.
type Election[R rank.Rank[R]] struct {
	candidates []Candidate
	index      map[string]int

	mu      sync.RWMutex
	ballots []*ballot.Ballot[R]
	byID    map[uuid.UUID]int // ballot ID -> position in ballots
}

// Candidates returns the candidates in nomination order.
func (e *Election[R]) Candidates() []Candidate {
	out := make([]Candidate, len(e.candidates))
	copy(out, e.candidates)

	return out
}

// Candidate returns the candidate at position id.
func (e *Election[R]) Candidate(id int) (Candidate, error) {
	if id < 0 || id >= len(e.candidates) {
		return Candidate{}, fmt.Errorf("Candidate(%d): %w", id, ErrUnknownCandidate)
	}

	return e.candidates[id], nil
}

// CandidateByName looks a candidate up by exact name.
func (e *Election[R]) CandidateByName(name string) (Candidate, error) {
	id, ok := e.index[name]
	if !ok {
		return Candidate{}, fmt.Errorf("CandidateByName(%q): %w", name, ErrUnknownCandidate)
	}

	return e.candidates[id], nil
}

// NewBallot appends an anonymous ballot with every rank at its zero value
// and returns it for filling in.
func (e *Election[R]) NewBallot() *ballot.Ballot[R] {
	return e.appendBallot(ballot.New[R](len(e.candidates), ""))
}

// NewBallotFor appends a ballot carrying the voter's name.
func (e *Election[R]) NewBallotFor(voter string) *ballot.Ballot[R] {
	return e.appendBallot(ballot.New[R](len(e.candidates), "").SetName(voter))
}

func (e *Election[R]) appendBallot(b *ballot.Ballot[R]) *ballot.Ballot[R] {
	e.mu.Lock()
	if e.byID == nil {
		e.byID = make(map[uuid.UUID]int)
	}
	e.byID[b.ID()] = len(e.ballots)
	e.ballots = append(e.ballots, b)
	e.mu.Unlock()

	return b
}

// Ballots returns the ballots in creation order. The slice is a copy; the
// ballots are shared.
func (e *Election[R]) Ballots() []*ballot.Ballot[R] {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*ballot.Ballot[R], len(e.ballots))
	copy(out, e.ballots)

	return out
}

// Ballot returns the ballot cast with the given ID.
func (e *Election[R]) Ballot(id uuid.UUID) (*ballot.Ballot[R], error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	pos, ok := e.byID[id]
	if !ok {
		return nil, fmt.Errorf("Ballot(%s): %w", id, ErrUnknownBallot)
	}

	return e.ballots[pos], nil
}

// BallotCount returns the number of ballots cast so far.
func (e *Election[R]) BallotCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.ballots)
}

// Result computes a snapshot of the election from the ballots present now.
// Ballots added later are not reflected; call Result again.
//
// opts are forwarded to paths.Tally and paths.Solve (workers, context).
func (e *Election[R]) Result(opts ...paths.Option) (*Result, error) {
	e.mu.RLock()
	views := make([][]R, len(e.ballots))
	for i, b := range e.ballots {
		views[i] = b.View()
	}
	e.mu.RUnlock()

	n := len(e.candidates)
	pref, err := paths.Tally(n, views, opts...)
	if err != nil {
		return nil, fmt.Errorf("Result: %w", err)
	}
	strengths, err := paths.DirectWins(pref)
	if err != nil {
		return nil, fmt.Errorf("Result: %w", err)
	}
	if err = paths.Solve(strengths, opts...); err != nil {
		return nil, fmt.Errorf("Result: %w", err)
	}

	return newResult(e.candidates, len(views), pref, strengths), nil
}
