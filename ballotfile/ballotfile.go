// SPDX-License-Identifier: MIT

// Package ballotfile reads elections from YAML documents.
//
// Format:
//
//	candidates: [A, B, C]
//	ballots:
//	  - voter: Alice        # optional
//	    count: 5            # optional, default 1
//	    order: [A, C, B]    # first = most preferred, unlisted = unranked
//	  - ranks: {A: 1, B: 1} # lower = better, equal = tie
//
// Every entry carries exactly one of order or ranks; an order holds at most
// 256 names, the size of the rank scale. Unknown keys are rejected so that
// typos do not silently drop ballots.
//
// Errors:
//
//	ErrInvalidFile      - malformed YAML or a structural rule failed.
//	ErrUnknownCandidate - a ballot names someone not in candidates.
//	ErrDuplicateInOrder - an order lists the same candidate twice.
package ballotfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/schulze/election"
	"github.com/katalvlaran/schulze/rank"
)

// Sentinel errors for ballot files.
var (
	// ErrInvalidFile indicates a document that cannot describe an election.
	ErrInvalidFile = errors.New("ballotfile: invalid ballot file")

	// ErrUnknownCandidate indicates a ballot referencing an undeclared candidate.
	ErrUnknownCandidate = errors.New("ballotfile: unknown candidate")

	// ErrDuplicateInOrder indicates a candidate listed twice in one order.
	ErrDuplicateInOrder = errors.New("ballotfile: candidate repeated in order")
)

// maxOrder is the longest order rank.Simple can express: positions 0..255.
const maxOrder = math.MaxUint8 + 1

// validate checks struct tags of the file model. Safe for concurrent use.
var validate = validator.New()

// File is the decoded document.
type File struct {
	Candidates []string `yaml:"candidates" validate:"required,min=1,unique,dive,required"`
	Ballots    []Entry  `yaml:"ballots" validate:"dive"`
}

// Entry is one ballot line, possibly standing for several identical ballots.
type Entry struct {
	Voter string         `yaml:"voter,omitempty"`
	Count *int           `yaml:"count,omitempty" validate:"omitempty,min=1"`
	Order []string       `yaml:"order,omitempty" validate:"omitempty,dive,required"`
	Ranks map[string]int `yaml:"ranks,omitempty" validate:"omitempty,dive,keys,required,endkeys,min=0,max=255"`
}

// Copies returns how many ballots the entry stands for.
func (e Entry) Copies() int {
	if e.Count == nil {
		return 1
	}

	return *e.Count
}

// Load opens path and decodes it.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return file, nil
}

// Decode reads a single YAML document from r and validates it.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: empty document: %w", ErrInvalidFile)
		}

		return nil, fmt.Errorf("Decode: %w: %w", ErrInvalidFile, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate runs the tag rules and then the cross-field rules that tags cannot
// express (order/ranks exclusivity, candidate references).
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidFile, err)
	}

	known := make(map[string]struct{}, len(f.Candidates))
	for _, c := range f.Candidates {
		known[c] = struct{}{}
	}

	for i, e := range f.Ballots {
		hasOrder, hasRanks := len(e.Order) > 0, len(e.Ranks) > 0
		switch {
		case hasOrder && hasRanks:
			return fmt.Errorf("Validate: ballot %d: order and ranks both set: %w", i, ErrInvalidFile)
		case !hasOrder && !hasRanks:
			return fmt.Errorf("Validate: ballot %d: needs order or ranks: %w", i, ErrInvalidFile)
		case len(e.Order) > maxOrder:
			return fmt.Errorf("Validate: ballot %d: order lists %d candidates, max %d: %w: %w",
				i, len(e.Order), maxOrder, ErrInvalidFile, rank.ErrOutOfScale)
		}

		seen := make(map[string]struct{}, len(e.Order))
		for _, name := range e.Order {
			if _, ok := known[name]; !ok {
				return fmt.Errorf("Validate: ballot %d: %q: %w", i, name, ErrUnknownCandidate)
			}
			if _, dup := seen[name]; dup {
				return fmt.Errorf("Validate: ballot %d: %q: %w", i, name, ErrDuplicateInOrder)
			}
			seen[name] = struct{}{}
		}
		for name := range e.Ranks {
			if _, ok := known[name]; !ok {
				return fmt.Errorf("Validate: ballot %d: %q: %w", i, name, ErrUnknownCandidate)
			}
		}
	}

	return nil
}

// BallotCount returns the number of ballots the file expands to.
func (f *File) BallotCount() int {
	total := 0
	for _, e := range f.Ballots {
		total += e.Copies()
	}

	return total
}

// Election validates the file and builds a rank.Simple election holding
// every ballot it describes, in file order.
func (f *File) Election() (*election.Election[rank.Simple], error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("Election: %w", err)
	}

	e, err := election.New(f.Candidates...)
	if err != nil {
		return nil, fmt.Errorf("Election: %w", err)
	}

	for i, entry := range f.Ballots {
		ranks, err := entry.ranks(e)
		if err != nil {
			return nil, fmt.Errorf("Election: ballot %d: %w", i, err)
		}
		for c := 0; c < entry.Copies(); c++ {
			b := e.NewBallot()
			if entry.Voter != "" {
				b.SetName(entry.Voter)
			}
			if err = b.SetAll(ranks); err != nil {
				return nil, fmt.Errorf("Election: ballot %d: %w", i, err)
			}
		}
	}

	return e, nil
}

// ranks converts an entry into index-aligned ranks for e.
func (e Entry) ranks(el *election.Election[rank.Simple]) ([]rank.Simple, error) {
	out := make([]rank.Simple, len(el.Candidates()))

	if len(e.Order) > 0 {
		for pos, name := range e.Order {
			c, err := el.CandidateByName(name)
			if err != nil {
				return nil, err
			}
			if out[c.ID()], err = rank.Of(pos); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	for name, v := range e.Ranks {
		c, err := el.CandidateByName(name)
		if err != nil {
			return nil, err
		}
		if out[c.ID()], err = rank.Of(v); err != nil {
			return nil, err
		}
	}

	return out, nil
}
