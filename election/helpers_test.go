package election_test

import (
	"testing"

	"github.com/katalvlaran/schulze/election"
	"github.com/katalvlaran/schulze/rank"
)

// vote appends count ballots ranking candidates in letter order:
// "ACB" ranks A first, C second, B third.
func vote(tb testing.TB, e *election.Election[rank.Simple], count int, order string) {
	tb.Helper()
	for c := 0; c < count; c++ {
		b := e.NewBallot()
		for pos, letter := range order {
			if err := b.Set(int(letter-'A'), rank.Ranked(uint8(pos))); err != nil {
				tb.Fatalf("Set(%c, %d): %v", letter, pos, err)
			}
		}
	}
}

// strength is one expected path as letters.
type strength struct {
	to, from rune
	value    uint32
}

// extractPaths converts a result's path table into letter triples.
func extractPaths(res *election.Result) []strength {
	var out []strength
	for p := range res.Paths().All() {
		out = append(out, strength{to: rune('A' + p.To), from: rune('A' + p.From), value: p.Strength})
	}

	return out
}

// names maps candidates to their names.
func names(cs []election.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}

	return out
}
