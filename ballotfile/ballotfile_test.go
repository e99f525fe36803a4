package ballotfile_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schulze/ballotfile"
	"github.com/katalvlaran/schulze/election"
	"github.com/katalvlaran/schulze/rank"
)

func names(cs []election.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}

	return out
}

func TestLoad_Wikipedia(t *testing.T) {
	t.Parallel()

	f, err := ballotfile.Load("testdata/wikipedia.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, f.Candidates)
	assert.Equal(t, 45, f.BallotCount())

	e, err := f.Election()
	require.NoError(t, err)
	require.Equal(t, 45, e.BallotCount())

	res, err := e.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "A", "C", "B", "D"}, names(res.RankedCandidates()))
	s, err := res.Strength(1, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(33), s)
}

func TestLoad_TiesAndVoters(t *testing.T) {
	t.Parallel()

	f, err := ballotfile.Load("testdata/ties.yaml")
	require.NoError(t, err)
	e, err := f.Election()
	require.NoError(t, err)

	ballots := e.Ballots()
	require.Len(t, ballots, 3)
	assert.Equal(t, []rank.Simple{rank.Ranked(0), rank.Ranked(0), rank.Unranked()}, ballots[0].Ranks())
	assert.Equal(t, []rank.Simple{rank.Unranked(), rank.Ranked(0), rank.Unranked()}, ballots[1].Ranks())
	assert.Equal(t, []rank.Simple{rank.Ranked(1), rank.Unranked(), rank.Ranked(2)}, ballots[2].Ranks())

	voter, ok := ballots[0].Name()
	assert.True(t, ok)
	assert.Equal(t, "Alice", voter)
	_, ok = ballots[2].Name()
	assert.False(t, ok)

	res, err := e.Result()
	require.NoError(t, err)
	tiers := res.Tiers()
	require.Len(t, tiers, 2)
	assert.Equal(t, []string{"Jenny", "Wilma"}, names(tiers[0]))
	assert.Equal(t, []string{"Donald"}, names(tiers[1]))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ballotfile.Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"Empty", "", ballotfile.ErrInvalidFile},
		{"Malformed", "candidates: [A, B", ballotfile.ErrInvalidFile},
		{"UnknownKey", "candidates: [A]\nvoters: []\n", ballotfile.ErrInvalidFile},
		{"NoCandidates", "candidates: []\n", ballotfile.ErrInvalidFile},
		{"DuplicateCandidate", "candidates: [A, A]\n", ballotfile.ErrInvalidFile},
		{"BlankCandidate", "candidates: [A, '']\n", ballotfile.ErrInvalidFile},
		{"ZeroCount", "candidates: [A, B]\nballots:\n  - count: 0\n    order: [A]\n", ballotfile.ErrInvalidFile},
		{"RankTooLarge", "candidates: [A, B]\nballots:\n  - ranks: {A: 256}\n", ballotfile.ErrInvalidFile},
		{"NegativeRank", "candidates: [A, B]\nballots:\n  - ranks: {A: -1}\n", ballotfile.ErrInvalidFile},
		{"OrderAndRanks", "candidates: [A, B]\nballots:\n  - order: [A]\n    ranks: {B: 0}\n", ballotfile.ErrInvalidFile},
		{"Neither", "candidates: [A, B]\nballots:\n  - voter: Carol\n", ballotfile.ErrInvalidFile},
		{"UnknownInOrder", "candidates: [A, B]\nballots:\n  - order: [A, Z]\n", ballotfile.ErrUnknownCandidate},
		{"UnknownInRanks", "candidates: [A, B]\nballots:\n  - ranks: {Z: 0}\n", ballotfile.ErrUnknownCandidate},
		{"OrderTooLong", fullOrder(257), ballotfile.ErrInvalidFile},
		{"RepeatedInOrder", "candidates: [A, B]\nballots:\n  - order: [A, B, A]\n", ballotfile.ErrDuplicateInOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := ballotfile.Decode(strings.NewReader(tc.doc))
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// fullOrder builds a file with n candidates C0..Cn-1 and one ballot ranking
// all of them.
func fullOrder(n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("C%d", i)
	}
	list := "[" + strings.Join(names, ", ") + "]"

	return "candidates: " + list + "\nballots:\n  - order: " + list + "\n"
}

func TestDecode_OrderLongerThanRankScale(t *testing.T) {
	t.Parallel()

	_, err := ballotfile.Decode(strings.NewReader(fullOrder(300)))
	assert.ErrorIs(t, err, ballotfile.ErrInvalidFile)
	assert.ErrorIs(t, err, rank.ErrOutOfScale)

	// 256 positions (0..255) is the largest order that fits.
	f, err := ballotfile.Decode(strings.NewReader(fullOrder(256)))
	require.NoError(t, err)
	e, err := f.Election()
	require.NoError(t, err)
	last, err := e.Ballots()[0].Get(255)
	require.NoError(t, err)
	assert.Equal(t, rank.Ranked(255), last)
}

func TestDecode_NoBallots(t *testing.T) {
	t.Parallel()

	f, err := ballotfile.Decode(strings.NewReader("candidates: [Solo]\n"))
	require.NoError(t, err)
	assert.Zero(t, f.BallotCount())

	e, err := f.Election()
	require.NoError(t, err)
	res, err := e.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"Solo"}, names(res.Winners()))
}

// TestElection_RevalidatesEditedFile: a File edited after decoding is checked again.
func TestElection_RevalidatesEditedFile(t *testing.T) {
	t.Parallel()

	f, err := ballotfile.Decode(strings.NewReader("candidates: [A, B]\nballots:\n  - order: [B, A]\n"))
	require.NoError(t, err)

	f.Ballots[0].Order = append(f.Ballots[0].Order, "C")
	_, err = f.Election()
	assert.ErrorIs(t, err, ballotfile.ErrUnknownCandidate)
}

func TestEntry_Copies(t *testing.T) {
	t.Parallel()

	three := 3
	assert.Equal(t, 1, ballotfile.Entry{}.Copies())
	assert.Equal(t, 3, ballotfile.Entry{Count: &three}.Copies())
}
