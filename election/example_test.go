package election_test

import (
	"fmt"

	"github.com/katalvlaran/schulze/election"
	"github.com/katalvlaran/schulze/rank"
)

// ExampleElection_Result nominates three candidates, casts two ballots and
// prints the ranking.
func ExampleElection_Result() {
	nom := election.NewNomination()
	nom.MustNominate("Dianne").MustNominate("John").MustNominate("Ivy")
	e, err := nom.Build()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = e.NewBallotFor("Alice").SetAll([]rank.Simple{rank.Ranked(1), rank.Ranked(0), rank.Ranked(2)})
	_ = e.NewBallotFor("Bob").SetAll([]rank.Simple{rank.Ranked(1), rank.Ranked(0), rank.Unranked()})

	res, err := e.Result()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, c := range res.RankedCandidates() {
		fmt.Printf("%d. %s\n", i+1, c)
	}
	// Output:
	// 1. John
	// 2. Dianne
	// 3. Ivy
}
