// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/schulze/election"
)

// report is the printable form of an election result.
type report struct {
	Ballots int         `yaml:"ballots"`
	Ranking []string    `yaml:"ranking"`
	Tiers   [][]string  `yaml:"tiers"`
	Paths   []pathEntry `yaml:"paths"`
}

type pathEntry struct {
	To       string `yaml:"to"`
	From     string `yaml:"from"`
	Strength uint32 `yaml:"strength"`
}

func newReport(res *election.Result) report {
	var (
		ranked = res.RankedCandidates()
		tiers  = res.Tiers()
		rep    = report{
			Ballots: res.Ballots(),
			Ranking: make([]string, len(ranked)),
			Tiers:   make([][]string, len(tiers)),
		}
	)
	for i, c := range ranked {
		rep.Ranking[i] = c.Name()
	}

	// Candidates by id, for the path table.
	byID := make([]string, len(ranked))
	for t, tier := range tiers {
		rep.Tiers[t] = make([]string, len(tier))
		for k, c := range tier {
			rep.Tiers[t][k] = c.Name()
			byID[c.ID()] = c.Name()
		}
	}

	for p := range res.Paths().All() {
		rep.Paths = append(rep.Paths, pathEntry{To: byID[p.To], From: byID[p.From], Strength: p.Strength})
	}

	return rep
}

func (r report) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}

// writeText prints tier numbers next to the ranking; tied candidates share one.
func (r report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Ballots: %d\n\n", r.Ballots)
	fmt.Fprintln(tw, "TIER\tCANDIDATE")
	for t, tier := range r.Tiers {
		for _, name := range tier {
			fmt.Fprintf(tw, "%d\t%s\n", t+1, name)
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TO\tFROM\tSTRENGTH")
	for _, p := range r.Paths {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", p.To, p.From, p.Strength)
	}

	return tw.Flush()
}
