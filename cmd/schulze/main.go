// SPDX-License-Identifier: MIT

// Command schulze tallies a YAML ballot file with the Schulze method and
// prints the ranking and the strongest-path table.
//
//	schulze -f ballots.yaml [-o text|yaml] [-workers N] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/schulze/ballotfile"
	"github.com/katalvlaran/schulze/cliparse"
	"github.com/katalvlaran/schulze/paths"
)

func main() {
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Ctrl-C aborts a long solve between iterations
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("Tally failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run loads cfg.File, computes the result and writes it to w.
func run(ctx context.Context, cfg cliparse.Config, w io.Writer) error {
	file, err := ballotfile.Load(cfg.File)
	if err != nil {
		return err
	}
	slog.Debug("Ballot file loaded", "file", cfg.File,
		"candidates", len(file.Candidates), "ballots", file.BallotCount())

	e, err := file.Election()
	if err != nil {
		return err
	}

	opts := []paths.Option{paths.WithWorkers(cfg.Workers), paths.WithContext(ctx)}
	slog.Debug("Tallying", "workers", paths.Workers(opts...))

	res, err := e.Result(opts...)
	if err != nil {
		return err
	}
	slog.Info("Election tallied", "ballots", res.Ballots(), "winners", len(res.Winners()))

	rep := newReport(res)
	if cfg.Output == cliparse.OutputYAML {
		return rep.writeYAML(w)
	}

	return rep.writeText(w)
}
