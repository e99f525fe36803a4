// SPDX-License-Identifier: MIT

/*
Package cliparse handles command-line argument parsing for the schulze command.

# CLI Flags

	-f        Ballot file (required)
	-o        Output format: text (default) or yaml
	-workers  Worker goroutines for tally and solve (default 1, 0 = GOMAXPROCS)
	-v        Debug logging

# Environment Variables

Flags fall back to environment variables:

	SCHULZE_FILE    → -f
	SCHULZE_OUTPUT  → -o
	SCHULZE_WORKERS → -workers

CLI flags take precedence over environment variables. A negative -workers
is an error; -h prints the flag usage and returns flag.ErrHelp. LoadDotEnv fills the
environment from a .env file first; variables already exported are kept.

# Example

	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
*/
package cliparse
