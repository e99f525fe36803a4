// SPDX-License-Identifier: MIT

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Output formats accepted by -o.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds everything the schulze command needs.
type Config struct {
	File    string
	Output  string
	Workers int
	Verbose bool
}

// ParseFlags parses args, falling back to SCHULZE_* environment variables
// for anything not given on the command line.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("schulze", flag.ContinueOnError)

	fs.StringVar(&cfg.File, "f", "", "Ballot file (YAML)")
	fs.StringVar(&cfg.Output, "o", "", "Output format: text or yaml")
	fs.IntVar(&cfg.Workers, "workers", 1, "Worker goroutines, 0 = GOMAXPROCS")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	// -h prints usage to stderr and returns flag.ErrHelp
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	// Fall back to environment variables
	if cfg.File == "" {
		cfg.File = os.Getenv("SCHULZE_FILE")
	}
	if cfg.File == "" {
		return Config{}, errors.New("ballot file required (use -f or SCHULZE_FILE env)")
	}

	if cfg.Output == "" {
		cfg.Output = os.Getenv("SCHULZE_OUTPUT")
		if cfg.Output == "" {
			cfg.Output = OutputText
		}
	}
	if cfg.Output != OutputText && cfg.Output != OutputYAML {
		return Config{}, fmt.Errorf("unknown output format %q (want text or yaml)", cfg.Output)
	}

	if given["workers"] {
		if cfg.Workers < 0 {
			return Config{}, fmt.Errorf("invalid -workers %d (want >= 0)", cfg.Workers)
		}
	} else if s := os.Getenv("SCHULZE_WORKERS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Config{}, errors.New("invalid SCHULZE_WORKERS env variable")
		}
		cfg.Workers = n
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given files (".env" when none) into the
// process environment. Missing files are skipped; variables already set win.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}

	return nil
}
