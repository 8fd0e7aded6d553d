package main

import (
	"errors"

	"github.com/jessevdk/go-flags"
)

type Config struct {
	SpendingKey string `short:"k" long:"spending-key" description:"Hex encoded spending key to derive from. A new key is generated from the system entropy source when empty"`
	Batch       bool   `short:"b" long:"batch" description:"Read one hex encoded spending key per line from stdin and derive all of them"`
	Threads     int    `short:"t" long:"threads" default:"0" description:"Derivation routines in batch mode, 0 picks one per CPU"`
	PublicOnly  bool   `long:"public-only" description:"Omit secret keys from the output"`
	Indent      string `long:"indent" description:"Indent JSON output with this string"`
	Debug       bool   `long:"debug" description:"Enable debug logging"`
}

var errConflictingInput = errors.New("--spending-key and --batch cannot be used together")

// LoadConfig parses command line options into a Config
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	if _, err := flags.NewParser(cfg, flags.Default).ParseArgs(args); err != nil {
		return nil, err
	}

	if cfg.SpendingKey != "" && cfg.Batch {
		return nil, errConflictingInput
	}

	return cfg, nil
}

// IsHelp reports whether err was produced by -h/--help
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

// IsFlagsError reports whether err came from the option parser, which prints it already
func IsFlagsError(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr)
}
