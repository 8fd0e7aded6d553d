package main

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"strings"

	"git.gammaspectra.live/P2Pool/sprout/sprout"
	"git.gammaspectra.live/P2Pool/sprout/utils"
)

type keyTreeOutput struct {
	SpendingKey     string                 `json:"spending_key,omitempty"`
	ReceivingKey    string                 `json:"receiving_key,omitempty"`
	PayingKey       sprout.PayingKey       `json:"paying_key"`
	TransmissionKey sprout.TransmissionKey `json:"transmission_key"`
}

func newKeyTreeOutput(sk sprout.SpendingKey, publicOnly bool) keyTreeOutput {
	keys := sk.Keys()
	out := keyTreeOutput{
		PayingKey:       keys.PayingKey,
		TransmissionKey: keys.TransmissionKey,
	}
	if !publicOnly {
		out.SpendingKey = keys.SpendingKey.Hex()
		out.ReceivingKey = keys.ReceivingKey.Hex()
	}
	return out
}

// readSpendingKeys reads one hex key per line, skipping blank lines and # comments
func readSpendingKeys(r io.Reader) (keys []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func run(cfg *Config, stdin io.Reader, stdout io.Writer, rng io.Reader) error {
	if cfg.Batch {
		lines, err := readSpendingKeys(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		utils.Debugf("Sprout", "deriving %d key trees", len(lines))

		result, err := utils.ParallelMap(cfg.Threads, lines, func(line string) (keyTreeOutput, error) {
			sk, err := sprout.SpendingKeyFromString(line)
			if err != nil {
				return keyTreeOutput{}, fmt.Errorf("invalid spending key %q: %w", line, err)
			}
			return newKeyTreeOutput(sk, cfg.PublicOnly), nil
		})
		if err != nil {
			return err
		}
		return utils.WriteJSON(stdout, result, cfg.Indent)
	}

	var sk sprout.SpendingKey
	var err error
	if cfg.SpendingKey != "" {
		if sk, err = sprout.SpendingKeyFromString(cfg.SpendingKey); err != nil {
			return fmt.Errorf("invalid spending key: %w", err)
		}
	} else {
		if sk, err = sprout.NewSpendingKey(rng); err != nil {
			return fmt.Errorf("could not generate spending key: %w", err)
		}
		utils.Debugf("Sprout", "generated spending key")
	}

	keys := newKeyTreeOutput(sk, cfg.PublicOnly)
	utils.Debugf("Sprout", "paying key %s", keys.PayingKey)

	return utils.WriteJSON(stdout, keys, cfg.Indent)
}

func main() {
	utils.LogWriter = os.Stderr

	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		if IsHelp(err) {
			os.Exit(0)
		}
		if !IsFlagsError(err) {
			utils.Fatalf("%s", err)
		}
		// go-flags already printed parse errors
		os.Exit(1)
	}

	if cfg.Debug {
		utils.GlobalLogLevel |= utils.LogLevelDebug
	}

	if err = run(cfg, os.Stdin, os.Stdout, rand.Reader); err != nil {
		utils.Fatalf("%s", err)
	}
}
