package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"git.gammaspectra.live/P2Pool/sprout/utils"
	"github.com/stretchr/testify/require"
)

const (
	zeroSpendingKey     = "0000000000000000000000000000000000000000000000000000000000000000"
	zeroReceivingKey    = "8d1102d47d43396868eddd0009397cd24d5d823e587575c23b9790e4df62f2bf"
	zeroPayingKey       = "28e0d3608e2bd0d789c2f93071f7ad4cb434402d3b90e87e0c7c6085905675c3"
	zeroTransmissionKey = "cda54caca7bab084b6bae7b2c16f73569cb8a5c9b11d8a572f81a9aff430d023"
)

type failingReader struct{}

var errNoEntropy = errors.New("no entropy")

func (failingReader) Read([]byte) (int, error) {
	return 0, errNoEntropy
}

func decode(t *testing.T, buf []byte, v any) {
	t.Helper()
	require.NoError(t, utils.UnmarshalJSON(buf, v))
}

func TestRunSpendingKey(t *testing.T) {
	var stdout bytes.Buffer
	err := run(&Config{SpendingKey: zeroSpendingKey}, nil, &stdout, failingReader{})
	require.NoError(t, err)

	var out map[string]string
	decode(t, stdout.Bytes(), &out)
	require.Equal(t, map[string]string{
		"spending_key":     zeroSpendingKey,
		"receiving_key":    zeroReceivingKey,
		"paying_key":       zeroPayingKey,
		"transmission_key": zeroTransmissionKey,
	}, out)
}

func TestRunClampsInput(t *testing.T) {
	var stdout bytes.Buffer
	err := run(&Config{SpendingKey: "f0" + zeroSpendingKey[2:], PublicOnly: true}, nil, &stdout, failingReader{})
	require.NoError(t, err)

	var out map[string]string
	decode(t, stdout.Bytes(), &out)
	require.Equal(t, map[string]string{
		"paying_key":       zeroPayingKey,
		"transmission_key": zeroTransmissionKey,
	}, out)
}

func TestRunGenerate(t *testing.T) {
	var stdout bytes.Buffer
	rng := bytes.NewReader(bytes.Repeat([]byte{0xff}, 32))
	require.NoError(t, run(&Config{}, nil, &stdout, rng))

	var out map[string]string
	decode(t, stdout.Bytes(), &out)
	require.Equal(t, "0f"+strings.Repeat("ff", 31), out["spending_key"])
	require.Equal(t, "181826d9ebb14b9a6cf31c67185dff1a8311ca958f35e1dbeab2f5780ff39791", out["paying_key"])

	err := run(&Config{}, nil, &stdout, failingReader{})
	require.ErrorIs(t, err, errNoEntropy)
}

func TestRunBatch(t *testing.T) {
	stdin := strings.NewReader("# keys\n" + zeroSpendingKey + "\n\n0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff\n")
	var stdout bytes.Buffer
	require.NoError(t, run(&Config{Batch: true, Threads: 2, Indent: "  "}, stdin, &stdout, failingReader{}))

	var out []map[string]string
	decode(t, stdout.Bytes(), &out)
	require.Len(t, out, 2)
	require.Equal(t, zeroTransmissionKey, out[0]["transmission_key"])
	require.Equal(t, "32ab8303280fdc146c0b0dde1245233779776a8949a5799a17837d10da82f418", out[1]["transmission_key"])
	require.Contains(t, stdout.String(), "\n  ")

	err := run(&Config{Batch: true}, strings.NewReader("abcd\n"), &stdout, failingReader{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid spending key \"abcd\"")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]string{"-k", zeroSpendingKey, "--public-only", "--threads", "3"})
	require.NoError(t, err)
	require.Equal(t, zeroSpendingKey, cfg.SpendingKey)
	require.True(t, cfg.PublicOnly)
	require.Equal(t, 3, cfg.Threads)

	_, err = LoadConfig([]string{"-k", zeroSpendingKey, "--batch"})
	require.ErrorIs(t, err, errConflictingInput)
	require.False(t, IsFlagsError(err))

	_, err = LoadConfig([]string{"--unknown"})
	require.Error(t, err)
	require.True(t, IsFlagsError(err))
	require.False(t, IsHelp(err))
}
