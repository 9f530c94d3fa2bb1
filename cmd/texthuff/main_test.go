package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/texthuff"
)

func TestParseArgs(t *testing.T) {
	type testRow struct {
		name   string
		args   []string
		expect command
		debug  bool
	}

	testData := [...]testRow{
		{
			name:   "compress",
			args:   []string{"compress", "in.txt"},
			expect: command{name: "compress", path: "in.txt", opts: huffman.FileOptions{TrimTrailingSpace: true}},
		},
		{
			name:   "compress-no-trim",
			args:   []string{"compress", "-no-trim", "-o", "out.bin", "-table", "t.json", "in.txt"},
			expect: command{name: "compress", path: "in.txt", opts: huffman.FileOptions{OutputPath: "out.bin", TablePath: "t.json"}},
		},
		{
			name:   "decompress-debug",
			args:   []string{"-d", "decompress", "-o", "out.txt", "in.bin"},
			expect: command{name: "decompress", path: "in.bin", opts: huffman.FileOptions{OutputPath: "out.txt"}},
			debug:  true,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			cmd, debug, err := parseArgs(row.args)
			require.NoError(t, err)
			require.Equal(t, row.expect, cmd)
			require.Equal(t, row.debug, debug)
		})
	}
}

func TestParseArgs_UsageErrors(t *testing.T) {
	testData := map[string][]string{
		"no-subcommand":  {},
		"unknown":        {"squash", "in.txt"},
		"missing-file":   {"compress"},
		"too-many-files": {"decompress", "a.bin", "b.bin"},
		"unknown-flag":   {"compress", "-fast", "in.txt"},
	}
	for name, args := range testData {
		t.Run(name, func(t *testing.T) {
			_, _, err := parseArgs(args)
			var ue usageError
			require.True(t, errors.As(err, &ue), "expected usageError, got %v", err)
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	_, _, err := parseArgs([]string{"compress", "-h"})
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(src, []byte("round and round\n"), 0o644))

	cmd, _, err := parseArgs([]string{"compress", src})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, run(cmd, &out))
	binPath := filepath.Join(dir, "sample.bin")
	require.Equal(t, "Compressed file is: "+binPath+"\n", out.String())

	cmd, _, err = parseArgs([]string{"decompress", binPath})
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, run(cmd, &out))
	txtPath := filepath.Join(dir, "sample_decompressed.txt")
	require.Equal(t, "Decompressed file is: "+txtPath+"\n", out.String())

	text, err := os.ReadFile(txtPath)
	require.NoError(t, err)
	require.Equal(t, "round and round", string(text))
}

func TestRun_SourceNotFound(t *testing.T) {
	cmd, _, err := parseArgs([]string{"compress", filepath.Join(t.TempDir(), "missing.txt")})
	require.NoError(t, err)
	var out bytes.Buffer
	require.ErrorIs(t, run(cmd, &out), huffman.ErrSourceNotFound)
	require.Empty(t, out.String())
}
