package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		expected arguments
	}{
		{"Defaults", nil, arguments{}},
		{"Files", []string{"-config", "c.yaml", "-symbols", "s.yaml", "-history", "h"},
			arguments{configPath: "c.yaml", symbolsPath: "s.yaml", historyPath: "h"}},
		{"Flags", []string{"-q", "-debug", "-i", "-version"},
			arguments{quiet: true, debug: true, interactive: true, showVersion: true}},
		{"Commands", []string{"-q", "opt color on", "eval 1+2"},
			arguments{quiet: true, commands: []string{"opt color on", "eval 1+2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := parseArguments(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestParseArgumentsUsage(t *testing.T) {
	_, err := parseArguments([]string{"-nope"})
	require.Error(t, err)

	var usage *usageError
	require.ErrorAs(t, err, &usage)
	assert.Contains(t, usage.msg, "-nope")

	var buf bytes.Buffer
	usage.showUsage(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "usage: dbgshell [options] [command...]"))
	assert.Contains(t, buf.String(), "-symbols")
}

func TestRunCommands(t *testing.T) {
	symbols := writeFile(t, "syms.yaml", "main: 0x4400\n")

	var stdout, stderr bytes.Buffer
	status := run([]string{"-q", "-symbols", symbols, "eval main+1", "sym", "opt color"}, &stdout, &stderr)

	assert.Equal(t, 0, status)
	assert.Equal(t,
		"0x4401 (17409)\n"+
			"0x4400: main\n"+
			"                           color = false\n",
		stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunStopsAtUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"-q", "eval 1", "bogus", "eval 2"}, &stdout, &stderr)

	assert.Equal(t, 1, status)
	assert.Equal(t, "0x0001 (1)\n", stdout.String())
	assert.Equal(t, "unknown command: bogus (try \"help\")\n", stderr.String())
}

func TestRunHandlerErrorKeepsSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"-q", "eval nope"}, &stdout, &stderr)

	assert.Equal(t, 0, status)
	assert.Equal(t, "eval: unknown token: nope\n", stderr.String())
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-version"}, &stdout, &stderr))
	assert.True(t, strings.HasPrefix(stdout.String(), "dbgshell "))
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Error: ")
	assert.Contains(t, stderr.String(), "usage: dbgshell")
}

func TestRunMissingSymbolFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"-symbols", filepath.Join(t.TempDir(), "none.yaml"), "eval 1"}, &stdout, &stderr)

	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), "opening symbol file")
	assert.Empty(t, stdout.String())
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false, false).Info("hidden")
	newLogger(&buf, false, true).Warn("hidden too")
	assert.Empty(t, buf.String())

	newLogger(&buf, true, true).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
