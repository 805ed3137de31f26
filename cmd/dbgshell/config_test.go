package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "dbgshell.yaml", `
symbols:
  main: 0x4400
  loop: main+0x20
options:
  color: on
`)
	ta := newTestApp(t)
	require.NoError(t, ta.loadConfig(path))

	assert.True(t, ta.color.Bool())
	addr, ok := ta.symbols.Resolve("loop")
	require.True(t, ok)
	assert.Equal(t, uint16(0x4420), addr)
}

func TestLoadConfigPartial(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Empty", ""},
		{"Symbols only", "symbols:\n  a: 1\n"},
		{"Options only", "options:\n  color: yes\n"},
		{"Null sections", "symbols:\noptions:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			assert.NoError(t, ta.loadConfig(writeFile(t, "c.yaml", tt.doc)))
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		contains string
	}{
		{"Unknown section", "aliases:\n  x: y\n", "decoding config"},
		{"Unknown option", "options:\n  colour: on\n", "option colour (line 2): no such option: colour"},
		{"Bad symbol", "symbols:\n  a: b\n", "symbol a (line 2): unknown token: b"},
		{"Options not a mapping", "options: [1, 2]\n", "options: line 1: expected a mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			err := ta.loadConfig(writeFile(t, "c.yaml", tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	ta := newTestApp(t)
	err := ta.loadConfig("/nonexistent/dbgshell.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening config")
}
