package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GO CONCEPT: Faking stdin with os.Pipe
// -------------------------------------
// os.Pipe returns a connected pair of *os.File values. Swapping the read
// end into os.Stdin makes the editor see a pipe rather than a terminal,
// which is exactly what happens when input is redirected from a file.

func TestNewLineEditorNonInteractive(t *testing.T) {
	oldStdin := os.Stdin
	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = reader
	defer func() {
		os.Stdin = oldStdin
		reader.Close()
		writer.Close()
	}()

	editor := NewLineEditor("", nil)
	defer editor.Close()

	assert.False(t, editor.IsInteractive(), "editor should be non-interactive when stdin is a pipe")
}

func TestGetLineReadsLines(t *testing.T) {
	var out bytes.Buffer
	editor := newScannerEditor(strings.NewReader("opt color on\n\neval 1\n"), &out, func() bool { return true })
	defer editor.Close()

	var lines []string
	for {
		line, err := editor.GetLine("(dbg) ")
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"opt color on", "", "eval 1"}, lines)
	// Piped input gets a plain prompt, even with color on.
	assert.Equal(t, strings.Repeat("(dbg) ", 4), out.String())
}

func TestCloseIsIdempotent(t *testing.T) {
	editor := newScannerEditor(strings.NewReader(""), io.Discard, nil)
	editor.Close()
	editor.Close()
}

func TestCloseFromConcurrentGoroutines(t *testing.T) {
	editor := newScannerEditor(strings.NewReader(""), io.Discard, nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			editor.Close()
		}()
	}
	wg.Wait()

	_, err := editor.GetLine("")
	assert.Equal(t, io.EOF, err)
}

func TestReaderLoopWithLineEditor(t *testing.T) {
	ta := newTestApp(t)
	var prompts bytes.Buffer
	editor := newScannerEditor(strings.NewReader("sym set main 0x4400\neval main\n"), &prompts, ta.color.Bool)

	require.NoError(t, ta.shell.ReaderLoop(editor, prompt))
	assert.Contains(t, ta.stdout.String(), "0x4400 (17408)\n")
	assert.Equal(t, strings.Repeat(prompt, 3), prompts.String())
}
