// =============================================================================
// lineeditor.go - Line Editor with Dual-Mode Operation
// =============================================================================
//
// This file supplies the lines the shell dispatches. It detects whether the
// terminal is interactive (TTY) or non-interactive (piped input, e.g., a
// script fed through stdin or Emacs comint mode) and selects the input
// method:
//
//   - Interactive mode: ergochat/readline with Emacs keybindings, persistent
//     history and Ctrl-R history search.
//   - Non-interactive mode: bufio.Scanner, printing the prompt manually.
//
// History is kept in ~/.dbgshell_history (or the -history flag) with a
// 500-entry limit. Empty lines are never saved.
//
// =============================================================================

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

const (
	// historyFileName is the name of the history file in the user's home
	// directory.
	historyFileName = ".dbgshell_history"

	// historySize is the maximum number of history entries to retain.
	historySize = 500

	// promptHighlight and promptReset wrap the prompt when the color
	// option is on.
	promptHighlight = "\x1b[1;34m"
	promptReset     = "\x1b[0m"
)

// LineEditor wraps line editing with dual-mode operation.
//
// In interactive mode it uses ergochat/readline; in non-interactive mode
// (piped input or Emacs comint) it falls back to bufio.Scanner.
type LineEditor struct {
	// interactive is true when stdin is a TTY and false when it is piped.
	interactive bool

	// rl is the readline instance used in interactive mode; nil otherwise.
	rl *readline.Instance

	// scanner reads lines from stdin in non-interactive mode.
	scanner *bufio.Scanner

	// out receives the prompt in non-interactive mode.
	out io.Writer

	// color reports whether the prompt should be highlighted. It is
	// consulted before every read so that "opt color" takes effect at once.
	color func() bool

	// closeOnce guards the release of rl. Close may be called from the
	// signal handler while the main goroutine is reading.
	closeOnce sync.Once
}

// GO CONCEPT: Function Values as Configuration
// --------------------------------------------
// The editor does not know about the option registry. It is handed a
// func() bool instead, a closure over the "color" option. Functions are
// first-class values in Go, so a small callback often replaces an
// interface with a single method.

// NewLineEditor creates a LineEditor with automatic mode detection.
//
// If stdin is a TTY, a readline instance with persistent history at
// historyPath is created (an empty path selects ~/.dbgshell_history).
// Under Emacs (INSIDE_EMACS set) the non-interactive mode is always used,
// because Emacs provides its own line editing.
func NewLineEditor(historyPath string, color func() bool) *LineEditor {
	if color == nil {
		color = func() bool { return false }
	}

	// GO CONCEPT: TTY Detection
	// -------------------------
	// golang.org/x/term.IsTerminal reports whether a file descriptor is
	// connected to a terminal. os.Stdin.Fd() returns a uintptr, so it is
	// converted to int first. A pipe or a file is not a terminal, which is
	// how "dbgshell < script.cmd" ends up in non-interactive mode.
	isInteractive := term.IsTerminal(int(os.Stdin.Fd())) &&
		os.Getenv("INSIDE_EMACS") == ""

	if !isInteractive {
		return newScannerEditor(os.Stdin, os.Stdout, color)
	}

	if historyPath == "" {
		historyPath = filepath.Join(homeDir(), historyFileName)
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:  historyPath,
		HistoryLimit: historySize,

		// Lines are saved by getInteractiveLine so that blank input is
		// kept out of the history file.
		DisableAutoSaveHistory: true,

		// The prompt is set before each read.
		Prompt: "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return newScannerEditor(os.Stdin, os.Stdout, color)
	}

	return &LineEditor{
		interactive: true,
		rl:          rl,
		out:         os.Stdout,
		color:       color,
	}
}

// newScannerEditor creates a non-interactive editor reading from in.
func newScannerEditor(in io.Reader, out io.Writer, color func() bool) *LineEditor {
	return &LineEditor{
		interactive: false,
		scanner:     bufio.NewScanner(in),
		out:         out,
		color:       color,
	}
}

// GO CONCEPT: Sentinel Errors
// ----------------------------
// io.EOF is a package-level error value, not a type. Callers compare
// against it directly (err == io.EOF, or errors.Is for wrapped errors).
// Mapping Ctrl-C to io.EOF here means the shell's read loop only has to
// know about one way a session ends.

// GetLine reads a line of input with the given prompt.
//
// Returns the input line without its trailing newline. Returns
// ("", io.EOF) when the user presses Ctrl-D or Ctrl-C, or when piped
// input is exhausted.
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.interactive {
		return le.getInteractiveLine(prompt)
	}
	return le.getNonInteractiveLine(prompt)
}

// getInteractiveLine reads a line using readline and records non-empty
// lines in the history.
func (le *LineEditor) getInteractiveLine(prompt string) (string, error) {
	if le.color() {
		prompt = promptHighlight + prompt + promptReset
	}
	le.rl.SetPrompt(prompt)

	line, err := le.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return "", err
	}

	trimmed := strings.TrimSpace(line)
	if trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}

	return line, nil
}

// getNonInteractiveLine prints the prompt and reads the next line from the
// scanner. Piped input is never colored.
func (le *LineEditor) getNonInteractiveLine(prompt string) (string, error) {
	fmt.Fprint(le.out, prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return le.scanner.Text(), nil
}

// GO CONCEPT: sync.Once
// ---------------------
// sync.Once runs a function exactly once, no matter how many goroutines
// call Do or how often. Close is reached both from a deferred call in run
// and from the signal handler goroutine, so the readline instance is
// released through a Once and the rl field itself is never written after
// construction.

// Close releases the readline instance and flushes the history file. It
// is safe to call more than once and from more than one goroutine.
func (le *LineEditor) Close() {
	le.closeOnce.Do(func() {
		if le.rl != nil {
			le.rl.Close()
		}
	})
}

// IsInteractive reports whether the editor uses readline.
func (le *LineEditor) IsInteractive() bool {
	return le.interactive
}

// homeDir returns the user's home directory, or "" if it is unknown.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
