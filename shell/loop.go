package shell

import (
	"errors"
	"fmt"
	"io"
)

// LineReader supplies lines of input. GetLine returns io.EOF when input is
// exhausted.
type LineReader interface {
	GetLine(prompt string) (string, error)
}

// ReaderLoop shows the command listing and then dispatches every line from
// r as interactive input until r reports io.EOF.
func (sh *Shell) ReaderLoop(r LineReader, prompt string) error {
	fmt.Fprintln(sh.stdout)
	sh.ShowCommands()

	for {
		line, err := r.GetLine(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(sh.stdout)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		// Unknown commands have already been reported.
		_ = sh.Dispatch(line, true)
	}
}
