package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/attic/dbgshell/expr"
	"github.com/attic/dbgshell/option"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Config describes the collaborators of a Shell. Only Commands is required.
type Config struct {
	// Commands is the command table. It is not copied and must not be
	// modified while the shell is in use.
	Commands Table

	// Options is the option registry. A new one, resolving numeric values
	// through Symbols, is created when nil.
	Options *option.Registry

	// Symbols resolves names in address expressions.
	Symbols expr.Resolver

	// Stdout and Stderr receive normal and diagnostic output. They default
	// to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives debug records about dispatching. Nil discards them.
	Logger *slog.Logger
}

// Shell dispatches command lines against a command table.
type Shell struct {
	commands Table
	options  *option.Registry
	eval     *expr.Evaluator
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger

	interactive bool
}

// New creates a shell from cfg.
func New(cfg Config) *Shell {
	sh := &Shell{
		commands: cfg.Commands,
		options:  cfg.Options,
		stdout:   cfg.Stdout,
		stderr:   cfg.Stderr,
		logger:   cfg.Logger,
	}

	if sh.logger == nil {
		sh.logger = slog.New(slog.DiscardHandler)
	}
	if sh.stdout == nil {
		sh.stdout = os.Stdout
	}
	if sh.stderr == nil {
		sh.stderr = os.Stderr
	}
	if sh.options == nil {
		sh.options = option.NewRegistry(cfg.Symbols, sh.logger)
	}
	sh.eval = expr.New(cfg.Symbols, sh.logger)

	return sh
}

// Commands returns the command table.
func (sh *Shell) Commands() Table {
	return sh.commands
}

// Options returns the option registry.
func (sh *Shell) Options() *option.Registry {
	return sh.options
}

// Stdout returns the normal output sink.
func (sh *Shell) Stdout() io.Writer {
	return sh.stdout
}

// Stderr returns the diagnostic output sink.
func (sh *Shell) Stderr() io.Writer {
	return sh.stderr
}

// Logger returns the shell's logger.
func (sh *Shell) Logger() *slog.Logger {
	return sh.logger
}

// Eval evaluates an address expression against the shell's symbols.
func (sh *Shell) Eval(text string) (uint16, error) {
	return sh.eval.Eval(text)
}

// IsInteractive reports whether the running command was dispatched from a
// live session rather than a script.
func (sh *Shell) IsInteractive() bool {
	return sh.interactive
}

// Dispatch runs one line of input. An empty or blank line does nothing.
// It returns an error only when the first word names no command; in that
// case a single line is written to the error sink.
func (sh *Shell) Dispatch(line string, interactive bool) error {
	args := NewCursor(trimTrailingSpace(line))

	name, ok := args.Next()
	if !ok {
		return nil
	}

	cmd := sh.commands.Find(name)
	if cmd == nil {
		if match := sh.suggest(name); match != "" {
			fmt.Fprintf(sh.stderr, "unknown command: %s (did you mean \"%s\"?)\n", name, match)
		} else {
			fmt.Fprintf(sh.stderr, "unknown command: %s (try \"help\")\n", name)
		}
		return newUnknownCommandError(name)
	}

	sh.run(cmd, args, interactive)
	return nil
}

// run invokes cmd with the interactive flag set for the duration of the
// call. The handler's error is reported but not returned.
func (sh *Shell) run(cmd *Command, args *Cursor, interactive bool) {
	prev := sh.interactive
	sh.interactive = interactive
	defer func() { sh.interactive = prev }()

	sh.logger.LogAttrs(context.Background(), slog.LevelDebug, "dispatch",
		slog.String("command", cmd.Name), slog.Bool("interactive", interactive))

	if err := cmd.Handler(sh, args); err != nil {
		fmt.Fprintf(sh.stderr, "%s: %v\n", cmd.Name, err)
		sh.logger.LogAttrs(context.Background(), slog.LevelDebug, "command failed",
			slog.String("command", cmd.Name), slog.Any("error", err))
	}
}

// suggest returns the closest command name to name, or "".
func (sh *Shell) suggest(name string) string {
	ranks := fuzzy.RankFindFold(name, sh.commands.Names())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
