// =============================================================================
// app.go - Program Commands and Options
// =============================================================================
//
// The shell package provides the dispatcher and the built-in help, opt and
// eval commands. This file adds what only the program can do, because it
// touches files or owns the symbol table:
//
//	read <file>               run a script of commands
//	sym                       list symbols
//	sym find <text>           list symbols whose name contains text
//	sym set <name> <expr>     define a symbol
//	sym del <name>            remove a symbol
//	sym load <file>           load symbols from a YAML file
//
// =============================================================================

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/attic/dbgshell/option"
	"github.com/attic/dbgshell/shell"
	"github.com/attic/dbgshell/symtab"
)

// maxScriptDepth bounds how deeply read commands may nest.
const maxScriptDepth = 16

// app ties the shell to the program's symbol table and options.
type app struct {
	shell   *shell.Shell
	symbols *symtab.Table
	logger  *slog.Logger

	color *option.Option

	scriptDepth int
}

// newApp creates the shell with the full command table and registers the
// program's options.
func newApp(logger *slog.Logger, stdout, stderr io.Writer) *app {
	a := &app{
		symbols: symtab.New(),
		logger:  logger,
		color: option.NewBool("color", `Highlight the prompt of the interactive console.
`, false),
	}

	commands := append(shell.Builtins(),
		shell.Command{
			Name:    "read",
			Handler: a.cmdRead,
			Help: `read <file>
    Read commands from a file and run them, one per line. Blank lines
    and lines starting with # are skipped. Reading stops at the first
    unknown command.
`,
		},
		shell.Command{
			Name:    "sym",
			Handler: a.cmdSym,
			Help: `sym [find <text> | set <name> <expr> | del <name> | load <file>]
    Without arguments, lists every symbol. Symbols may be used by name
    in any address expression.
`,
		},
	)

	a.shell = shell.New(shell.Config{
		Commands: commands,
		Symbols:  a.symbols,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
	})
	a.shell.Options().Register(a.color)

	return a
}

// GO CONCEPT: Method Values
// --------------------------
// a.cmdRead is a method value: the method bound to this particular app.
// It has the plain shell.Handler signature, so the command table can hold
// it next to ordinary functions, and the handler still reaches the symbol
// table and script depth through a.

// cmdRead runs every line of a script file non-interactively.
func (a *app) cmdRead(sh *shell.Shell, args *shell.Cursor) error {
	path, ok := args.Next()
	if !ok {
		return shell.NewMissingArgumentError("read requires a file name")
	}
	if a.scriptDepth >= maxScriptDepth {
		return fmt.Errorf("%s: scripts nested too deeply", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	a.scriptDepth++
	defer func() { a.scriptDepth-- }()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := sh.Dispatch(line, false); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}

// cmdSym lists and edits the symbol table.
func (a *app) cmdSym(sh *shell.Shell, args *shell.Cursor) error {
	sub, ok := args.Next()
	if !ok {
		a.printSymbols(sh, a.symbols.Symbols())
		return nil
	}

	switch strings.ToLower(sub) {
	case "find":
		text, ok := args.Next()
		if !ok {
			return shell.NewMissingArgumentError("sym find requires a search text")
		}
		a.printSymbols(sh, a.symbols.Find(text))

	case "set":
		name, ok := args.Next()
		if !ok || args.Empty() {
			return shell.NewMissingArgumentError("sym set requires a name and an expression")
		}
		addr, err := sh.Eval(args.Rest())
		if err != nil {
			return err
		}
		a.symbols.Set(name, addr)

	case "del":
		name, ok := args.Next()
		if !ok {
			return shell.NewMissingArgumentError("sym del requires a name")
		}
		if !a.symbols.Delete(name) {
			return fmt.Errorf("no such symbol: %s", name)
		}

	case "load":
		path, ok := args.Next()
		if !ok {
			return shell.NewMissingArgumentError("sym load requires a file name")
		}
		return a.loadSymbolFile(path)

	default:
		return fmt.Errorf("unknown subcommand: %s", sub)
	}

	return nil
}

func (a *app) printSymbols(sh *shell.Shell, symbols []symtab.Symbol) {
	for _, s := range symbols {
		fmt.Fprintf(sh.Stdout(), "0x%04x: %s\n", s.Address, s.Name)
	}
}

// loadSymbolFile adds the symbols of a YAML file to the table.
func (a *app) loadSymbolFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening symbol file: %w", err)
	}
	defer f.Close()

	before := a.symbols.Len()
	if err := a.symbols.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	a.logger.Info("symbols loaded", "file", path, "count", a.symbols.Len()-before)
	return nil
}
