// =============================================================================
// main.go - dbgshell Entry Point
// =============================================================================
//
// dbgshell is the command console of a small 16-bit debugger. It reads
// commands from the terminal (or from the command line and script files),
// evaluates address expressions such as "main+0x10" against a symbol table
// and keeps a set of typed runtime options.
//
// Usage:
//
//	dbgshell                                  Interactive console
//	dbgshell -symbols syms.yaml               Preload symbols
//	dbgshell -config dbgshell.yaml            Preload symbols and options
//	dbgshell -q "eval main+4" "sym"           Run commands, then exit
//	dbgshell -i "read setup.cmd"              Run commands, then go interactive
//
// =============================================================================

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/retroenv/retrogolib/buildinfo"
)

const (
	// appName is shown in the banner and usage text.
	appName = "dbgshell"

	// prompt is shown before every interactive command.
	prompt = "(dbg) "
)

// version, commit and date are overridden at build time with -ldflags.
var (
	version = "0.4.0"
	commit  = ""
	date    = ""
)

// fullTitle returns the application name with build information.
func fullTitle() string {
	return fmt.Sprintf("%s %s", appName, buildinfo.Version(version, commit, date))
}

// welcomeBanner returns the text printed when an interactive session starts.
func welcomeBanner() string {
	return fmt.Sprintf(`%s - debugger command console

Address expressions: decimal, 0x-prefixed hex and symbol names joined by + and -.
`, fullTitle())
}

// arguments holds the parsed command-line arguments.
type arguments struct {
	configPath  string
	symbolsPath string
	historyPath string

	quiet       bool
	debug       bool
	interactive bool
	showVersion bool

	// commands are dispatched in order, non-interactively, before the
	// console starts.
	commands []string
}

// usageError signals that the usage text should be printed.
type usageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) showUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [options] [command...]\n\n", appName)
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	fmt.Fprintln(w)
}

// parseArguments parses argv (without the program name).
func parseArguments(argv []string) (arguments, error) {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var args arguments
	flags.StringVar(&args.configPath, "config", "", "YAML file with symbols and option values to load at startup")
	flags.StringVar(&args.symbolsPath, "symbols", "", "YAML file mapping symbol names to address expressions")
	flags.StringVar(&args.historyPath, "history", "", "history file for interactive sessions (default ~/"+historyFileName+")")
	flags.BoolVar(&args.quiet, "q", false, "do not print the banner, log errors only")
	flags.BoolVar(&args.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&args.interactive, "i", false, "start the console after running command arguments")
	flags.BoolVar(&args.showVersion, "version", false, "print version information and exit")

	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return args, &usageError{flags: flags}
		}
		return args, &usageError{flags: flags, msg: err.Error()}
	}

	if flags.NArg() > 0 {
		args.commands = flags.Args()
	}
	return args, nil
}

// GO CONCEPT: Goroutines and Channels for Signals
// ------------------------------------------------
// signal.Notify delivers signals on a channel instead of interrupting the
// program. A goroutine blocks on that channel and does the cleanup when a
// signal arrives. The channel is buffered with room for one value because
// the signal package never blocks when sending; an unbuffered channel
// could miss a signal that arrives before the receive starts.

// setupSignalHandler runs cleanup and exits when SIGINT or SIGTERM arrives
// outside of line editing (readline handles Ctrl-C itself).
func setupSignalHandler(cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println()
		cleanup()
		os.Exit(0)
	}()
}

// GO CONCEPT: Returning an Exit Status
// ------------------------------------
// os.Exit skips deferred calls, so main does nothing but call run and exit
// with its result. All the real work happens in run, where defers (such
// as closing the line editor) behave normally and tests can call it with
// buffers in place of stdout and stderr.

// run executes the program and returns the exit status.
func run(argv []string, stdout, stderr io.Writer) int {
	args, err := parseArguments(argv)
	if err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			if usage.msg != "" {
				fmt.Fprintf(stderr, "Error: %s\n", usage.msg)
			}
			usage.showUsage(stderr)
		}
		return 2
	}

	if args.showVersion {
		fmt.Fprintln(stdout, fullTitle())
		return 0
	}

	logger := newLogger(stderr, args.debug, args.quiet)
	a := newApp(logger, stdout, stderr)

	if args.symbolsPath != "" {
		if err := a.loadSymbolFile(args.symbolsPath); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	if args.configPath != "" {
		if err := a.loadConfig(args.configPath); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	status := 0
	for _, line := range args.commands {
		if err := a.shell.Dispatch(line, false); err != nil {
			status = 1
			break
		}
	}
	if len(args.commands) > 0 && !args.interactive {
		return status
	}

	editor := NewLineEditor(args.historyPath, a.color.Bool)
	defer editor.Close()
	setupSignalHandler(editor.Close)

	if !args.quiet {
		fmt.Fprint(stdout, welcomeBanner())
	}

	if err := a.shell.ReaderLoop(editor, prompt); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return status
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
