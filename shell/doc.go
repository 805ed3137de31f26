// Package shell turns lines of user text into command invocations for a
// debugger console.
//
// # Overview
//
// A Shell is built from a fixed command Table supplied by the program, an
// option.Registry and a symbol source for address expressions:
//
//	sh := shell.New(shell.Config{
//	    Commands: append(shell.Builtins(), programCommands...),
//	    Symbols:  symbols,
//	})
//
//	if err := sh.Dispatch("opt color on", true); err != nil {
//	    // only unknown commands are reported here
//	}
//
// Dispatch splits off the first whitespace-delimited word, looks it up
// without regard to case and hands the rest of the line to the command's
// handler as a Cursor. Handlers pull further arguments with Cursor.Next or
// take the remainder with Cursor.Rest.
//
// # Errors
//
// An unknown command is reported on the error sink and returned. Once a
// command has been found, Dispatch returns nil whatever the handler
// returns; a handler error is written to the error sink as
// "<command>: <error>".
//
// # Interactive Flag
//
// While a handler runs, IsInteractive reports the flag passed to Dispatch.
// The previous value is restored afterwards, so a handler may dispatch
// further lines (for example from a script) without disturbing its caller.
//
// # Thread Safety
//
// A Shell is meant to be driven from a single goroutine.
package shell
