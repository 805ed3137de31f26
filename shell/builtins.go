package shell

import (
	"fmt"
	"strings"

	"github.com/attic/dbgshell/option"
)

// Builtins returns the commands every shell provides: help, opt and eval.
// Programs place them in their own command table.
func Builtins() Table {
	return Table{
		{
			Name:    "help",
			Handler: cmdHelp,
			Help: `help [command]
    Without arguments, displays a list of commands. With a command
    or option name as an argument, displays help for that topic.
`,
		},
		{
			Name:    "opt",
			Handler: cmdOpt,
			Help: `opt [name] [value]
    Query or set option variables. With no arguments, displays all
    available options. Numeric options accept address expressions.
`,
		},
		{
			Name:    "eval",
			Handler: cmdEval,
			Help: `eval <expression>
    Evaluate an address expression and show the result in hex and
    decimal. Terms are decimal numbers, 0x-prefixed hex numbers or
    symbol names, combined with + and -.
`,
		},
	}
}

func cmdOpt(sh *Shell, args *Cursor) error {
	name, ok := args.Next()
	if !ok {
		for _, o := range sh.options.All() {
			displayOption(sh, o)
		}
		return nil
	}

	o := sh.options.Find(name)
	if o == nil {
		return &option.UnknownOptionError{Name: name}
	}

	value := args.Rest()
	if value == "" {
		displayOption(sh, o)
		return nil
	}

	if err := sh.options.Parse(o, value); err != nil {
		return newInvalidValueError(value, err)
	}
	return nil
}

func displayOption(sh *Shell, o *option.Option) {
	fmt.Fprintf(sh.stdout, "%32s = %s\n", o.Name, option.Format(o))
}

func cmdEval(sh *Shell, args *Cursor) error {
	text := args.Rest()
	if text == "" {
		return NewMissingArgumentError("expression required")
	}

	addr, err := sh.Eval(text)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.stdout, "0x%04x (%d)\n", addr, addr)
	return nil
}

func cmdHelp(sh *Shell, args *Cursor) error {
	topic, ok := args.Next()
	if !ok {
		sh.ShowCommands()
		return nil
	}

	cmd := sh.commands.Find(topic)
	opt := sh.options.Find(topic)
	if cmd == nil && opt == nil {
		return newUnknownCommandError(topic)
	}

	if cmd != nil {
		fmt.Fprintf(sh.stdout, "COMMAND: %s\n", cmd.Name)
		writeHelpText(sh, cmd.Help)
		if opt != nil {
			fmt.Fprintln(sh.stdout)
		}
	}
	if opt != nil {
		fmt.Fprintf(sh.stdout, "OPTION: %s (%s)\n", opt.Name, opt.Kind())
		writeHelpText(sh, opt.Help)
	}
	return nil
}

func writeHelpText(sh *Shell, text string) {
	fmt.Fprint(sh.stdout, text)
	if text != "" && !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(sh.stdout)
	}
}

const listingWidth = 72

// ShowCommands prints the command names in columns, filled top to bottom.
func (sh *Shell) ShowCommands() {
	names := sh.commands.Names()

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	width += 2

	cols := max(listingWidth/width, 1)
	rows := (len(names) + cols - 1) / cols

	fmt.Fprintln(sh.stdout, "Available commands:")
	for i := 0; i < rows; i++ {
		var line strings.Builder
		line.WriteString("    ")
		for j := 0; j < cols; j++ {
			k := j*rows + i
			if k >= len(names) {
				break
			}
			fmt.Fprintf(&line, "%-*s", width, names[k])
		}
		fmt.Fprintln(sh.stdout, line.String())
	}

	fmt.Fprintln(sh.stdout, `Type "help <command>" for more information.`)
	fmt.Fprintln(sh.stdout, "Press Ctrl+D to quit.")
}
