package shell

// Handler runs a command. args holds the rest of the line after the
// command name.
type Handler func(sh *Shell, args *Cursor) error

// Command is an entry of the command table.
type Command struct {
	Name    string
	Handler Handler
	Help    string
}

// Table is the ordered set of commands a shell understands. An entry with
// an empty name ends the table; entries after it are never consulted.
type Table []Command

// Find returns the first command whose name equals name, ignoring ASCII
// case.
func (t Table) Find(name string) *Command {
	for i := range t {
		if t[i].Name == "" {
			break
		}
		if equalFold(t[i].Name, name) {
			return &t[i]
		}
	}
	return nil
}

// Names returns the command names in table order.
func (t Table) Names() []string {
	var names []string
	for _, c := range t {
		if c.Name == "" {
			break
		}
		names = append(names, c.Name)
	}
	return names
}

// equalFold compares a and b with ASCII letters folded to lower case.
// Other bytes must match exactly.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
