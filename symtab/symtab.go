// Package symtab is a simple in-memory symbol table for the debugger
// shell. It implements expr.Resolver and can be loaded from YAML.
package symtab

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/attic/dbgshell/expr"
	"gopkg.in/yaml.v3"
)

// Symbol is a named address.
type Symbol struct {
	Name    string
	Address uint16
}

// Table maps names to addresses. Names are case sensitive.
type Table struct {
	symbols map[string]uint16
}

// New returns an empty table.
func New() *Table {
	return &Table{symbols: make(map[string]uint16)}
}

// Set defines or redefines name.
func (t *Table) Set(name string, addr uint16) {
	t.symbols[name] = addr
}

// Delete removes name and reports whether it was defined.
func (t *Table) Delete(name string) bool {
	if _, ok := t.symbols[name]; !ok {
		return false
	}
	delete(t.symbols, name)
	return true
}

// Resolve implements expr.Resolver.
func (t *Table) Resolve(name string) (uint16, bool) {
	addr, ok := t.symbols[name]
	return addr, ok
}

// Len returns the number of symbols.
func (t *Table) Len() int {
	return len(t.symbols)
}

// Symbols returns all symbols sorted by name.
func (t *Table) Symbols() []Symbol {
	return t.Find("")
}

// Find returns the symbols whose name contains substr, ignoring case,
// sorted by name.
func (t *Table) Find(substr string) []Symbol {
	substr = strings.ToLower(substr)

	var found []Symbol
	for name, addr := range t.symbols {
		if strings.Contains(strings.ToLower(name), substr) {
			found = append(found, Symbol{Name: name, Address: addr})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})
	return found
}

// Load reads a YAML mapping of names to address expressions and defines
// each symbol in document order. A value may refer to symbols defined
// before it:
//
//	main: 0x4400
//	loop: main+0x20
func (t *Table) Load(r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decoding symbols: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	return t.LoadNode(doc.Content[0])
}

// LoadNode defines the symbols of a YAML mapping node, as Load does.
func (t *Table) LoadNode(node *yaml.Node) error {
	pairs, err := MappingPairs(node)
	if err != nil {
		return err
	}

	for _, p := range pairs {
		addr, err := expr.Evaluate(p.Value, t)
		if err != nil {
			return fmt.Errorf("symbol %s (line %d): %w", p.Key, p.Line, err)
		}
		t.Set(p.Key, addr)
	}
	return nil
}

// Pair is one scalar key/value entry of a YAML mapping.
type Pair struct {
	Key   string
	Value string
	Line  int
}

// MappingPairs returns the entries of a YAML mapping of scalars in document
// order. An empty or null node yields no pairs.
func MappingPairs(node *yaml.Node) ([]Pair, error) {
	if node == nil || node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	pairs := make([]Pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expected a scalar value", key.Line)
		}
		pairs = append(pairs, Pair{Key: key.Value, Value: value.Value, Line: key.Line})
	}
	return pairs, nil
}
