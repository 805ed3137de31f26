package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/attic/dbgshell/symtab"
	"gopkg.in/yaml.v3"
)

// GO CONCEPT: Struct Tags and Deferred Decoding
// ----------------------------------------------
// The `yaml:"symbols"` tag tells the decoder which key fills the field.
// Declaring the fields as yaml.Node keeps the raw document tree instead
// of a map, so the mapping order and the line numbers survive decoding.
// Symbol definitions depend on that order, and errors can point at lines.

// fileConfig is the layout of the -config file:
//
//	symbols:
//	  main: 0x4400
//	  loop: main+0x20
//	options:
//	  color: on
//
// Symbols are defined first, in document order, so that option values may
// refer to them.
type fileConfig struct {
	Symbols yaml.Node `yaml:"symbols"`
	Options yaml.Node `yaml:"options"`
}

// loadConfig applies a configuration file to the symbol table and options.
func (a *app) loadConfig(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	var cfg fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: decoding config: %w", path, err)
	}

	if err := a.symbols.LoadNode(&cfg.Symbols); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	pairs, err := symtab.MappingPairs(&cfg.Options)
	if err != nil {
		return fmt.Errorf("%s: options: %w", path, err)
	}
	for _, p := range pairs {
		if err := a.shell.Options().Set(p.Key, p.Value); err != nil {
			return fmt.Errorf("%s: option %s (line %d): %w", path, p.Key, p.Line, err)
		}
	}

	a.logger.Info("configuration loaded", "file", path,
		"symbols", a.symbols.Len(), "options", len(pairs))
	return nil
}
