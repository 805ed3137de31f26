package option

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/attic/dbgshell/expr"
)

// Registry owns the registered options. It is not safe for concurrent use.
type Registry struct {
	list   []*Option          // display order, most recent registration first
	index  map[string]*Option // name folded to ASCII lower case
	eval   *expr.Evaluator
	logger *slog.Logger
}

// NewRegistry creates an empty registry. Numeric values are evaluated with
// names resolved through symbols. A nil logger discards output.
func NewRegistry(symbols expr.Resolver, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		index:  make(map[string]*Option),
		eval:   expr.New(symbols, logger),
		logger: logger,
	}
}

// Register adds o in front of all previously registered options. Names are
// not checked for duplicates; a later registration shadows an earlier one.
// Registering the same option again moves it to the front.
func (r *Registry) Register(o *Option) {
	r.list = slices.DeleteFunc(r.list, func(x *Option) bool { return x == o })
	r.list = append([]*Option{o}, r.list...)
	r.index[foldName(o.Name)] = o
}

// Find returns the option called name, ignoring ASCII case, or nil.
func (r *Registry) Find(name string) *Option {
	return r.index[foldName(name)]
}

// foldName lower-cases the ASCII letters of name and leaves everything else
// alone.
func foldName(name string) string {
	return strings.Map(func(c rune) rune {
		if 'A' <= c && c <= 'Z' {
			return c + 'a' - 'A'
		}
		return c
	}, name)
}

// All returns the registered options in display order.
func (r *Registry) All() []*Option {
	all := make([]*Option, len(r.list))
	copy(all, r.list)
	return all
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.list)
}

// Parse converts word according to o's kind and stores the result. Only a
// numeric option can fail; its value is left unchanged when it does.
func (r *Registry) Parse(o *Option, word string) error {
	switch o.Kind() {
	case KindBoolean:
		o.value = Bool(parseBool(word))

	case KindNumeric:
		v, err := r.eval.Eval(word)
		if err != nil {
			return err
		}
		o.value = Numeric(v)

	case KindText:
		text, truncated := truncateText(word)
		if truncated {
			r.logger.LogAttrs(context.Background(), slog.LevelDebug, "text option truncated",
				slog.String("option", o.Name), slog.Int("length", len(word)), slog.Int("kept", len(text)))
		}
		o.value = Text(text)
	}

	return nil
}

// Set parses word into the option called name.
func (r *Registry) Set(name, word string) error {
	o := r.Find(name)
	if o == nil {
		return newUnknownOptionError(name)
	}
	return r.Parse(o, word)
}
