package expr

import (
	"context"
	"log/slog"
)

// MaxTermLength is the number of bytes of a single term that are kept.
// Longer terms are cut to this length and evaluation continues.
const MaxTermLength = 63

// Resolver maps a symbol name to a 16-bit address.
type Resolver interface {
	Resolve(name string) (uint16, bool)
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(name string) (uint16, bool)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (uint16, bool) {
	return f(name)
}

// NoSymbols is a Resolver that knows no names.
var NoSymbols Resolver = ResolverFunc(func(string) (uint16, bool) { return 0, false })

// Evaluator evaluates expressions against a fixed symbol source.
// The zero value evaluates numbers only.
type Evaluator struct {
	Symbols Resolver
	Logger  *slog.Logger // optional, receives term truncation reports
}

// New returns an Evaluator resolving names through symbols.
func New(symbols Resolver, logger *slog.Logger) *Evaluator {
	return &Evaluator{Symbols: symbols, Logger: logger}
}

// Evaluate computes the 16-bit value of text, resolving names through
// symbols. A nil resolver resolves nothing.
func Evaluate(text string, symbols Resolver) (uint16, error) {
	ev := Evaluator{Symbols: symbols}
	return ev.Eval(text)
}

// state is the per-call tokenizer state. It lives on the stack of Eval and
// is never shared between evaluations.
type state struct {
	term    [MaxTermLength]byte
	n       int
	dropped int
	sum     int
	sign    int
}

// Eval computes the 16-bit value of text. Evaluation stops at the first term
// that cannot be resolved and no partial value is returned.
func (ev *Evaluator) Eval(text string) (uint16, error) {
	st := state{sign: 1}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if isTermChar(c) {
			if st.n < MaxTermLength {
				st.term[st.n] = c
				st.n++
			} else {
				st.dropped++
			}
			continue
		}

		if err := ev.flush(&st); err != nil {
			return 0, err
		}
		switch c {
		case '+':
			st.sign = 1
		case '-':
			st.sign = -1
		}
	}

	if err := ev.flush(&st); err != nil {
		return 0, err
	}
	return uint16(st.sum & 0xffff), nil
}

// flush resolves the buffered term, if any, and adds it to the sum.
func (ev *Evaluator) flush(st *state) error {
	if st.n == 0 {
		return nil
	}
	token := string(st.term[:st.n])
	st.n = 0

	if st.dropped > 0 {
		if ev.Logger != nil {
			ev.Logger.LogAttrs(context.Background(), slog.LevelDebug, "expression term truncated",
				slog.String("term", token), slog.Int("dropped", st.dropped))
		}
		st.dropped = 0
	}

	value, err := ev.resolveTerm(token)
	if err != nil {
		return err
	}
	st.sum += st.sign * int(value)
	return nil
}

// resolveTerm tries decimal, then 0x-prefixed hexadecimal, then the symbol
// table.
func (ev *Evaluator) resolveTerm(token string) (uint16, error) {
	if isDecimal(token) {
		return parseDigits(token, 10), nil
	}

	if len(token) >= 2 && token[0] == '0' && (token[1] == 'x' || token[1] == 'X') {
		return parseDigits(token[2:], 16), nil
	}

	symbols := ev.Symbols
	if symbols == nil {
		symbols = NoSymbols
	}
	if value, ok := symbols.Resolve(token); ok {
		return value, nil
	}
	return 0, newUnknownTokenError(token)
}

func isTermChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '$', c == '.', c == ':':
		return true
	}
	return false
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseDigits reads the leading digits of s in the given base and stops at
// the first byte that is not one. Values wrap at 16 bits, the same way the
// final sum does, so "0x10000" is 0.
func parseDigits(s string, base uint16) uint16 {
	var v uint16
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= base {
			break
		}
		v = v*base + d
	}
	return v
}

func digitValue(c byte) (uint16, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint16(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint16(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint16(c-'A') + 10, true
	}
	return 0, false
}
