// Package option holds the named, typed runtime settings of a debugger shell.
//
// An option is one of three kinds: a boolean switch, a 16-bit numeric value
// written as an address expression, or a short text string. Values are
// replaced only by parsing user text with Registry.Parse or Registry.Set.
package option

import (
	"fmt"
	"unicode/utf8"
)

// MaxTextLength is the number of bytes a text option stores. Longer values
// are cut short without an error.
const MaxTextLength = 127

// Kind identifies the type of an option's value.
type Kind int

const (
	// KindBoolean is an on/off switch.
	KindBoolean Kind = iota
	// KindNumeric is a 16-bit value parsed as an address expression.
	KindNumeric
	// KindText is a bounded string.
	KindText
)

// String returns the label shown by help: "boolean", "numeric", "text" or
// "unknown".
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is the current value of an option. The set of implementations is
// closed: Bool, Numeric and Text.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// Bool is the value of a boolean option.
type Bool bool

// Numeric is the value of a numeric option.
type Numeric uint16

// Text is the value of a text option. It never exceeds MaxTextLength bytes.
type Text string

func (Bool) Kind() Kind { return KindBoolean }
func (Numeric) Kind() Kind { return KindNumeric }
func (Text) Kind() Kind { return KindText }

func (Bool) isValue() {}
func (Numeric) isValue() {}
func (Text) isValue() {}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// String shows the value in hexadecimal and decimal, e.g. "0x2a (42)".
func (n Numeric) String() string {
	return fmt.Sprintf("0x%x (%d)", uint16(n), uint16(n))
}

func (t Text) String() string {
	return string(t)
}

// Option is a named setting. Create options with NewBool, NewNumeric or
// NewText and hand them to Registry.Register. The zero value is a boolean
// option that is off.
type Option struct {
	Name string
	Help string

	value Value
}

// NewBool creates a boolean option.
func NewBool(name, help string, initial bool) *Option {
	return &Option{Name: name, Help: help, value: Bool(initial)}
}

// NewNumeric creates a numeric option.
func NewNumeric(name, help string, initial uint16) *Option {
	return &Option{Name: name, Help: help, value: Numeric(initial)}
}

// NewText creates a text option. The initial value is bounded like any
// other assignment.
func NewText(name, help, initial string) *Option {
	text, _ := truncateText(initial)
	return &Option{Name: name, Help: help, value: Text(text)}
}

// Kind returns the kind of the option's value.
func (o *Option) Kind() Kind {
	return o.Value().Kind()
}

// Value returns the current value.
func (o *Option) Value() Value {
	if o.value == nil {
		return Bool(false)
	}
	return o.value
}

// String formats the current value for display.
func (o *Option) String() string {
	return o.Value().String()
}

// Bool returns the value of a boolean option, false for other kinds.
func (o *Option) Bool() bool {
	b, _ := o.value.(Bool)
	return bool(b)
}

// Numeric returns the value of a numeric option, 0 for other kinds.
func (o *Option) Numeric() uint16 {
	n, _ := o.value.(Numeric)
	return uint16(n)
}

// Text returns the value of a text option, "" for other kinds.
func (o *Option) Text() string {
	t, _ := o.value.(Text)
	return string(t)
}

// Format returns the display form of o's value.
func Format(o *Option) string {
	return o.String()
}

// parseBool accepts anything starting with a non-zero digit, 't', 'y' or
// "on". Everything else, including the empty string, is false.
func parseBool(word string) bool {
	if word == "" {
		return false
	}
	c := word[0]
	switch {
	case c > '0' && c <= '9':
		return true
	case c == 't', c == 'y':
		return true
	}
	return len(word) >= 2 && word[:2] == "on"
}

// truncateText bounds s to MaxTextLength bytes without splitting a UTF-8
// sequence. It reports whether anything was cut.
func truncateText(s string) (string, bool) {
	if len(s) <= MaxTextLength {
		return s, false
	}
	end := MaxTextLength
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end], true
}
