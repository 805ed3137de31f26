package option

import (
	"errors"
	"fmt"
)

// ErrUnknownOption indicates a lookup of a name that was never registered.
var ErrUnknownOption = errors.New("no such option")

// UnknownOptionError carries the name that failed to resolve.
type UnknownOptionError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("no such option: %s", e.Name)
}

// Is makes errors.Is(err, ErrUnknownOption) succeed.
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

func newUnknownOptionError(name string) error {
	return &UnknownOptionError{Name: name}
}
