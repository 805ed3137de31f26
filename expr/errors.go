package expr

import (
	"errors"
	"fmt"
)

// ErrUnknownToken indicates a term that is neither a number nor a name the
// resolver knows.
var ErrUnknownToken = errors.New("unknown token")

// Error reports the term that aborted an evaluation.
type Error struct {
	Token string // The term as it was buffered, possibly truncated
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("unknown token: %s", e.Token)
}

// Is makes errors.Is(err, ErrUnknownToken) succeed.
func (e *Error) Is(target error) bool {
	return target == ErrUnknownToken
}

func newUnknownTokenError(token string) error {
	return &Error{Token: token}
}
