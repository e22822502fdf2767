package variant

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is the sentinel matched by every recoverable
// type-mismatch error via errors.Is.
var ErrTypeMismatch = errors.New("variant: type mismatch")

// TypeMismatchError reports an operation that required a tag the value
// does not hold. It is the recoverable failure class; precondition
// violations panic instead.
type TypeMismatchError struct {
	Want string
	Got  Tag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("variant: expected %s, got %s", e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func typeMismatch(want string, got Tag) error {
	return &TypeMismatchError{Want: want, Got: got}
}
