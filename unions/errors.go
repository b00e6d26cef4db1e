package unions

import (
	"errors"
	"fmt"
)

// ErrInvalidState is matched by every error returned when a union value
// holds none of its cases. This happens only for values that were not built
// by a generated constructor, such as the zero value.
var ErrInvalidState = errors.New("union holds no case")

// InvalidStateError reports which union was found empty.
type InvalidStateError struct {
	Union string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Union, ErrInvalidState)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// InvalidState returns the error generated code reports for an empty value
// of the named union.
func InvalidState(union string) error {
	return &InvalidStateError{Union: union}
}
