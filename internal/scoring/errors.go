package scoring

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every answer validation failure.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports the slot that failed validation. Position is -1 when the
// vector itself has the wrong length.
type InputError struct {
	Position int
	Value    int
	Reason   string
}

func (e *InputError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: answer %d (value %d): %s", e.Position+1, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
