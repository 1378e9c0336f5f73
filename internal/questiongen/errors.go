package questiongen

import (
	"errors"
	"fmt"
)

// ErrEmptyResult means the model responded but produced zero questions.
var ErrEmptyResult = errors.New("model returned an empty question set")

// MalformedResponseError means the model output could not be coerced
// into a question array even after cleanup.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed question set: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
