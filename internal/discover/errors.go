package discover

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrEmptyTask is returned when Run is given a blank task.
var ErrEmptyTask = errors.New("task description is empty")

// StageError reports the stage that stopped a run. Calls counts the
// generator calls made in the run, including the failing one.
type StageError struct {
	Stage Stage
	Calls int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed after %d generator call(s): %v", e.Stage, e.Calls, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
