package orchestration

import "errors"

// ErrToolLoopExceeded is returned when an agent keeps requesting tools past
// the configured round cap for a single turn.
var ErrToolLoopExceeded = errors.New("tool loop exceeded")
