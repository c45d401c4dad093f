package pipeline

import "fmt"

// StageError wraps a stage failure with the stage's title and position.
type StageError struct {
	// Title is the failing stage's title.
	Title string

	// Index is the 1-based position of the failing stage.
	Index int

	// Err is the underlying stage error.
	Err error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d (%s): %v", e.Index, e.Title, e.Err)
}

// Unwrap returns the underlying stage error.
func (e *StageError) Unwrap() error {
	return e.Err
}
