package diary

import "errors"

// ErrBusy is returned when a generation is already running
var ErrBusy = errors.New("diary: generation already in progress")

// GenerationFailedMessage is the only failure text shown to users
const GenerationFailedMessage = "Failed to generate diary content. Please try again."

// GenerationError hides the generator's failure behind a generic message.
// The cause stays reachable through errors.Unwrap.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
