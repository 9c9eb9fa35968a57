package cc2420

import (
	"errors"
	"fmt"
)

// Radio errors
var (
	// ErrTimeout indicates a bounded poll loop expired before the
	// chip signalled the awaited condition.
	ErrTimeout = errors.New("timed out waiting for radio")

	// ErrEmptyPayload indicates a send was attempted with no data.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrEmptyBuffer indicates a receive was attempted into a
	// zero-length buffer.
	ErrEmptyBuffer = errors.New("empty receive buffer")

	// ErrNotPowered indicates an RF operation before Configure or
	// PowerUp brought the oscillator up.
	ErrNotPowered = errors.New("radio is not powered up")
)

// LengthError reports a buffer whose size does not match what the
// operation requires. It is raised before any transport I/O happens.
type LengthError struct {
	Expected int
	Found    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid buffer length: expected %d bytes, found %d", e.Expected, e.Found)
}

// StepError reports a configuration step whose read-back did not match
// the value written. The whole Configure sequence must be re-run.
type StepError struct {
	Step string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("configuration step %s failed: read-back mismatch", e.Step)
}
