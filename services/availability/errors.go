package availability

import "fmt"

// InputError marks missing or malformed caller input. It is detected before
// any data-source fetch and surfaced verbatim.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func NewInputError(msg string) error {
	return &InputError{Msg: msg}
}

// SourceError marks a data-source failure. The whole computation aborts with
// no partial results; the underlying cause stays attached for diagnostics.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s source failed: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
