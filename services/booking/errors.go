package booking

import "fmt"

// ValidationError marks a missing or malformed booking field. Nothing is
// persisted; the message is surfaced verbatim to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// ConflictError signals that the slot was claimed by a concurrent booking.
// Callers should re-query availability and retry with a new slot.
type ConflictError struct {
	DoctorID string
	Date     string
	Time     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s %s for doctor %s already booked", e.Date, e.Time, e.DoctorID)
}
