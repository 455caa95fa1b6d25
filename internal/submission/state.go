package submission

import (
	"errors"
	"fmt"
	"time"

	"chiclon/internal/domains/booking/model"
	"chiclon/shared/validator"
)

const (
	// DismissAfter is how long the presentation layer keeps a notice on screen.
	DismissAfter = 5 * time.Second

	MessageTryAgain = "Error booking appointment. Please try again."
	MessageNetwork  = "We couldn't reach the booking service. Check your connection and try again."
)

type Status int

const (
	Idle Status = iota
	Pending
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is the one message surfaced for an attempt.
type Notice struct {
	Kind         NoticeKind
	Message      string
	DismissAfter time.Duration
}

// State is a snapshot of a form's submission lifecycle.
type State struct {
	Status Status
	// Booking is the confirmed record when Status is Succeeded.
	Booking *model.Request
	// Reason is the failure message when Status is Failed.
	Reason string
	// Err classifies the last failure: *validator.FormError, *RejectedError or *TransportError.
	Err    error
	Notice Notice
}

// RejectedError is an explicit refusal by the booking service. Message may be empty.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("booking rejected with status %d", e.StatusCode)
	}

	return e.Message
}

// TransportError means the booking service could not be reached or its answer could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("booking service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// failureReason maps a remote error to the message shown to the user.
func failureReason(err error) (string, error) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		if rejected.Message != "" {
			return rejected.Message, rejected
		}

		return MessageTryAgain, rejected
	}

	var transport *TransportError
	if errors.As(err, &transport) {
		return MessageNetwork, transport
	}

	return MessageNetwork, &TransportError{Err: err}
}

func validationState(err error) State {
	var formErr *validator.FormError
	if !errors.As(err, &formErr) {
		formErr = &validator.FormError{Message: err.Error()}
	}

	return State{
		Status: Idle,
		Err:    formErr,
		Notice: Notice{Kind: NoticeError, Message: formErr.Message, DismissAfter: DismissAfter},
	}
}
