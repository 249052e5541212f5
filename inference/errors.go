package inference

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindNone Kind = iota
	ModelUnavailable
	RejectedInput
	InternalError
)

func (k Kind) String() string {
	switch k {
	case ModelUnavailable:
		return "ModelUnavailable"
	case RejectedInput:
		return "RejectedInput"
	case InternalError:
		return "InternalError"
	default:
		return "None"
	}
}

type Reason string

const (
	ReasonMissingField  Reason = "missing field"
	ReasonInvalidNumber Reason = "invalid numeric value"
)

// User-facing messages. Nothing more specific is ever rendered.
const (
	MessageModelUnavailable = "System Error: AI Model missing."
	MessageRejectedInput    = "Input Error: Please enter valid numeric values."
	MessageInternalError    = "An error occurred. Please try again."
)

var ErrModelUnavailable = &Error{Kind: ModelUnavailable}

type Error struct {
	Kind   Kind
	Reason Reason
	Field  string
	Cause  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause)
	}
	return msg
}

// UserMessage is the text shown in place of a result.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case ModelUnavailable:
		return MessageModelUnavailable
	case RejectedInput:
		return MessageRejectedInput
	default:
		return MessageInternalError
	}
}

// KindOf reports the failure kind of err, or KindNone for nil. Errors not
// produced by this package count as InternalError.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return InternalError
}

func internalError(cause error) *Error {
	return &Error{Kind: InternalError, Cause: cause}
}
