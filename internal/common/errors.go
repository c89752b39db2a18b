package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind is the closed failure taxonomy. Every error crossing a package
// boundary in this module is an *Error tagged with one of these kinds.
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION" // malformed input, rejected before side effects
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindTransient  ErrorKind = "TRANSIENT"  // timeout / connection failure, retryable
	KindProvider   ErrorKind = "PROVIDER"   // explicit error payload from the external service
	KindParse      ErrorKind = "PARSE"      // response that cannot map to the expected shape
	KindProjection ErrorKind = "PROJECTION" // failure folding a result into the application
)

// Error is the single tagged error variant for this module.
type Error struct {
	Kind    ErrorKind
	Message string
	Code    string // optional provider-supplied code
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Error constructors
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Transient(message string, cause error) *Error {
	return &Error{Kind: KindTransient, Message: message, Cause: cause}
}

func Provider(message, code string, cause error) *Error {
	return &Error{Kind: KindProvider, Message: message, Code: code, Cause: cause}
}

func Parse(message string, cause error) *Error {
	return &Error{Kind: KindParse, Message: message, Cause: cause}
}

func Projection(message string, cause error) *Error {
	return &Error{Kind: KindProjection, Message: message, Cause: cause}
}

// KindOf returns the kind of err, or "" for errors outside the taxonomy.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// ToStatusError maps an error to the gRPC status the service facade returns.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	switch KindOf(err) {
	case KindValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	case KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case KindTransient:
		return status.Error(codes.Unavailable, err.Error())
	case KindProvider, KindParse:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
