// Package apierr translates host application call codes into Go errors.
package apierr

import (
	"errors"
	"fmt"
)

// Code identifies the failure class of an Error.
type Code string

const (
	// CallFailed indicates the host application returned a nonzero call code
	CallFailed Code = "CALL_FAILED"
	// ReservedName indicates an attempt to rename or delete a reserved entity
	ReservedName Code = "RESERVED_NAME"
	// Unsupported indicates the connected host version lacks the requested feature
	Unsupported Code = "UNSUPPORTED"
	// MalformedResult indicates the host returned arrays that do not match
	// their reported count, or an enumeration value the library does not know
	MalformedResult Code = "MALFORMED_RESULT"
	// InvalidArgument indicates a caller-supplied value was rejected before
	// reaching the host application
	InvalidArgument Code = "INVALID_ARGUMENT"
)

// Error is returned by every facade operation that fails.
type Error struct {
	Code     Code
	Op       string // facade operation, e.g. "CoordSys.Delete"
	Name     string // entity the operation targeted, if any
	CallCode int    // host call code when Code is CallFailed
	Message  string
	cause    error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Op)
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if e.Code == CallFailed {
		msg += fmt.Sprintf(": call code %d", e.CallCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same Code, so callers can write
// errors.Is(err, apierr.ErrReservedName).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrCallFailed      = &Error{Code: CallFailed}
	ErrReservedName    = &Error{Code: ReservedName}
	ErrUnsupported     = &Error{Code: Unsupported}
	ErrMalformedResult = &Error{Code: MalformedResult}
	ErrInvalidArgument = &Error{Code: InvalidArgument}
)

// Check converts a host call code into an error. Zero means success.
func Check(op string, ret int) error {
	return CheckName(op, "", ret)
}

// CheckName is Check with the targeted entity name attached.
func CheckName(op, name string, ret int) error {
	if ret == 0 {
		return nil
	}
	return &Error{Code: CallFailed, Op: op, Name: name, CallCode: ret}
}

// Reserved reports that name is reserved by the host application for kind.
func Reserved(op, kind, name string) error {
	return &Error{
		Code:    ReservedName,
		Op:      op,
		Name:    name,
		Message: fmt.Sprintf("%s %q is reserved by the host application", kind, name),
	}
}

// Unsupportedf reports a feature missing from the connected host version.
func Unsupportedf(op, format string, args ...any) error {
	return &Error{Code: Unsupported, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Malformed reports an inconsistent host response.
func Malformed(op, format string, args ...any) error {
	return &Error{Code: MalformedResult, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Invalid reports a rejected caller argument.
func Invalid(op, format string, args ...any) error {
	return &Error{Code: InvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches cause to a new error of the given code.
func Wrap(code Code, op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Code: code, Op: op, cause: cause}
}

// CallCodeOf returns the host call code carried by err, if any.
func CallCodeOf(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Code == CallFailed {
		return e.CallCode, true
	}
	return 0, false
}
