package llmstxt

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be mapped onto user-visible behavior: EINVALID and
// ENOTFOUND abort a run when they concern configuration, while per-URL
// errors are collected and reported without unwinding the crawl.
const (
	EINVALID     = "invalid"     // validation or malformed input
	ENOTFOUND    = "not_found"   // entity (or remote page) does not exist
	EUNAVAILABLE = "unavailable" // remote system returned a failure
	EINTERNAL    = "internal"    // unexpected internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("llmstxt error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
