package cms

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeNetwork = "NETWORK_ERROR"
	CodeAuth    = "AUTH_ERROR"
	CodeSchema  = "SCHEMA_ERROR"
	CodeServer  = "SERVER_ERROR"
)

// Error is returned by every strict fetch. StatusCode is 0 when no response
// was received.
type Error struct {
	Code        string
	Message     string
	StatusCode  int
	ContentType string
	Cause       error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.ContentType != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.ContentType)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewNetworkError(contentType string, cause error) *Error {
	return &Error{Code: CodeNetwork, Message: "cms request failed", ContentType: contentType, Cause: cause}
}

func NewAuthError(message, contentType string, statusCode int) *Error {
	return &Error{Code: CodeAuth, Message: message, StatusCode: statusCode, ContentType: contentType}
}

func NewSchemaError(message, contentType string, statusCode int, cause error) *Error {
	return &Error{Code: CodeSchema, Message: message, StatusCode: statusCode, ContentType: contentType, Cause: cause}
}

func NewServerError(contentType string, statusCode int) *Error {
	return &Error{
		Code:        CodeServer,
		Message:     fmt.Sprintf("cms server error: %d", statusCode),
		StatusCode:  statusCode,
		ContentType: contentType,
	}
}

// Code returns the code of the first *Error in err's chain, or "".
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func IsNetwork(err error) bool { return Code(err) == CodeNetwork }
func IsAuth(err error) bool    { return Code(err) == CodeAuth }
func IsSchema(err error) bool  { return Code(err) == CodeSchema }
