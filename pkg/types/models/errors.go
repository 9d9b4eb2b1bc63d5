package model

import (
	"errors"
	"fmt"
)

// ErrorType classifies failures surfaced to callers.
type ErrorType string

const (
	ErrorTypeMalformedReply ErrorType = "malformed_reply"
	ErrorTypePipeline       ErrorType = "pipeline"
	ErrorTypeConfig         ErrorType = "config"
	ErrorTypeValidation     ErrorType = "validation"
	ErrorTypeNotImplemented ErrorType = "not_implemented"
)

// DomainError carries a caller-safe message and the underlying cause.
// Error() never includes the cause; use Unwrap or Cause for logging.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Cause returns the wrapped error text, or "" when there is none.
func (e *DomainError) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// MalformedReplyError reports an inference reply that is not the expected JSON object.
func MalformedReplyError(message string, err error) *DomainError {
	return NewError(ErrorTypeMalformedReply, message, err)
}

// PipelineError reports any other failure while talking to the inference service.
func PipelineError(message string, err error) *DomainError {
	return NewError(ErrorTypePipeline, message, err)
}

func ConfigError(message string, err error) *DomainError {
	return NewError(ErrorTypeConfig, message, err)
}

func ValidationError(message string, err error) *DomainError {
	return NewError(ErrorTypeValidation, message, err)
}

func NotImplementedError(message string) *DomainError {
	return NewError(ErrorTypeNotImplemented, message, nil)
}

// ErrorTypeOf returns the DomainError type found in err's chain, or "" if none.
func ErrorTypeOf(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type
	}
	return ""
}

func IsMalformedReply(err error) bool {
	return ErrorTypeOf(err) == ErrorTypeMalformedReply
}

func IsPipelineError(err error) bool {
	return ErrorTypeOf(err) == ErrorTypePipeline
}
