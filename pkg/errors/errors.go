package errors

import (
	stdErrors "errors"
	"fmt"
)

// Code classifies the fatal, system-level failures a pipeline run can hit.
// Row-level data-quality failures are not errors; they travel through the
// pipeline as reason codes attached to rejected records.
type Code string

const (
	CodeInput    Code = "INPUT_ERROR"
	CodeSchema   Code = "SCHEMA_ERROR"
	CodeStorage  Code = "STORAGE_ERROR"
	CodeConfig   Code = "CONFIG_ERROR"
	CodeInternal Code = "INTERNAL_ERROR"
)

type Metadata struct {
	Stage     string
	Retryable bool
}

var metadataByCode = map[Code]Metadata{
	CodeInput: {
		Stage:     "read",
		Retryable: false,
	},
	CodeSchema: {
		Stage:     "migrate",
		Retryable: false,
	},
	CodeStorage: {
		Stage:     "load",
		Retryable: true,
	},
	CodeConfig: {
		Stage:     "boot",
		Retryable: false,
	},
	CodeInternal: {
		Stage:     "run",
		Retryable: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
