package exceptions

import (
	"backoffice-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type ErrorKind string

const (
	KindAuth       ErrorKind = "AuthError"
	KindValidation ErrorKind = "ValidationError"
	KindNotFound   ErrorKind = "NotFoundError"
	KindInternal   ErrorKind = "InternalError"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CustomError struct {
	StatusCode    int
	ClientMessage string
	DevMessage    string
	Details       []FieldError
	Location      Location
	Err           error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Kind classifies the error by the status code it will be answered with.
func (e *CustomError) Kind() ErrorKind {
	switch e.StatusCode {
	case constvars.StatusUnauthorized:
		return KindAuth
	case constvars.StatusBadRequest:
		return KindValidation
	case constvars.StatusNotFound:
		return KindNotFound
	default:
		return KindInternal
	}
}

// KindOf returns InternalError for anything that is not a *CustomError.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind()
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
		Err:           err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customErr
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
