/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is a generic REST error code.
type ErrorCode string

const (
	SystemError     ErrorCode = "system-error"
	Unauthorized    ErrorCode = "unauthorized"
	InvalidValue    ErrorCode = "invalid-value"
	AlreadyExist    ErrorCode = "already-exist"
	DoesntExist     ErrorCode = "doesnt-exist"
	ConditionNotMet ErrorCode = "condition-not-met"
	BadRequest      ErrorCode = "bad-request"
	Forbidden       ErrorCode = "forbidden"
)

// Name returns the wire name of the code.
func (c ErrorCode) Name() string {
	return string(c)
}

func (c ErrorCode) httpStatus() int {
	switch c {
	case Unauthorized:
		return http.StatusUnauthorized
	case InvalidValue, BadRequest:
		return http.StatusBadRequest
	case AlreadyExist:
		return http.StatusConflict
	case DoesntExist:
		return http.StatusNotFound
	case ConditionNotMet:
		return http.StatusPreconditionFailed
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CustomError is a REST error with a code and either the offending value or the failing component.
type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	Component       Component
	FailedOperation string
	Err             error
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func (e *CustomError) Error() string {
	switch {
	case e.Code == SystemError:
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.FailedOperation, e.Err)
	case e.IncorrectValue != "":
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg returns the status and the response body. System errors never expose their cause.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	msg := fmt.Sprint(e.Err)
	if e.Code == SystemError {
		msg = http.StatusText(http.StatusInternalServerError)
	}

	body := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": msg,
	}

	if e.IncorrectValue != "" {
		body["incorrectValue"] = e.IncorrectValue
	}

	return e.Code.httpStatus(), body
}

// GetErrorDetails returns the message, code and component of the first CustomError in the chain.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return fmt.Sprint(customErr.Err), string(customErr.Code), customErr.Component
	}

	var protoErr *ProtocolError
	if errors.As(err, &protoErr) {
		return fmt.Sprint(protoErr.Err), string(protoErr.Code), ""
	}

	return err.Error(), "", ""
}
