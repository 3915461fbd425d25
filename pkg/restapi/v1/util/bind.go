/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zcred/vcs/pkg/restapi/resterr"
)

var errEmptyBody = errors.New("request body is empty")

// ReadBody decodes the JSON request body into body. Decoding failures are
// reported as invalid-value errors on the "requestBody" field.
func ReadBody(ctx echo.Context, body interface{}) error {
	if ctx.Request().ContentLength == 0 {
		return resterr.NewValidationError(resterr.InvalidValue, "requestBody", errEmptyBody)
	}

	if err := ctx.Bind(body); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "requestBody", err)
	}

	return nil
}

// WriteOutput returns a writer for the (output, err) pair of a service call.
func WriteOutput(ctx echo.Context) func(output interface{}, err error) error {
	return WriteOutputWithCode(http.StatusOK, ctx)
}

func WriteOutputWithCode(code int, ctx echo.Context) func(output interface{}, err error) error {
	return func(output interface{}, err error) error {
		if err != nil {
			return err
		}

		return ctx.JSON(code, output)
	}
}

// WriteRawOutputWithContentType writes already encoded output, e.g. a JWK set.
func WriteRawOutputWithContentType(ctx echo.Context) func(output []byte, ct string, err error) error {
	return func(output []byte, ct string, err error) error {
		if err != nil {
			return err
		}

		return ctx.Blob(http.StatusOK, ct, output)
	}
}
