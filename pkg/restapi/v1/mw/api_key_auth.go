/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/zcred/vcs/pkg/restapi/resterr"
)

const (
	header = "X-API-Key"
)

// APIKeyAuth returns a middleware that authenticates requests using the API key from X-API-Key header.
// It guards the administrative routes it is attached to.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKeyHeader := c.Request().Header.Get(header)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKeyHeader), []byte(apiKey)) != 1 {
				return resterr.NewUnauthorizedError(errors.New("invalid api key"))
			}

			return next(c)
		}
	}
}
