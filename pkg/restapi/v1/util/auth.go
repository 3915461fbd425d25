/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zcred/vcs/pkg/restapi/resterr"
)

const bearerPrefix = "Bearer "

// GetBearerToken returns the token of the Authorization header.
func GetBearerToken(ctx echo.Context) (string, error) {
	authHeader := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", resterr.NewUnauthorizedError(errors.New("missing authorization"))
	}

	return strings.TrimSpace(authHeader[len(bearerPrefix):]), nil
}
