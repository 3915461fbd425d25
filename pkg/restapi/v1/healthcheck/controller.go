/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Controller for health check API.
type Controller struct {
	checks http.Handler
}

// NewController returns a controller serving the aggregated backend checks.
func NewController(checks http.Handler) *Controller {
	return &Controller{checks: checks}
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	c.checks.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}
