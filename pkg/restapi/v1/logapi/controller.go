/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package logapi_test -source=controller.go

package logapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/restapi/resterr"
)

const (
	path = "/loglevels"

	maxSpecSize = 4 << 10
)

var logger = log.New("logapi")

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Controller reads and changes module log levels at runtime. The spec format is
// the one accepted by log.SetSpec, e.g. "issuance=DEBUG:INFO".
type Controller struct{}

func NewController(router router, m ...echo.MiddlewareFunc) *Controller {
	c := &Controller{}

	router.GET(path, c.GetLogLevels, m...)
	router.POST(path, c.PostLogLevels, m...)

	return c
}

// GetLogLevels handles GET /loglevels.
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.String(http.StatusOK, log.GetSpec())
}

// PostLogLevels handles POST /loglevels.
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	b, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxSpecSize))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	spec := strings.TrimSpace(string(b))

	if err = log.SetSpec(spec); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "requestBody", err)
	}

	logger.Info("log levels modified", log.WithUserLogLevel(spec))

	return ctx.NoContent(http.StatusOK)
}
