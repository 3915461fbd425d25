/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package version_test -source=controller.go

package version

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Config holds the build version, the version of the deployment it runs in and
// the roles the process serves.
type Config struct {
	Version       string
	ServerVersion string
	Mode          string
}

type buildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion,omitempty"`
}

type systemInfo struct {
	Version string `json:"version"`
	Mode    string `json:"mode,omitempty"`
}

type Controller struct {
	build  buildInfo
	system systemInfo
}

// NewController registers GET /version and GET /version/system on router.
func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		build:  buildInfo{Version: cfg.Version, GoVersion: runtime.Version()},
		system: systemInfo{Version: cfg.ServerVersion, Mode: cfg.Mode},
	}

	router.GET("/version", c.Version)
	router.GET("/version/system", c.ServerVersion)

	return c
}

// Version reports the build of this binary.
func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.build)
}

// ServerVersion reports the deployment version and mode.
func (c *Controller) ServerVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.system)
}
