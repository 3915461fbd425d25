/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	versionEndpoint       = "/version"
	versionSystemEndpoint = "/version/system"
	logLevelsEndpoint     = "/loglevels"
	metricsEndpoint       = "/metrics"
	webhookEndpoint       = "/api/v1/issuers/:issuerID/webhook"
)

// OApiSkipper skips request validation for operational routes missing from the OpenAPI document and for
// KYC webhooks, whose payload shape belongs to the provider.
func OApiSkipper(c echo.Context) bool {
	switch c.Path() {
	case versionEndpoint, versionSystemEndpoint, logLevelsEndpoint, metricsEndpoint, readinessEndpoint,
		webhookEndpoint:
		return true
	}

	return echomw.DefaultSkipper(c)
}
