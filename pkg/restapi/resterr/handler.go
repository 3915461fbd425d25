/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zcred/vcs/internal/pkg/log"
)

var logger = log.New("rest-err")

type httpCodeMsg interface {
	HTTPCodeMsg() (int, interface{})
}

// HTTPErrorHandler renders errors returned by handlers. Causes of 5xx errors are logged, not sent.
func HTTPErrorHandler(err error, c echo.Context) {
	code, message := processError(err)

	if code >= http.StatusInternalServerError {
		logger.Error("request failed", log.WithURL(c.Request().RequestURI), log.WithHTTPStatus(code),
			log.WithError(err))
	} else {
		logger.Debug("request rejected", log.WithURL(c.Request().RequestURI), log.WithHTTPStatus(code),
			log.WithError(err))
	}

	sendResponse(c, code, message)
}

func sendResponse(c echo.Context, code int, message interface{}) {
	if c.Response().Committed {
		return
	}

	var err error

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}

	if err != nil {
		logger.Error("write http response", log.WithError(err))
	}
}

func processError(err error) (int, interface{}) {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		message := echoErr.Message
		if echoErr.Internal != nil {
			message = echoErr.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return echoErr.Code, message
	}

	var coded httpCodeMsg
	if errors.As(err, &coded) {
		return coded.HTTPCodeMsg()
	}

	return http.StatusInternalServerError, map[string]interface{}{
		"code":    "generic-error",
		"message": http.StatusText(http.StatusInternalServerError),
	}
}
