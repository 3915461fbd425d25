/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package v1 holds the REST API description. Controllers are generated from it and requests are
// validated against it.
package v1

import (
	_ "embed"
)

//go:embed openapi.yaml
var OpenAPI []byte
