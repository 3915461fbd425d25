/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redactedValue = "[REDACTED]"

// JSON returns a span attribute holding value encoded as JSON. Every gjson path in
// redact that resolves inside the encoded value is replaced with a placeholder.
// A value that cannot be encoded yields an attribute with an empty value.
func JSON(key string, value interface{}, redact ...string) attribute.KeyValue {
	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{Key: attribute.Key(key)}
	}

	return attribute.String(key, string(redactPaths(b, redact)))
}

func redactPaths(doc []byte, paths []string) []byte {
	for _, p := range paths {
		if !gjson.GetBytes(doc, p).Exists() {
			continue
		}

		if out, err := sjson.SetBytes(doc, p, redactedValue); err == nil {
			doc = out
		}
	}

	return doc
}
