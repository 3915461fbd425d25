/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jal

const programSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["target", "credential", "commands"],
  "properties": {
    "target": {"type": "string", "minLength": 1},
    "credential": {"type": "object"},
    "private": {"type": "object"},
    "public": {"type": "object"},
    "options": {"type": "object"},
    "commands": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "minProperties": 1,
        "maxProperties": 1
      }
    }
  }
}`
