/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package file

const profilesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["issuers"],
  "properties": {
    "issuers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["issuer"],
        "properties": {
          "issuer": {
            "type": "object",
            "required": ["id", "uri", "subjectTypes", "kyc", "proofTypes"],
            "properties": {
              "id": {"type": "string", "minLength": 1},
              "name": {"type": "string"},
              "uri": {"type": "string", "minLength": 1},
              "definitionRef": {"type": "string"},
              "active": {"type": "boolean"},
              "subjectTypes": {
                "type": "array",
                "minItems": 1,
                "items": {"enum": ["ethereum:address", "solana:publickey", "mina:publickey"]}
              },
              "kyc": {
                "type": "object",
                "required": ["name", "initURL", "webhookSecret", "parser"],
                "properties": {
                  "name": {"type": "string", "minLength": 1},
                  "initURL": {"type": "string", "minLength": 1},
                  "apiKey": {"type": "string"},
                  "webhookSecret": {"type": "string", "minLength": 1},
                  "tolerance": {"type": "integer", "minimum": 0},
                  "parser": {"enum": ["jsonapi", "flat", "mrz"]},
                  "mapping": {"type": "object"}
                }
              },
              "mapper": {"type": "string"},
              "proofTypes": {
                "type": "array",
                "minItems": 1,
                "items": {"type": "string", "minLength": 1}
              },
              "aci": {"type": "boolean"}
            }
          }
        }
      }
    }
  }
}`
