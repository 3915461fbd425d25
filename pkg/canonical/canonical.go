/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package canonical produces a deterministic JSON encoding: object keys sorted at every depth,
// no insignificant whitespace, numbers kept as written and no HTML escaping. Strings are written
// as raw UTF-8; only the characters JSON requires are escaped. Two values that are semantically
// equal JSON documents always encode to the same bytes.
package canonical

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("input is not valid UTF-8")

// Marshal encodes v canonically. Go strings holding invalid UTF-8 are coerced to U+FFFD by
// encoding/json before canonicalization.
func Marshal(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	return Transform(raw)
}

// Transform re-encodes a JSON document canonically. Input that is not valid UTF-8 is rejected.
func Transform(raw []byte) ([]byte, error) {
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("decode: %w", errInvalidUTF8)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc interface{}

	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if dec.More() {
		return nil, fmt.Errorf("decode: unexpected data after top-level value")
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// maps are written with sorted keys
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return unescapeSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeSeparators writes U+2028 and U+2029 back as raw characters. encoding/json escapes
// them for embedding in JavaScript, which JSON itself does not require.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))

	for i := 0; i < len(b); i++ {
		if b[i] != '\\' {
			out = append(out, b[i])

			continue
		}

		if i+5 < len(b) && b[i+1] == 'u' && string(b[i+2:i+5]) == "202" && (b[i+5] == '8' || b[i+5] == '9') {
			out = utf8.AppendRune(out, rune(0x2028+int(b[i+5]-'8')))
			i += 5

			continue
		}

		// copy the escaped character so an escaped backslash is never read as an escape
		out = append(out, b[i])

		if i+1 < len(b) {
			i++
			out = append(out, b[i])
		}
	}

	return out
}

// MustMarshal is Marshal for values that are known to be encodable.
func MustMarshal(v interface{}) []byte {
	b, err := Marshal(v)
	if err != nil {
		panic(err)
	}

	return b
}
