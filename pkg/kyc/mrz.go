/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kyc

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const td3LineLen = 44

// MRZ holds the fields of a TD3 (passport) machine readable zone.
type MRZ struct {
	DocumentType   string
	IssuingCountry string
	LastName       string
	FirstName      string
	DocumentNumber string
	Nationality    string
	BirthDate      time.Time
	Sex            string
	ExpiryDate     time.Time
}

// ParseMRZ decodes a two line TD3 zone. Lines may be separated by a newline or concatenated.
func ParseMRZ(raw string) (*MRZ, error) {
	raw = strings.ToUpper(strings.Join(strings.Fields(raw), ""))

	if len(raw) != 2*td3LineLen {
		return nil, fmt.Errorf("mrz: expected %d characters, got %d", 2*td3LineLen, len(raw))
	}

	l1, l2 := raw[:td3LineLen], raw[td3LineLen:]

	if l1[0] != 'P' {
		return nil, errors.New("mrz: not a passport")
	}

	number := l2[0:9]
	if checkDigit(number) != l2[9] {
		return nil, errors.New("mrz: document number check digit")
	}

	if checkDigit(l2[13:19]) != l2[19] || checkDigit(l2[21:27]) != l2[27] {
		return nil, errors.New("mrz: date check digit")
	}

	expiry, err := time.Parse("060102", l2[21:27])
	if err != nil {
		return nil, fmt.Errorf("mrz: expiry date: %w", err)
	}

	birth, err := time.Parse("060102", l2[13:19])
	if err != nil {
		return nil, fmt.Errorf("mrz: birth date: %w", err)
	}

	// two digit years: a birth date cannot be in the future
	if birth.After(time.Now()) {
		birth = birth.AddDate(-100, 0, 0)
	}

	last, first, _ := strings.Cut(l1[5:], "<<")

	return &MRZ{
		DocumentType:   strings.TrimRight(l1[0:2], "<"),
		IssuingCountry: strings.TrimRight(l1[2:5], "<"),
		LastName:       filler(last),
		FirstName:      filler(first),
		DocumentNumber: strings.TrimRight(number, "<"),
		Nationality:    strings.TrimRight(l2[10:13], "<"),
		BirthDate:      birth,
		Sex:            strings.TrimRight(l2[20:21], "<"),
		ExpiryDate:     expiry,
	}, nil
}

// Attributes returns the parser attribute set.
func (m *MRZ) Attributes() map[string]string {
	attrs := map[string]string{
		AttrDocumentID:      m.DocumentNumber,
		AttrDocumentType:    "passport",
		AttrDocumentCountry: m.IssuingCountry,
		AttrDocumentExpiry:  m.ExpiryDate.Format(time.DateOnly),
		AttrBirthDate:       m.BirthDate.Format(time.DateOnly),
		AttrFirstName:       m.FirstName,
		AttrLastName:        m.LastName,
	}

	if m.Sex != "" {
		attrs[AttrGender] = m.Sex
	}

	return attrs
}

func filler(s string) string {
	return strings.TrimSpace(strings.Join(strings.FieldsFunc(s, func(r rune) bool { return r == '<' }), " "))
}

// checkDigit is the ICAO 9303 7-3-1 checksum.
func checkDigit(s string) byte {
	weights := [3]int{7, 3, 1}
	sum := 0

	for i := 0; i < len(s); i++ {
		c := s[i]

		var v int

		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'A' && c <= 'Z':
			v = int(c-'A') + 10
		}

		sum += v * weights[i%3]
	}

	return byte('0' + sum%10)
}
