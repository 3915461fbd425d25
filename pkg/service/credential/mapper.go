/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/zcred/vcs/pkg/kyc"
)

// MapperPassport maps passport verifications.
const MapperPassport = "passport"

// ErrMissingAttribute is returned when the KYC result lacks a required attribute.
var ErrMissingAttribute = errors.New("missing kyc attribute")

// MapInput is the data a credential is built from.
type MapInput struct {
	Subject       SubjectID
	KYCAttributes map[string]interface{}
	ValidUntil    time.Time
	IssuanceDate  time.Time
}

// AttributeMapper turns a KYC result into credential attributes.
type AttributeMapper interface {
	Map(in *MapInput) (map[string]interface{}, error)
}

// NewMapper returns the mapper registered under name.
func NewMapper(name string) (AttributeMapper, error) {
	switch name {
	case MapperPassport, "":
		return &PassportMapper{}, nil
	default:
		return nil, fmt.Errorf("unsupported attribute mapper %q", name)
	}
}

// PassportMapper builds passport credential attributes. The raw document number never
// leaves the mapper: the credential only carries its sybil id.
type PassportMapper struct{}

// Map implements AttributeMapper.
func (m *PassportMapper) Map(in *MapInput) (map[string]interface{}, error) {
	raw, err := json.Marshal(in.KYCAttributes)
	if err != nil {
		return nil, fmt.Errorf("marshal kyc attributes: %w", err)
	}

	doc := gjson.ParseBytes(raw)

	get := func(path string) (string, error) {
		v := doc.Get(path).String()
		if v == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingAttribute, path)
		}

		return v, nil
	}

	docID, err := get(kyc.AttrDocumentID)
	if err != nil {
		return nil, err
	}

	country, err := get(kyc.AttrDocumentCountry)
	if err != nil {
		return nil, err
	}

	birth, err := get(kyc.AttrBirthDate)
	if err != nil {
		return nil, err
	}

	birthDate, err := parseDate(birth)
	if err != nil {
		return nil, fmt.Errorf("birth date: %w", err)
	}

	var expiry *time.Time

	if v := doc.Get(kyc.AttrDocumentExpiry).String(); v != "" {
		t, e := parseDate(v)
		if e != nil {
			return nil, fmt.Errorf("expiry date: %w", e)
		}

		expiry = &t
	}

	subject := map[string]interface{}{
		"id": map[string]interface{}{
			"type": string(in.Subject.Type),
			"key":  in.Subject.Key,
		},
		"birthDate": birthDate.Format(time.RFC3339),
	}

	for attr, key := range map[string]string{
		kyc.AttrFirstName: "firstName",
		kyc.AttrLastName:  "lastName",
		kyc.AttrGender:    "gender",
	} {
		if v := doc.Get(attr).String(); v != "" {
			subject[key] = v
		}
	}

	return map[string]interface{}{
		"type":         MapperPassport,
		"issuanceDate": in.IssuanceDate.UTC().Format(time.RFC3339),
		"validFrom":    in.IssuanceDate.UTC().Format(time.RFC3339),
		"validUntil":   ChooseValidUntil(in.ValidUntil, expiry).UTC().Format(time.RFC3339),
		"subject":      subject,
		"countryCode":  country,
		"document": map[string]interface{}{
			"sybilId": SybilID(Document{ID: docID, CountryCode: country, BirthDate: birthDate}),
		},
	}, nil
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}

	return time.Parse(time.DateOnly, v)
}
