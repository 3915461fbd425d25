/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kyc

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ParserKind selects the payload shape of a provider.
type ParserKind string

const (
	// ParserJSONAPI reads JSON:API documents with the inquiry under data.attributes.
	ParserJSONAPI ParserKind = "jsonapi"
	// ParserFlat reads flat event documents.
	ParserFlat ParserKind = "flat"
	// ParserMRZ reads OCR results carrying the passport machine readable zone.
	ParserMRZ ParserKind = "mrz"
)

// Attribute names produced by parsers. Dots denote nesting in WebhookResult.Attributes.
const (
	AttrDocumentID      = "document.id"
	AttrDocumentType    = "document.type"
	AttrDocumentCountry = "document.countryCode"
	AttrDocumentExpiry  = "document.expiryDate"
	AttrBirthDate       = "document.birthDate"
	AttrFirstName       = "person.firstName"
	AttrLastName        = "person.lastName"
	AttrGender          = "person.gender"
)

// Mapping locates WebhookResult fields in a provider payload with gjson paths.
//
// Declined statuses are terminal failures. Other statuses that are not approved are interim and
// yield ErrNotFinal; with no declined statuses configured every status that is not approved is a
// failure. MRZ points to the machine readable zone whose decoded fields fill the document
// attributes.
type Mapping struct {
	Reference  string            `json:"reference"`
	Status     string            `json:"status"`
	Approved   []string          `json:"approved"`
	Declined   []string          `json:"declined,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	MRZ        string            `json:"mrz,omitempty"`
}

// nolint: gochecknoglobals
var defaultMappings = map[ParserKind]Mapping{
	ParserJSONAPI: {
		Reference: "data.attributes.reference-id",
		Status:    "data.attributes.status",
		Approved:  []string{"approved", "completed"},
		Declined:  []string{"declined", "failed", "expired"},
		Attributes: map[string]string{
			AttrDocumentID:      "data.attributes.fields.identification-number.value",
			AttrDocumentType:    "data.attributes.fields.identification-class.value",
			AttrDocumentCountry: "data.attributes.fields.selected-country-code.value",
			AttrDocumentExpiry:  "data.attributes.fields.expiration-date.value",
			AttrBirthDate:       "data.attributes.fields.birthdate.value",
			AttrFirstName:       "data.attributes.fields.name-first.value",
			AttrLastName:        "data.attributes.fields.name-last.value",
		},
	},
	ParserFlat: {
		Reference: "reference",
		Status:    "event",
		Approved:  []string{"verification.accepted"},
		Declined:  []string{"verification.declined"},
		Attributes: map[string]string{
			AttrDocumentID:      "verification_data.document.document_number",
			AttrDocumentType:    "verification_data.document.selected_type.0",
			AttrDocumentCountry: "verification_data.document.country",
			AttrDocumentExpiry:  "verification_data.document.expiry_date",
			AttrBirthDate:       "verification_data.document.dob",
			AttrFirstName:       "verification_data.document.name.first_name",
			AttrLastName:        "verification_data.document.name.last_name",
			AttrGender:          "verification_data.document.gender",
		},
	},
	ParserMRZ: {
		Reference: "reference",
		Status:    "status",
		Approved:  []string{"SUCCESS"},
		Declined:  []string{"FAILED", "REJECTED"},
		MRZ:       "document.mrz",
	},
}

// GJSONParser is the configurable Parser.
type GJSONParser struct {
	mapping Mapping
}

// NewParser returns the parser for kind. Non empty fields of override replace the defaults.
func NewParser(kind ParserKind, override *Mapping) (*GJSONParser, error) {
	m, ok := defaultMappings[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported webhook parser %q", kind)
	}

	m.Attributes = lo.Assign(m.Attributes)

	if override != nil {
		m.Reference = lo.Ternary(override.Reference != "", override.Reference, m.Reference)
		m.Status = lo.Ternary(override.Status != "", override.Status, m.Status)
		m.MRZ = lo.Ternary(override.MRZ != "", override.MRZ, m.MRZ)

		if len(override.Approved) > 0 {
			m.Approved = override.Approved
		}

		if len(override.Declined) > 0 {
			m.Declined = override.Declined
		}

		m.Attributes = lo.Assign(m.Attributes, override.Attributes)
	}

	return &GJSONParser{mapping: m}, nil
}

// Parse implements Parser.
func (p *GJSONParser) Parse(body []byte) (*WebhookResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}

	doc := gjson.ParseBytes(body)

	ref := doc.Get(p.mapping.Reference).String()
	if ref == "" {
		return nil, fmt.Errorf("%w: no reference at %q", ErrMalformed, p.mapping.Reference)
	}

	status := doc.Get(p.mapping.Status).String()

	result := &WebhookResult{
		Reference: ref,
		Verified:  lo.Contains(p.mapping.Approved, status),
	}

	if !result.Verified && len(p.mapping.Declined) > 0 && !lo.Contains(p.mapping.Declined, status) {
		return nil, fmt.Errorf("%w: status %q", ErrNotFinal, status)
	}

	if !result.Verified {
		return result, nil
	}

	fields := map[string]string{}

	if p.mapping.MRZ != "" {
		mrz, err := ParseMRZ(doc.Get(p.mapping.MRZ).String())
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformed, err.Error())
		}

		fields = mrz.Attributes()
	}

	for name, path := range p.mapping.Attributes {
		if v := doc.Get(path); v.Exists() && v.String() != "" {
			fields[name] = v.String()
		}
	}

	attrs, err := nest(fields)
	if err != nil {
		return nil, err
	}

	result.Attributes = attrs

	return result, nil
}

// nest expands dotted names into nested objects.
func nest(fields map[string]string) (map[string]interface{}, error) {
	names := lo.Keys(fields)
	sort.Strings(names)

	doc := "{}"

	for _, name := range names {
		var err error

		doc, err = sjson.Set(doc, escapePath(name), fields[name])
		if err != nil {
			return nil, fmt.Errorf("set attribute %s: %w", name, err)
		}
	}

	var out map[string]interface{}

	if err := json.Unmarshal([]byte(doc), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func escapePath(name string) string {
	r := strings.NewReplacer("*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`)

	return r.Replace(name)
}
