/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldSessionID    = "sessionId"
	FieldIssuerID     = "issuerId"
	FieldJalID        = "jalId"
	FieldIDType       = "idType"
	FieldReference    = "reference"
	FieldProofType    = "proofType"
	FieldHTTPStatus   = "httpStatus"
	FieldURL          = "url"
	FieldHostURL      = "hostURL"
	FieldDuration     = "duration"
	FieldTopic        = "topic"
	FieldEvent        = "event"
	FieldUserLogLevel = "userLogLevel"
	FieldStoreType    = "storeType"
	FieldCode         = "code"
	FieldProvider     = "provider"
	FieldService      = "service"
	FieldState        = "state"
	FieldTargetState  = "targetState"
)

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}

// WithError sets the error field.
func WithError(err error) zap.Field {
	return zap.Error(err)
}

// WithSessionID sets the session id field.
func WithSessionID(id string) zap.Field {
	return zap.String(FieldSessionID, id)
}

// WithIssuerID sets the issuer id field.
func WithIssuerID(id string) zap.Field {
	return zap.String(FieldIssuerID, id)
}

// WithJalID sets the JAL program id field.
func WithJalID(id string) zap.Field {
	return zap.String(FieldJalID, id)
}

// WithIDType sets the subject id type field.
func WithIDType(idType string) zap.Field {
	return zap.String(FieldIDType, idType)
}

// WithReference sets the KYC reference field.
func WithReference(ref string) zap.Field {
	return zap.String(FieldReference, ref)
}

// WithProofType sets the proof type field.
func WithProofType(proofType string) zap.Field {
	return zap.String(FieldProofType, proofType)
}

// WithHTTPStatus sets the http-status field.
func WithHTTPStatus(value int) zap.Field {
	return zap.Int(FieldHTTPStatus, value)
}

// WithURL sets the url field.
func WithURL(url string) zap.Field {
	return zap.String(FieldURL, url)
}

// WithHostURL sets the hostURL field.
func WithHostURL(hostURL string) zap.Field {
	return zap.String(FieldHostURL, hostURL)
}

// WithDuration sets the duration field.
func WithDuration(d time.Duration) zap.Field {
	return zap.Duration(FieldDuration, d)
}

// WithTopic sets the topic field.
func WithTopic(value string) zap.Field {
	return zap.String(FieldTopic, value)
}

// WithEvent sets the event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithUserLogLevel sets the user log level field.
func WithUserLogLevel(userLogLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, userLogLevel)
}

// WithStoreType sets the store type field.
func WithStoreType(storeType string) zap.Field {
	return zap.String(FieldStoreType, storeType)
}

// WithCode sets the protocol error code field.
func WithCode(code string) zap.Field {
	return zap.String(FieldCode, code)
}

// WithProvider sets the KYC provider field.
func WithProvider(name string) zap.Field {
	return zap.String(FieldProvider, name)
}

// WithService sets the service name field.
func WithService(name string) zap.Field {
	return zap.String(FieldService, name)
}

// WithState sets the current lifecycle state field.
func WithState(state string) zap.Field {
	return zap.String(FieldState, state)
}

// WithTargetState sets the requested lifecycle state field.
func WithTargetState(state string) zap.Field {
	return zap.String(FieldTargetState, state)
}
