/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fastjson"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/canonical"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/restapi/resterr"
	"github.com/zcred/vcs/pkg/service/credential"
	"github.com/zcred/vcs/pkg/sessionid"
	"github.com/zcred/vcs/pkg/signature"
)

var (
	publicInputSubjectID = []string{"credential", "attributes", "subject", "id"}
	publicInputNow       = []string{"context", "now"}
)

// Complete finishes the session with either a proof or an exception and returns the signed
// outcome for the relying party.
func (s *Service) Complete(ctx context.Context, jalID, sessionID, accessToken string,
	req *CompleteRequest) (*CompleteResponse, error) {
	st := time.Now()

	sess, err := s.session(ctx, jalID, sessionID)
	if err != nil {
		return nil, err
	}

	if accessToken == "" || !sessionid.Equal(s.tokens.FromReference(sess.ID), accessToken) {
		return nil, resterr.NewUnauthorizedError(errors.New("invalid access token"))
	}

	if (req.ProvingResult == nil) == (req.Exception == nil) {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "body",
			errors.New("exactly one of provingResult and exception is required"))
	}

	message, err := s.challenges.Get(ctx, challengeKeyPrefix+sess.ID)
	if err != nil {
		return nil, resterr.NewVerifierError(resterr.NoSession,
			fmt.Errorf("no challenge issued for session %s", sess.ID))
	}

	result := &Result{
		SessionID: sess.ID,
		JalID:     sess.JalID,
		ClientID:  sess.Client.ID,
		Subject:   sess.Subject,
	}

	eventType := spi.VerifierVerificationSucceeded

	if req.Exception != nil {
		if err = s.pow.Check(req.PoWToken, message); err != nil {
			return nil, resterr.NewVerifierError(resterr.BadPoW, err)
		}

		result.Status = StatusException
		result.Exception = req.Exception
		eventType = spi.VerifierExceptionReported
	} else {
		if err = s.verifyProof(ctx, sess, message, req.ProvingResult); err != nil {
			return nil, err
		}

		result.Status = StatusSuccess
		result.ProvingResult = req.ProvingResult
	}

	deleted, err := s.sessions.Delete(ctx, sess.ID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionStoreComponent, "delete-session", err)
	}

	// completed concurrently
	if !deleted {
		return nil, resterr.NewVerifierError(resterr.NoSession, fmt.Errorf("session %s not found", sess.ID))
	}

	result.ID = s.newID()
	result.CreatedAt = s.now().UTC()

	if err = s.results.Put(ctx, result); err != nil {
		s.restoreSession(ctx, sess)

		return nil, resterr.NewSystemError(resterr.ResultStoreComponent, "put-result", err)
	}

	if _, err = s.challenges.Delete(ctx, challengeKeyPrefix+sess.ID); err != nil {
		logger.Warn("delete challenge", log.WithSessionID(sess.ID), log.WithError(err))
	}

	resp, err := s.respond(sess, result)
	if err != nil {
		return nil, err
	}

	s.metrics.CompleteVerificationTime(time.Since(st))

	logger.Info("verification completed", log.WithJalID(jalID), log.WithSessionID(sess.ID),
		log.WithCode(string(result.Status)), log.WithDuration(time.Since(st)))

	s.sendEvent(ctx, eventType, sess, map[string]interface{}{"resultId": result.ID})

	return resp, nil
}

// restoreSession puts back a session claimed by Complete whose result could not be persisted,
// so the wallet can retry. The challenge is still held at this point.
func (s *Service) restoreSession(ctx context.Context, sess *ClientSession) {
	if _, err := s.sessions.SetIfAbsent(ctx, sess.ID, sess); err != nil {
		logger.Error("restore session", log.WithSessionID(sess.ID), log.WithError(err))
	}
}

func (s *Service) verifyProof(ctx context.Context, sess *ClientSession, message string, pr *ProvingResult) error {
	if err := s.checkPublicInput(sess, pr.PublicInput); err != nil {
		return resterr.NewVerifierError(resterr.InvalidProof, err)
	}

	if pr.Message != message {
		return resterr.NewVerifierError(resterr.InvalidProof, errors.New("message does not match challenge"))
	}

	ok, err := s.gate.Verify(ctx, sess.Subject.ID.Type, signature.Input{
		Signature: pr.Signature,
		PublicKey: sess.Subject.ID.Key,
		Message:   message,
		Options:   pr.SignatureOptions,
	})
	if err != nil {
		if errors.Is(err, signature.ErrInvalidKey) || errors.Is(err, signature.ErrInvalidOptions) ||
			errors.Is(err, signature.ErrUnsupportedIDType) {
			return resterr.NewVerifierError(resterr.BadSignature, err)
		}

		return resterr.NewSystemError(resterr.SignatureGateComponent, "verify", err)
	}

	if !ok {
		return resterr.NewVerifierError(resterr.BadSignature, errors.New("signature does not match challenge"))
	}

	entry, err := s.program(ctx, sess.JalID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(pr)
	if err != nil {
		return resterr.NewSystemError(resterr.VerificationSvcComponent, "marshal-proving-result", err)
	}

	verified, err := s.zk.Verify(ctx, entry.Program, raw)
	if err != nil {
		return resterr.NewSystemError(resterr.ZKVerifierComponent, "verify", err)
	}

	if !verified {
		return resterr.NewVerifierError(resterr.InvalidProof, errors.New("proof does not verify"))
	}

	return nil
}

// checkPublicInput binds the proof to the session subject and to the present.
func (s *Service) checkPublicInput(sess *ClientSession, publicInput json.RawMessage) error {
	var p fastjson.Parser

	v, err := p.ParseBytes(publicInput)
	if err != nil {
		return fmt.Errorf("malformed public input: %w", err)
	}

	id := v.Get(publicInputSubjectID...)
	if id == nil {
		return errors.New("public input has no subject id")
	}

	subject := credential.SubjectID{
		Type: signature.IDType(id.GetStringBytes("type")),
		Key:  string(id.GetStringBytes("key")),
	}

	if !subject.Equal(sess.Subject.ID) {
		return errors.New("public input subject does not match session subject")
	}

	now := v.Get(publicInputNow...)
	if now == nil {
		return nil
	}

	t, err := parseInstant(now)
	if err != nil {
		return err
	}

	if t.After(s.now()) {
		return errors.New("public input time is in the future")
	}

	return nil
}

// parseInstant accepts RFC 3339 strings and unix milliseconds.
func parseInstant(v *fastjson.Value) (time.Time, error) {
	switch v.Type() {
	case fastjson.TypeString:
		t, err := time.Parse(time.RFC3339, string(v.GetStringBytes()))
		if err != nil {
			return time.Time{}, fmt.Errorf("public input time: %w", err)
		}

		return t, nil
	case fastjson.TypeNumber:
		ms, err := v.Int64()
		if err != nil {
			return time.Time{}, fmt.Errorf("public input time: %w", err)
		}

		return time.UnixMilli(ms), nil
	default:
		return time.Time{}, fmt.Errorf("public input time has type %s", v.Type())
	}
}

func (s *Service) respond(sess *ClientSession, result *Result) (*CompleteResponse, error) {
	redirect, err := withQuery(sess.RedirectURL, url.Values{
		"status":    {string(result.Status)},
		"sessionId": {sess.ID},
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.VerificationSvcComponent, "build-redirect", err)
	}

	payload, err := canonical.Marshal(&CompletePayload{
		WebhookURL:  sess.WebhookURL,
		RedirectURL: redirect,
		SendBody: SendBody{
			Status:        result.Status,
			SessionID:     sess.ID,
			ResultID:      result.ID,
			ProvingResult: result.ProvingResult,
			Exception:     result.Exception,
		},
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.VerificationSvcComponent, "canonicalize-response", err)
	}

	jws, err := s.signer.Sign(payload)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.JWSSignerComponent, "sign", err)
	}

	return &CompleteResponse{JWS: jws}, nil
}

func newResultID() string {
	return uuid.NewString()
}
