/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package issuance . Service

package issuance

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zcred/vcs/pkg/kyc"
	"github.com/zcred/vcs/pkg/observability/tracing/attributeutil"
	"github.com/zcred/vcs/pkg/service/credential"
	"github.com/zcred/vcs/pkg/service/issuance"
)

type Service issuance.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Challenge(ctx context.Context, issuerID string,
	req *issuance.ChallengeRequest) (*issuance.ChallengeResponse, error) {
	ctx, span := w.tracer.Start(ctx, "issuance.Challenge")
	defer span.End()

	span.SetAttributes(attribute.String("issuer_id", issuerID))
	span.SetAttributes(attributeutil.JSON("challenge_request", req))

	resp, err := w.svc.Challenge(ctx, issuerID, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("session_id", resp.SessionID))

	return resp, nil
}

func (w *Wrapper) HandleWebhook(ctx context.Context, issuerID string, req *kyc.WebhookRequest) error {
	ctx, span := w.tracer.Start(ctx, "issuance.HandleWebhook")
	defer span.End()

	span.SetAttributes(attribute.String("issuer_id", issuerID))
	span.SetAttributes(attribute.Int("body_size", len(req.Body)))

	return w.svc.HandleWebhook(ctx, issuerID, req)
}

func (w *Wrapper) CanIssue(ctx context.Context, issuerID, sessionID string) (bool, error) {
	ctx, span := w.tracer.Start(ctx, "issuance.CanIssue")
	defer span.End()

	span.SetAttributes(attribute.String("issuer_id", issuerID))
	span.SetAttributes(attribute.String("session_id", sessionID))

	ok, err := w.svc.CanIssue(ctx, issuerID, sessionID)
	if err != nil {
		return false, err
	}

	span.SetAttributes(attribute.Bool("can_issue", ok))

	return ok, nil
}

func (w *Wrapper) Issue(ctx context.Context, issuerID, sessionID, signature string) (*credential.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "issuance.Issue")
	defer span.End()

	span.SetAttributes(attribute.String("issuer_id", issuerID))
	span.SetAttributes(attribute.String("session_id", sessionID))

	cred, err := w.svc.Issue(ctx, issuerID, sessionID, signature)
	if err != nil {
		return nil, err
	}

	return cred, nil
}
