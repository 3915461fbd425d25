/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package verification . Service

package verification

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zcred/vcs/pkg/observability/tracing/attributeutil"
	"github.com/zcred/vcs/pkg/service/verification"
)

type Service verification.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) InitSession(ctx context.Context, jalID, clientJWS string,
	req *verification.InitSessionRequest) (*verification.InitSessionResponse, error) {
	ctx, span := w.tracer.Start(ctx, "verification.InitSession")
	defer span.End()

	span.SetAttributes(attribute.String("jal_id", jalID))
	span.SetAttributes(attributeutil.JSON("init_request", req))

	resp, err := w.svc.InitSession(ctx, jalID, clientJWS, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("session_id", resp.SessionID))

	return resp, nil
}

func (w *Wrapper) GetProposal(ctx context.Context, jalID, sessionID string) (*verification.Proposal, error) {
	ctx, span := w.tracer.Start(ctx, "verification.GetProposal")
	defer span.End()

	span.SetAttributes(attribute.String("jal_id", jalID))
	span.SetAttributes(attribute.String("session_id", sessionID))

	proposal, err := w.svc.GetProposal(ctx, jalID, sessionID)
	if err != nil {
		return nil, err
	}

	return proposal, nil
}

func (w *Wrapper) Complete(ctx context.Context, jalID, sessionID, accessToken string,
	req *verification.CompleteRequest) (*verification.CompleteResponse, error) {
	ctx, span := w.tracer.Start(ctx, "verification.Complete")
	defer span.End()

	span.SetAttributes(attribute.String("jal_id", jalID))
	span.SetAttributes(attribute.String("session_id", sessionID))
	span.SetAttributes(attributeutil.JSON("complete_request", req, "provingResult.signature", "powToken"))

	resp, err := w.svc.Complete(ctx, jalID, sessionID, accessToken, req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
