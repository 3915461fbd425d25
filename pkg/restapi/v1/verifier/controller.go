/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate oapi-codegen --config=openapi.cfg.yaml ../../../../docs/v1/openapi.yaml
//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package verifier -source=controller.go -mock_names verificationService=MockVerificationService,keySet=MockKeySet

package verifier

import (
	"context"
	"encoding/json"

	"github.com/go-jose/go-jose/v3"
	"github.com/labstack/echo/v4"

	"github.com/zcred/vcs/pkg/restapi/v1/util"
	"github.com/zcred/vcs/pkg/service/verification"
)

var _ ServerInterface = (*Controller)(nil) // make sure Controller implements ServerInterface

type verificationService interface {
	InitSession(ctx context.Context, jalID, clientJWS string,
		req *verification.InitSessionRequest) (*verification.InitSessionResponse, error)
	GetProposal(ctx context.Context, jalID, sessionID string) (*verification.Proposal, error)
	Complete(ctx context.Context, jalID, sessionID, accessToken string,
		req *verification.CompleteRequest) (*verification.CompleteResponse, error)
}

type keySet interface {
	JWKS() jose.JSONWebKeySet
}

type Config struct {
	VerificationService verificationService
	KeySet              keySet
}

// Controller for the verification API.
type Controller struct {
	verificationService verificationService
	keySet              keySet
}

// NewController creates a new controller for the verification API.
func NewController(config *Config) *Controller {
	return &Controller{
		verificationService: config.VerificationService,
		keySet:              config.KeySet,
	}
}

// PostSession starts a verification for the relying party that signed the bearer JWS.
// POST /verifier/{jalId}/session.
func (c *Controller) PostSession(ctx echo.Context, jalID string) error {
	clientJWS, err := util.GetBearerToken(ctx)
	if err != nil {
		return err
	}

	var body verification.InitSessionRequest

	if err = util.ReadBody(ctx, &body); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(
		c.verificationService.InitSession(ctx.Request().Context(), jalID, clientJWS, &body))
}

// GetProposal tells the credential holder what to prove.
// GET /verifier/{jalId}/proposal.
func (c *Controller) GetProposal(ctx echo.Context, jalID string, params GetProposalParams) error {
	return util.WriteOutput(ctx)(
		c.verificationService.GetProposal(ctx.Request().Context(), jalID, params.SessionId))
}

// PostVerify completes the session with a proving result or an exception.
// POST /verifier/{jalId}/verify.
func (c *Controller) PostVerify(ctx echo.Context, jalID string, params PostVerifyParams) error {
	accessToken, err := util.GetBearerToken(ctx)
	if err != nil {
		return err
	}

	var body verification.CompleteRequest

	if err = util.ReadBody(ctx, &body); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(
		c.verificationService.Complete(ctx.Request().Context(), jalID, params.SessionId, accessToken, &body))
}

// GetVerifierJwk returns the key set verification results are signed with.
// GET /verifier-jwk.json.
func (c *Controller) GetVerifierJwk(ctx echo.Context) error {
	b, err := json.Marshal(c.keySet.JWKS())

	return util.WriteRawOutputWithContentType(ctx)(b, echo.MIMEApplicationJSON, err)
}
