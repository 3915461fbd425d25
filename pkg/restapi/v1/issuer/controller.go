/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate oapi-codegen --config=openapi.cfg.yaml ../../../../docs/v1/openapi.yaml
//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package issuer -source=controller.go -mock_names issuanceService=MockIssuanceService,issuerRegistry=MockIssuerRegistry,keySet=MockKeySet

package issuer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-jose/go-jose/v3"
	"github.com/labstack/echo/v4"

	"github.com/zcred/vcs/pkg/kyc"
	"github.com/zcred/vcs/pkg/restapi/resterr"
	"github.com/zcred/vcs/pkg/restapi/v1/util"
	"github.com/zcred/vcs/pkg/service/credential"
	"github.com/zcred/vcs/pkg/service/issuance"
)

const (
	maxWebhookBodySize = 1 << 20
	sessionIDField     = "sessionId"
	signatureField     = "signature"
	issuerIDField      = "issuerID"
)

var _ ServerInterface = (*Controller)(nil) // make sure Controller implements ServerInterface

type issuanceService interface {
	Challenge(ctx context.Context, issuerID string, req *issuance.ChallengeRequest) (*issuance.ChallengeResponse, error)
	HandleWebhook(ctx context.Context, issuerID string, req *kyc.WebhookRequest) error
	CanIssue(ctx context.Context, issuerID, sessionID string) (bool, error)
	Issue(ctx context.Context, issuerID, sessionID, signature string) (*credential.Credential, error)
}

type issuerRegistry interface {
	GetIssuer(id string) (*issuance.Issuer, bool)
}

type keySet interface {
	JWKS() jose.JSONWebKeySet
}

type Config struct {
	IssuanceService issuanceService
	Issuers         issuerRegistry
	KeySet          keySet
}

// Controller for the issuance API.
type Controller struct {
	issuanceService issuanceService
	issuers         issuerRegistry
	keySet          keySet
}

// NewController creates a new controller for the issuance API.
func NewController(config *Config) *Controller {
	return &Controller{
		issuanceService: config.IssuanceService,
		issuers:         config.Issuers,
		keySet:          config.KeySet,
	}
}

// PostChallenge starts an issuance.
// POST /api/v1/issuers/{issuerID}/challenge.
func (c *Controller) PostChallenge(ctx echo.Context, issuerID string) error {
	var body issuance.ChallengeRequest

	if err := ctx.Bind(&body); err != nil {
		return resterr.NewIssuerError(resterr.BadChallengeRequest, err)
	}

	resp, err := c.issuanceService.Challenge(ctx.Request().Context(), issuerID, &body)
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(&ChallengeResponse{
		SessionId: resp.SessionID,
		VerifyURL: resp.VerifyURL,
		Message:   resp.Message,
	}, nil)
}

// GetCanIssue reports whether the KYC verdict of the session allows issuing.
// GET /api/v1/issuers/{issuerID}/can-issue.
func (c *Controller) GetCanIssue(ctx echo.Context, issuerID string, params GetCanIssueParams) error {
	return util.WriteOutput(ctx)(c.canIssue(ctx.Request().Context(), issuerID, params.SessionId))
}

// PostCanIssue is GetCanIssue with the session id in the body.
// POST /api/v1/issuers/{issuerID}/can-issue.
func (c *Controller) PostCanIssue(ctx echo.Context, issuerID string) error {
	var body PostCanIssueJSONRequestBody

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.canIssue(ctx.Request().Context(), issuerID, body.SessionId))
}

func (c *Controller) canIssue(ctx context.Context, issuerID, sessionID string) (*CanIssueResponse, error) {
	if sessionID == "" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, sessionIDField,
			errors.New("session id is required"))
	}

	ok, err := c.issuanceService.CanIssue(ctx, issuerID, sessionID)
	if err != nil {
		return nil, err
	}

	return &CanIssueResponse{CanIssue: ok}, nil
}

// PostIssue exchanges the signed challenge for a protected credential.
// POST /api/v1/issuers/{issuerID}/issue.
func (c *Controller) PostIssue(ctx echo.Context, issuerID string) error {
	var body PostIssueJSONRequestBody

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.SessionId == "" {
		return resterr.NewValidationError(resterr.InvalidValue, sessionIDField,
			errors.New("session id is required"))
	}

	if body.Signature == "" {
		return resterr.NewIssuerError(resterr.BadSignature, errors.New("signature is required"))
	}

	return util.WriteOutput(ctx)(
		c.issuanceService.Issue(ctx.Request().Context(), issuerID, body.SessionId, body.Signature))
}

// PostWebhook passes the KYC provider callback on as is. The provider authenticates the raw body.
// POST /api/v1/issuers/{issuerID}/webhook.
func (c *Controller) PostWebhook(ctx echo.Context, issuerID string) error {
	req := ctx.Request()

	body, err := io.ReadAll(io.LimitReader(req.Body, maxWebhookBodySize))
	if err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "requestBody", err)
	}

	err = c.issuanceService.HandleWebhook(req.Context(), issuerID, &kyc.WebhookRequest{
		Header: req.Header.Clone(),
		Body:   body,
	})
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

// GetIssuerJwk returns the key set credentials of the issuer are protected with.
// GET /api/v1/issuers/{issuerID}/jwk.json.
func (c *Controller) GetIssuerJwk(ctx echo.Context, issuerID string) error {
	if _, ok := c.issuers.GetIssuer(issuerID); !ok {
		return resterr.NewValidationError(resterr.DoesntExist, issuerIDField,
			fmt.Errorf("issuer %s not found", issuerID))
	}

	b, err := json.Marshal(c.keySet.JWKS())

	return util.WriteRawOutputWithContentType(ctx)(b, echo.MIMEApplicationJSON, err)
}
