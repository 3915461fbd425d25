/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate oapi-codegen --config=openapi.cfg.yaml ../../../../docs/v1/openapi.yaml
//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package jal -source=controller.go -mock_names jalRegistry=MockJALRegistry

package jal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/zcred/vcs/pkg/jal"
	"github.com/zcred/vcs/pkg/restapi/resterr"
	"github.com/zcred/vcs/pkg/restapi/v1/mw"
	"github.com/zcred/vcs/pkg/restapi/v1/util"
	"github.com/zcred/vcs/pkg/storage"
)

const (
	programField = "program"
	jalIDField   = "jalId"
)

var _ ServerInterface = (*Controller)(nil) // make sure Controller implements ServerInterface

type jalRegistry interface {
	Register(ctx context.Context, program json.RawMessage, comment string) (*jal.Entry, error)
	Get(ctx context.Context, id string) (*jal.Entry, error)
}

// Controller for the JAL program API.
type Controller struct {
	registry jalRegistry
}

// NewController creates a new controller for the JAL program API.
func NewController(registry jalRegistry) *Controller {
	return &Controller{registry: registry}
}

// RegisterHandlersWithAPIKey registers the JAL routes. Registering a program requires apiKey.
func RegisterHandlersWithAPIKey(router EchoRouter, si ServerInterface, apiKey string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST("/api/v1/jal", wrapper.PostJal, mw.APIKeyAuth(apiKey))
	router.GET("/api/v1/jal/:jalId", wrapper.GetJal)
}

// PostJal registers a program. Registering a known program returns its id.
// POST /api/v1/jal.
func (c *Controller) PostJal(ctx echo.Context) error {
	var body PostJalJSONRequestBody

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if len(body.Program) == 0 {
		return resterr.NewValidationError(resterr.InvalidValue, programField, errors.New("program is required"))
	}

	program, err := json.Marshal(body.Program)
	if err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, programField, err)
	}

	entry, err := c.registry.Register(ctx.Request().Context(), program, lo.FromPtr(body.Comment))
	if err != nil {
		if errors.Is(err, jal.ErrInvalidProgram) {
			return resterr.NewValidationError(resterr.InvalidValue, programField, err)
		}

		return resterr.NewSystemError(resterr.JALRegistryComponent, "register", err)
	}

	return util.WriteOutput(ctx)(&RegisterJALResponse{Id: entry.ID}, nil)
}

// GetJal returns a registered program.
// GET /api/v1/jal/{jalId}.
func (c *Controller) GetJal(ctx echo.Context, jalID string) error {
	entry, err := c.registry.Get(ctx.Request().Context(), jalID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return resterr.NewValidationError(resterr.DoesntExist, jalIDField,
				fmt.Errorf("jal program %s not found", jalID))
		}

		return resterr.NewSystemError(resterr.JALRegistryComponent, "get", err)
	}

	var program map[string]interface{}

	if err = json.Unmarshal(entry.Program, &program); err != nil {
		return resterr.NewSystemError(resterr.JALRegistryComponent, "decode-program", err)
	}

	resp := &JALEntry{
		Id:        entry.ID,
		Program:   program,
		CreatedAt: entry.CreatedAt,
	}

	if entry.Comment != "" {
		resp.Comment = lo.ToPtr(entry.Comment)
	}

	return util.WriteOutput(ctx)(resp, nil)
}
