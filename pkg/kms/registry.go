/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	awssvc "github.com/zcred/vcs/pkg/kms/aws"
	"github.com/zcred/vcs/pkg/kms/signer"
)

type Registry struct {
	defaultCfg *Config
	metrics    metricsProvider
}

func NewRegistry(defaultCfg *Config, metrics metricsProvider) *Registry {
	return &Registry{
		defaultCfg: defaultCfg,
		metrics:    metrics,
	}
}

// GetSigner returns the JWS signer for config, or for the default config when config is nil.
func (r *Registry) GetSigner(ctx context.Context, config *Config) (*signer.Signer, error) {
	if config == nil {
		config = r.defaultCfg
	}

	if config == nil {
		return nil, fmt.Errorf("kms config not set")
	}

	switch config.KMSType {
	case Local:
		return signer.NewLocalFromSeed(config.Seed, config.KeyID)
	case AWS:
		svc, err := r.awsService(ctx, config)
		if err != nil {
			return nil, err
		}

		return signer.NewRemote(ctx, svc, config.KeyID)
	default:
		return nil, fmt.Errorf("unsupported kms type %q", config.KMSType)
	}
}

func (r *Registry) awsService(ctx context.Context, config *Config) (*awssvc.Service, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error

	if config.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(config.Region))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var opts []awssvc.Opts

	if config.Endpoint != "" {
		opts = append(opts, awssvc.WithEndpoint(config.Endpoint))
	}

	if r.metrics != nil {
		opts = append(opts, awssvc.WithMetrics(r.metrics))
	}

	return awssvc.New(&awsConfig, config.KeyURI, opts...)
}
