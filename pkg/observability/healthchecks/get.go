/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"

	"github.com/zcred/vcs/pkg/observability/health/mongo"
	"github.com/zcred/vcs/pkg/observability/health/redis"
)

const (
	checkTimeout  = 5 * time.Second
	cacheDuration = time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Config lists the backends to check. Nil backends are not checked.
type Config struct {
	Redis   pinger
	MongoDB pinger
}

func Get(config *Config) []health.Check {
	var checks []health.Check

	if config.Redis != nil {
		checks = append(checks, health.Check{
			Name:  "redis",
			Check: redis.New(config.Redis),
		})
	}

	if config.MongoDB != nil {
		checks = append(checks, health.Check{
			Name:  "mongodb",
			Check: mongo.New(config.MongoDB),
		})
	}

	return checks
}

// NewHandler returns the /healthcheck handler over checks.
func NewHandler(checks []health.Check) http.Handler {
	rep := newReport()

	opts := []health.CheckerOption{
		health.WithTimeout(checkTimeout),
		health.WithCacheDuration(cacheDuration),
		health.WithInterceptors(rep.interceptor()),
	}

	for _, c := range checks {
		opts = append(opts, health.WithCheck(c))
	}

	return health.NewHandler(health.NewChecker(opts...),
		health.WithResultWriter(rep))
}
