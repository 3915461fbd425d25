/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type timing struct {
	last  time.Duration
	total time.Duration
	runs  int64
}

func (t timing) mean() time.Duration {
	if t.runs == 0 {
		return 0
	}

	return t.total / time.Duration(t.runs)
}

// report records how long each backend check takes and renders the checker
// result with those timings attached.
type report struct {
	mu      sync.RWMutex
	timings map[string]timing
}

func newReport() *report {
	return &report{timings: map[string]timing{}}
}

func (r *report) observe(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.timings[name]
	t.last = elapsed
	t.total += elapsed
	t.runs++

	r.timings[name] = t
}

func (r *report) timing(name string) (timing, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.timings[name]

	return t, ok
}

func (r *report) interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			started := time.Now()
			defer func() { r.observe(name, time.Since(started)) }()

			return next(ctx, name, state)
		}
	}
}

type componentStatus struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

type statusBody struct {
	Status     health.AvailabilityStatus  `json:"status"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

// Write implements health.ResultWriter.
func (r *report) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error {
	body := statusBody{Status: result.Status}

	if len(result.Details) > 0 {
		body.Components = make(map[string]componentStatus, len(result.Details))
	}

	for name, res := range result.Details {
		c := componentStatus{CheckResult: res}

		if t, ok := r.timing(name); ok {
			c.LastResponseTime = t.last.String()
			c.AverageResponseTime = t.mean().String()
		}

		body.Components[name] = c
	}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal health status: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
