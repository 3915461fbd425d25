/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct{}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. Metrics are served
// by Handler on the REST server.
func NewPrometheusProvider() metrics.Provider {
	return &promProvider{}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	GetMetrics()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the service.
type PromMetrics struct {
	signTime     prometheus.Histogram
	issueTime    prometheus.Histogram
	completeTime prometheus.Histogram
	webhooks     *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signTime:     newSignTime(),
		issueTime:    newIssueTime(),
		completeTime: newCompleteTime(),
		webhooks:     newWebhooks(),
	}

	registerMetrics(pm)

	return pm
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("crypto sign time", log.WithDuration(value))
}

// IssueCredentialTime records the time of a successful issue call.
func (pm *PromMetrics) IssueCredentialTime(value time.Duration) {
	pm.issueTime.Observe(value.Seconds())

	logger.Debug("issue credential time", log.WithDuration(value))
}

// CompleteVerificationTime records the time of a completed verification.
func (pm *PromMetrics) CompleteVerificationTime(value time.Duration) {
	pm.completeTime.Observe(value.Seconds())

	logger.Debug("complete verification time", log.WithDuration(value))
}

// KYCWebhookReceived counts webhooks by issuer and outcome.
func (pm *PromMetrics) KYCWebhookReceived(issuerID, outcome string) {
	pm.webhooks.WithLabelValues(issuerID, outcome).Inc()
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.signTime, pm.issueTime, pm.completeTime, pm.webhooks,
	)
}

func newCounterVec(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newSignTime() prometheus.Histogram {
	return newHistogram(
		metrics.Crypto, metrics.CryptoSignTimeMetric,
		"The time (in seconds) it takes to run crypto sign.",
		nil,
	)
}

func newIssueTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.IssueCredentialMetric,
		"The time (in seconds) it takes to execute a successful issue call.",
		nil,
	)
}

func newCompleteTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.CompleteVerificationTime,
		"The time (in seconds) it takes to complete a verification session.",
		nil,
	)
}

func newWebhooks() *prometheus.CounterVec {
	return newCounterVec(
		metrics.Service, metrics.KYCWebhooksMetric,
		"The number of KYC webhooks received.",
		"issuer", "outcome",
	)
}
