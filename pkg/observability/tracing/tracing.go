/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/zcred/vcs/internal/pkg/log"
)

var logger = log.New("tracing")

// SpanExporterType names the span exporter behind the tracer provider.
type SpanExporterType = string

const (
	None   SpanExporterType = ""
	Jaeger SpanExporterType = "JAEGER"
	Stdout SpanExporterType = "STDOUT"
)

const (
	JaegerAgentEndpointEnvKey     = "OTEL_EXPORTER_JAEGER_AGENT_HOST"
	JaegerCollectorEndpointEnvKey = "OTEL_EXPORTER_JAEGER_ENDPOINT"

	instrumentationName = "github.com/zcred/vcs"
)

var errNoJaegerEndpoint = errors.New("neither agent nor collector endpoint is provided")

// IsExportedSupported reports whether exporter can be passed to Initialize.
func IsExportedSupported(exporter SpanExporterType) bool {
	return exporter == None || exporter == Jaeger || exporter == Stdout
}

// Initialize installs a global tracer provider backed by the given exporter and
// returns a tracer for the service together with a shutdown func that flushes
// pending spans. With None a noop tracer is returned and nothing is installed.
func Initialize(exporter SpanExporterType, serviceName string) (func(), trace.Tracer, error) {
	if exporter == None {
		return func() {}, trace.NewNoopTracerProvider().Tracer(""), nil
	}

	spanExporter, err := newSpanExporter(exporter)
	if err != nil {
		return nil, nil, err
	}

	provider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.ProcessPIDKey.Int(os.Getpid()),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	shutdown := func() {
		if shutdownErr := provider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Warn("tracer provider shutdown failed", log.WithError(shutdownErr))
		}
	}

	return shutdown, provider.Tracer(instrumentationName), nil
}

func newSpanExporter(exporter SpanExporterType) (tracesdk.SpanExporter, error) {
	switch exporter {
	case Jaeger:
		endpoint, err := jaegerEndpoint()
		if err != nil {
			return nil, err
		}

		exp, err := jaeger.New(endpoint)
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}

		return exp, nil
	case Stdout:
		exp, err := stdouttrace.New()
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}

		return exp, nil
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", exporter)
	}
}

// jaegerEndpoint prefers the agent when both endpoints are configured.
func jaegerEndpoint() (jaeger.EndpointOption, error) {
	if os.Getenv(JaegerAgentEndpointEnvKey) != "" {
		return jaeger.WithAgentEndpoint(), nil
	}

	if os.Getenv(JaegerCollectorEndpointEnvKey) != "" {
		return jaeger.WithCollectorEndpoint(), nil
	}

	return nil, errNoJaegerEndpoint
}
