// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// InitTracing installs a global tracer provider exporting spans over OTLP.
//
// Tracing stays disabled (only the propagator is installed) when
// OTEL_SDK_DISABLED=true or the exporter is "none". An exporter that cannot
// be created does not stop the server: the error is logged and a no-op
// shutdown is returned.
func InitTracing(ctx context.Context, cfg config.Telemetry, log *logger.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if disabled(cfg) {
		log.Info().Msg("tracing disabled")
		return noopShutdown, nil
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = config.DefaultServiceName
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(serviceName)),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel resource: %w", err)
	}

	exporter, err := newExporter(ctx, cfg.Exporter)
	if err != nil {
		log.Err(err).Str("exporter", cfg.Exporter).Msg("tracing exporter unavailable, spans are dropped")
		return noopShutdown, nil
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFromEnv()),
	)
	otel.SetTracerProvider(tp)

	log.Info().
		Str("service", serviceName).
		Str("exporter", exporterName(cfg.Exporter)).
		Str("endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")).
		Msg("tracing enabled")

	return tp.Shutdown, nil
}

func disabled(cfg config.Telemetry) bool {
	if v, err := strconv.ParseBool(os.Getenv("OTEL_SDK_DISABLED")); err == nil && v {
		return true
	}
	return cfg.Exporter == config.ExporterNone
}

func exporterName(name string) string {
	if name == "" {
		return config.ExporterOTLPGRPC
	}
	return name
}

func newExporter(ctx context.Context, name string) (sdktrace.SpanExporter, error) {
	switch exporterName(name) {
	case config.ExporterOTLPGRPC:
		return otlptracegrpc.New(ctx)
	case config.ExporterOTLPHTTP:
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported tracing exporter %q", name)
	}
}

// samplerFromEnv maps OTEL_TRACES_SAMPLER and OTEL_TRACES_SAMPLER_ARG to a
// sampler. Unknown values fall back to parent-based always-on.
func samplerFromEnv() sdktrace.Sampler {
	ratio := 1.0
	if arg := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); arg != "" {
		if v, err := strconv.ParseFloat(arg, 64); err == nil {
			ratio = v
		}
	}

	switch os.Getenv("OTEL_TRACES_SAMPLER") {
	case "always_on":
		return sdktrace.AlwaysSample()
	case "always_off":
		return sdktrace.NeverSample()
	case "traceidratio":
		return sdktrace.TraceIDRatioBased(ratio)
	case "parentbased_always_off":
		return sdktrace.ParentBased(sdktrace.NeverSample())
	case "parentbased_traceidratio":
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	default:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
}
