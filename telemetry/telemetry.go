//
// Tencent is pleased to support the open source community by making trpc-genmedia-go available.
//
// Copyright (C) 2025 Tencent.
// All rights reserved.
//
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the  Apache 2.0 License,
// A copy of the Apache 2.0 License is included in this file.
//
//

// Package telemetry provides tracing helpers for generation calls.
// Exporter wiring is left to the embedding process; this package only
// annotates spans obtained from the global tracer provider.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// InstrumentName identifies this module's tracer.
	InstrumentName = "trpc.genmedia.go"

	// SpanNameGenerate is the span wrapping one vendor generation call.
	SpanNameGenerate = "generate_media"
	// SpanNamePoll is the span wrapping one long-running-operation poll loop.
	SpanNamePoll = "poll_operation"
)

// Span attribute keys.
var (
	KeyTraceID   = "trpc.genmedia.trace_id"
	KeyModel     = "gen_ai.request.model"
	KeyModality  = "trpc.genmedia.modality"
	KeyCandidate = "trpc.genmedia.candidate_index"
	KeyOperation = "trpc.genmedia.operation_name"
)

// Tracer is the tracer used for generation spans.
var Tracer = otel.Tracer(InstrumentName)

// StartCall starts a span for a single vendor call against the given model.
func StartCall(ctx context.Context, spanName, traceID, model, modality string, candidate int) (context.Context, trace.Span) {
	ctx, span := Tracer.Start(ctx, spanName)
	span.SetAttributes(
		attribute.String("gen_ai.system", "gcp.vertex_ai"),
		attribute.String(KeyTraceID, traceID),
		attribute.String(KeyModel, model),
		attribute.String(KeyModality, modality),
		attribute.Int(KeyCandidate, candidate),
	)
	return ctx, span
}

// EndCall records the call outcome on span and ends it.
func EndCall(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
