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

package generate

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"

	"trpc.group/trpc-go/trpc-genmedia-go/log"
	"trpc.group/trpc-go/trpc-genmedia-go/scope"
	"trpc.group/trpc-go/trpc-genmedia-go/status"
)

// resourceExhaustedMarker detects quota errors reported only as text.
const resourceExhaustedMarker = "RESOURCE_EXHAUSTED"

// attemptFunc performs exactly one vendor call for the given candidate.
// It returns the result, whether the result is usable, and any error.
// Returning (zero, false, nil) marks the candidate as silently failed and
// moves the orchestrator to the next one.
type attemptFunc[T any] func(ctx context.Context, model string, index int) (T, bool, error)

// fallbackOptions configures one orchestrated chain run.
type fallbackOptions struct {
	// modality names the kind of media being generated, for logs.
	modality string
	// noResultMessage is the safe message raised when every candidate
	// fails without ever raising an error.
	noResultMessage string
}

// runFallback drives the candidate chain one vendor call at a time.
//
// The chain is deduplicated preserving order. Candidates are attempted
// strictly sequentially: a candidate is only tried after the previous one
// definitively failed, trading latency for never duplicating billable work.
// A retriable failure (quota, too many requests, retryable server error)
// moves on to the next candidate; any other failure is classified and
// returned immediately without attempting further candidates.
func runFallback[T any](ctx context.Context, sc *scope.Scope, chain Chain,
	opts fallbackOptions, attempt attemptFunc[T]) (T, error) {
	var zero T

	candidates := chain.dedupe()
	if len(candidates) == 0 {
		return zero, status.New(codes.Internal, "No candidate models configured.")
	}

	var lastErr error
	for i, model := range candidates {
		result, ok, err := attempt(ctx, model, i)
		if err != nil {
			if !retriable(err) {
				log.Errorf("generate: [%s] %s generation with model %s failed: %v",
					sc.TraceID, opts.modality, model, err)
				return zero, status.FromError(err)
			}
			lastErr = err
			log.Warnf("generate: [%s] %s generation with model %s failed: %v, trying next model",
				sc.TraceID, opts.modality, model, err)
			continue
		}
		if ok {
			return result, nil
		}
		// Candidate failed silently; lastErr is deliberately left untouched.
		log.Warnf("generate: [%s] %s generation with model %s produced no result, trying next model",
			sc.TraceID, opts.modality, model)
	}

	log.Errorf("generate: [%s] %s generation exhausted all candidate models", sc.TraceID, opts.modality)
	if lastErr != nil {
		return zero, status.FromError(lastErr)
	}
	return zero, status.New(codes.Internal, opts.noResultMessage,
		status.WithDetails("This may indicate an invalid or policy violating prompt."))
}

// retriable reports whether err should move the orchestrator to the next
// candidate instead of failing the whole chain: quota and too-many-requests
// errors, retryable server errors, and any error whose text carries the
// resource-exhaustion marker.
func retriable(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests ||
			apiErr.Code >= http.StatusInternalServerError ||
			apiErr.Status == resourceExhaustedMarker
	}
	return strings.Contains(err.Error(), resourceExhaustedMarker)
}
