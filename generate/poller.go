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
	"time"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
	"trpc.group/trpc-go/trpc-genmedia-go/log"
	"trpc.group/trpc-go/trpc-genmedia-go/scope"
	"trpc.group/trpc-go/trpc-genmedia-go/status"
	"trpc.group/trpc-go/trpc-genmedia-go/telemetry"
)

// DefaultPollInterval is the delay between operation re-fetches.
const DefaultPollInterval = 3 * time.Second

// Poller drains a long-running video operation to completion.
//
// Unlike a bare sleep loop, the poller honors context cancellation and
// deadline between polls and can bound the number of re-fetches, so a job
// the backend never completes cannot tie up the calling goroutine forever.
type Poller struct {
	interval    time.Duration
	maxAttempts int
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithPollInterval sets the delay between operation re-fetches.
func WithPollInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		p.interval = interval
	}
}

// WithMaxPollAttempts bounds the number of re-fetches. Zero means unbounded;
// callers relying on that should bound the context with a deadline instead.
func WithMaxPollAttempts(maxAttempts int) PollerOption {
	return func(p *Poller) {
		p.maxAttempts = maxAttempts
	}
}

// NewPoller creates a Poller.
func NewPoller(opts ...PollerOption) *Poller {
	p := &Poller{interval: DefaultPollInterval}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Await polls op until it completes and extracts the generated video.
func (p *Poller) Await(ctx context.Context, api API, op *genai.GenerateVideosOperation,
	model string) (*asset.Asset, error) {
	// Polling runs one level below the generation call that submitted the job.
	sc := scope.From(ctx).Nested()
	ctx, span := telemetry.StartCall(ctx, telemetry.SpanNamePoll, sc.TraceID, model, "video", 0)

	result, err := p.await(ctx, sc, api, op, model)
	telemetry.EndCall(span, err)
	return result, err
}

func (p *Poller) await(ctx context.Context, sc *scope.Scope, api API,
	op *genai.GenerateVideosOperation, model string) (*asset.Asset, error) {
	attempts := 0
	for !op.Done {
		if p.maxAttempts > 0 && attempts >= p.maxAttempts {
			return nil, status.New(codes.Unavailable,
				"Video generation did not complete in time. Please try again later.",
				status.WithInternalDetails("gave up polling operation "+op.Name))
		}
		select {
		case <-ctx.Done():
			return nil, status.New(codes.Unavailable,
				"Video generation was canceled before completion.",
				status.WithInternalDetails(ctx.Err().Error()))
		case <-time.After(p.interval):
		}

		refreshed, err := api.GetVideosOperation(ctx, op)
		if err != nil {
			return nil, status.FromError(err)
		}
		op = refreshed
		attempts++
	}
	return extractVideo(sc, op, model)
}

// extractVideo turns a completed operation into an asset or a classified
// error.
func extractVideo(sc *scope.Scope, op *genai.GenerateVideosOperation, model string) (*asset.Asset, error) {
	if len(op.Error) > 0 {
		log.Warnf("generate: [%s] %svideo backend failed to generate video: %v",
			sc.TraceID, sc.Indent(), op.Error)
		message := operationErrorMessage(op.Error)
		return nil, status.New(operationErrorCode(op.Error),
			"No videos generated: "+message+".",
			status.WithDetails(message))
	}

	if op.Response != nil {
		if len(op.Response.GeneratedVideos) > 0 {
			video := op.Response.GeneratedVideos[0].Video
			if video != nil && len(video.VideoBytes) > 0 {
				return &asset.Asset{Data: video.VideoBytes, MIMEType: video.MIMEType, Model: model}, nil
			}
		}
		if len(op.Response.RAIMediaFilteredReasons) > 0 {
			return nil, status.New(codes.InvalidArgument, "No videos generated.",
				status.WithDetails(op.Response.RAIMediaFilteredReasons[0]))
		}
	}
	return nil, status.New(codes.Internal, "No videos generated by the backend.")
}

// operationErrorCode reads the RPC code from an operation error payload,
// defaulting to INTERNAL when the payload omits one.
func operationErrorCode(payload map[string]any) codes.Code {
	switch v := payload["code"].(type) {
	case float64:
		return codes.Code(uint32(v))
	case int:
		return codes.Code(uint32(v))
	case int64:
		return codes.Code(uint32(v))
	default:
		return codes.Internal
	}
}

// operationErrorMessage reads the message from an operation error payload.
func operationErrorMessage(payload map[string]any) string {
	if message, ok := payload["message"].(string); ok && message != "" {
		return message
	}
	return "Unknown error"
}
