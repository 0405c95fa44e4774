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

	"google.golang.org/genai"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
	"trpc.group/trpc-go/trpc-genmedia-go/log"
	"trpc.group/trpc-go/trpc-genmedia-go/scope"
	"trpc.group/trpc-go/trpc-genmedia-go/telemetry"
)

const defaultVideoDurationSeconds = 8

// videoSubmission is a successfully submitted video job.
type videoSubmission struct {
	op    *genai.GenerateVideosOperation
	model string
}

// Videos generates a video via the Veo model family.
//
// Submission runs through the fallback chain; once a job is accepted, the
// returned operation is polled to completion with opts (default interval
// applies when none are given).
func Videos(ctx context.Context, api API, req *Request, opts ...PollerOption) (*asset.Asset, error) {
	sc := scope.From(ctx)
	log.Infof("generate: [%s] %sstarting video generation: %s",
		sc.TraceID, sc.Indent(), sc.Content(req.Prompt))

	aspectRatio := req.AspectRatio
	if aspectRatio != AspectLandscape && aspectRatio != AspectPortrait {
		aspectRatio = defaultVideoAspectRatio
	}
	duration := req.DurationSeconds
	if duration <= 0 {
		duration = defaultVideoDurationSeconds
	}
	preferred := req.Model
	if preferred == "" {
		preferred = ModelVeo3Fast
	}
	chain := newChain(preferred, ModelVeo3, ModelVeo3Fast)

	fallbackOpts := fallbackOptions{modality: "video", noResultMessage: "Failed to initiate video request."}
	submission, err := runFallback(ctx, sc, chain, fallbackOpts,
		func(ctx context.Context, model string, index int) (videoSubmission, bool, error) {
			// The accepted image shape differs by model family, so the
			// wiring is recomputed for every candidate.
			baseImage, referenceImages := videoImageConfig(model, req.ReferenceImages)
			config := &genai.GenerateVideosConfig{
				AspectRatio:      aspectRatio,
				PersonGeneration: "allow_adult",
				EnhancePrompt:    !req.DisablePromptRewrite,
				DurationSeconds:  genai.Ptr(duration),
				ReferenceImages:  referenceImages,
			}

			callCtx, span := telemetry.StartCall(ctx, telemetry.SpanNameGenerate, sc.TraceID, model, "video", index)
			op, err := api.GenerateVideos(callCtx, model, req.Prompt, baseImage, config)
			telemetry.EndCall(span, err)
			if err != nil {
				return videoSubmission{}, false, err
			}
			if op == nil {
				// Silent failure: move to the next candidate.
				return videoSubmission{}, false, nil
			}
			return videoSubmission{op: op, model: model}, true, nil
		})
	if err != nil {
		return nil, err
	}

	return NewPoller(opts...).Await(ctx, api, submission.op, submission.model)
}

// videoImageConfig returns the (base image, reference images) pair accepted
// by the given model. Families that take a structured reference-image list
// receive every supplied image; families that take only a single base image
// receive the first supplied image, the rest are silently dropped.
func videoImageConfig(model string, parts []*genai.Part) (*genai.Image, []*genai.VideoGenerationReferenceImage) {
	if len(parts) == 0 {
		return nil, nil
	}
	if acceptsReferenceImages(model) {
		var refs []*genai.VideoGenerationReferenceImage
		for _, part := range parts {
			if part.InlineData == nil {
				continue
			}
			refs = append(refs, &genai.VideoGenerationReferenceImage{
				Image: &genai.Image{
					ImageBytes: part.InlineData.Data,
					MIMEType:   part.InlineData.MIMEType,
				},
				ReferenceType: "ASSET",
			})
		}
		return nil, refs
	}
	first := parts[0]
	if first.InlineData == nil {
		return nil, nil
	}
	return &genai.Image{
		ImageBytes: first.InlineData.Data,
		MIMEType:   first.InlineData.MIMEType,
	}, nil
}
