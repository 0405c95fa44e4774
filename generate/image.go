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
	"google.golang.org/grpc/codes"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
	"trpc.group/trpc-go/trpc-genmedia-go/log"
	"trpc.group/trpc-go/trpc-genmedia-go/scope"
	"trpc.group/trpc-go/trpc-genmedia-go/status"
	"trpc.group/trpc-go/trpc-genmedia-go/telemetry"
)

const defaultImageMIMEType = "image/png"

// Images generates an image via the Imagen model family, falling back to
// the faster family member on transient overload.
func Images(ctx context.Context, api API, req *Request) (*asset.Asset, error) {
	sc := scope.From(ctx)
	log.Infof("generate: [%s] %sstarting image generation: %s",
		sc.TraceID, sc.Indent(), sc.Content(req.Prompt))

	aspectRatio := req.AspectRatio
	if aspectRatio == "" {
		aspectRatio = AspectSquare
	}
	chain := newChain(req.Model, ModelImagen3, ModelImagen3Fast)

	opts := fallbackOptions{modality: "image", noResultMessage: "No images generated."}
	return runFallback(ctx, sc, chain, opts, func(ctx context.Context, model string, index int) (*asset.Asset, bool, error) {
		callCtx, span := telemetry.StartCall(ctx, telemetry.SpanNameGenerate, sc.TraceID, model, "image", index)
		resp, err := api.GenerateImages(callCtx, model, req.Prompt, &genai.GenerateImagesConfig{
			NumberOfImages:    1,
			Language:          "en",
			AspectRatio:       aspectRatio,
			SafetyFilterLevel: genai.SafetyFilterLevel(req.SafetyFilterLevel),
			PersonGeneration:  "ALLOW_ALL",
		})
		telemetry.EndCall(span, err)
		if err != nil {
			return nil, false, err
		}
		if resp == nil || len(resp.GeneratedImages) == 0 {
			// Silent failure: move to the next candidate.
			return nil, false, nil
		}
		return assetFromGeneratedImage(resp.GeneratedImages[0], model)
	})
}

// assetFromGeneratedImage turns a vendor image payload into an asset.
// A payload without bytes means the backend filtered the result; that is a
// definitive failure, not a reason to try another model.
func assetFromGeneratedImage(img *genai.GeneratedImage, model string) (*asset.Asset, bool, error) {
	if img.Image != nil && len(img.Image.ImageBytes) > 0 {
		mimeType := img.Image.MIMEType
		if mimeType == "" {
			mimeType = defaultImageMIMEType
		}
		return &asset.Asset{Data: img.Image.ImageBytes, MIMEType: mimeType, Model: model}, true, nil
	}
	return nil, false, status.New(codes.Internal, "No images generated.",
		status.WithDetails("This may indicate an invalid or policy violating prompt."))
}

// EditImages generates or edits images via the Gemini image model using the
// request's multimodal parts (text instructions plus optional input images).
// All generated images are returned.
func EditImages(ctx context.Context, api API, req *Request) ([]*asset.Asset, error) {
	sc := scope.From(ctx)
	log.Infof("generate: [%s] %sstarting image edit, %d input parts", sc.TraceID, sc.Indent(), len(req.Parts))

	model := req.Model
	if model == "" {
		model = ModelGeminiImage
	}
	aspectRatio := req.AspectRatio
	if aspectRatio == "" {
		aspectRatio = AspectSquare
	}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		SafetySettings:     req.SafetySettings,
		ImageConfig:        &genai.ImageConfig{AspectRatio: aspectRatio},
	}

	callCtx, span := telemetry.StartCall(ctx, telemetry.SpanNameGenerate, sc.TraceID, model, "image", 0)
	resp, err := api.GenerateContent(callCtx, model, req.contents(), config)
	telemetry.EndCall(span, err)
	if err != nil {
		log.Warnf("generate: [%s] unable to edit image: %v", sc.TraceID, err)
		return nil, status.FromError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, status.New(codes.Internal, "No candidates returned from the model.")
	}
	if resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, status.New(codes.Internal, "No content parts returned from the model.")
	}
	if err := ValidateRecitation(resp); err != nil {
		return nil, status.FromError(err)
	}

	media, texts := inlineMedia(resp, model)
	if len(media) == 0 {
		return nil, noMediaError("No images generated.", texts)
	}
	return media, nil
}
