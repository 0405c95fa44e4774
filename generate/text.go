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
	"strings"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
	"trpc.group/trpc-go/trpc-genmedia-go/log"
	"trpc.group/trpc-go/trpc-genmedia-go/scope"
	"trpc.group/trpc-go/trpc-genmedia-go/status"
	"trpc.group/trpc-go/trpc-genmedia-go/telemetry"
)

// GroundedText generates text for the request prompt, optionally grounded in
// Google Search results. Grounding citations, when present, are rendered into
// the returned asset's text and kept on Citations for structured consumers.
func GroundedText(ctx context.Context, api API, req *Request) (*asset.Asset, error) {
	sc := scope.From(ctx)
	log.Infof("generate: [%s] %sstarting text generation: %s",
		sc.TraceID, sc.Indent(), sc.Content(req.Prompt))

	model := req.Model
	if model == "" {
		model = ModelGeminiFlash
	}

	config := &genai.GenerateContentConfig{}
	if req.Temperature != nil {
		config.Temperature = req.Temperature
	}
	if req.MaxOutputTokens > 0 {
		config.MaxOutputTokens = req.MaxOutputTokens
	}
	if req.SearchGrounding {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	callCtx, span := telemetry.StartCall(ctx, telemetry.SpanNameGenerate, sc.TraceID, model, "text", 0)
	resp, err := api.GenerateContent(callCtx, model, req.contents(), config)
	telemetry.EndCall(span, err)
	if err != nil {
		log.Errorf("generate: [%s] failed to generate text: %v", sc.TraceID, err)
		return nil, status.FromError(err)
	}
	if err := ValidateRecitation(resp); err != nil {
		return nil, status.FromError(err)
	}

	text := concatText(resp)
	if text == "" {
		return nil, status.New(codes.Internal, "No text generated.",
			status.WithDetails("The model returned no text content."))
	}
	citations := ExtractGrounding(resp)
	for _, c := range citations {
		for _, part := range c.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
	}
	return &asset.Asset{Text: text, Citations: citations, Model: model}, nil
}

// concatText joins the text parts of the first candidate.
func concatText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
