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
	"fmt"
	"strings"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
	"trpc.group/trpc-go/trpc-genmedia-go/log"
	"trpc.group/trpc-go/trpc-genmedia-go/status"
)

// ExtractGrounding returns the citation content blocks attached to a text
// generation response: one block listing the web search queries used (when
// any) and one block listing "title: uri" lines for every grounding citation
// carrying a web reference. Citations without a web reference are skipped.
//
// A response without grounding metadata yields an empty slice. The function
// is pure; repeated calls on the same response produce identical output.
func ExtractGrounding(resp *genai.GenerateContentResponse) []*genai.Content {
	var result []*genai.Content
	if resp == nil || len(resp.Candidates) == 0 {
		return result
	}
	metadata := resp.Candidates[0].GroundingMetadata
	if metadata == nil {
		return result
	}

	if len(metadata.WebSearchQueries) > 0 {
		result = append(result, &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(
				"\n\n\nRelated Google Search queries: " + strings.Join(metadata.WebSearchQueries, ", "),
			)},
		})
	}
	if len(metadata.GroundingChunks) > 0 {
		var sources strings.Builder
		sources.WriteString("\n\nSources:\n")
		for _, chunk := range metadata.GroundingChunks {
			if chunk.Web == nil {
				log.Infof("generate: skipping grounding chunk without web reference: %v", chunk)
				continue
			}
			fmt.Fprintf(&sources, "%s: %s\n", chunk.Web.Title, chunk.Web.URI)
		}
		result = append(result, &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(sources.String())},
		})
	}
	return result
}

// ValidateRecitation returns an error when any response candidate was
// stopped for reproducing source material verbatim. Every call site that can
// produce recitation-flagged output must run this check before handing media
// or text back to a caller.
func ValidateRecitation(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return nil
	}
	for i, candidate := range resp.Candidates {
		if candidate.FinishReason == genai.FinishReasonRecitation {
			return status.New(codes.Internal, status.SafetyMessage,
				status.WithInternalDetails(fmt.Sprintf("candidate %d finished with reason RECITATION", i)))
		}
	}
	return nil
}

// inlineMedia collects the inline media blobs and the loose text parts of
// the first response candidate.
func inlineMedia(resp *genai.GenerateContentResponse, model string) (media []*asset.Asset, texts []string) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, nil
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return nil, nil
	}
	for _, part := range content.Parts {
		if part.InlineData != nil {
			media = append(media, &asset.Asset{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
				Model:    model,
			})
		}
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return media, texts
}

// noMediaError builds the classified error for a response that carried no
// media: any text the model returned in place of the expected media goes
// into the safe details (useful for diagnosing refusals) and verbatim into
// the internal details.
func noMediaError(message string, texts []string) *status.Error {
	details := ""
	if len(texts) > 0 {
		details = "The model returned the following text instead of media: " + strings.Join(texts, " ")
	}
	return status.New(codes.Internal, message,
		status.WithDetails(details),
		status.WithInternalDetails(strings.Join(texts, " ")))
}
