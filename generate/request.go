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

// Package generate orchestrates calls to generative-media model endpoints.
//
// Each entry point drives an ordered chain of candidate models one vendor
// call at a time, normalizes every failure into a *status.Error, and turns
// vendor payloads into typed assets. Callers never observe raw vendor error
// types.
package generate

import "google.golang.org/genai"

// Aspect ratio values accepted by the vendor API.
const (
	AspectSquare            = "1:1"
	AspectLandscape         = "16:9"
	AspectPortrait          = "9:16"
	AspectClassicLandscape  = "4:3"
	AspectClassicPortrait   = "3:4"
	defaultVideoAspectRatio = AspectLandscape
)

// Request describes one logical generation request. It is immutable per
// call; the library never mutates it.
type Request struct {
	// Prompt is the text prompt.
	Prompt string
	// Parts carries full multimodal content parts for entry points that
	// accept them (image editing, grounded text). When empty, Prompt is
	// wrapped into a single text part.
	Parts []*genai.Part
	// ReferenceImages are inline-data image parts. Model families that
	// accept only a single base image use the first one and drop the rest.
	ReferenceImages []*genai.Part
	// AspectRatio of the generated media, e.g. "1:1" or "16:9".
	AspectRatio string
	// DurationSeconds is the duration of generated video.
	DurationSeconds int32
	// SafetySettings are forwarded to the vendor call.
	SafetySettings []*genai.SafetySetting
	// SafetyFilterLevel is the Imagen safety filter level.
	SafetyFilterLevel string
	// Model is the preferred model. It is always attempted first, ahead of
	// the family defaults.
	Model string
	// Voice is the prebuilt voice for speech generation.
	Voice string
	// DisablePromptRewrite disables automatic prompt rewriting for video.
	DisablePromptRewrite bool
	// SearchGrounding attaches the Google Search tool to text generation.
	SearchGrounding bool
	// Temperature is forwarded to text generation when set.
	Temperature *float32
	// MaxOutputTokens is forwarded to text generation when positive.
	MaxOutputTokens int32
}

// contents returns the request content for GenerateContent calls: the
// explicit parts when present, otherwise the prompt as a single text part.
func (r *Request) contents() []*genai.Content {
	parts := r.Parts
	if len(parts) == 0 {
		parts = []*genai.Part{genai.NewPartFromText(r.Prompt)}
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
