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
)

// contentCall records one GenerateContent invocation.
type contentCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

// imageCall records one GenerateImages invocation.
type imageCall struct {
	model  string
	prompt string
	config *genai.GenerateImagesConfig
}

// videoCall records one GenerateVideos invocation.
type videoCall struct {
	model  string
	prompt string
	image  *genai.Image
	config *genai.GenerateVideosConfig
}

// fakeAPI scripts vendor responses per call and records every invocation.
type fakeAPI struct {
	contentCalls []contentCall
	imageCalls   []imageCall
	videoCalls   []videoCall
	pollCalls    int

	generateContent func(call contentCall) (*genai.GenerateContentResponse, error)
	generateImages  func(call imageCall) (*genai.GenerateImagesResponse, error)
	generateVideos  func(call videoCall) (*genai.GenerateVideosOperation, error)
	getOperation    func(op *genai.GenerateVideosOperation, call int) (*genai.GenerateVideosOperation, error)
}

func (f *fakeAPI) GenerateContent(_ context.Context, model string, contents []*genai.Content,
	config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	call := contentCall{model: model, contents: contents, config: config}
	f.contentCalls = append(f.contentCalls, call)
	return f.generateContent(call)
}

func (f *fakeAPI) GenerateImages(_ context.Context, model string, prompt string,
	config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	call := imageCall{model: model, prompt: prompt, config: config}
	f.imageCalls = append(f.imageCalls, call)
	return f.generateImages(call)
}

func (f *fakeAPI) GenerateVideos(_ context.Context, model string, prompt string, image *genai.Image,
	config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	call := videoCall{model: model, prompt: prompt, image: image, config: config}
	f.videoCalls = append(f.videoCalls, call)
	return f.generateVideos(call)
}

func (f *fakeAPI) GetVideosOperation(_ context.Context,
	op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	f.pollCalls++
	return f.getOperation(op, f.pollCalls)
}

// doneOperation builds a completed operation carrying a single video.
func doneOperation(name string, videoBytes []byte) *genai.GenerateVideosOperation {
	return &genai.GenerateVideosOperation{
		Name: name,
		Done: true,
		Response: &genai.GenerateVideosResponse{
			GeneratedVideos: []*genai.GeneratedVideo{
				{Video: &genai.Video{VideoBytes: videoBytes, MIMEType: "video/mp4"}},
			},
		},
	}
}
