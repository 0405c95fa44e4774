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

	"trpc.group/trpc-go/trpc-genmedia-go/client"
)

// API is the vendor surface this package consumes. *client.Client implements
// it; tests substitute fakes.
type API interface {
	// GenerateContent performs one synchronous content generation call.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	// GenerateImages performs one Imagen generation call.
	GenerateImages(ctx context.Context, model string, prompt string,
		config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
	// GenerateVideos submits one video generation job.
	GenerateVideos(ctx context.Context, model string, prompt string, image *genai.Image,
		config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	// GetVideosOperation re-fetches a video generation operation.
	GetVideosOperation(ctx context.Context,
		op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
}

var _ API = (*client.Client)(nil)
