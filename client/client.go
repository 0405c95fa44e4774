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

// Package client constructs the vendor client used for generation calls.
//
// The client may be created fresh per call or reused as a long-lived
// singleton; it is safe for concurrent use.
package client

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"trpc.group/trpc-go/trpc-genmedia-go/log"
)

// Environment variable names consulted when options are not provided.
const (
	// GoogleAPIKeyEnv supplies the API key for the Gemini API backend.
	GoogleAPIKeyEnv = "GOOGLE_API_KEY"
	// ProjectEnv supplies the project for the Vertex AI backend.
	ProjectEnv = "GOOGLE_CLOUD_PROJECT"
	// LocationEnv supplies the location for the Vertex AI backend.
	LocationEnv = "GOOGLE_CLOUD_LOCATION"
)

// Client wraps a genai.Client and exposes the vendor surface the generate
// package consumes.
type Client struct {
	genai *genai.Client

	apiKey        string
	project       string
	location      string
	backend       genai.Backend
	clientOptions *genai.ClientConfig
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the Google API key.
// If not provided, the GOOGLE_API_KEY environment variable is used.
// Priority: WithClientOptions > WithAPIKey > environment.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithProject sets the Vertex AI project.
func WithProject(project string) Option {
	return func(c *Client) {
		c.project = project
	}
}

// WithLocation sets the Vertex AI location.
func WithLocation(location string) Option {
	return func(c *Client) {
		c.location = location
	}
}

// WithBackend selects the vendor backend. The default is Vertex AI when a
// project is available, the Gemini API otherwise.
func WithBackend(backend genai.Backend) Option {
	return func(c *Client) {
		c.backend = backend
	}
}

// WithClientOptions sets additional options for the underlying genai client.
func WithClientOptions(clientOptions *genai.ClientConfig) Option {
	return func(c *Client) {
		cfg := *clientOptions
		c.clientOptions = &cfg
	}
}

// New creates a Client with the given options.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	c := &Client{
		apiKey:        os.Getenv(GoogleAPIKeyEnv),
		project:       os.Getenv(ProjectEnv),
		location:      os.Getenv(LocationEnv),
		backend:       genai.BackendUnspecified,
		clientOptions: &genai.ClientConfig{},
	}
	for _, opt := range opts {
		opt(c)
	}

	cfg := c.clientOptions
	if cfg.Backend == genai.BackendUnspecified {
		cfg.Backend = c.backend
	}
	if cfg.Backend == genai.BackendUnspecified {
		if c.project != "" {
			cfg.Backend = genai.BackendVertexAI
		} else {
			cfg.Backend = genai.BackendGeminiAPI
		}
	}
	switch cfg.Backend {
	case genai.BackendVertexAI:
		if cfg.Project == "" {
			cfg.Project = c.project
		}
		if cfg.Location == "" {
			cfg.Location = c.location
		}
		if cfg.Project == "" {
			return nil, fmt.Errorf("vertex backend requires a project (set %s or WithProject)", ProjectEnv)
		}
	default:
		if cfg.APIKey == "" {
			cfg.APIKey = c.apiKey
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini backend requires an API key (set %s or WithAPIKey)", GoogleAPIKeyEnv)
		}
	}

	inner, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.genai = inner
	log.Debugf("client: created genai client, backend %v", cfg.Backend)
	return c, nil
}

// GenerateContent performs one synchronous content generation call.
func (c *Client) GenerateContent(ctx context.Context, model string, contents []*genai.Content,
	config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.genai.Models.GenerateContent(ctx, model, contents, config)
}

// GenerateImages performs one Imagen generation call.
func (c *Client) GenerateImages(ctx context.Context, model string, prompt string,
	config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	return c.genai.Models.GenerateImages(ctx, model, prompt, config)
}

// GenerateVideos submits one video generation job and returns its operation.
func (c *Client) GenerateVideos(ctx context.Context, model string, prompt string, image *genai.Image,
	config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return c.genai.Models.GenerateVideos(ctx, model, prompt, image, config)
}

// GetVideosOperation re-fetches a video generation operation.
func (c *Client) GetVideosOperation(ctx context.Context,
	op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	return c.genai.Operations.GetVideosOperation(ctx, op, nil)
}
