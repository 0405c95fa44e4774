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

// Package asset defines generated media assets and the service that stores
// them.
package asset

import "google.golang.org/genai"

// Asset is the typed output of a successful generation: either raw media
// bytes with a mime type (image, video, audio) or grounded text with
// citations. The caller owns the asset once it is returned.
type Asset struct {
	// Data contains the raw media bytes.
	Data []byte `json:"data,omitempty"`
	// MIMEType is the IANA mime type of Data.
	MIMEType string `json:"mime_type,omitempty"`
	// Text is the generated text for text-modality assets.
	Text string `json:"text,omitempty"`
	// Citations carries grounding citation blocks attached to Text.
	Citations []*genai.Content `json:"citations,omitempty"`
	// Model is the model that produced the asset.
	Model string `json:"model,omitempty"`
	// Name is an optional display name used when the asset is stored.
	Name string `json:"name,omitempty"`
}

// IsMedia reports whether the asset carries binary media.
func (a *Asset) IsMedia() bool {
	return len(a.Data) > 0
}

// Owner identifies who a stored asset belongs to.
type Owner struct {
	// AppName is the name of the application.
	AppName string
	// UserID is the ID of the user.
	UserID string
	// SessionID is the ID of the session. Assets named with the "user:"
	// prefix are stored per user instead and ignore the session.
	SessionID string
}
