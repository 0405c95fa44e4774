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

// Package scope carries per-request diagnostic state on a context.Context.
//
// Every entry point of this module reads its diagnostic flags from the
// request scope instead of process-global state, so concurrent requests in a
// multi-tenant server cannot leak suppression or tracing flags into each
// other.
package scope

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Scope is the per-request diagnostic state.
type Scope struct {
	// TraceID identifies the logical generation request in logs and spans.
	TraceID string
	// SuppressContent disables logging of prompt and response content.
	SuppressContent bool
	// Depth is the nesting depth of the current operation, used to indent
	// operation logs.
	Depth int
}

type contextKey struct{}

// New creates a Scope with a fresh trace id.
func New() *Scope {
	return &Scope{TraceID: uuid.NewString()}
}

// With returns a context carrying s.
func With(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// From returns the Scope carried by ctx. When ctx carries none, a fresh Scope
// is returned so callers never observe a nil scope.
func From(ctx context.Context) *Scope {
	if s, ok := ctx.Value(contextKey{}).(*Scope); ok && s != nil {
		return s
	}
	return New()
}

// Nested returns a copy of s one level deeper. The receiver is not modified.
func (s *Scope) Nested() *Scope {
	nested := *s
	nested.Depth++
	return &nested
}

// Content returns text for logging. When content logging is suppressed the
// text is replaced by a placeholder so prompts and responses never reach the
// logs.
func (s *Scope) Content(text string) string {
	if s.SuppressContent {
		return "<content suppressed>"
	}
	return text
}

// Indent returns the log indentation for the current nesting depth.
func (s *Scope) Indent() string {
	return strings.Repeat("  ", s.Depth)
}
