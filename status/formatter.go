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

package status

import "strings"

// Disclosure controls whether a Formatter renders internal diagnostics.
// It is injected at construction time; there is no process-global switch.
type Disclosure int

const (
	// DiscloseExternalOnly renders only the externally safe fields.
	// This is the policy production deployments must use.
	DiscloseExternalOnly Disclosure = iota
	// DiscloseInternal additionally renders InternalDetails.
	DiscloseInternal
)

// Formatter renders an *Error for logs or operator tooling under a fixed
// disclosure policy.
type Formatter struct {
	disclosure Disclosure
}

// NewFormatter creates a Formatter with the given disclosure policy.
func NewFormatter(disclosure Disclosure) *Formatter {
	return &Formatter{disclosure: disclosure}
}

// Format renders e as a single human-readable string. InternalDetails appear
// only under DiscloseInternal; External() output is unaffected by policy.
func (f *Formatter) Format(e *Error) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(CodeName(e.code))
	b.WriteString(": ")
	b.WriteString(e.message)
	if e.details != "" {
		b.WriteString(" Details: ")
		b.WriteString(e.details)
	}
	if f.disclosure == DiscloseInternal && e.internalDetails != "" {
		b.WriteString("\nInternal: ")
		b.WriteString(e.internalDetails)
	}
	return b.String()
}
