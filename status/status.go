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

// Package status defines the structured error type every vendor failure is
// normalized into before it reaches a caller, together with the classifier
// that performs the normalization.
package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"

	"trpc.group/trpc-go/trpc-genmedia-go/log"
)

// Messages safe for external display.
const (
	// GenericErrorMessage is used for errors that could not be classified.
	GenericErrorMessage = "An unexpected internal error occurred. Please try again."
	// GenericModelErrorMessage is used for vendor errors raised while calling a model.
	GenericModelErrorMessage = "An unexpected error occurred while calling the model. Please try again."
	// OverloadedMessage is used when the backend reports resource exhaustion.
	OverloadedMessage = "The system is experiencing higher load than usual. Please try again later."
	// SafetyMessage is used when generated content trips a policy check.
	SafetyMessage = "Unable to generate response, generated content may violate safety policies. " +
		"Please try again with a different prompt."
	// ChatPrefix is prepended to chat-facing error details.
	ChatPrefix = "Sorry, I encountered an error. "
)

// codeNames maps the fixed RPC code set this package produces onto their
// canonical names. Codes outside the set serialize as UNKNOWN.
var codeNames = map[codes.Code]string{
	codes.OK:                 "OK",
	codes.Unknown:            "UNKNOWN",
	codes.InvalidArgument:    "INVALID_ARGUMENT",
	codes.FailedPrecondition: "FAILED_PRECONDITION",
	codes.ResourceExhausted:  "RESOURCE_EXHAUSTED",
	codes.Unavailable:        "UNAVAILABLE",
	codes.Internal:           "INTERNAL",
}

// CodeName returns the canonical RPC name for c, or UNKNOWN for codes outside
// the set this package produces.
func CodeName(c codes.Code) string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// Error is the structured error all vendor failures are converted into.
// It is immutable once constructed; re-classifying an existing Error via
// FromError returns it unchanged.
type Error struct {
	code            codes.Code
	message         string
	details         string
	internalDetails string
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithDetails sets the dynamic, externally safe details of the error.
func WithDetails(details string) Option {
	return func(e *Error) {
		e.details = details
	}
}

// WithInternalDetails sets the full diagnostic text of the error.
// Internal details never cross the external boundary; they are rendered only
// by a Formatter constructed with DiscloseInternal.
func WithInternalDetails(internal string) Option {
	return func(e *Error) {
		e.internalDetails = internal
	}
}

// New creates an Error with the given code and externally safe message.
func New(code codes.Code, message string, opts ...Option) *Error {
	e := &Error{code: code, message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Newf creates an Error with a formatted externally safe message.
// The format arguments must themselves be safe for external display.
func Newf(code codes.Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Code returns the RPC status code.
func (e *Error) Code() codes.Code { return e.code }

// Message returns the static externally safe message.
func (e *Error) Message() string { return e.message }

// Details returns the dynamic externally safe details.
func (e *Error) Details() string { return e.details }

// InternalDetails returns the full diagnostic text. Callers must not forward
// it across the external boundary.
func (e *Error) InternalDetails() string { return e.internalDetails }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.details == "" {
		return e.message
	}
	return e.message + " Details: " + e.details
}

// External serializes the externally visible portion of the error:
// {code, message, details}. Internal details are never included.
func (e *Error) External() string {
	payload := map[string]string{
		"code":    CodeName(e.code),
		"message": e.message,
		"details": e.details,
	}
	out, err := json.Marshal(payload)
	if err != nil {
		// The payload is a map of plain strings; this cannot happen.
		return `{"code":"UNKNOWN","message":"` + GenericErrorMessage + `","details":""}`
	}
	return string(out)
}

// FromError normalizes any error into an *Error.
//
// An *Error passes through unchanged. Vendor API errors map onto
// RESOURCE_EXHAUSTED (quota) or INTERNAL (any other client or server error).
// Everything else becomes UNKNOWN with the diagnostic kept internal-only.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var structured *Error
	if errors.As(err, &structured) {
		return structured
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return New(codes.ResourceExhausted, OverloadedMessage,
				WithInternalDetails(diagnostic(err)))
		}
		return New(codes.Internal, GenericModelErrorMessage,
			WithInternalDetails(diagnostic(err)))
	}
	log.Infof("unhandled error (type %T): %v", err, err)
	return New(codes.Unknown, GenericErrorMessage, WithInternalDetails(diagnostic(err)))
}

// diagnostic captures the error text and current stack for internal details.
func diagnostic(err error) string {
	return err.Error() + "\n" + string(debug.Stack())
}

// ChatOption configures the chat-facing wrapper.
type ChatOption func(*chatConfig)

type chatConfig struct {
	prefix      string
	fullMessage string
}

// WithChatPrefix overrides the apology prefix prepended to the chat details.
func WithChatPrefix(prefix string) ChatOption {
	return func(c *chatConfig) {
		c.prefix = prefix
	}
}

// WithFullChatMessage replaces the derived chat details entirely.
func WithFullChatMessage(message string) ChatOption {
	return func(c *chatConfig) {
		c.fullMessage = message
	}
}

// Chat wraps any error into a chat-facing *Error: the underlying error is
// classified and the details become a short user-facing message carrying the
// apology prefix.
//
// Wrapping an already chat-wrapped error repeats the prefix. The source this
// behavior was lifted from does not deduplicate prefixes across re-wraps and
// there is no evidence dedup was intended, so none is performed here.
func Chat(err error, opts ...ChatOption) *Error {
	cfg := chatConfig{prefix: ChatPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	base := FromError(err)

	chatMessage := cfg.prefix
	if cfg.fullMessage == "" && base.details != "" {
		chatMessage += "Details: " + base.details + ". "
	}
	details := cfg.fullMessage
	if details == "" {
		details = chatMessage
	}
	return &Error{
		code:            base.code,
		message:         base.message,
		details:         details,
		internalDetails: base.internalDetails,
	}
}

// ChatMessage returns the two-part chat rendering of any error:
// the safe status message followed by the safe details.
func ChatMessage(err error) string {
	e := FromError(err)
	return e.message + "\n" + e.details
}
