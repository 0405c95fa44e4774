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

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
)

func TestFromErrorIdempotent(t *testing.T) {
	original := New(codes.InvalidArgument, "bad aspect ratio", WithDetails("want W:H"))
	got := FromError(original)
	require.Same(t, original, got, "re-classifying an *Error must be a no-op")

	// Identity holds through wrapping too.
	wrapped := fmt.Errorf("attempt failed: %w", original)
	require.Same(t, original, FromError(wrapped))
}

func TestFromErrorNil(t *testing.T) {
	require.Nil(t, FromError(nil))
}

func TestFromErrorVendorErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    codes.Code
		wantMessage string
	}{
		{
			name:        "quota exhausted by http code",
			err:         genai.APIError{Code: http.StatusTooManyRequests, Message: "quota"},
			wantCode:    codes.ResourceExhausted,
			wantMessage: OverloadedMessage,
		},
		{
			name:        "quota exhausted by status",
			err:         genai.APIError{Code: http.StatusBadRequest, Status: "RESOURCE_EXHAUSTED"},
			wantCode:    codes.ResourceExhausted,
			wantMessage: OverloadedMessage,
		},
		{
			name:        "other client error",
			err:         genai.APIError{Code: http.StatusBadRequest, Message: "bad request"},
			wantCode:    codes.Internal,
			wantMessage: GenericModelErrorMessage,
		},
		{
			name:        "server error",
			err:         genai.APIError{Code: http.StatusServiceUnavailable, Message: "overloaded"},
			wantCode:    codes.Internal,
			wantMessage: GenericModelErrorMessage,
		},
		{
			name:        "unknown error type",
			err:         errors.New("socket closed"),
			wantCode:    codes.Unknown,
			wantMessage: GenericErrorMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code())
			assert.Equal(t, tt.wantMessage, got.Message())
			assert.NotEmpty(t, got.InternalDetails(),
				"diagnostic must be captured internally")
		})
	}
}

func TestExternalOmitsInternalDetails(t *testing.T) {
	e := New(codes.Internal, "No images generated.",
		WithDetails("This may indicate an invalid or policy violating prompt."),
		WithInternalDetails("stack trace with vendor internals"))

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(e.External()), &payload))
	assert.Equal(t, "INTERNAL", payload["code"])
	assert.Equal(t, "No images generated.", payload["message"])
	assert.Equal(t, "This may indicate an invalid or policy violating prompt.", payload["details"])
	assert.NotContains(t, e.External(), "stack trace")
	assert.Len(t, payload, 3)
}

func TestCodeName(t *testing.T) {
	assert.Equal(t, "RESOURCE_EXHAUSTED", CodeName(codes.ResourceExhausted))
	assert.Equal(t, "OK", CodeName(codes.OK))
	// Codes outside the fixed set serialize as UNKNOWN.
	assert.Equal(t, "UNKNOWN", CodeName(codes.DataLoss))
}

func TestChatWrapsUnknownError(t *testing.T) {
	e := Chat(errors.New("boom"))
	assert.Equal(t, codes.Unknown, e.Code())
	assert.Equal(t, GenericErrorMessage, e.Message())
	assert.Equal(t, ChatPrefix, e.Details())
}

func TestChatCarriesBaseDetails(t *testing.T) {
	base := New(codes.InvalidArgument, "No videos generated.", WithDetails("filtered: violence"))
	e := Chat(base)
	assert.Equal(t, ChatPrefix+"Details: filtered: violence. ", e.Details())
	assert.Equal(t, codes.InvalidArgument, e.Code())
}

func TestChatFullMessageOverrides(t *testing.T) {
	e := Chat(errors.New("boom"), WithFullChatMessage("Please retry with a shorter prompt."))
	assert.Equal(t, "Please retry with a shorter prompt.", e.Details())
}

// Re-wrapping a chat error accumulates prefixes; dedup is intentionally not
// performed.
func TestChatRewrapAccumulatesPrefix(t *testing.T) {
	base := New(codes.Internal, "No images generated.", WithDetails("refused"))
	once := Chat(base)
	twice := Chat(once)
	assert.Equal(t, 1, strings.Count(once.Details(), ChatPrefix))
	assert.Equal(t, 2, strings.Count(twice.Details(), ChatPrefix))
}

func TestChatMessage(t *testing.T) {
	e := New(codes.Internal, "No images generated.", WithDetails("refused"))
	assert.Equal(t, "No images generated.\nrefused", ChatMessage(e))
}

func TestFormatterDisclosure(t *testing.T) {
	e := New(codes.Internal, "No images generated.",
		WithDetails("refused"),
		WithInternalDetails("raw model text"))

	external := NewFormatter(DiscloseExternalOnly).Format(e)
	assert.Equal(t, "INTERNAL: No images generated. Details: refused", external)
	assert.NotContains(t, external, "raw model text")

	internal := NewFormatter(DiscloseInternal).Format(e)
	assert.Contains(t, internal, "raw model text")
}

func TestFormatterNil(t *testing.T) {
	assert.Empty(t, NewFormatter(DiscloseInternal).Format(nil))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "msg", New(codes.Internal, "msg").Error())
	assert.Equal(t, "msg Details: d", New(codes.Internal, "msg", WithDetails("d")).Error())
}
