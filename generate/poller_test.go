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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"

	"trpc.group/trpc-go/trpc-genmedia-go/status"
)

func TestAwaitPollsUntilDone(t *testing.T) {
	api := &fakeAPI{
		getOperation: func(op *genai.GenerateVideosOperation, call int) (*genai.GenerateVideosOperation, error) {
			if call < 3 {
				return &genai.GenerateVideosOperation{Name: op.Name}, nil
			}
			return doneOperation(op.Name, []byte("mp4-bytes")), nil
		},
	}
	poller := NewPoller(WithPollInterval(time.Millisecond))
	got, err := poller.Await(context.Background(), api,
		&genai.GenerateVideosOperation{Name: "operations/123"}, ModelVeo3)
	require.NoError(t, err)
	require.Equal(t, 3, api.pollCalls)
	require.Equal(t, []byte("mp4-bytes"), got.Data)
	require.Equal(t, "video/mp4", got.MIMEType)
	require.Equal(t, ModelVeo3, got.Model)
}

func TestAwaitAlreadyDoneSkipsPolling(t *testing.T) {
	api := &fakeAPI{}
	poller := NewPoller(WithPollInterval(time.Millisecond))
	got, err := poller.Await(context.Background(), api,
		doneOperation("operations/123", []byte("mp4-bytes")), ModelVeo3)
	require.NoError(t, err)
	require.Zero(t, api.pollCalls)
	require.Equal(t, []byte("mp4-bytes"), got.Data)
}

func TestAwaitContextCanceled(t *testing.T) {
	api := &fakeAPI{
		getOperation: func(op *genai.GenerateVideosOperation, _ int) (*genai.GenerateVideosOperation, error) {
			return &genai.GenerateVideosOperation{Name: op.Name}, nil
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	poller := NewPoller(WithPollInterval(time.Hour))
	_, err := poller.Await(ctx, api, &genai.GenerateVideosOperation{Name: "operations/123"}, ModelVeo3)
	require.Error(t, err)

	var statusErr *status.Error
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, codes.Unavailable, statusErr.Code())
}

func TestAwaitMaxAttemptsExceeded(t *testing.T) {
	api := &fakeAPI{
		getOperation: func(op *genai.GenerateVideosOperation, _ int) (*genai.GenerateVideosOperation, error) {
			return &genai.GenerateVideosOperation{Name: op.Name}, nil
		},
	}
	poller := NewPoller(WithPollInterval(time.Millisecond), WithMaxPollAttempts(5))
	_, err := poller.Await(context.Background(), api,
		&genai.GenerateVideosOperation{Name: "operations/123"}, ModelVeo3)
	require.Error(t, err)
	require.Equal(t, 5, api.pollCalls)

	var statusErr *status.Error
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, codes.Unavailable, statusErr.Code())
}

func TestAwaitRefreshErrorClassified(t *testing.T) {
	api := &fakeAPI{
		getOperation: func(*genai.GenerateVideosOperation, int) (*genai.GenerateVideosOperation, error) {
			return nil, quotaError()
		},
	}
	poller := NewPoller(WithPollInterval(time.Millisecond))
	_, err := poller.Await(context.Background(), api,
		&genai.GenerateVideosOperation{Name: "operations/123"}, ModelVeo3)
	require.Error(t, err)

	var statusErr *status.Error
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, codes.ResourceExhausted, statusErr.Code())
}

func TestExtractVideoErrorPayload(t *testing.T) {
	tests := []struct {
		name        string
		payload     map[string]any
		wantCode    codes.Code
		wantMessage string
		wantDetails string
	}{
		{
			name:        "numeric code and message",
			payload:     map[string]any{"code": float64(3), "message": "prompt rejected"},
			wantCode:    codes.InvalidArgument,
			wantMessage: "No videos generated: prompt rejected.",
			wantDetails: "prompt rejected",
		},
		{
			name:        "missing code defaults to internal",
			payload:     map[string]any{"message": "backend exploded"},
			wantCode:    codes.Internal,
			wantMessage: "No videos generated: backend exploded.",
			wantDetails: "backend exploded",
		},
		{
			name:        "missing message",
			payload:     map[string]any{"code": float64(13)},
			wantCode:    codes.Internal,
			wantMessage: "No videos generated: Unknown error.",
			wantDetails: "Unknown error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &genai.GenerateVideosOperation{Name: "operations/123", Done: true, Error: tt.payload}
			api := &fakeAPI{}
			_, err := NewPoller().Await(context.Background(), api, op, ModelVeo3)
			require.Error(t, err)

			var statusErr *status.Error
			require.ErrorAs(t, err, &statusErr)
			require.Equal(t, tt.wantCode, statusErr.Code())
			require.Equal(t, tt.wantMessage, statusErr.Message())
			require.Equal(t, tt.wantDetails, statusErr.Details())
		})
	}
}

func TestExtractVideoFiltered(t *testing.T) {
	op := &genai.GenerateVideosOperation{
		Name: "operations/123",
		Done: true,
		Response: &genai.GenerateVideosResponse{
			RAIMediaFilteredReasons: []string{"Responsible AI practices blocked this video."},
		},
	}
	_, err := NewPoller().Await(context.Background(), &fakeAPI{}, op, ModelVeo3)
	require.Error(t, err)

	var statusErr *status.Error
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, codes.InvalidArgument, statusErr.Code())
	require.Equal(t, "No videos generated.", statusErr.Message())
	require.Equal(t, "Responsible AI practices blocked this video.", statusErr.Details())
}

func TestExtractVideoEmptyResponse(t *testing.T) {
	op := &genai.GenerateVideosOperation{Name: "operations/123", Done: true}
	_, err := NewPoller().Await(context.Background(), &fakeAPI{}, op, ModelVeo3)
	require.Error(t, err)

	var statusErr *status.Error
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, codes.Internal, statusErr.Code())
	require.Equal(t, "No videos generated by the backend.", statusErr.Message())
}
