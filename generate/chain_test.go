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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewChain(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		defaults  []string
		want      Chain
	}{
		{
			name:      "preferred first",
			preferred: "custom-model",
			defaults:  []string{"default-a", "default-b"},
			want:      Chain{"custom-model", "default-a", "default-b"},
		},
		{
			name:      "empty preferred skipped",
			preferred: "",
			defaults:  []string{"default-a"},
			want:      Chain{"default-a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, newChain(tt.preferred, tt.defaults...))
		})
	}
}

func TestChainDedupe(t *testing.T) {
	tests := []struct {
		name  string
		chain Chain
		want  Chain
	}{
		{
			name:  "leading duplicate collapses",
			chain: Chain{"model-a", "model-a", "model-b"},
			want:  Chain{"model-a", "model-b"},
		},
		{
			name:  "first occurrence wins",
			chain: Chain{"model-b", "model-a", "model-b"},
			want:  Chain{"model-b", "model-a"},
		},
		{
			name:  "no duplicates unchanged",
			chain: Chain{"model-a", "model-b"},
			want:  Chain{"model-a", "model-b"},
		},
		{
			name:  "empty chain",
			chain: Chain{},
			want:  Chain{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.chain.dedupe())
		})
	}
}
