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

// Chain is an ordered list of candidate models attempted for one logical
// generation request.
type Chain []string

// newChain builds a chain from the preferred model followed by the family
// defaults. An empty preferred model is skipped, so the chain is never empty
// as long as at least one default is supplied.
func newChain(preferred string, defaults ...string) Chain {
	chain := make(Chain, 0, len(defaults)+1)
	if preferred != "" {
		chain = append(chain, preferred)
	}
	return append(chain, defaults...)
}

// dedupe removes duplicate candidates preserving first occurrence, so a
// preferred model that is also a family default is attempted once.
func (c Chain) dedupe() Chain {
	seen := make(map[string]bool, len(c))
	out := make(Chain, 0, len(c))
	for _, model := range c {
		if seen[model] {
			continue
		}
		seen[model] = true
		out = append(out, model)
	}
	return out
}
