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

package asset

import "context"

// Service stores and retrieves generated assets.
//
// Assets are identified by owner and name and versioned: the first save of a
// name gets version 0, each later save increments the version by 1.
type Service interface {
	// Save stores an asset and returns the version it was stored under.
	Save(ctx context.Context, owner Owner, name string, a *Asset) (int, error)

	// Load returns the asset stored under owner and name. When version is
	// nil the latest version is returned. A missing asset returns nil, nil.
	Load(ctx context.Context, owner Owner, name string, version *int) (*Asset, error)

	// ListKeys returns the names of all assets visible to the owner,
	// sorted lexically.
	ListKeys(ctx context.Context, owner Owner) ([]string, error)

	// Delete removes all versions of an asset. Deleting a missing asset is
	// not an error.
	Delete(ctx context.Context, owner Owner, name string) error

	// ListVersions returns all stored versions of an asset.
	ListVersions(ctx context.Context, owner Owner, name string) ([]int, error)
}
