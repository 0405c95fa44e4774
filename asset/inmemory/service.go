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

// Package inmemory provides an in-memory implementation of the asset service,
// suitable for tests and development.
package inmemory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
	iasset "trpc.group/trpc-go/trpc-genmedia-go/internal/asset"
)

// Service keeps every asset version in process memory.
type Service struct {
	mu sync.RWMutex
	// assets maps storage path to the ordered list of versions.
	assets map[string][]*asset.Asset
}

var _ asset.Service = (*Service)(nil)

// NewService creates an empty in-memory asset service.
func NewService() *Service {
	return &Service{assets: make(map[string][]*asset.Asset)}
}

// Save stores a new version of the asset and returns its version number.
func (s *Service) Save(ctx context.Context, owner asset.Owner, name string, a *asset.Asset) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := iasset.Path(owner, name)
	version := len(s.assets[path])
	s.assets[path] = append(s.assets[path], a)
	return version, nil
}

// Load returns the requested version, or the latest when version is nil.
func (s *Service) Load(ctx context.Context, owner asset.Owner, name string, version *int) (*asset.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions := s.assets[iasset.Path(owner, name)]
	if len(versions) == 0 {
		return nil, nil
	}
	idx := len(versions) - 1
	if version != nil {
		idx = *version
		if idx < 0 || idx >= len(versions) {
			return nil, fmt.Errorf("version %d does not exist", *version)
		}
	}
	return versions[idx], nil
}

// ListKeys returns the session-scoped and user-namespaced asset names
// visible to the owner.
func (s *Service) ListKeys(ctx context.Context, owner asset.Owner) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessionPrefix := iasset.SessionPrefix(owner)
	userPrefix := iasset.UserPrefix(owner)

	var names []string
	for path := range s.assets {
		switch {
		case strings.HasPrefix(path, sessionPrefix):
			names = append(names, strings.TrimPrefix(path, sessionPrefix))
		case strings.HasPrefix(path, userPrefix):
			names = append(names, strings.TrimPrefix(path, userPrefix))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes every version of the asset. Missing assets are ignored.
func (s *Service) Delete(ctx context.Context, owner asset.Owner, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.assets, iasset.Path(owner, name))
	return nil
}

// ListVersions returns the version numbers stored for the asset.
func (s *Service) ListVersions(ctx context.Context, owner asset.Owner, name string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions := s.assets[iasset.Path(owner, name)]
	result := make([]int, len(versions))
	for i := range versions {
		result[i] = i
	}
	return result, nil
}
