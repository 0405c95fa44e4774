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

// Package cos provides a Tencent Cloud Object Storage implementation of the
// asset service.
//
// Objects are stored under
//
//	{app}/{user}/{session}/{name}/{version}
//
// or, for names carrying the "user:" namespace,
//
//	{app}/{user}/user/{name}/{version}
//
// Credentials come from the COS_SECRETID and COS_SECRETKEY environment
// variables or the WithSecretID/WithSecretKey options.
package cos

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	cos "github.com/tencentyun/cos-go-sdk-v5"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
	iasset "trpc.group/trpc-go/trpc-genmedia-go/internal/asset"
)

// objectStore is the object-storage surface the service consumes: list by
// prefix, put, get and delete. Narrowed to an interface so tests can run
// against a map-backed store.
type objectStore interface {
	ListObjects(ctx context.Context, prefix string) ([]string, error)
	PutObject(ctx context.Context, name string, content io.Reader, mimeType string) error
	GetObject(ctx context.Context, name string) (body io.ReadCloser, header http.Header, err error)
	DeleteObject(ctx context.Context, name string) error
}

// sdkStore adapts the COS SDK client to objectStore.
type sdkStore struct {
	sdk *cos.Client
}

func (s *sdkStore) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	result, _, err := s.sdk.Bucket.Get(ctx, &cos.BucketGetOptions{Prefix: prefix})
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(result.Contents))
	for _, obj := range result.Contents {
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (s *sdkStore) PutObject(ctx context.Context, name string, content io.Reader, mimeType string) error {
	_, err := s.sdk.Object.Put(ctx, name, content, &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{ContentType: mimeType},
	})
	return err
}

func (s *sdkStore) GetObject(ctx context.Context, name string) (io.ReadCloser, http.Header, error) {
	resp, err := s.sdk.Object.Get(ctx, name, nil)
	if err != nil {
		return nil, nil, err
	}
	return resp.Body, resp.Header, nil
}

func (s *sdkStore) DeleteObject(ctx context.Context, name string) error {
	_, err := s.sdk.Object.Delete(ctx, name)
	return err
}

// Service stores generated assets in Tencent COS.
type Service struct {
	store objectStore
}

var _ asset.Service = (*Service)(nil)

// NewService creates a COS asset service for the given bucket URL.
func NewService(bucketURL string, opts ...Option) (*Service, error) {
	store, err := buildStore(bucketURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Service{store: store}, nil
}

// Save uploads a new version of the asset and returns its version number.
func (s *Service) Save(ctx context.Context, owner asset.Owner, name string, a *asset.Asset) (int, error) {
	versions, err := s.ListVersions(ctx, owner, name)
	if err != nil {
		return 0, fmt.Errorf("list versions: %w", err)
	}
	version := 0
	for _, v := range versions {
		if v >= version {
			version = v + 1
		}
	}

	objectName := iasset.ObjectName(owner, name, version)
	if err := s.store.PutObject(ctx, objectName, bytes.NewReader(a.Data), a.MIMEType); err != nil {
		return 0, fmt.Errorf("upload asset: %w", err)
	}
	return version, nil
}

// Load downloads the requested version, or the latest when version is nil.
func (s *Service) Load(ctx context.Context, owner asset.Owner, name string, version *int) (*asset.Asset, error) {
	var target int
	if version == nil {
		versions, err := s.ListVersions(ctx, owner, name)
		if err != nil {
			return nil, fmt.Errorf("list versions: %w", err)
		}
		if len(versions) == 0 {
			return nil, nil
		}
		for _, v := range versions {
			if v > target {
				target = v
			}
		}
	} else {
		target = *version
	}

	body, header, err := s.store.GetObject(ctx, iasset.ObjectName(owner, name, target))
	if err != nil {
		if cos.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("download asset: %w", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read asset data: %w", err)
	}
	mimeType := header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &asset.Asset{Data: data, MIMEType: mimeType, Name: name}, nil
}

// ListKeys lists session-scoped and user-namespaced asset names.
func (s *Service) ListKeys(ctx context.Context, owner asset.Owner) ([]string, error) {
	nameSet := make(map[string]bool)
	for _, prefix := range []string{iasset.SessionPrefix(owner), iasset.UserPrefix(owner)} {
		keys, err := s.store.ListObjects(ctx, prefix)
		if err != nil {
			if cos.IsNotFoundError(err) {
				continue
			}
			return nil, fmt.Errorf("list assets: %w", err)
		}
		for _, key := range keys {
			parts := strings.Split(key, "/")
			if len(parts) >= 4 {
				// The name sits between the prefix and the version.
				nameSet[parts[len(parts)-2]] = true
			}
		}
	}

	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes every stored version of the asset.
func (s *Service) Delete(ctx context.Context, owner asset.Owner, name string) error {
	versions, err := s.ListVersions(ctx, owner, name)
	if err != nil {
		return fmt.Errorf("list versions: %w", err)
	}
	for _, version := range versions {
		err := s.store.DeleteObject(ctx, iasset.ObjectName(owner, name, version))
		if err != nil && !cos.IsNotFoundError(err) {
			return fmt.Errorf("delete asset version %d: %w", version, err)
		}
	}
	return nil
}

// ListVersions lists the stored versions of one asset.
func (s *Service) ListVersions(ctx context.Context, owner asset.Owner, name string) ([]int, error) {
	keys, err := s.store.ListObjects(ctx, iasset.ObjectPrefix(owner, name))
	if err != nil {
		if cos.IsNotFoundError(err) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("list versions: %w", err)
	}

	var versions []int
	for _, key := range keys {
		parts := strings.Split(key, "/")
		if len(parts) == 0 {
			continue
		}
		if version, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			versions = append(versions, version)
		}
	}
	return versions, nil
}
