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

package cos

import (
	"net/http"
	"net/url"
	"os"
	"time"

	cos "github.com/tencentyun/cos-go-sdk-v5"
)

const defaultTimeout = 60 * time.Second

// Option configures the COS asset service.
type Option func(*options)

type options struct {
	store      objectStore
	httpClient *http.Client

	timeout   time.Duration
	secretID  string
	secretKey string
}

// WithClient sets the COS client directly. Takes precedence over the other
// options.
func WithClient(c *cos.Client) Option {
	return func(o *options) {
		o.store = &sdkStore{sdk: c}
	}
}

// WithHTTPClient sets the HTTP client used for COS requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithTimeout sets the timeout for COS requests.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithSecretID sets the COS secret ID. Defaults to the COS_SECRETID
// environment variable.
func WithSecretID(secretID string) Option {
	return func(o *options) {
		o.secretID = secretID
	}
}

// WithSecretKey sets the COS secret key. Defaults to the COS_SECRETKEY
// environment variable.
func WithSecretKey(secretKey string) Option {
	return func(o *options) {
		o.secretKey = secretKey
	}
}

func buildStore(bucketURL string, opts ...Option) (objectStore, error) {
	o := &options{
		timeout:   defaultTimeout,
		secretID:  os.Getenv("COS_SECRETID"),
		secretKey: os.Getenv("COS_SECRETKEY"),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.store != nil {
		return o.store, nil
	}

	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, err
	}
	base := &cos.BaseURL{BucketURL: u}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: o.timeout,
			Transport: &cos.AuthorizationTransport{
				SecretID:  o.secretID,
				SecretKey: o.secretKey,
			},
		}
	} else if o.timeout > 0 {
		httpClient.Timeout = o.timeout
	}
	return &sdkStore{sdk: cos.NewClient(base, httpClient)}, nil
}
