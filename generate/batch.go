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
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Pool fans independent generation requests out across a bounded set of
// workers. Each submitted task is a self-contained request; the fallback
// chain inside a single request stays strictly sequential.
type Pool struct {
	pool *ants.Pool
	wg   sync.WaitGroup
}

// NewPool creates a pool running at most size tasks concurrently.
func NewPool(size int) (*Pool, error) {
	p, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: p}, nil
}

// Go schedules task on the pool. It blocks when all workers are busy.
func (p *Pool) Go(task func()) error {
	p.wg.Add(1)
	err := p.pool.Submit(func() {
		defer p.wg.Done()
		task()
	})
	if err != nil {
		p.wg.Done()
	}
	return err
}

// Wait blocks until every scheduled task has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Release waits for in-flight tasks and shuts the pool down.
func (p *Pool) Release() {
	p.wg.Wait()
	p.pool.Release()
}
