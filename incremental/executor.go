// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package incremental provides a concurrent, memoizing executor for
// keyed queries.
//
// A [Query] names itself with a URL and computes its value by resolving
// other queries through its [Task]. The [Executor] runs each query at
// most once, caches the result under its URL, bounds parallelism with a
// weighted semaphore, and records the dependency graph so that [Executor.Evict]
// can invalidate a result together with everything computed from it.
// Dependency cycles are detected and surfaced as ordinary errors.
package incremental

import (
	"context"
	"errors"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Executor is a caching executor for incremental queries.
//
// See [New], [Run], and [Executor.Evict].
type Executor struct {
	// Held for reading by every Run call and exclusively by Evict, so
	// that eviction never races query execution.
	dirty sync.RWMutex
	tasks sync.Map // [string, *task]

	parallelism int64
	sema        *semaphore.Weighted
}

// Option is a configuration setting for [New].
type Option func(*Executor)

// New constructs a new executor.
func New(options ...Option) *Executor {
	e := &Executor{
		parallelism: int64(runtime.GOMAXPROCS(0)),
	}
	for _, option := range options {
		option(e)
	}

	e.sema = semaphore.NewWeighted(e.parallelism)
	return e
}

// WithParallelism sets the maximum number of queries that may execute
// simultaneously. Zero or negative values are ignored, leaving the
// default of GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.parallelism = int64(n)
		}
	}
}

// URLs returns a snapshot of the URLs of the queries whose results are
// currently memoized in this executor.
//
// The returned slice is sorted.
func (e *Executor) URLs() (urls []string) {
	e.tasks.Range(func(url, t any) bool {
		task := t.(*task) //nolint:errcheck // All values in this map are tasks.
		result := task.result.Load()
		if result == nil || !closed(result.done) {
			return true
		}
		urls = append(urls, url.(string))
		return true
	})

	slices.Sort(urls)
	return
}

// Evict discards the memoized results for the given query URLs, along
// with the results of every query that depends on them, transitively.
// URLs that are not cached are ignored.
//
// Evict blocks until all in-flight [Run] calls complete, and excludes
// new ones while it works.
func (e *Executor) Evict(urls ...string) {
	var queue []*task
	for _, url := range urls {
		if t, ok := e.tasks.Load(url); ok {
			queue = append(queue, t.(*task))
		}
	}
	if len(queue) == 0 {
		return
	}

	e.dirty.Lock()
	defer e.dirty.Unlock()

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		next.downstream.Range(func(k, _ any) bool {
			queue = append(queue, k.(*task))
			return true
		})

		// We hold the only reference that can execute or walk this
		// task, so clearing without synchronization is fine. The task
		// object stays in the map; it is simply not-yet-computed again.
		*next = task{}
	}
}

// Run executes a set of queries on this executor in parallel.
//
// Run returns a non-nil error in exactly two cases: ctx was cancelled,
// in which case it returns the cancellation cause, or a query panicked,
// in which case it returns the [ErrPanic] describing it.
//
// Otherwise, per-query outcomes live in the returned results. Unlike
// [Resolve], each result's NonFatal slice also carries the non-fatal
// errors of everything the query transitively depended on.
func Run[T any](ctx context.Context, e *Executor, queries ...Query[T]) ([]Result[T], error) {
	e.dirty.RLock()
	defer e.dirty.RUnlock()

	var (
		results []Result[T]
		expired error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		root := Task{ctx: ctx, exec: e, goroutine: currentGoroutine()}
		results, expired = Resolve(root, queries...)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return nil, context.Cause(ctx)
	}
	if expired != nil {
		return nil, expired
	}

	// Surface panics as an executor-level failure, and fold each
	// dependency's non-fatal errors into the query that pulled it in.
	var panicked *ErrPanic
	for i, query := range queries {
		r := &results[i]
		task := e.getTask(query.URL())
		for dep := range task.deps {
			dr := dep.result.Load()
			if dr == nil || !closed(dr.done) {
				continue
			}
			r.NonFatal = append(r.NonFatal, dr.NonFatal...)
			if panicked == nil {
				errors.As(dr.Fatal, &panicked)
			}
		}
		if panicked == nil {
			errors.As(r.Fatal, &panicked)
		}
	}
	if panicked != nil {
		return nil, panicked
	}

	return results, nil
}

// getTask returns (and creates if necessary) a task pointer for the given URL.
func (e *Executor) getTask(url string) *task {
	// Avoid allocating a new task object in the common case.
	if t, ok := e.tasks.Load(url); ok {
		return t.(*task)
	}

	t, _ := e.tasks.LoadOrStore(url, new(task))
	return t.(*task)
}
