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

package incremental

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
	"golang.org/x/sync/semaphore"
)

// Task represents a query that is currently being executed.
//
// Values of type Task are passed to [Query].Execute. The main use of a
// Task is to be passed to [Resolve] to resolve dependencies.
//
// A Task is bound to the goroutine its query executes on; handing it to
// another goroutine and calling [Resolve] there panics, because the
// executor's scheduling and cycle bookkeeping are per-goroutine.
type Task struct {
	// All queries of one Run must execute under the same context, so it
	// travels with the task rather than as an Execute parameter.
	ctx  context.Context //nolint:containedctx
	exec *Executor

	// The goroutine this task is bound to, and the chain of query URLs
	// that led here. Nil task/result/state means the root of a Run call.
	goroutine int64
	path      *path
	task      *task
	result    *result
	state     *state
}

// Context returns the context of the [Run] call this task descends from.
//
// Queries that perform I/O should respect its cancellation.
func (t Task) Context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

// NonFatal records errors against the current query without failing it.
//
// Non-fatal errors are memoized alongside the query's value, and [Run]
// reports them to callers of every query that depends on this one.
func (t Task) NonFatal(errs ...error) {
	if t.result == nil {
		panic("incremental: NonFatal called on a zero Task")
	}
	t.result.NonFatal = append(t.result.NonFatal, errs...)
}

// Result is the result of executing a query on an [Executor], either
// via [Run] or [Resolve].
type Result[T any] struct {
	Value T

	// Errors the query reported without failing, via [Task.NonFatal].
	NonFatal []error
	// Non-nil if the query failed: the error its Execute returned, an
	// [*ErrCycle], or an [*ErrPanic].
	Fatal error
}

// Resolve executes a set of queries in parallel on the calling task's
// executor, and blocks until all of them have settled.
//
// Each result carries only the errors of that query itself, not of its
// transitive dependencies; that folding is done by [Run].
//
// A query that is already on the chain of queries leading to the caller
// does not execute: its result is an [*ErrCycle]. Resolve returns a
// non-nil error only when the [Run] context is cancelled, in which case
// the results are meaningless and the caller should unwind promptly.
//
// Resolve must be called on the goroutine executing the caller's query;
// calling it anywhere else panics.
func Resolve[T any](caller Task, queries ...Query[T]) ([]Result[T], error) {
	if caller.exec == nil {
		panic("incremental: Resolve called with a zero Task")
	}
	if currentGoroutine() != caller.goroutine {
		panic("incremental: Resolve called on a different goroutine than its Task")
	}

	results := make([]Result[T], len(queries))
	deps := make([]*task, len(queries))
	wg := semaphore.NewWeighted(int64(len(queries)))

	var spawned int
	for i, q := range queries {
		url := q.URL()
		if cycle := caller.path.findCycle(url); cycle != nil {
			results[i].Fatal = cycle
			continue
		}

		deps[i] = caller.exec.getTask(url)
		if run(caller, deps[i], url, q, wg, func() {
			r := deps[i].result.Load()
			if r.Value != nil {
				// This type assertion will always succeed, unless the user has
				// distinct queries with the same URL, which is a sufficiently
				// unrecoverable condition that a panic is acceptable.
				results[i].Value = r.Value.(T) //nolint:errcheck
			}

			results[i].NonFatal = r.NonFatal
			results[i].Fatal = r.Fatal
		}) {
			spawned++
		}
	}

	// Update dependency links for each of our dependencies. This occurs in a
	// defer block so that it happens regardless of how we unwind.
	defer func() {
		if caller.task == nil {
			return
		}
		for _, dep := range deps {
			if dep == nil {
				continue
			}
			if r := dep.result.Load(); r == nil || !closed(r.done) {
				// The dep never settled, so there is no memoized result
				// for an edge to guard. Its deps may still be mutating.
				continue
			}

			if caller.task.deps == nil {
				caller.task.deps = map[*task]struct{}{}
			}

			caller.task.deps[dep] = struct{}{}
			for dep := range dep.deps {
				caller.task.deps[dep] = struct{}{}
			}
			dep.downstream.Store(caller.task, struct{}{})
		}
	}()

	// Give up our execution slot while we block on the queries we just
	// spawned. Holding it would let a deep query graph starve on its
	// own children once every slot is taken by a blocked parent.
	if spawned > 0 && caller.state != nil && caller.state.held {
		caller.exec.sema.Release(1)
		caller.state.held = false
	}

	if wg.Acquire(caller.ctx, int64(len(queries))) != nil {
		if caller.state != nil {
			caller.state.aborted = true
		}
		return nil, context.Cause(caller.ctx)
	}

	if caller.state != nil && !caller.state.held {
		if caller.exec.sema.Acquire(caller.ctx, 1) != nil {
			caller.state.aborted = true
			return nil, context.Cause(caller.ctx)
		}
		caller.state.held = true
	}

	return results, nil
}

// task is book-keeping information for a memoized query in an Executor.
type task struct {
	deps       map[*task]struct{} // Transitive.
	downstream sync.Map           // [*task, struct{}]

	// If this task has not been started yet, this is nil.
	// Otherwise, if it is complete, result.done will be closed.
	result atomic.Pointer[result]
}

// result is a Result[any] with a completion channel appended to it.
type result struct {
	Result[any]
	done chan struct{}
}

// state is the goroutine-local execution state of a running task: who
// holds an executor slot, and whether the task unwound on cancellation
// and must not memoize whatever it half-computed.
type state struct {
	held    bool
	aborted bool
}

// run starts computing a query, calling done once its task's result is
// populated. It reports whether an asynchronous computation actually
// began: memoized results short-circuit synchronously.
func run[T any](caller Task, tsk *task, url string, q Query[T], wg *semaphore.Weighted, done func()) bool {
	// Common case for cached values; no need to spawn a separate goroutine.
	if r := tsk.result.Load(); r != nil && closed(r.done) {
		done()
		return false
	}

	if wg.Acquire(caller.ctx, 1) != nil {
		return false
	}

	// Complete the rest of the computation asynchronously.
	go func() {
		defer wg.Release(1)

		// Try to become the goroutine responsible for computing the result.
		r := &result{done: make(chan struct{})}
		if !tsk.result.CompareAndSwap(nil, r) {
			// Someone else is computing it; sleep until they finish.
			r = tsk.result.Load()
			select {
			case <-r.done:
				done()
			case <-caller.ctx.Done():
			}
			return
		}

		if caller.exec.sema.Acquire(caller.ctx, 1) != nil {
			// We were cancelled; reset this task to the "not started" state.
			tsk.result.Store(nil)
			return
		}

		st := &state{held: true}
		completed := false
		defer func() {
			if st.held {
				caller.exec.sema.Release(1)
			}
			if recovered := recover(); recovered != nil {
				r.Fatal = &ErrPanic{URL: url, Panic: recovered}
				completed = true
			}
			if !completed {
				// Unwound without producing a result, either because the
				// context expired mid-resolve or because the query called
				// runtime.Goexit. Put the task back so a later Run retries.
				tsk.result.Store(nil)
				return
			}
			close(r.done)
			done()
		}()

		callee := Task{
			ctx:       caller.ctx,
			exec:      caller.exec,
			goroutine: currentGoroutine(),
			path:      &path{url: url, prev: caller.path},
			task:      tsk,
			result:    r,
			state:     st,
		}

		value, err := q.Execute(callee)
		if !st.aborted {
			r.Value, r.Fatal = value, err
			completed = true
		}
	}()
	return true
}

// currentGoroutine identifies the calling goroutine, for catching tasks
// smuggled across goroutines.
func currentGoroutine() int64 {
	return goid.Get()
}

// closed checks if ch is closed. This may return false negatives, in that it
// may return false for a channel which is closed immediately after this
// function returns.
func closed[T any](ch <-chan T) bool {
	select {
	case _, ok := <-ch:
		return !ok
	default:
		return false
	}
}
