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
	"fmt"
	"slices"
	"strings"
)

// ErrCycle is the fatal result of a query that transitively resolved
// itself.
type ErrCycle struct {
	// The URLs of the queries forming the cycle, from the repeated
	// query back around to itself. The first and last elements are
	// always equal.
	Path []string
}

// Error implements [error].
func (e *ErrCycle) Error() string {
	return "cycle detected: " + strings.Join(e.Path, " -> ")
}

// ErrPanic is returned by [Run] when a query panics instead of
// returning. The panic is memoized as the query's fatal result, so
// resolving the same URL again re-reports it without re-executing.
type ErrPanic struct {
	URL   string // The query that panicked.
	Panic any    // The value it panicked with.
}

// Error implements [error].
func (e *ErrPanic) Error() string {
	return fmt.Sprintf("panic in query %q: %v", e.URL, e.Panic)
}

// path is a link in the chain of query URLs leading from the root of a
// [Run] call down to the task currently executing. Tasks share their
// ancestors' links, so recording one more query is O(1).
type path struct {
	url  string
	prev *path
}

// findCycle reports whether putting url at the end of this path would
// close a loop, and if so builds the error describing it.
func (p *path) findCycle(url string) *ErrCycle {
	node := p
	var length int
	for ; node != nil; node = node.prev {
		length++
		if node.url == url {
			break
		}
	}
	if node == nil {
		return nil
	}

	// Collect the loop in root-to-leaf order and close it by repeating
	// the offending query.
	urls := make([]string, 0, length+1)
	for node := p; ; node = node.prev {
		urls = append(urls, node.url)
		if node.url == url {
			break
		}
	}
	slices.Reverse(urls)
	return &ErrCycle{Path: append(urls, url)}
}
