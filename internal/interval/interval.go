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

// Package interval provides a point-query map over nesting intervals.
package interval

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Tree is a collection of nesting intervals supporting point queries:
// given a point, it returns every interval containing that point, from
// outermost to innermost, in O(log n).
//
// Intervals must strictly nest: a new interval either lies entirely
// within the innermost interval containing its start, or is disjoint
// from all others. Enclosing intervals must be inserted before the
// intervals they contain. Containment trees indexed in pre-order
// satisfy both rules by construction.
//
// A zero Tree is empty and ready to use.
type Tree[K Endpoint, V any] struct {
	// Disjoint segments of the key space, keyed by segment end. Each
	// segment records the stack of intervals covering it, outermost
	// first.
	tree btree.Map[K, *segment[K, V]]
}

type segment[K Endpoint, V any] struct {
	start, end K   // Inclusive.
	stack      []V // Outermost first.
}

// Insert adds the interval [start, end] (both endpoints inclusive) with
// an associated value.
//
// Panics if start > end, or if the interval violates the nesting rule.
func (t *Tree[K, V]) Insert(start, end K, value V) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	it := t.tree.Iter()
	if !it.Seek(start) || end < it.Value().start {
		// Disjoint from every existing segment.
		t.tree.Set(end, &segment[K, V]{start: start, end: end, stack: []V{value}})
		return
	}

	seg := it.Value()
	if start < seg.start || end > seg.end {
		panic(fmt.Sprintf("interval: [%#v, %#v] does not nest inside [%#v, %#v]",
			start, end, seg.start, seg.end))
	}

	// Split seg into up to three parts; only [start, end] grows a deeper
	// stack. Clip before appending so remainder segments never alias the
	// grown stack.
	deeper := append(slices.Clip(seg.stack), value)

	if start > seg.start {
		t.tree.Set(start-1, &segment[K, V]{start: seg.start, end: start - 1, stack: seg.stack})
	}
	if end < seg.end {
		// seg stays keyed at seg.end and becomes the upper remainder.
		seg.start = end + 1
		t.tree.Set(end, &segment[K, V]{start: start, end: end, stack: deeper})
		return
	}
	// The new interval reaches seg's end; replace seg wholesale.
	seg.start = start
	seg.stack = deeper
}

// At returns every inserted interval containing point, outermost first.
// The returned slice is shared; callers must not modify it.
func (t *Tree[K, V]) At(point K) []V {
	it := t.tree.Iter()
	if !it.Seek(point) || point < it.Value().start {
		return nil
	}
	return it.Value().stack
}

// Innermost returns the value of the smallest interval containing point.
func (t *Tree[K, V]) Innermost(point K) (v V, ok bool) {
	stack := t.At(point)
	if len(stack) == 0 {
		return v, false
	}
	return stack[len(stack)-1], true
}

// Len returns the number of disjoint segments (not intervals) held.
func (t *Tree[K, V]) Len() int { return t.tree.Len() }

// Segments yields the disjoint segments of the key space in order, each
// with its covering stack, outermost first.
func (t *Tree[K, V]) Segments() iter.Seq2[[2]K, []V] {
	return func(yield func([2]K, []V) bool) {
		t.tree.Scan(func(_ K, seg *segment[K, V]) bool {
			return yield([2]K{seg.start, seg.end}, seg.stack)
		})
	}
}
