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

// Package seq provides read-only indexed sequences.
//
// Queries in this module hand out views over storage they do not own
// (arena-backed declaration lists, filtered member lists). [Indexer] is
// the shape of such a view: random access without exposing, copying, or
// permitting mutation of the underlying list.
package seq

import "iter"

// Indexer is a sequence with O(1) random access.
type Indexer[T any] interface {
	// Len returns the sequence's length.
	Len() int

	// At returns the idx'th element; it panics when idx is out of
	// bounds, like an ordinary slice index.
	At(idx int) T
}

// All yields the elements of seq along with their indices.
func All[T any](seq Indexer[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range seq.Len() {
			if !yield(i, seq.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements of seq.
func Values[T any](seq Indexer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range seq.Len() {
			if !yield(seq.At(i)) {
				return
			}
		}
	}
}

// Map yields the elements of seq transformed by f.
func Map[T, U any](seq Indexer[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range Values(seq) {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// ToSlice copies seq into a fresh slice.
func ToSlice[T any](seq Indexer[T]) []T {
	out := make([]T, seq.Len())
	for i := range out {
		out[i] = seq.At(i)
	}
	return out
}
