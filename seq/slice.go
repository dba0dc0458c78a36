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

package seq

// Slice implements [Indexer] over an ordinary slice, converting each raw
// element to the public type on access.
//
// Wrap receives the element's index alongside the element, since handle
// types frequently encode their own position.
type Slice[T, E any] struct {
	Slice []E
	Wrap  func(int, E) T
}

// NewSlice constructs a new [Slice].
//
// This function exists because Go will not infer type parameters of a
// type.
func NewSlice[T, E any](slice []E, wrap func(int, E) T) Slice[T, E] {
	return Slice[T, E]{Slice: slice, Wrap: wrap}
}

// Len implements [Indexer].
func (s Slice[T, _]) Len() int { return len(s.Slice) }

// At implements [Indexer].
func (s Slice[T, _]) At(idx int) T { return s.Wrap(idx, s.Slice[idx]) }

// Func implements [Indexer] with a length and an access function.
type Func[T any] struct {
	Count int
	Get   func(int) T
}

// NewFunc constructs a new [Func].
func NewFunc[T any](count int, get func(int) T) Func[T] {
	return Func[T]{Count: count, Get: get}
}

// Len implements [Indexer].
func (s Func[T]) Len() int { return s.Count }

// At implements [Indexer].
func (s Func[T]) At(idx int) T {
	if idx < 0 || idx >= s.Count {
		panic("seq: index out of range")
	}
	return s.Get(idx)
}

// Empty returns an [Indexer] with no elements.
func Empty[T any]() Indexer[T] {
	return Func[T]{Count: 0, Get: nil}
}
