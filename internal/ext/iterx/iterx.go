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

// Package iterx contains extensions to Go's package iter.
package iterx

import "iter"

// Map transforms each element of seq with f.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return FilterMap(seq, func(v T) (U, bool) { return f(v), true })
}

// Filter drops elements of seq for which p returns false.
func Filter[T any](seq iter.Seq[T], p func(T) bool) iter.Seq[T] {
	return FilterMap(seq, func(v T) (T, bool) { return v, p(v) })
}

// FilterMap transforms each element of seq with f, dropping elements for
// which f's second result is false.
func FilterMap[T, U any](seq iter.Seq[T], f func(T) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		seq(func(v T) bool {
			u, keep := f(v)
			return !keep || yield(u)
		})
	}
}

// Limit yields at most limit elements of seq.
func Limit[T any](limit int, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seq(func(v T) bool {
			if limit <= 0 || !yield(v) {
				return false
			}
			limit--
			return limit > 0
		})
	}
}

// First retrieves the first element of seq, if there is one.
func First[T any](seq iter.Seq[T]) (v T, ok bool) {
	seq(func(x T) bool {
		v, ok = x, true
		return false
	})
	return v, ok
}

// OnlyOne retrieves the sole element of seq; ok is false when seq yields
// zero or more than one element.
func OnlyOne[T any](seq iter.Seq[T]) (v T, ok bool) {
	n := 0
	seq(func(x T) bool {
		n++
		if n > 1 {
			var z T
			v, ok = z, false
			return false
		}
		v, ok = x, true
		return true
	})
	return v, ok
}

// Find returns the first element of seq satisfying p, along with its
// index; the index is -1 if there is none.
func Find[T any](seq iter.Seq[T], p func(T) bool) (int, T) {
	idx := -1
	var found T
	i := 0
	seq(func(v T) bool {
		if p(v) {
			idx, found = i, v
			return false
		}
		i++
		return true
	})
	return idx, found
}

// Count drains seq and returns the number of elements it yielded.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	seq(func(T) bool {
		n++
		return true
	})
	return n
}
