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

// Package arena provides typed arenas addressed by compressed pointers.
//
// An arena never moves the values it allocates, so the *T returned by a
// dereference stays valid for the life of the arena. Values are addressed
// by 32-bit [Pointer] indices rather than machine pointers, which halves
// the size of cross-references in node-heavy structures and gives every
// pointer a natural nil (zero) encoding.
package arena

import (
	"fmt"
	"iter"
	"math/bits"
)

// Slabs double in capacity as the arena grows, starting here. The slab
// sizing must be a power of two for Deref's index arithmetic.
const (
	slabMinShift = 5
	slabMinLen   = 1 << slabMinShift
)

// Untyped is an arena pointer that has lost its element type.
//
// The pointer for a value is one plus the number of values allocated in
// the same arena before it, so the zero Untyped is nil.
type Untyped uint32

// Nil reports whether this pointer is nil.
func (p Untyped) Nil() bool { return p == 0 }

// Pointer is a compressed pointer to a value in an [Arena][T].
//
// It cannot be dereferenced on its own; it must be taken back to the
// arena that produced it with [Pointer.In]. The zero value is nil.
type Pointer[T any] Untyped

// Nil reports whether this pointer is nil.
func (p Pointer[T]) Nil() bool { return Untyped(p).Nil() }

// Untyped erases this pointer's element type.
func (p Pointer[T]) Untyped() Untyped { return Untyped(p) }

// In dereferences this pointer in arena.
//
// arena must be the arena that allocated p; anything else produces an
// arbitrary value or a panic. Panics if p is nil.
func (p Pointer[T]) In(arena *Arena[T]) *T { return arena.Deref(Untyped(p)) }

// Arena allocates values of T at stable addresses.
//
// Storage is a table of logarithmically growing slabs: the table mimics
// the doubling of an ordinary slice without ever reallocating a slab, so
// interior pointers survive growth. Lookup stays O(1) at the cost of one
// extra load.
//
// The zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants: cap(slabs[0]) == slabMinLen, each subsequent slab
	// doubles the previous one's capacity, and only the last slab is
	// partially filled. Deref depends on all three.
	slabs [][]T
	count int
}

// New allocates value and returns its pointer.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.slabs == nil {
		a.slabs = [][]T{make([]T, 0, slabMinLen)}
	}

	last := &a.slabs[len(a.slabs)-1]
	if len(*last) == cap(*last) {
		a.slabs = append(a.slabs, make([]T, 0, 2*cap(*last)))
		last = &a.slabs[len(a.slabs)-1]
	}

	*last = append(*last, value)
	a.count++
	return Pointer[T](Untyped(a.count))
}

// Deref dereferences an untyped pointer into this arena, as if by
// [Pointer.In].
func (a *Arena[T]) Deref(ptr Untyped) *T {
	if ptr.Nil() {
		a = nil // locate treats a nil arena as out of range.
	}
	slab, idx := a.locate(int(ptr) - 1)
	return &a.slabs[slab][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int { return a.count }

// Values iterates over every allocated value in allocation order.
func (a *Arena[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, slab := range a.slabs {
			for i := range slab {
				if !yield(&slab[i]) {
					return
				}
			}
		}
	}
}

// locate translates a zero-based index into slab coordinates, bounds
// check included.
func (a *Arena[T]) locate(idx int) (slab, offset int) {
	if a == nil || idx < 0 || idx >= a.count {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// Slab n holds indices [slabMinLen<<n - slabMinLen, slabMinLen<<(n+1) - slabMinLen).
	// Adding slabMinLen to idx turns those bounds into consecutive powers
	// of two, so the slab number falls out of the high bit's position.
	slab = bits.UintSize - bits.LeadingZeros(uint(idx)+slabMinLen)
	slab -= slabMinShift + 1

	offset = idx - a.lenBefore(slab)
	return slab, offset
}

// lenBefore returns the total capacity of the first n slabs.
func (*Arena[T]) lenBefore(n int) int {
	// Geometric series: slabMinLen * (2^n - 1).
	return max(0, slabMinLen<<n-slabMinLen)
}
