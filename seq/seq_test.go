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

package seq_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanqidong1992/protobuf-dt/seq"
)

func TestSlice(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := seq.NewSlice([]int{10, 20, 30}, func(i, v int) string {
		return strconv.Itoa(i) + ":" + strconv.Itoa(v)
	})

	assert.Equal(3, s.Len())
	assert.Equal("0:10", s.At(0))
	assert.Equal("2:30", s.At(2))
	assert.Panics(func() { s.At(3) })

	assert.Equal([]string{"0:10", "1:20", "2:30"}, seq.ToSlice[string](s))
}

func TestAll(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := seq.NewSlice([]string{"a", "b", "c"}, func(_ int, v string) string { return v })

	var idxs []int
	var vals []string
	for i, v := range seq.All[string](s) {
		idxs = append(idxs, i)
		vals = append(vals, v)
	}
	assert.Equal([]int{0, 1, 2}, idxs)
	assert.Equal([]string{"a", "b", "c"}, vals)

	// Early break.
	for i := range seq.All[string](s) {
		assert.Zero(i)
		break
	}
}

func TestMapAndValues(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := seq.NewFunc(4, func(i int) int { return i * i })
	assert.Equal([]int{0, 1, 4, 9}, slices.Collect(seq.Values[int](s)))

	doubled := seq.Map[int](s, func(v int) int { return v * 2 })
	assert.Equal([]int{0, 2, 8, 18}, slices.Collect(doubled))
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	e := seq.Empty[int]()
	assert.Zero(e.Len())
	assert.Panics(func() { e.At(0) })
	assert.Empty(slices.Collect(seq.Values(e)))
}
