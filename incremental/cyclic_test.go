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

package incremental_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanqidong1992/protobuf-dt/incremental"
)

// Cyclic is a query that queries itself, for triggering cycle detection.
type Cyclic struct {
	Mod, Step int
}

func (c Cyclic) URL() string {
	return incremental.URLBuilder{
		Scheme:  "cyclic",
		Opaque:  strconv.Itoa(c.Mod),
		Queries: [][2]string{{"step", strconv.Itoa(c.Step)}},
	}.Build()
}

func (c Cyclic) Execute(t incremental.Task) (int, error) {
	next, err := incremental.Resolve(t, Cyclic{
		Mod:  c.Mod,
		Step: (c.Step + 1) % c.Mod,
	})
	if err != nil {
		return 0, err
	}
	if next[0].Fatal != nil {
		return 0, next[0].Fatal
	}

	return next[0].Value * next[0].Value, nil
}

func TestCyclic(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	ctx := context.Background()
	exec := incremental.New(
		incremental.WithParallelism(4),
	)

	result, err := incremental.Run(ctx, exec, Cyclic{Mod: 5, Step: 3})
	require.NoError(t, err)
	assert.Equal(
		"cycle detected: cyclic:5?step=3 -> cyclic:5?step=4 -> cyclic:5?step=0 -> cyclic:5?step=1 -> cyclic:5?step=2 -> cyclic:5?step=3",
		result[0].Fatal.Error(),
	)

	var cycle *incremental.ErrCycle
	require.True(t, errors.As(result[0].Fatal, &cycle))
	assert.Equal(cycle.Path[0], cycle.Path[len(cycle.Path)-1])
	assert.Len(cycle.Path, 6)
}

func TestSelfCycle(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	ctx := context.Background()
	exec := incremental.New(
		incremental.WithParallelism(4),
	)

	result, err := incremental.Run(ctx, exec, Cyclic{Mod: 1, Step: 0})
	require.NoError(t, err)
	assert.Equal(
		"cycle detected: cyclic:1?step=0 -> cyclic:1?step=0",
		result[0].Fatal.Error(),
	)
}
