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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/internal/asttest"
	"github.com/tanqidong1992/protobuf-dt/model"
)

func TestExtensionsOf(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	file := asttest.Build(t, `
path: ext.proto
decls:
  - package: demo
  - message: {name: Target}
  - extend:
      target: Target
      members:
        - field: {name: top, type: int32, number: 100}
  - message:
      name: Wrapper
      members:
        - extend:
            target: Target
            members:
              - field: {name: nested, type: int32, number: 101}
        - message:
            name: Deep
            members:
              - extend:
                  target: Target
                  members:
                    - field: {name: deepest, type: int32, number: 102}
  - message: {name: Other}
  - extend:
      target: Other
      members:
        - field: {name: elsewhere, type: int32, number: 103}
  - extend:
      target: Missing
      members:
        - field: {name: dangling, type: int32, number: 104}
      unresolved: true
`)

	target := file.Decls().At(1).AsMessage()
	require.False(target.IsZero())

	// Extend blocks surface in tree pre-order no matter how deeply they
	// nest, and only those whose target is this very message.
	exts := model.ExtensionsOf(target, file)
	require.Len(exts, 3)
	assert.Equal("top", model.FieldsOfExtend(exts[0]).At(0).Name())
	assert.Equal("nested", model.FieldsOfExtend(exts[1]).At(0).Name())
	assert.Equal("deepest", model.FieldsOfExtend(exts[2]).At(0).Name())
	for _, ext := range exts {
		assert.Equal(target, model.MessageFrom(ext))
	}

	// The message's own file is where it was declared, so the local
	// form finds the same blocks.
	assert.Equal(exts, model.LocalExtensionsOf(target))

	other := file.Decls().At(4).AsMessage()
	assert.Len(model.ExtensionsOf(other, file), 1)

	// No matches means nil, not an empty slice.
	wrapper := file.Decls().At(3).AsMessage()
	assert.Nil(model.ExtensionsOf(wrapper, file))

	assert.Nil(model.ExtensionsOf(ast.Message{}, file))
	assert.Nil(model.ExtensionsOf(target, ast.File{}))
}

func TestExtensionsOfMatchesByIdentity(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Two files each declare a message named demo.M and extend their
	// own. Name equality must not leak one file's extension onto the
	// other file's message.
	files := asttest.BuildSet(t, `
files:
  - path: a.proto
    decls:
      - package: demo
      - message: {name: M}
      - extend:
          target: demo.M
          members:
            - field: {name: fromA, type: int32, number: 100}
  - path: b.proto
    decls:
      - package: demo
      - message: {name: M}
`)

	a, b := files[0], files[1]
	aM := a.Decls().At(1).AsMessage()
	bM := b.Decls().At(1).AsMessage()

	assert.Len(model.ExtensionsOf(aM, a), 1)
	assert.Nil(model.ExtensionsOf(bM, a), "same name, different declaration")
	assert.Nil(model.ExtensionsOf(bM, b))
}

func TestLocalExtensionsOf(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	// File b imports a and extends a's message. The extension exists,
	// but not in the message's own file.
	files := asttest.BuildSet(t, `
files:
  - path: a.proto
    decls:
      - package: pkg.a
      - message: {name: M}
  - path: b.proto
    decls:
      - package: pkg.b
      - import: {path: a.proto}
      - extend:
          target: pkg.a.M
          members:
            - field: {name: remote, type: int32, number: 50}
`)

	a, b := files[0], files[1]
	m := a.Decls().At(1).AsMessage()

	assert.Nil(model.LocalExtensionsOf(m))

	remote := model.ExtensionsOf(m, b)
	require.Len(remote, 1)
	assert.Equal(m, model.MessageFrom(remote[0]))
	assert.Equal("remote", model.FieldsOfExtend(remote[0]).At(0).Name())
}

func TestMessageFrom(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := asttest.Build(t, `
path: from.proto
decls:
  - message: {name: M}
  - extend:
      target: M
      members:
        - field: {name: f, type: int32, number: 1}
  - extend:
      target: Nowhere
      unresolved: true
`)

	m := file.Decls().At(0).AsMessage()
	assert.Equal(m, model.MessageFrom(file.Decls().At(1).AsExtend()))
	assert.True(model.MessageFrom(file.Decls().At(2).AsExtend()).IsZero())
	assert.True(model.MessageFrom(ast.Extend{}).IsZero())
}
