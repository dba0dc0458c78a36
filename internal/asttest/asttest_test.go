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

package asttest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanqidong1992/protobuf-dt/ast/predeclared"
	"github.com/tanqidong1992/protobuf-dt/internal/asttest"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	file := asttest.Build(t, `
path: demo.proto
decls:
  - syntax: proto3
  - package: demo
  - import: {path: base.proto, public: true}
  - message:
      name: Person
      members:
        - field: {name: name, type: string, number: 1}
        - field: {name: kind, type: Kind, number: 2}
        - enum:
            name: Kind
            members:
              - value: {name: KIND_UNSPECIFIED, number: 0}
  - extend:
      target: Person
      members:
        - field: {name: alias, type: string, number: 100}
  - service:
      name: Directory
      members:
        - rpc: {name: Lookup, input: Person, output: Person}
`)

	require.False(file.IsZero())
	assert.Equal("demo.proto", file.Path())
	require.Equal(6, file.Decls().Len())

	assert.Equal("proto3", file.Decls().At(0).AsSyntax().Value())
	assert.Equal("demo", file.Decls().At(1).AsPackage().Path())

	imp := file.Decls().At(2).AsImport()
	assert.Equal("base.proto", imp.Path())
	assert.True(imp.IsPublic())
	assert.True(imp.Target().IsZero(), "base.proto is not part of the fixture")

	person := file.Decls().At(3).AsMessage()
	require.False(person.IsZero())
	assert.Equal("Person", person.Name())
	require.Equal(3, person.Decls().Len())

	name := person.Decls().At(0).AsField()
	assert.Equal(predeclared.String, name.Type().Scalar())
	assert.Equal(int32(1), name.Number())

	kindField := person.Decls().At(1).AsField()
	kind := person.Decls().At(2).AsEnum()
	assert.Equal(kind.AsAny(), kindField.Type().Target(), "Kind resolves to the nested enum")

	ext := file.Decls().At(4).AsExtend()
	assert.Equal("Person", ext.Extendee())
	assert.Equal(person, ext.Target())

	svc := file.Decls().At(5).AsService()
	require.Equal(1, svc.Decls().Len())
	lookup := svc.Decls().At(0).AsMethod()
	assert.Equal("Lookup", lookup.Name())
	assert.Equal(person.AsAny(), lookup.Input().Target())
	assert.Equal(person.AsAny(), lookup.Output().Target())
}

func TestBuildSet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	files := asttest.BuildSet(t, `
files:
  - path: a.proto
    decls:
      - package: pkg.a
      - message:
          name: M
          members:
            - field: {name: id, type: int32, number: 1}
  - path: b.proto
    decls:
      - import: {path: a.proto}
      - extend:
          target: pkg.a.M
          members:
            - field: {name: extra, type: string, number: 50}
`)

	require.Len(files, 2)
	a, b := files[0], files[1]

	m := a.Decls().At(1).AsMessage()
	require.False(m.IsZero())

	imp := b.Decls().At(0).AsImport()
	assert.Equal(a, imp.Target(), "imports resolve to fixture files")

	ext := b.Decls().At(1).AsExtend()
	assert.Equal(m, ext.Target(), "extend targets resolve across files")
	assert.NotSame(a.Context(), b.Context())
}

func TestUnresolved(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := asttest.Build(t, `
path: dangling.proto
decls:
  - message:
      name: M
      members:
        - field: {name: f, type: Missing, number: 1, unresolved: true}
  - extend: {target: Elsewhere, unresolved: true}
`)

	field := file.Decls().At(0).AsMessage().Decls().At(0).AsField()
	assert.True(field.Type().IsNamed())
	assert.Equal("Missing", field.Type().Path())
	assert.True(field.Type().Target().IsZero())

	ext := file.Decls().At(1).AsExtend()
	assert.Equal("Elsewhere", ext.Extendee())
	assert.True(ext.Target().IsZero())
}
