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

package ast_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/report"
)

func TestZeroSpans(t *testing.T) {
	t.Parallel()

	testzero[ast.DeclAny](t)
	testzero[ast.File](t)
	testzero[ast.Syntax](t)
	testzero[ast.Package](t)
	testzero[ast.Import](t)
	testzero[ast.Option](t)
	testzero[ast.Message](t)
	testzero[ast.Enum](t)
	testzero[ast.EnumValue](t)
	testzero[ast.Field](t)
	testzero[ast.Extend](t)
	testzero[ast.Service](t)
	testzero[ast.Method](t)
}

// testzero validates that the zero value of some Spanner produces the
// zero span.
func testzero[Node report.Spanner](t *testing.T) {
	t.Helper()
	var z Node

	t.Run(fmt.Sprintf("%T", z), func(t *testing.T) {
		assert.Zero(t, z.Span())
	})
}

func TestZeroAccessors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var d ast.DeclAny
	assert.True(d.IsZero())
	assert.Equal(ast.DeclKindInvalid, d.Kind())
	assert.Nil(d.Context())
	assert.True(d.Parent().IsZero())
	assert.Zero(d.Decls().Len())

	var f ast.File
	assert.True(f.IsZero())
	assert.Empty(f.Path())
	assert.Zero(f.Decls().Len())
	assert.True(f.DeclAt(0).IsZero())
	assert.True(f.AsAny().IsZero())

	var field ast.Field
	assert.True(field.IsZero())
	assert.Empty(field.Name())
	assert.Zero(field.Number())
	assert.Equal(ast.LabelNone, field.Label())
	assert.True(field.Type().IsZero())

	var imp ast.Import
	assert.Empty(imp.Path())
	assert.False(imp.IsPublic())
	assert.False(imp.IsWeak())
	assert.True(imp.Target().IsZero())

	var ext ast.Extend
	assert.Empty(ext.Extendee())
	assert.True(ext.Target().IsZero())

	var ty ast.TypeRef
	assert.True(ty.IsZero())
	assert.False(ty.IsScalar())
	assert.False(ty.IsNamed())
	assert.Empty(ty.Path())
	assert.True(ty.Target().IsZero())
}
