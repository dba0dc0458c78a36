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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/ast/predeclared"
	"github.com/tanqidong1992/protobuf-dt/report"
	"github.com/tanqidong1992/protobuf-dt/seq"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	ctx := ast.NewContext(report.File{Path: "person.proto"})
	nodes := ctx.Nodes()
	file := ctx.Root()

	syntax := nodes.NewSyntax(ast.SyntaxArgs{Value: "proto3"})
	pkg := nodes.NewPackage(ast.PackageArgs{Path: "demo"})
	imp := nodes.NewImport(ast.ImportArgs{Path: "base.proto", Modifier: ast.ImportPublic})

	person := nodes.NewMessage(ast.MessageArgs{Name: "Person"})
	name := nodes.NewField(ast.FieldArgs{
		Name:   "name",
		Type:   ast.ScalarType(predeclared.String),
		Number: 1,
	})
	kind := nodes.NewEnum(ast.EnumArgs{Name: "Kind"})
	unknown := nodes.NewEnumValue(ast.EnumValueArgs{Name: "KIND_UNSPECIFIED", Number: 0})

	file.Append(syntax.AsAny())
	file.Append(pkg.AsAny())
	file.Append(imp.AsAny())
	file.Append(person.AsAny())
	person.Append(name.AsAny())
	person.Append(kind.AsAny())
	kind.Append(unknown.AsAny())

	assert.Equal("person.proto", file.Path())
	assert.Equal("proto3", syntax.Value())
	assert.Equal("demo", pkg.Path())
	assert.Equal("base.proto", imp.Path())
	assert.True(imp.IsPublic())
	assert.False(imp.IsWeak())

	var kinds []ast.DeclKind
	for d := range seq.Values(file.Decls()) {
		kinds = append(kinds, d.Kind())
	}
	assert.Equal([]ast.DeclKind{
		ast.DeclKindSyntax,
		ast.DeclKindPackage,
		ast.DeclKindImport,
		ast.DeclKindMessage,
	}, kinds)

	assert.Equal(8, ctx.Len()) // Includes the root.

	// Parent links point where they were inserted.
	assert.Equal(file.AsAny(), person.AsAny().Parent())
	assert.Equal(person.AsAny(), name.AsAny().Parent())
	assert.Equal(person.AsAny(), kind.AsAny().Parent())
	assert.Equal(kind.AsAny(), unknown.AsAny().Parent())
	assert.True(file.AsAny().Parent().IsZero())
}

func TestNarrowing(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	ctx := ast.NewContext(report.File{Path: "narrow.proto"})
	msg := ctx.Nodes().NewMessage(ast.MessageArgs{Name: "M"})

	any := msg.AsAny()
	assert.Equal(ast.DeclKindMessage, any.Kind())
	assert.Equal(msg, any.AsMessage())

	// Narrowing to any other kind yields zero handles.
	assert.True(any.AsFile().IsZero())
	assert.True(any.AsSyntax().IsZero())
	assert.True(any.AsPackage().IsZero())
	assert.True(any.AsImport().IsZero())
	assert.True(any.AsOption().IsZero())
	assert.True(any.AsEnum().IsZero())
	assert.True(any.AsEnumValue().IsZero())
	assert.True(any.AsField().IsZero())
	assert.True(any.AsExtend().IsZero())
	assert.True(any.AsService().IsZero())
	assert.True(any.AsMethod().IsZero())

	file := ctx.Root().AsAny()
	assert.Equal(ast.DeclKindFile, file.Kind())
	assert.Equal(ctx.Root(), file.AsFile())
}

func TestHandleIdentity(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	ctx := ast.NewContext(report.File{Path: "id.proto"})
	nodes := ctx.Nodes()

	a := nodes.NewMessage(ast.MessageArgs{Name: "A"})
	b := nodes.NewMessage(ast.MessageArgs{Name: "A"})
	ctx.Root().Append(a.AsAny())
	ctx.Root().Append(b.AsAny())

	// Same node, reached two ways, compares equal; distinct nodes with
	// identical contents do not.
	assert.Equal(a.AsAny(), ctx.Root().Decls().At(0))
	assert.NotEqual(a, b)
	assert.Equal(ctx.Root(), ctx.Root())

	// The same name in a different context is a different node.
	other := ast.NewContext(report.File{Path: "id.proto"})
	c := other.Nodes().NewMessage(ast.MessageArgs{Name: "A"})
	assert.NotEqual(a, c)
}

func TestAppendPanics(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	ctx := ast.NewContext(report.File{Path: "panics.proto"})
	nodes := ctx.Nodes()
	file := ctx.Root()

	msg := nodes.NewMessage(ast.MessageArgs{Name: "M"})
	file.Append(msg.AsAny())

	// A declaration can be inserted at most once.
	assert.Panics(func() { file.Append(msg.AsAny()) })
	other := nodes.NewMessage(ast.MessageArgs{Name: "N"})
	file.Append(other.AsAny())
	assert.Panics(func() { other.Append(msg.AsAny()) })

	// Zero and file declarations cannot be inserted.
	assert.Panics(func() { file.Append(ast.DeclAny{}) })
	assert.Panics(func() { msg.Append(file.AsAny()) })

	// Nodes from another context cannot be inserted.
	foreign := ast.NewContext(report.File{Path: "other.proto"})
	stray := foreign.Nodes().NewMessage(ast.MessageArgs{Name: "Stray"})
	assert.Panics(func() { file.Append(stray.AsAny()) })

	// Appending to a node that was never created panics rather than
	// silently dropping the child.
	assert.Panics(func() { ast.Message{}.Append(other.AsAny()) })
}

func TestCompactOptions(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	ctx := ast.NewContext(report.File{Path: "options.proto"})
	nodes := ctx.Nodes()

	field := nodes.NewField(ast.FieldArgs{
		Name:   "ids",
		Label:  ast.LabelRepeated,
		Type:   ast.ScalarType(predeclared.Int32),
		Number: 2,
	})
	packed := nodes.NewOption(ast.OptionArgs{Name: "packed", Value: "true"})
	field.AppendOption(packed)

	require.Equal(1, field.Options().Len())
	opt := field.Options().At(0).AsOption()
	assert.Equal("packed", opt.Name())
	assert.Equal("true", opt.Value())
	assert.Equal(field.AsAny(), opt.AsAny().Parent())
	assert.Equal(ast.LabelRepeated, field.Label())
}

func TestServiceShape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	ctx := ast.NewContext(report.File{Path: "service.proto"})
	nodes := ctx.Nodes()

	person := nodes.NewMessage(ast.MessageArgs{Name: "Person"})
	svc := nodes.NewService(ast.ServiceArgs{Name: "Directory"})
	lookup := nodes.NewMethod(ast.MethodArgs{
		Name:   "Lookup",
		Input:  ast.NamedType("Person", person.AsAny()),
		Output: ast.NamedType("Person", person.AsAny()),
	})

	ctx.Root().Append(person.AsAny())
	ctx.Root().Append(svc.AsAny())
	svc.Append(lookup.AsAny())

	require.Equal(1, svc.Decls().Len())
	got := svc.Decls().At(0).AsMethod()
	assert.Equal("Lookup", got.Name())
	assert.Equal(person.AsAny(), got.Input().Target())
	assert.Equal(person.AsAny(), got.Output().Target())
}

func TestNewSpan(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	ctx := ast.NewContext(report.File{Path: "spans.proto", Text: "0123456789"})

	span := ctx.NewSpan(2, 7)
	assert.Equal("23456", span.Text())
	assert.Panics(func() { ctx.NewSpan(7, 2) })
	assert.Panics(func() { ctx.NewSpan(0, 11) })

	// Spans from another file are rejected at construction.
	other := ast.NewContext(report.File{Path: "elsewhere.proto", Text: "abc"})
	assert.Panics(func() {
		ctx.Nodes().NewMessage(ast.MessageArgs{Name: "M", Span: other.NewSpan(0, 3)})
	})

	msg := ctx.Nodes().NewMessage(ast.MessageArgs{Name: "M", Span: span})
	assert.Equal(span, msg.Span())
	assert.Equal(span, msg.AsAny().Span())
}
