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

package ast

import (
	"github.com/tanqidong1992/protobuf-dt/report"
)

// Nodes provides the node construction API for a [Context].
//
// New nodes start out detached; they become part of the tree when
// inserted into a container with one of the Append methods. Spans in
// args structs are optional, but when present must come from the same
// file, i.e. from [Context.NewSpan].
type Nodes struct {
	ctx *Context
}

// Context returns the context this Nodes builds for.
func (n Nodes) Context() *Context {
	return n.ctx
}

// SyntaxArgs is the arguments for [Nodes.NewSyntax].
type SyntaxArgs struct {
	Value string
	Span  report.Span
}

// NewSyntax creates a new syntax declaration.
func (n Nodes) NewSyntax(args SyntaxArgs) Syntax {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.syntaxes.New(rawSyntax{
		value: args.Value,
		span:  newRawSpan(args.Span),
	})
	return Syntax{wrapDecl(n.ctx, ptr)}
}

// PackageArgs is the arguments for [Nodes.NewPackage].
type PackageArgs struct {
	Path string
	Span report.Span
}

// NewPackage creates a new package declaration.
func (n Nodes) NewPackage(args PackageArgs) Package {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.packages.New(rawPackage{
		path: args.Path,
		span: newRawSpan(args.Span),
	})
	return Package{wrapDecl(n.ctx, ptr)}
}

// ImportArgs is the arguments for [Nodes.NewImport].
type ImportArgs struct {
	Path     string
	Modifier ImportModifier
	Span     report.Span
}

// NewImport creates a new import declaration. The import starts out
// unresolved; see [Import.SetTarget].
func (n Nodes) NewImport(args ImportArgs) Import {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.imports.New(rawImport{
		path:     args.Path,
		modifier: args.Modifier,
		span:     newRawSpan(args.Span),
	})
	return Import{wrapDecl(n.ctx, ptr)}
}

// OptionArgs is the arguments for [Nodes.NewOption].
type OptionArgs struct {
	Name  string
	Value string
	Span  report.Span
}

// NewOption creates a new option setting.
func (n Nodes) NewOption(args OptionArgs) Option {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.options.New(rawOption{
		name:  args.Name,
		value: args.Value,
		span:  newRawSpan(args.Span),
	})
	return Option{wrapDecl(n.ctx, ptr)}
}

// MessageArgs is the arguments for [Nodes.NewMessage].
type MessageArgs struct {
	Name string
	Span report.Span
}

// NewMessage creates a new message definition.
func (n Nodes) NewMessage(args MessageArgs) Message {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.messages.New(rawMessage{
		name: args.Name,
		span: newRawSpan(args.Span),
	})
	return Message{wrapDecl(n.ctx, ptr)}
}

// EnumArgs is the arguments for [Nodes.NewEnum].
type EnumArgs struct {
	Name string
	Span report.Span
}

// NewEnum creates a new enum definition.
func (n Nodes) NewEnum(args EnumArgs) Enum {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.enums.New(rawEnum{
		name: args.Name,
		span: newRawSpan(args.Span),
	})
	return Enum{wrapDecl(n.ctx, ptr)}
}

// EnumValueArgs is the arguments for [Nodes.NewEnumValue].
type EnumValueArgs struct {
	Name   string
	Number int32
	Span   report.Span
}

// NewEnumValue creates a new enum value.
func (n Nodes) NewEnumValue(args EnumValueArgs) EnumValue {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.enumValues.New(rawEnumValue{
		name:   args.Name,
		number: args.Number,
		span:   newRawSpan(args.Span),
	})
	return EnumValue{wrapDecl(n.ctx, ptr)}
}

// FieldArgs is the arguments for [Nodes.NewField].
type FieldArgs struct {
	Name  string
	Label Label
	// Type is the field's type reference; it may be filled in (or
	// replaced) after construction with [Field.SetType].
	Type TypeRef
	// Number is the field's number. Zero means the field was written
	// without one.
	Number int32
	Span   report.Span
}

// NewField creates a new field.
func (n Nodes) NewField(args FieldArgs) Field {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.fields.New(rawField{
		name:   args.Name,
		label:  args.Label,
		ty:     args.Type,
		number: args.Number,
		span:   newRawSpan(args.Span),
	})
	return Field{wrapDecl(n.ctx, ptr)}
}

// ExtendArgs is the arguments for [Nodes.NewExtend].
type ExtendArgs struct {
	// Extendee is the path of the extended message as written.
	Extendee string
	Span     report.Span
}

// NewExtend creates a new extension block. The block starts out
// unresolved; see [Extend.SetTarget].
func (n Nodes) NewExtend(args ExtendArgs) Extend {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.extends.New(rawExtend{
		extendee: args.Extendee,
		span:     newRawSpan(args.Span),
	})
	return Extend{wrapDecl(n.ctx, ptr)}
}

// ServiceArgs is the arguments for [Nodes.NewService].
type ServiceArgs struct {
	Name string
	Span report.Span
}

// NewService creates a new service definition.
func (n Nodes) NewService(args ServiceArgs) Service {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.services.New(rawService{
		name: args.Name,
		span: newRawSpan(args.Span),
	})
	return Service{wrapDecl(n.ctx, ptr)}
}

// MethodArgs is the arguments for [Nodes.NewMethod].
type MethodArgs struct {
	Name   string
	Input  TypeRef
	Output TypeRef
	Span   report.Span
}

// NewMethod creates a new method.
func (n Nodes) NewMethod(args MethodArgs) Method {
	n.ctx.checkSpan(args.Span)
	ptr := n.ctx.decls.methods.New(rawMethod{
		name:   args.Name,
		input:  args.Input,
		output: args.Output,
		span:   newRawSpan(args.Span),
	})
	return Method{wrapDecl(n.ctx, ptr)}
}
