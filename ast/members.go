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
	"github.com/tanqidong1992/protobuf-dt/seq"
)

// Field is a message field: a named, numbered slot with a type.
//
// Fields appear as members of a [Message] or of an [Extend] block; in
// the latter case they are extension fields.
type Field struct {
	declImpl[rawField]
}

type rawField struct {
	parent rawRef
	name   string
	label  Label
	ty     TypeRef
	number int32
	body   rawBody // Compact options.
	span   rawSpan
}

// Name returns the field's declared name.
func (f Field) Name() string {
	if f.IsZero() {
		return ""
	}
	return f.raw().name
}

// Label returns the field's label, or [LabelNone] if it was written
// without one.
func (f Field) Label() Label {
	if f.IsZero() {
		return LabelNone
	}
	return f.raw().label
}

// Number returns the field's number. A field written without a number
// returns zero.
func (f Field) Number() int32 {
	if f.IsZero() {
		return 0
	}
	return f.raw().number
}

// Type returns the field's type reference. A field whose type is not
// known yet returns the zero [TypeRef].
func (f Field) Type() TypeRef {
	if f.IsZero() {
		return TypeRef{}
	}
	return f.raw().ty
}

// SetType records the field's type, replacing any previous one.
func (f Field) SetType(ty TypeRef) {
	f.raw().ty = ty
}

// Options returns the field's compact options, in source order.
func (f Field) Options() seq.Indexer[DeclAny] {
	return f.AsAny().Decls()
}

// AppendOption adds a compact option at the end of the field's option
// list.
func (f Field) AppendOption(o Option) {
	appendDecl(f.AsAny(), o.AsAny())
}

// Span returns this declaration's source location.
func (f Field) Span() report.Span {
	if f.IsZero() {
		return report.Span{}
	}
	return f.ctx.span(f.raw().span)
}

// EnumValue is a constant inside an [Enum], such as "FOO = 1;".
type EnumValue struct {
	declImpl[rawEnumValue]
}

type rawEnumValue struct {
	parent rawRef
	name   string
	number int32
	body   rawBody // Compact options.
	span   rawSpan
}

// Name returns the value's declared name.
func (v EnumValue) Name() string {
	if v.IsZero() {
		return ""
	}
	return v.raw().name
}

// Number returns the value's number.
func (v EnumValue) Number() int32 {
	if v.IsZero() {
		return 0
	}
	return v.raw().number
}

// Options returns the value's compact options, in source order.
func (v EnumValue) Options() seq.Indexer[DeclAny] {
	return v.AsAny().Decls()
}

// AppendOption adds a compact option at the end of the value's option
// list.
func (v EnumValue) AppendOption(o Option) {
	appendDecl(v.AsAny(), o.AsAny())
}

// Span returns this declaration's source location.
func (v EnumValue) Span() report.Span {
	if v.IsZero() {
		return report.Span{}
	}
	return v.ctx.span(v.raw().span)
}

// Method is an rpc definition inside a [Service].
type Method struct {
	declImpl[rawMethod]
}

type rawMethod struct {
	parent rawRef
	name   string
	input  TypeRef
	output TypeRef
	body   rawBody // Options.
	span   rawSpan
}

// Name returns the method's declared name.
func (m Method) Name() string {
	if m.IsZero() {
		return ""
	}
	return m.raw().name
}

// Input returns the method's request type.
func (m Method) Input() TypeRef {
	if m.IsZero() {
		return TypeRef{}
	}
	return m.raw().input
}

// Output returns the method's response type.
func (m Method) Output() TypeRef {
	if m.IsZero() {
		return TypeRef{}
	}
	return m.raw().output
}

// SetSignature records the method's request and response types,
// replacing any previous ones.
func (m Method) SetSignature(input, output TypeRef) {
	raw := m.raw()
	raw.input = input
	raw.output = output
}

// Options returns the method's options, in source order.
func (m Method) Options() seq.Indexer[DeclAny] {
	return m.AsAny().Decls()
}

// AppendOption adds an option at the end of the method's body.
func (m Method) AppendOption(o Option) {
	appendDecl(m.AsAny(), o.AsAny())
}

// Span returns this declaration's source location.
func (m Method) Span() report.Span {
	if m.IsZero() {
		return report.Span{}
	}
	return m.ctx.span(m.raw().span)
}

// Option is an option setting, either a declaration of the form
// "option <name> = <value>;" or an entry in a compact option list.
//
// This layer does not interpret option values; the value is carried as
// the literal text it was written as.
type Option struct {
	declImpl[rawOption]
}

type rawOption struct {
	parent rawRef
	name   string
	value  string
	span   rawSpan
}

// Name returns the option's name as written, such as "deprecated" or
// "(custom).field".
func (o Option) Name() string {
	if o.IsZero() {
		return ""
	}
	return o.raw().name
}

// Value returns the option's value as written.
func (o Option) Value() string {
	if o.IsZero() {
		return ""
	}
	return o.raw().value
}

// Span returns this declaration's source location.
func (o Option) Span() report.Span {
	if o.IsZero() {
		return report.Span{}
	}
	return o.ctx.span(o.raw().span)
}
