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
	"fmt"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/tanqidong1992/protobuf-dt/ast/predeclared"
)

// Label is a presence or cardinality label on a [Field].
type Label int8

const (
	// LabelNone means the field was written without a label, as all
	// singular fields are in proto3.
	LabelNone Label = iota
	LabelOptional
	LabelRequired
	LabelRepeated
)

// LabelByName looks up a label by its name. Unrecognized names return
// [LabelNone].
func LabelByName(name string) Label {
	switch name {
	case "optional":
		return LabelOptional
	case "required":
		return LabelRequired
	case "repeated":
		return LabelRepeated
	default:
		return LabelNone
	}
}

// String implements [fmt.Stringer].
func (l Label) String() string {
	switch l {
	case LabelNone:
		return ""
	case LabelOptional:
		return "optional"
	case LabelRequired:
		return "required"
	case LabelRepeated:
		return "repeated"
	default:
		return fmt.Sprintf("Label(%d)", int8(l))
	}
}

// Descriptor returns the descriptor.proto label that corresponds to
// this one. [LabelNone] maps to the optional label, which is what an
// unlabeled field compiles to.
func (l Label) Descriptor() descriptorpb.FieldDescriptorProto_Label {
	switch l {
	case LabelRequired:
		return descriptorpb.FieldDescriptorProto_LABEL_REQUIRED
	case LabelRepeated:
		return descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	default:
		return descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	}
}

// TypeRef is a reference to a type, as used by a [Field]'s type and a
// [Method]'s input and output.
//
// A TypeRef is one of three things:
//
//   - The zero TypeRef, meaning no type information at all.
//   - A scalar reference, naming one of the language's predeclared
//     scalar types.
//   - A named reference, carrying the path that was written and, once
//     resolution has happened, a link to the [Message] or [Enum] it
//     names. The link may point into another file's context.
//
// A named reference whose link has not been filled in is unresolved;
// [TypeRef.Target] returns zero for it.
type TypeRef struct {
	scalar predeclared.Name
	path   string
	target rawLink
}

// ScalarType returns a reference to the given predeclared scalar type.
// Passing [predeclared.Unknown] returns the zero TypeRef.
func ScalarType(scalar predeclared.Name) TypeRef {
	return TypeRef{scalar: scalar}
}

// NamedType returns a reference to a named type: path is the reference
// as written, and target is the declaration it resolved to, which must
// be a [Message], an [Enum], or zero for an unresolved reference.
//
// Panics if target is any other kind of declaration.
func NamedType(path string, target DeclAny) TypeRef {
	switch target.Kind() {
	case DeclKindInvalid, DeclKindMessage, DeclKindEnum:
		return TypeRef{path: path, target: linkTo(target)}
	default:
		panic(fmt.Sprintf("ast: NamedType target must be a message or an enum, got %v", target.Kind()))
	}
}

// IsZero reports whether this is the zero TypeRef.
func (t TypeRef) IsZero() bool {
	return t == TypeRef{}
}

// IsScalar reports whether this references a predeclared scalar type.
func (t TypeRef) IsScalar() bool {
	return t.scalar != predeclared.Unknown
}

// IsNamed reports whether this references a type by name, resolved or
// not.
func (t TypeRef) IsNamed() bool {
	return !t.IsZero() && !t.IsScalar()
}

// Scalar returns the referenced scalar type, or [predeclared.Unknown]
// if this is not a scalar reference.
func (t TypeRef) Scalar() predeclared.Name {
	return t.scalar
}

// Path returns the reference as written: the scalar's name for scalar
// references, and the written path for named ones.
func (t TypeRef) Path() string {
	if t.IsScalar() {
		return t.scalar.String()
	}
	return t.path
}

// Target returns the declaration a named reference resolved to: a
// declaration of kind [DeclKindMessage] or [DeclKindEnum]. Scalar,
// zero, and unresolved references return zero.
func (t TypeRef) Target() DeclAny {
	return t.target.decl()
}
