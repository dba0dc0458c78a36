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

package model

import (
	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/ast/predeclared"
)

// TypeOf returns the declaration a field's type refers to: the message
// or enum of a resolved named reference. Scalar-typed fields, fields
// with no type information, and unresolved references all return zero.
func TypeOf(field ast.Field) ast.DeclAny {
	return field.Type().Target()
}

// MessageTypeOf returns the message a field's type refers to, or zero
// if the field's type is not a resolved message reference.
func MessageTypeOf(field ast.Field) ast.Message {
	return TypeOf(field).AsMessage()
}

// EnumTypeOf returns the enum a field's type refers to, or zero if the
// field's type is not a resolved enum reference.
func EnumTypeOf(field ast.Field) ast.Enum {
	return TypeOf(field).AsEnum()
}

// ScalarTypeOf returns the predeclared scalar type of a field, or
// [predeclared.Unknown] if the field's type is named or absent.
func ScalarTypeOf(field ast.Field) predeclared.Name {
	return field.Type().Scalar()
}
