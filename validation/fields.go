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

package validation

import (
	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/model"
	"github.com/tanqidong1992/protobuf-dt/report"
	"github.com/tanqidong1992/protobuf-dt/seq"
	"github.com/tanqidong1992/protobuf-dt/walk"
)

// CheckFieldNumbers checks every field declared in the file: fields
// must be named, must carry a positive number, and must not reuse a
// number already taken in the message they belong to.
//
// A message's number space spans its direct fields and the fields of
// every same-file extension of it, in tree order. Extensions whose
// target is unresolved or lives in another file cannot be checked
// against their message; their fields are checked in isolation.
func CheckFieldNumbers(f ast.File, r *report.Report) {
	if f.IsZero() {
		return
	}

	for decl := range walk.OfKind(f.AsAny(), ast.DeclKindMessage) {
		m := decl.AsMessage()
		used := make(map[int32]string)
		checkFieldSet(r, model.PropertiesOf(m), used)
		for _, ext := range model.ExtensionsOf(m, f) {
			checkFieldSet(r, model.FieldsOfExtend(ext), used)
		}
	}

	for decl := range walk.OfKind(f.AsAny(), ast.DeclKindExtend) {
		ext := decl.AsExtend()
		target := model.MessageFrom(ext)
		if !target.IsZero() && model.RootOf(target.AsAny()) == f {
			// Already covered as part of the target's number space.
			continue
		}
		checkFieldSet(r, model.FieldsOfExtend(ext), make(map[int32]string))
	}
}

// checkFieldSet checks one run of fields sharing a number space. used
// carries the numbers already claimed, mapping each to the name of the
// field that claimed it.
func checkFieldSet(r *report.Report, fields seq.Indexer[ast.Field], used map[int32]string) {
	for i := range fields.Len() {
		field := fields.At(i)
		if field.Name() == "" {
			diag(r, ExpectedFieldName, field)
		}

		switch number := field.Number(); {
		case number == 0:
			diag(r, MissingFieldNumber, field)
		case number < 0:
			diag(r, FieldNumbersMustBePositive, field)
		default:
			if first, taken := used[number]; taken {
				diag(r, FieldNumberAlreadyUsed, field, number, first)
			} else {
				used[number] = field.Name()
			}
		}
	}
}
