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
	"github.com/tanqidong1992/protobuf-dt/seq"
)

// PropertiesOf returns a message's direct fields as a read-only view,
// in declaration order. Only immediate members count: fields of nested
// messages, of nested extension blocks, and everything that is not a
// field (options, enums, and so on) are excluded.
func PropertiesOf(m ast.Message) seq.Indexer[ast.Field] {
	return fieldsOf(m.Decls())
}

// FieldsOfExtend returns an extension block's direct fields as a
// read-only view, in declaration order.
func FieldsOfExtend(e ast.Extend) seq.Indexer[ast.Field] {
	return fieldsOf(e.Decls())
}

func fieldsOf(decls seq.Indexer[ast.DeclAny]) seq.Indexer[ast.Field] {
	var fields []ast.Field
	for d := range seq.Values(decls) {
		if f := d.AsField(); !f.IsZero() {
			fields = append(fields, f)
		}
	}
	return seq.NewSlice(fields, func(_ int, f ast.Field) ast.Field { return f })
}
