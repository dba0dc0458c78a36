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

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/internal/asttest"
	"github.com/tanqidong1992/protobuf-dt/report"
	"github.com/tanqidong1992/protobuf-dt/source"
	"github.com/tanqidong1992/protobuf-dt/validation"
)

// codes flattens a report to its catalog codes, in order.
func codes(r report.Report) []string {
	if len(r) == 0 {
		return nil
	}
	out := make([]string, len(r))
	for i, d := range r {
		out[i] = d.Code
	}
	return out
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	want := map[validation.Code]string{
		validation.ExpectedFieldName:            "expected field name",
		validation.ExpectedFieldNumber:          "expected field number",
		validation.ExpectedSyntaxIdentifier:     "expected syntax identifier",
		validation.FieldNumberAlreadyUsed:       "field number %d is already used by field %q",
		validation.FieldNumbersMustBePositive:   "field numbers must be positive integers",
		validation.ImportNotFound:               "import %q was not found",
		validation.MissingFieldNumber:           "missing field number",
		validation.UnrecognizedSyntaxIdentifier: `unrecognized syntax identifier %q; expected "proto2" or "proto3"`,
	}
	for code, message := range want {
		assert.Equal(message, code.Message())
	}

	assert.Panics(func() { validation.Code("no-such-code").Message() })
}

func TestCheckSyntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fixture string
		codes   []string
		message string
	}{
		{
			name: "proto3",
			fixture: `
path: ok3.proto
decls:
  - syntax: proto3
`,
		},
		{
			name: "proto2",
			fixture: `
path: ok2.proto
decls:
  - syntax: proto2
`,
		},
		{
			name: "missing",
			fixture: `
path: missing.proto
decls:
  - message: {name: M}
`,
			codes:   []string{"expected-syntax-identifier"},
			message: "expected syntax identifier",
		},
		{
			name: "empty",
			fixture: `
path: empty.proto
decls:
  - syntax: ""
`,
			codes:   []string{"expected-syntax-identifier"},
			message: "expected syntax identifier",
		},
		{
			name: "unrecognized",
			fixture: `
path: bad.proto
decls:
  - syntax: proto4
`,
			codes:   []string{"unrecognized-syntax-identifier"},
			message: `unrecognized syntax identifier "proto4"; expected "proto2" or "proto3"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			file := asttest.Build(t, test.fixture)
			var r report.Report
			validation.CheckSyntax(file, &r)

			assert.Equal(test.codes, codes(r))
			if test.message != "" {
				require.Len(t, r, 1)
				assert.Equal(test.message, r[0].Err.Error())
				assert.Equal(report.Error, r[0].Level)
			}
		})
	}
}

func TestCheckFieldNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fixture string
		codes   []string
		message string
	}{
		{
			name: "clean",
			fixture: `
path: clean.proto
decls:
  - message:
      name: M
      members:
        - field: {name: a, type: int32, number: 1}
        - field: {name: b, type: int32, number: 2}
  - extend:
      target: M
      members:
        - field: {name: c, type: int32, number: 100}
`,
		},
		{
			name: "missing number",
			fixture: `
path: missing.proto
decls:
  - message:
      name: M
      members:
        - field: {name: a, type: int32}
`,
			codes:   []string{"missing-field-number"},
			message: "missing field number",
		},
		{
			name: "negative number",
			fixture: `
path: negative.proto
decls:
  - message:
      name: M
      members:
        - field: {name: a, type: int32, number: -1}
`,
			codes:   []string{"field-numbers-must-be-positive"},
			message: "field numbers must be positive integers",
		},
		{
			name: "duplicate in message",
			fixture: `
path: dup.proto
decls:
  - message:
      name: M
      members:
        - field: {name: first, type: int32, number: 1}
        - field: {name: second, type: int32, number: 1}
`,
			codes:   []string{"field-number-already-used"},
			message: `field number 1 is already used by field "first"`,
		},
		{
			name: "extension shares the message's numbers",
			fixture: `
path: extdup.proto
decls:
  - message:
      name: M
      members:
        - field: {name: own, type: int32, number: 7}
  - extend:
      target: M
      members:
        - field: {name: added, type: int32, number: 7}
`,
			codes:   []string{"field-number-already-used"},
			message: `field number 7 is already used by field "own"`,
		},
		{
			name: "messages do not share numbers",
			fixture: `
path: twomsg.proto
decls:
  - message:
      name: A
      members:
        - field: {name: a, type: int32, number: 1}
  - message:
      name: B
      members:
        - field: {name: b, type: int32, number: 1}
`,
		},
		{
			name: "unresolved extension checked alone",
			fixture: `
path: dangling.proto
decls:
  - extend:
      target: Elsewhere
      unresolved: true
      members:
        - field: {name: a, type: int32, number: 5}
        - field: {name: b, type: int32, number: 5}
`,
			codes:   []string{"field-number-already-used"},
			message: `field number 5 is already used by field "a"`,
		},
		{
			name: "unnamed field",
			fixture: `
path: unnamed.proto
decls:
  - message:
      name: M
      members:
        - field: {type: int32, number: 1}
`,
			codes:   []string{"expected-field-name"},
			message: "expected field name",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			file := asttest.Build(t, test.fixture)
			var r report.Report
			validation.CheckFieldNumbers(file, &r)

			assert.Equal(test.codes, codes(r))
			if test.message != "" {
				require.Len(t, r, 1)
				assert.Equal(test.message, r[0].Err.Error())
			}
		})
	}
}

func TestCheckImports(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := asttest.Build(t, `
path: imports.proto
decls:
  - syntax: proto3
  - import: {path: present.proto}
  - import: {path: absent.proto}
`)

	opener := source.Map{"present.proto": ""}
	var r report.Report
	validation.Check(file, opener, &r)

	require.Len(t, r, 1)
	assert.Equal("import-not-found", r[0].Code)
	assert.Equal(`import "absent.proto" was not found`, r[0].Err.Error())
}

func TestDiagnosticSpans(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text := `syntax = "proto9";`
	ctx := ast.NewContext(report.File{Path: "spans.proto", Text: text})
	span := ctx.NewSpan(0, len(text))
	ctx.Root().Append(ctx.Nodes().NewSyntax(ast.SyntaxArgs{
		Value: "proto9",
		Span:  span,
	}).AsAny())

	var r report.Report
	validation.CheckSyntax(ctx.Root(), &r)

	require.Len(t, r, 1)
	assert.Equal(span, r[0].Primary())
	assert.Equal("unrecognized-syntax-identifier", r[0].Code)
}
