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
	"github.com/tanqidong1992/protobuf-dt/source"
)

// Check runs every validation rule over one file.
//
// A nil opener skips import checking; the other rules always run.
func Check(f ast.File, opener source.Opener, r *report.Report) {
	CheckSyntax(f, r)
	CheckFieldNumbers(f, r)
	if opener != nil {
		CheckImports(f, opener, r)
	}
}

// CheckSyntax checks that the file declares a recognized syntax
// identifier: "proto2" or "proto3".
//
// A file with no syntax declaration at all, or one whose declaration
// carries no identifier, gets expected-syntax-identifier; a declared
// identifier outside the recognized set gets
// unrecognized-syntax-identifier.
func CheckSyntax(f ast.File, r *report.Report) {
	if f.IsZero() {
		return
	}

	syntax := model.SyntaxOf(f.AsAny())
	if syntax.IsZero() {
		diag(r, ExpectedSyntaxIdentifier, f)
		return
	}

	switch value := syntax.Value(); value {
	case "proto2", "proto3":
	case "":
		diag(r, ExpectedSyntaxIdentifier, syntax)
	default:
		diag(r, UnrecognizedSyntaxIdentifier, syntax, value)
	}
}
