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

// CheckImports checks that every import path in the file can be opened.
//
// The opener's text is discarded; only reachability matters here. The
// finding quotes the path as written, since that is what the user must
// fix.
func CheckImports(f ast.File, opener source.Opener, r *report.Report) {
	if f.IsZero() || opener == nil {
		return
	}

	imports := model.ImportsIn(f)
	for i := range imports.Len() {
		imp := imports.At(i)
		if _, err := opener.Open(imp.Path()); err != nil {
			diag(r, ImportNotFound, imp, imp.Path())
		}
	}
}
