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

package queries

import (
	"fmt"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/incremental"
	"github.com/tanqidong1992/protobuf-dt/report"
	"github.com/tanqidong1992/protobuf-dt/source"
)

// Unit is an [incremental.Query] for a parsed document.
//
// The resulting [source.Unit] arrives with its parse result populated,
// so root lookups on it take the cached fast path. The unit pointer is
// memoized: resolving the same path again yields the identical unit
// until it is evicted.
type Unit struct {
	Opener source.Opener
	Parse  source.ParseFunc
	Path   string
}

var _ incremental.Query[*source.Unit] = Unit{}

// URL implements [incremental.Query].
func (u Unit) URL() string {
	return incremental.URLBuilder{
		Scheme: "unit",
		Opaque: u.Path,
	}.Build()
}

// Execute implements [incremental.Query].
func (u Unit) Execute(task incremental.Task) (*source.Unit, error) {
	texts, err := incremental.Resolve(task, Text{
		Opener: u.Opener,
		Path:   u.Path,
	})
	if err != nil {
		return nil, err
	}
	if texts[0].Fatal != nil {
		return nil, texts[0].Fatal
	}
	text := texts[0].Value

	var r report.Report
	root, err := u.Parse(u.Path, text, &r)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", u.Path, err)
	}

	return &source.Unit{
		Path:     u.Path,
		Text:     text,
		Contents: []ast.DeclAny{root.AsAny()},
		Parsed:   &source.ParseResult{Root: root, Report: r},
	}, nil
}
