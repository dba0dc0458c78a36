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

// Package queries provides the canonical [incremental.Query] types for
// hosting this library's schema documents in an executor: a document's
// text, and its parsed unit.
//
// Query URLs key on the document path alone, so one [incremental.Executor]
// must host queries for exactly one [source.Opener] and parser
// configuration. Environments with several openers use several
// executors.
package queries

import (
	"fmt"

	"github.com/tanqidong1992/protobuf-dt/incremental"
	"github.com/tanqidong1992/protobuf-dt/source"
)

// Text is an [incremental.Query] for a document's text, as served by an
// opener.
type Text struct {
	Opener source.Opener
	Path   string
}

var _ incremental.Query[string] = Text{}

// URL implements [incremental.Query].
func (t Text) URL() string {
	return incremental.URLBuilder{
		Scheme: "text",
		Opaque: t.Path,
	}.Build()
}

// Execute implements [incremental.Query].
func (t Text) Execute(incremental.Task) (string, error) {
	text, err := t.Opener.Open(t.Path)
	if err != nil {
		return "", fmt.Errorf("open %q: %w", t.Path, err)
	}
	return text, nil
}
