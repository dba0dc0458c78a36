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

// Package source models the schema documents a hosting environment
// (such as an editor or a build tool) hands to this library, and the
// openers it fetches them through.
package source

import (
	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/report"
)

// Unit is one schema document: its path, its text, and whatever node
// state the hosting environment has attached to it.
//
// A unit is not synchronized. The environment must finish populating
// it before sharing it across goroutines, after which it should be
// treated as read-only.
type Unit struct {
	// The path the unit was opened under. Paths are how units are
	// identified; they need not exist on any filesystem.
	Path string

	// The unit's full text.
	Text string

	// The unit's materialized node forest. For a unit that parsed
	// cleanly this is just the file root, but environments may attach
	// partial or synthetic trees here instead.
	Contents []ast.DeclAny

	// The unit's cached parse result, if the environment has parsed
	// it. Queries that need the unit's root check here first.
	Parsed *ParseResult
}

// ParseResult is the outcome of running a parser over a unit.
type ParseResult struct {
	// The root of the parsed tree.
	Root ast.File

	// The diagnostics the parse produced.
	Report report.Report
}

// ParseFunc parses one document into a syntax tree, accumulating any
// diagnostics in r. It is the signature this library expects of an
// externally supplied parser.
//
// A ParseFunc should return an error only for failures that are not
// expressible as diagnostics, such as an unsupported encoding.
type ParseFunc func(path, text string, r *report.Report) (ast.File, error)
