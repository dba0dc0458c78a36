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

// Package model answers semantic questions about syntax trees.
//
// It is a stateless query layer over the [ast] package: every function
// here takes node handles in and returns node handles, primitives, or
// read-only views out. Ordinary absence (a file with no package, a
// field with a scalar type) is reported as a zero value, never as an
// error. A malformed tree, on the other hand, is a bug in whatever
// built it, and the navigator panics rather than guessing.
//
// Queries only read the trees they are given. Any number of them may
// run concurrently over the same tree, as long as nothing is mutating
// it at the same time.
package model

import (
	"fmt"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/source"
	"github.com/tanqidong1992/protobuf-dt/walk"
)

// RootOf returns the root of the tree node belongs to, following
// parent links upward. A [ast.File] argument returns itself.
//
// Panics if node is zero, or if its parent chain does not terminate in
// a root. The latter can only happen when an upstream parser produced
// a malformed tree, so it is treated as a programmer error rather than
// a recoverable condition.
func RootOf(node ast.DeclAny) ast.File {
	if node.IsZero() {
		panic("model: RootOf called with a zero node")
	}

	// The parent chain of a well-formed tree cannot be longer than the
	// number of nodes in its context; running past that bound means the
	// chain loops.
	current := node
	for range node.Context().Len() {
		if file := current.AsFile(); !file.IsZero() {
			return file
		}
		parent := current.Parent()
		if parent.IsZero() {
			panic(fmt.Sprintf(
				"model: %v node in %q has no path to a root; the tree is malformed",
				current.Kind(), node.Context().Path(),
			))
		}
		current = parent
	}
	panic(fmt.Sprintf(
		"model: parent chain in %q does not terminate; the tree is malformed",
		node.Context().Path(),
	))
}

// RootOfUnit returns the root of the tree attached to a source unit.
//
// If the unit carries a cached parse result, its root is returned
// without any traversal. Otherwise the unit's content forest is
// scanned in pre-order for the first file node. Returns zero if the
// unit is nil or holds no tree at all; unlike [RootOf], absence here
// is ordinary, since a unit may not have been parsed yet.
func RootOfUnit(u *source.Unit) ast.File {
	if u == nil {
		return ast.File{}
	}
	if p := u.Parsed; p != nil && !p.Root.IsZero() {
		return p.Root
	}
	for _, content := range u.Contents {
		for d := range walk.DescendantsAndSelf(content) {
			if file := d.AsFile(); !file.IsZero() {
				return file
			}
		}
	}
	return ast.File{}
}
