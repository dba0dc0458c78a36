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

// Package walk provides lazy traversal over syntax trees.
//
// The sequences returned by this package are pull-based: no part of the
// tree is visited until the caller asks for it, and iteration can be
// abandoned at any point. They are also restartable, so a sequence may
// be ranged over any number of times.
package walk

import (
	"iter"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/internal/ext/iterx"
)

// Descendants yields every declaration beneath node in pre-order:
// each member is yielded before the members it contains, in source
// order. The node itself is not yielded.
//
// A zero node yields nothing.
func Descendants(node ast.DeclAny) iter.Seq[ast.DeclAny] {
	return func(yield func(ast.DeclAny) bool) {
		children(node, yield)
	}
}

// DescendantsAndSelf is [Descendants], but the sequence begins with
// node itself.
func DescendantsAndSelf(node ast.DeclAny) iter.Seq[ast.DeclAny] {
	return func(yield func(ast.DeclAny) bool) {
		if node.IsZero() {
			return
		}
		if !yield(node) {
			return
		}
		children(node, yield)
	}
}

// OfKind yields the descendants of node that are of the given kind, in
// the same order as [Descendants].
func OfKind(node ast.DeclAny, kind ast.DeclKind) iter.Seq[ast.DeclAny] {
	return iterx.Filter(Descendants(node), func(d ast.DeclAny) bool {
		return d.Kind() == kind
	})
}

// children yields node's subtree in pre-order, reporting whether the
// caller wants iteration to continue.
func children(node ast.DeclAny, yield func(ast.DeclAny) bool) bool {
	decls := node.Decls()
	for i := range decls.Len() {
		child := decls.At(i)
		if !yield(child) {
			return false
		}
		if !children(child, yield) {
			return false
		}
	}
	return true
}
