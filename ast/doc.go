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

// Package ast defines a semantic syntax tree for Protobuf schema files.
//
// Unlike a parse tree, the nodes in this package carry resolved
// information: imports know which file they name, fields know which
// message or enum their type refers to, and extension blocks know which
// message they extend. It is the data model that the [model] query
// package operates on.
//
// # Contexts and handles
//
// All nodes for a single file live in a [Context], which allocates them
// out of per-kind arenas. User code never holds a node pointer; instead
// it holds a small value handle (such as [Message] or [Field]) that
// records the owning context and the node's arena index. Handles are
// comparable: two handles are the same node if and only if they compare
// equal. The zero value of every handle type is a well-defined "nil
// node" whose methods return zero values rather than panicking.
//
// [DeclAny] is the type-erased form of a handle. It remembers the
// node's [DeclKind] and can be narrowed back to a concrete handle with
// the As* methods, which return a zero handle when the kind does not
// match.
//
// Nodes from one context must not be inserted into another; doing so
// panics. Cross-file references are expressed as links ([TypeRef],
// [Extend.Target], [Import.Target]) instead, which may point into any
// context.
//
// # Construction
//
// Nodes are created through [Context.Nodes] using args structs, and are
// wired into the tree with the containers' Append methods, which set
// the child's parent link. A node can be inserted at most once.
//
// A context is not synchronized. Construction must be complete before
// the tree is shared, after which any number of goroutines may query it
// concurrently.
package ast
