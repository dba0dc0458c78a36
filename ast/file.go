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

package ast

import (
	"github.com/tanqidong1992/protobuf-dt/report"
	"github.com/tanqidong1992/protobuf-dt/seq"
)

// File is the root of a file's tree, representing the file itself.
//
// Every [Context] contains exactly one File, created along with the
// context; see [Context.Root]. A File is the only declaration without
// a parent, and the only one that cannot be inserted into another
// declaration.
type File struct {
	declImpl[rawFile]
}

type rawFile struct {
	body rawBody
}

// Path returns the path of the file this node represents.
func (f File) Path() string {
	if f.IsZero() {
		return ""
	}
	return f.Context().Path()
}

// Decls returns the file's top-level declarations, in source order.
func (f File) Decls() seq.Indexer[DeclAny] {
	return f.AsAny().Decls()
}

// Append adds a declaration at the end of the file's top level.
//
// Panics if d already has a parent, or if it belongs to another
// context.
func (f File) Append(d DeclAny) {
	appendDecl(f.AsAny(), d)
}

// Span returns a span over the whole file.
func (f File) Span() report.Span {
	if f.IsZero() {
		return report.Span{}
	}
	c := f.Context()
	return report.Span{File: c.file.File(), Start: 0, End: len(c.Text())}
}

// DeclAt returns the innermost declaration whose span contains the
// given byte offset, or zero if the offset lies outside of every
// declaration. The file itself is never returned.
//
// The lookup index is built lazily on first use, so the file's tree
// must be fully constructed before calling DeclAt.
func (f File) DeclAt(offset int) DeclAny {
	if f.IsZero() {
		return DeclAny{}
	}
	c := f.Context()
	c.declIndex.once.Do(func() { c.buildDeclIndex(f) })
	ref, ok := c.declIndex.tree.Innermost(int32(offset))
	if !ok {
		return DeclAny{}
	}
	return ref.with(c)
}

// buildDeclIndex indexes every located declaration under root by its
// span. Insertion happens in pre-order, which is what the interval
// tree's nesting rule requires of a containment hierarchy. Spans are
// half-open, so a span's last byte is End-1; empty and absent spans
// are not indexed.
func (c *Context) buildDeclIndex(root File) {
	var insert func(d DeclAny)
	insert = func(d DeclAny) {
		span := d.Span()
		if span.Len() > 0 {
			c.declIndex.tree.Insert(int32(span.Start), int32(span.End-1), d.ref())
		}
		decls := d.Decls()
		for i := range decls.Len() {
			insert(decls.At(i))
		}
	}

	decls := root.Decls()
	for i := range decls.Len() {
		insert(decls.At(i))
	}
}
